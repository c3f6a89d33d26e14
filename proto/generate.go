// Package proto holds the daemon's gRPC contract and the code generated from it.
package proto

//go:generate protoc --go_out=. --go_opt=paths=source_relative --go-grpc_out=. --go-grpc_opt=paths=source_relative onetouch.proto
