// Package main is the entry point for the onetouch CLI.
package main

import (
	"os"

	"github.com/onetouch-io/onetouch/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
