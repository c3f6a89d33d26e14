// Package server implements the gRPC server for the daemon.
package server

import (
	"context"
	"fmt"
	"net"
	"os"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	"github.com/onetouch-io/onetouch/internal/daemon/controller"
	"github.com/onetouch-io/onetouch/internal/models"
	pb "github.com/onetouch-io/onetouch/proto"
)

// Device is the controller surface the RPC service exposes.
type Device interface {
	Current() models.DeviceState
	Toggle(ctx context.Context) (controller.Result, error)
	Refresh(ctx context.Context) (models.DeviceState, bool)
}

// Options configures a Server.
type Options struct {
	Port     int // 0 for dynamic allocation
	Device   Device
	Backend  string
	Selector string
	Hotkey   func() string // currently bound shortcut, may be nil
	Shutdown func()        // called once when a client requests shutdown
}

// Server is the daemon's gRPC server.
type Server struct {
	grpcServer   *grpc.Server
	listener     net.Listener
	port         int
	opts         Options
	startedAt    time.Time
	shutdownOnce sync.Once
}

// New creates a new server listening on the loopback interface.
func New(opts Options) (*Server, error) {
	if opts.Device == nil {
		return nil, fmt.Errorf("server needs a device controller")
	}

	listener, err := (&net.ListenConfig{}).Listen(context.TODO(), "tcp", fmt.Sprintf("127.0.0.1:%d", opts.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	// Get actual port if dynamically allocated
	actualPort := listener.Addr().(*net.TCPAddr).Port

	grpcServer := grpc.NewServer(grpc.UnaryInterceptor(logUnary))

	srv := &Server{
		grpcServer: grpcServer,
		listener:   listener,
		port:       actualPort,
		opts:       opts,
		startedAt:  time.Now().UTC(),
	}

	pb.RegisterDeviceServiceServer(grpcServer, &deviceService{server: srv})

	return srv, nil
}

// Port returns the port the server is listening on.
func (s *Server) Port() int {
	return s.port
}

// Serve starts serving requests. This blocks until Stop is called.
func (s *Server) Serve() error {
	return s.grpcServer.Serve(s.listener)
}

// Stop gracefully stops the server.
func (s *Server) Stop() {
	s.grpcServer.GracefulStop()
}

func (s *Server) requestShutdown() {
	s.shutdownOnce.Do(func() {
		if s.opts.Shutdown != nil {
			go s.opts.Shutdown()
		}
	})
}

func logUnary(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	entry := log.WithFields(log.Fields{
		"method":   info.FullMethod,
		"duration": time.Since(start),
	})
	if err != nil {
		entry.WithError(err).Warn("RPC failed")
	} else {
		entry.Debug("RPC served")
	}
	return resp, err
}

// ============================================================================
// Service Implementation
// ============================================================================

type deviceService struct {
	pb.UnimplementedDeviceServiceServer
	server *Server
}

func (s *deviceService) GetStatus(ctx context.Context, _ *pb.StatusRequest) (*pb.Status, error) {
	opts := s.server.opts
	state := opts.Device.Current()
	st := &pb.Status{
		State:         state.String(),
		Label:         state.Label(),
		Backend:       opts.Backend,
		Selector:      opts.Selector,
		Pid:           int32(os.Getpid()),
		StartedAtUnix: s.server.startedAt.Unix(),
	}
	if opts.Hotkey != nil {
		st.Hotkey = opts.Hotkey()
	}
	return st, nil
}

func (s *deviceService) Toggle(ctx context.Context, req *pb.ToggleRequest) (*pb.ToggleResponse, error) {
	origin := req.GetOrigin()
	if origin == "" {
		origin = "rpc"
	}
	log.WithField("origin", origin).Info("Toggle requested")

	res, err := s.server.opts.Device.Toggle(ctx)
	resp := &pb.ToggleResponse{
		AttemptId:  res.ID,
		Previous:   res.Previous.String(),
		State:      res.State.String(),
		Committed:  res.Committed,
		Reconciled: res.Reconciled,
		Outcome:    res.Outcome.String(),
		DurationMs: res.Duration.Milliseconds(),
	}
	if err != nil {
		resp.Error = err.Error()
	}
	return resp, nil
}

func (s *deviceService) Refresh(ctx context.Context, _ *pb.RefreshRequest) (*pb.RefreshResponse, error) {
	state, changed := s.server.opts.Device.Refresh(ctx)
	return &pb.RefreshResponse{State: state.String(), Changed: changed}, nil
}

func (s *deviceService) Shutdown(ctx context.Context, _ *pb.ShutdownRequest) (*pb.ShutdownResponse, error) {
	log.Info("Shutdown requested over RPC")
	s.server.requestShutdown()
	return &pb.ShutdownResponse{}, nil
}
