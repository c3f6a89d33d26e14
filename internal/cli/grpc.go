package cli

import (
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/onetouch-io/onetouch/internal/config"
	pb "github.com/onetouch-io/onetouch/proto"
)

// daemonClient is an open connection to the running daemon.
type daemonClient struct {
	pb.DeviceServiceClient
	conn *grpc.ClientConn
}

func (c *daemonClient) Close() error {
	return c.conn.Close()
}

// connectDaemon establishes a gRPC connection to the running daemon.
func connectDaemon() (*daemonClient, error) {
	info, err := config.LoadDaemonInfo()
	if err != nil {
		return nil, fmt.Errorf("failed to load daemon info: %w", err)
	}
	if info == nil {
		return nil, fmt.Errorf("daemon not running")
	}

	conn, err := grpc.NewClient(info.Address(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to daemon: %w", err)
	}

	return &daemonClient{
		DeviceServiceClient: pb.NewDeviceServiceClient(conn),
		conn:                conn,
	}, nil
}

// ensureAndConnect starts the daemon when needed and connects to it.
func ensureAndConnect() (*daemonClient, error) {
	if err := EnsureDaemon(); err != nil {
		return nil, err
	}
	return connectDaemon()
}
