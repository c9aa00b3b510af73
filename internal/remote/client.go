package remote

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	pb "github.com/openentropy/openentropy-go/gen/collectorv1"
	"github.com/openentropy/openentropy-go/internal/stream"
)

// #region types

// SourceInfo describes one source advertised by a collector server.
type SourceInfo struct {
	Name        string
	Description string
	Cost        string
}

// #endregion types

// #region client-struct

// Client wraps the gRPC connection to an out-of-process collector server and
// satisfies the Collector contract for one named remote source. The deadline
// lives here because remote probes may take hundreds of ms per batch.
type Client struct {
	conn    *grpc.ClientConn
	client  pb.CollectorServiceClient
	source  string
	timeout time.Duration
}

// DefaultTimeout bounds one Collect RPC.
const DefaultTimeout = 2 * time.Minute

// #endregion client-struct

// #region constructor

// NewClient connects to a collector server for the given source.
func NewClient(addr, source string) (*Client, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &Client{
		conn:    conn,
		client:  pb.NewCollectorServiceClient(conn),
		source:  source,
		timeout: DefaultTimeout,
	}, nil
}

// NewClientWithService creates a Client with an injected service
// implementation. Used for testing without a real gRPC connection.
func NewClientWithService(svc pb.CollectorServiceClient, source string) *Client {
	return &Client{client: svc, source: source, timeout: DefaultTimeout}
}

// #endregion constructor

// #region close

// Close shuts down the gRPC connection.
func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

// #endregion close

// #region collect

// Name returns the remote source name.
func (c *Client) Name() string {
	return c.source
}

// Collect requests n samples from the remote source. A short response is a
// partial success; an empty one fails with stream.ErrCollectionFailed, same
// as an in-process collector.
func (c *Client) Collect(n int) (stream.Stream, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%s: %w: requested %d samples", c.source, stream.ErrCollectionFailed, n)
	}

	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	resp, err := c.client.Collect(ctx, &pb.CollectRequest{
		Source: c.source,
		Count:  uint32(n),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w: collect rpc: %v", c.source, stream.ErrCollectionFailed, err)
	}
	if len(resp.Samples) == 0 {
		return nil, fmt.Errorf("%s: %w: server returned no samples", c.source, stream.ErrCollectionFailed)
	}
	return stream.Stream(resp.Samples), nil
}

// #endregion collect

// #region list-sources

// ListSources enumerates the sources the server can probe.
func (c *Client) ListSources(ctx context.Context) ([]SourceInfo, error) {
	resp, err := c.client.ListSources(ctx, &pb.ListSourcesRequest{})
	if err != nil {
		return nil, fmt.Errorf("list sources rpc: %w", err)
	}
	out := make([]SourceInfo, len(resp.Sources))
	for i, s := range resp.Sources {
		out[i] = SourceInfo{Name: s.Name, Description: s.Description, Cost: s.Cost}
	}
	return out, nil
}

// #endregion list-sources
