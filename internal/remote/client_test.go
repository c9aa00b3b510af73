package remote

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"

	pb "github.com/openentropy/openentropy-go/gen/collectorv1"
	"github.com/openentropy/openentropy-go/internal/stream"
)

// #region mock
type mockCollectorService struct {
	pb.CollectorServiceClient

	lastCollect *pb.CollectRequest
	collectResp *pb.CollectResponse
	collectErr  error

	listResp *pb.ListSourcesResponse
	listErr  error
}

func (m *mockCollectorService) Collect(_ context.Context, req *pb.CollectRequest, _ ...grpc.CallOption) (*pb.CollectResponse, error) {
	m.lastCollect = req
	return m.collectResp, m.collectErr
}

func (m *mockCollectorService) ListSources(_ context.Context, _ *pb.ListSourcesRequest, _ ...grpc.CallOption) (*pb.ListSourcesResponse, error) {
	return m.listResp, m.listErr
}

// #endregion mock

// #region constructor-tests
func TestNewClientInvalidAddr(t *testing.T) {
	c, err := NewClient("localhost:0", "smc_remote")
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	defer c.Close()
}

func TestNewClientWithService(t *testing.T) {
	c := NewClientWithService(&mockCollectorService{}, "smc_remote")
	if c == nil {
		t.Fatal("expected non-nil client")
	}
	if c.Name() != "smc_remote" {
		t.Fatalf("name %q, want smc_remote", c.Name())
	}
}

// #endregion constructor-tests

// #region collect-tests
func TestCollect_Success(t *testing.T) {
	mock := &mockCollectorService{
		collectResp: &pb.CollectResponse{Samples: []uint64{10, 20, 30}},
	}
	c := NewClientWithService(mock, "smc_remote")

	s, err := c.Collect(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Len() != 3 || s[0] != 10 || s[2] != 30 {
		t.Fatalf("unexpected samples %v", s)
	}
	if mock.lastCollect.Source != "smc_remote" {
		t.Errorf("request source %q, want smc_remote", mock.lastCollect.Source)
	}
	if mock.lastCollect.Count != 3 {
		t.Errorf("request count %d, want 3", mock.lastCollect.Count)
	}
}

func TestCollect_PartialResponse(t *testing.T) {
	mock := &mockCollectorService{
		collectResp: &pb.CollectResponse{Samples: []uint64{1, 2}},
	}
	c := NewClientWithService(mock, "smc_remote")

	s, err := c.Collect(100)
	if err != nil {
		t.Fatalf("partial response must not error: %v", err)
	}
	if s.Len() != 2 {
		t.Fatalf("got %d samples, want 2", s.Len())
	}
}

func TestCollect_RPCError(t *testing.T) {
	mock := &mockCollectorService{
		collectErr: errors.New("rpc failed"),
	}
	c := NewClientWithService(mock, "smc_remote")

	_, err := c.Collect(10)
	if !errors.Is(err, stream.ErrCollectionFailed) {
		t.Fatalf("expected ErrCollectionFailed, got %v", err)
	}
}

func TestCollect_EmptyResponse(t *testing.T) {
	mock := &mockCollectorService{
		collectResp: &pb.CollectResponse{},
	}
	c := NewClientWithService(mock, "smc_remote")

	_, err := c.Collect(10)
	if !errors.Is(err, stream.ErrCollectionFailed) {
		t.Fatalf("expected ErrCollectionFailed, got %v", err)
	}
}

func TestCollect_NonPositiveRequest(t *testing.T) {
	c := NewClientWithService(&mockCollectorService{}, "smc_remote")
	if _, err := c.Collect(0); !errors.Is(err, stream.ErrCollectionFailed) {
		t.Fatalf("expected ErrCollectionFailed, got %v", err)
	}
}

// #endregion collect-tests

// #region list-sources-tests
func TestListSources_Success(t *testing.T) {
	mock := &mockCollectorService{
		listResp: &pb.ListSourcesResponse{
			Sources: []*pb.SourceInfo{
				{Name: "smc_temp", Description: "SMC temperature LSBs", Cost: "costly"},
				{Name: "smc_fan", Description: "fan tach LSBs", Cost: "costly"},
			},
		},
	}
	c := NewClientWithService(mock, "smc_remote")

	sources, err := c.ListSources(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sources) != 2 {
		t.Fatalf("expected 2 sources, got %d", len(sources))
	}
	if sources[0].Name != "smc_temp" || sources[0].Cost != "costly" {
		t.Fatalf("unexpected source %+v", sources[0])
	}
}

func TestListSources_Error(t *testing.T) {
	mock := &mockCollectorService{
		listErr: errors.New("list failed"),
	}
	c := NewClientWithService(mock, "smc_remote")

	if _, err := c.ListSources(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}

// #endregion list-sources-tests
