package client

import (
	"context"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/test/bufconn"

	pb "github.com/taskmesh/protokit/api/gen/taskmonitor"
	"github.com/taskmesh/protokit/pkg/config"
	"github.com/taskmesh/protokit/pkg/errors"
)

type fakeMonitor struct {
	pb.UnimplementedMonitorServer

	mu       sync.Mutex
	statuses map[string]string

	code    int32 // 0 means 200
	message string
}

func (f *fakeMonitor) response() *pb.Response {
	code := f.code
	if code == 0 {
		code = 200
	}
	return &pb.Response{Code: code, Message: f.message}
}

func (f *fakeMonitor) ReportTaskStatus(_ context.Context, req *pb.ReportTaskStatusRequest) (*pb.ReportTaskStatusResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statuses == nil {
		f.statuses = make(map[string]string)
	}
	f.statuses[req.GetTaskId()] = req.GetServiceName() + ":" + req.GetStatus()
	return &pb.ReportTaskStatusResponse{Response: f.response()}, nil
}

func (f *fakeMonitor) GetTaskStatus(_ context.Context, req *pb.GetTaskStatusRequest) (*pb.GetTaskStatusResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return &pb.GetTaskStatusResponse{
		Response: f.response(),
		Status:   f.statuses[req.GetTaskId()],
	}, nil
}

func newMonitorFixture(t *testing.T, fake *fakeMonitor) *MonitorClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpc.NewServer()
	pb.RegisterMonitorServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	node := &config.Node{
		Address:     "passthrough:///bufnet",
		CallTimeout: 5 * time.Second,
	}
	dialer := grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
		return lis.DialContext(ctx)
	})

	c, err := NewMonitorClient("worker-b", node, dialer)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestMonitorReportAndGetStatus(t *testing.T) {
	fake := &fakeMonitor{}
	c := newMonitorFixture(t, fake)

	require.NoError(t, c.ReportTaskStatus(context.Background(), "task-7", "running"))

	status, err := c.GetTaskStatus(context.Background(), "task-7")
	require.NoError(t, err)
	// the fake records which service reported the status
	assert.Equal(t, "worker-b:running", status)
}

func TestMonitorNonOKCodeIsRemoteError(t *testing.T) {
	fake := &fakeMonitor{code: 404, message: "unknown task"}
	c := newMonitorFixture(t, fake)

	_, err := c.GetTaskStatus(context.Background(), "task-nope")
	require.Error(t, err)

	re, ok := errors.AsRemoteError(err)
	require.True(t, ok, "expected a remote error, got %v", err)
	assert.Equal(t, "monitor", re.Service)
	assert.Equal(t, "worker-b", re.Caller)
	assert.Equal(t, "getTaskStatus", re.Operation)
	assert.Equal(t, int32(404), re.Code)
}
