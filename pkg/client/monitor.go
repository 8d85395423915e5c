package client

import (
	"context"
	"time"

	"google.golang.org/grpc"

	pb "github.com/taskmesh/protokit/api/gen/taskmonitor"
	"github.com/taskmesh/protokit/pkg/config"
	"github.com/taskmesh/protokit/pkg/errors"
	"github.com/taskmesh/protokit/pkg/logger"
)

// MonitorClient wraps the generated Monitor stub for one monitor node.
type MonitorClient struct {
	caller      string
	monitor     pb.MonitorClient
	conn        *grpc.ClientConn
	callTimeout time.Duration
	log         *logger.Logger
}

// NewMonitorClient creates a monitor façade for the given node.
func NewMonitorClient(caller string, node *config.Node, opts ...grpc.DialOption) (*MonitorClient, error) {
	conn, err := dial(node, opts...)
	if err != nil {
		return nil, err
	}

	return &MonitorClient{
		caller:      caller,
		monitor:     pb.NewMonitorClient(conn),
		conn:        conn,
		callTimeout: node.CallTimeout,
		log:         logger.New().WithFields("component", "monitor-client", "caller", caller),
	}, nil
}

func (c *MonitorClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// ReportTaskStatus reports the calling service's view of a task's status.
func (c *MonitorClient) ReportTaskStatus(ctx context.Context, taskID, status string) error {
	ctx, cancel := callContext(ctx, c.callTimeout)
	defer cancel()

	req := &pb.ReportTaskStatusRequest{
		TaskId:      taskID,
		ServiceName: c.caller,
		Status:      status,
	}

	resp, err := c.monitor.ReportTaskStatus(ctx, req)
	if err != nil {
		return err
	}
	if err := c.checkResponse("reportTaskStatus", taskID, resp.GetResponse()); err != nil {
		return err
	}

	c.log.Info("reported task status", "taskId", taskID, "status", status)
	return nil
}

// GetTaskStatus returns the monitor's current status for a task.
func (c *MonitorClient) GetTaskStatus(ctx context.Context, taskID string) (string, error) {
	ctx, cancel := callContext(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.monitor.GetTaskStatus(ctx, &pb.GetTaskStatusRequest{TaskId: taskID})
	if err != nil {
		return "", err
	}
	if err := c.checkResponse("getTaskStatus", taskID, resp.GetResponse()); err != nil {
		return "", err
	}

	return resp.GetStatus(), nil
}

func (c *MonitorClient) checkResponse(operation, taskID string, resp *pb.Response) error {
	if resp.GetCode() == okCode {
		return nil
	}
	return &errors.RemoteError{
		Service:   "monitor",
		Caller:    c.caller,
		Operation: operation,
		TaskID:    taskID,
		Code:      resp.GetCode(),
		Message:   resp.GetMessage(),
	}
}
