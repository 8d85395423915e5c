package client

import (
	"context"
	"time"

	"google.golang.org/grpc"

	pb "github.com/taskmesh/protokit/api/gen/servicecoordinator"
	"github.com/taskmesh/protokit/pkg/config"
	"github.com/taskmesh/protokit/pkg/errors"
	"github.com/taskmesh/protokit/pkg/logger"
)

// PreviousService identifies the upstream service in a pipeline handoff.
type PreviousService struct {
	Name string
	IP   string
	Port string
}

// CoordinatorClient wraps the generated Communicate stub for one
// coordinator node. One connection is held for the lifetime of the client;
// the owner releases it with Close.
type CoordinatorClient struct {
	caller      string
	comm        pb.CommunicateClient
	conn        *grpc.ClientConn
	callTimeout time.Duration
	log         *logger.Logger
}

// NewCoordinatorClient creates a coordinator façade. caller is the name of
// the consuming service; it is carried into remote errors so an operator
// can tell which service a failed handoff belonged to.
func NewCoordinatorClient(caller string, node *config.Node, opts ...grpc.DialOption) (*CoordinatorClient, error) {
	conn, err := dial(node, opts...)
	if err != nil {
		return nil, err
	}

	return &CoordinatorClient{
		caller:      caller,
		comm:        pb.NewCommunicateClient(conn),
		conn:        conn,
		callTimeout: node.CallTimeout,
		log:         logger.New().WithFields("component", "coordinator-client", "caller", caller),
	}, nil
}

func (c *CoordinatorClient) Close() error {
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// InformPreviousServiceInfo tells the coordinator where a task's upstream
// service lives, together with any extra handoff arguments.
func (c *CoordinatorClient) InformPreviousServiceInfo(ctx context.Context, taskID string, prev PreviousService, args map[string]string) error {
	ctx, cancel := callContext(ctx, c.callTimeout)
	defer cancel()

	req := &pb.InformPreviousServiceInfoRequest{
		TaskId:         taskID,
		PreServiceName: prev.Name,
		PreServiceIp:   prev.IP,
		PreServicePort: prev.Port,
		Args:           toArguments(args),
	}

	resp, err := c.comm.InformPreviousServiceInfo(ctx, req)
	if err != nil {
		return err
	}
	if err := c.checkResponse("informPreviousServiceInfo", taskID, resp.GetResponse()); err != nil {
		return err
	}

	c.log.Info("informed previous service info", "taskId", taskID, "preService", prev.Name)
	return nil
}

// InformCurrentServiceInfo reports the calling service's state for a task
// and returns any output arguments the coordinator hands back, such as
// dynamically generated configuration.
func (c *CoordinatorClient) InformCurrentServiceInfo(ctx context.Context, taskID string, args map[string]string) (map[string]string, error) {
	ctx, cancel := callContext(ctx, c.callTimeout)
	defer cancel()

	req := &pb.InformCurrentServiceInfoRequest{
		TaskId: taskID,
		Args:   toArguments(args),
	}

	resp, err := c.comm.InformCurrentServiceInfo(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := c.checkResponse("informCurrentServiceInfo", taskID, resp.GetResponse()); err != nil {
		return nil, err
	}

	c.log.Info("informed current service info", "taskId", taskID)
	return fromArguments(resp.GetArgs()), nil
}

// Start asks the coordinator to start the given task.
func (c *CoordinatorClient) Start(ctx context.Context, taskID string) error {
	ctx, cancel := callContext(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.comm.Start(ctx, &pb.StartRequest{TaskId: taskID})
	if err != nil {
		return err
	}
	if err := c.checkResponse("start", taskID, resp.GetResponse()); err != nil {
		return err
	}

	c.log.Info("started task", "taskId", taskID)
	return nil
}

// Stop asks the coordinator to stop the given task.
func (c *CoordinatorClient) Stop(ctx context.Context, taskID string) error {
	ctx, cancel := callContext(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.comm.Stop(ctx, &pb.StopRequest{TaskId: taskID})
	if err != nil {
		return err
	}
	if err := c.checkResponse("stop", taskID, resp.GetResponse()); err != nil {
		return err
	}

	c.log.Info("stopped task", "taskId", taskID)
	return nil
}

func (c *CoordinatorClient) checkResponse(operation, taskID string, resp *pb.Response) error {
	if resp.GetCode() == okCode {
		return nil
	}
	return &errors.RemoteError{
		Service:   "coordinator",
		Caller:    c.caller,
		Operation: operation,
		TaskID:    taskID,
		Code:      resp.GetCode(),
		Message:   resp.GetMessage(),
	}
}

func toArguments(args map[string]string) []*pb.Argument {
	if len(args) == 0 {
		return nil
	}
	out := make([]*pb.Argument, 0, len(args))
	for key, value := range args {
		out = append(out, &pb.Argument{Key: key, Value: value})
	}
	return out
}

func fromArguments(args []*pb.Argument) map[string]string {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		out[arg.GetKey()] = arg.GetValue()
	}
	return out
}
