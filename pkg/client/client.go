// Package client provides thin per-module façades over the generated gRPC
// stubs. A façade bundles one long-lived connection with one module's stub
// and translates simplified argument forms into the generated request
// shapes. Transport and status errors from the underlying calls propagate
// unmodified; application-level response codes other than 200 are surfaced
// as typed remote errors.
package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/taskmesh/protokit/pkg/config"
	"github.com/taskmesh/protokit/pkg/errors"
)

// okCode is the application-level success code used by the coordinator and
// monitor services.
const okCode = 200

// dial builds the connection a façade holds for its lifetime. Connection
// establishment is lazy, so an unreachable target surfaces on the first
// call, not here.
func dial(node *config.Node, opts ...grpc.DialOption) (*grpc.ClientConn, error) {
	if node == nil {
		return nil, errors.WrapConfigError("client", "node",
			fmt.Errorf("node configuration cannot be nil"))
	}

	tlsConfig, err := node.TLSConfig()
	if err != nil {
		return nil, err
	}

	creds := insecure.NewCredentials()
	if tlsConfig != nil {
		creds = credentials.NewTLS(tlsConfig)
	}

	dialOpts := []grpc.DialOption{grpc.WithTransportCredentials(creds)}
	if node.WaitForReady {
		dialOpts = append(dialOpts, grpc.WithDefaultCallOptions(grpc.WaitForReady(true)))
	}
	dialOpts = append(dialOpts, opts...)

	conn, err := grpc.NewClient(node.Address, dialOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create channel to %s: %w", node.Address, err)
	}
	return conn, nil
}

// callContext applies the node's call timeout when the caller's context
// carries no deadline of its own.
func callContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}
