// Package lightning talks JSON-RPC to a Core Lightning node, either over its
// lightning-rpc unix socket or through the clnrest plugin.
package lightning

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Caller issues a single RPC method call and returns the raw result.
type Caller interface {
	Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error)
}

// Transport is a Caller owning a connection that must be released.
type Transport interface {
	Caller
	Close() error
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout bounds every call. Zero means the caller's context is the only bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for per-call debug entries.
func WithLogger(log *zap.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// Client adds timeouts, logging and error context on top of a Transport.
// It is safe for concurrent use when the transport is.
type Client struct {
	transport Transport
	timeout   time.Duration
	log       *zap.Logger
}

// NewClient wraps transport.
func NewClient(transport Transport, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Call invokes method with params. Node errors are returned as *RPCError,
// wrapped with the method name.
func (c *Client) Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	result, err := c.transport.Call(ctx, method, params)
	duration := time.Since(start)

	if err != nil {
		c.log.Debug("rpc call failed",
			zap.String("method", method),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, errors.Wrap(err, method)
	}

	c.log.Debug("rpc call succeeded",
		zap.String("method", method),
		zap.Duration("duration", duration),
		zap.Int("result_size", len(result)),
	)
	return result, nil
}

// Close releases the underlying transport.
func (c *Client) Close() error {
	return c.transport.Close()
}

// positional turns nil params into an empty array, which every
// Core Lightning transport accepts.
func positional(params interface{}) interface{} {
	if params == nil {
		return []interface{}{}
	}
	return params
}
