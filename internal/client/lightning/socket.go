package lightning

import (
	"context"
	"encoding/json"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DialFunc opens a connection to the node's RPC socket.
type DialFunc func(ctx context.Context, path string) (net.Conn, error)

// SocketOption configures a SocketTransport.
type SocketOption func(*SocketTransport)

// WithDialer replaces the unix socket dialer.
func WithDialer(dial DialFunc) SocketOption {
	return func(t *SocketTransport) {
		t.dial = dial
	}
}

// WithDialBackoff sets the policy used while (re)connecting. Only the
// connection attempt is retried, never a request that was written.
func WithDialBackoff(newBackOff func() backoff.BackOff) SocketOption {
	return func(t *SocketTransport) {
		t.newBackOff = newBackOff
	}
}

// WithSocketLogger sets the logger for connection lifecycle events.
func WithSocketLogger(log *zap.Logger) SocketOption {
	return func(t *SocketTransport) {
		t.log = log
	}
}

type rpcRequest struct {
	JSONRPC string      `json:"jsonrpc"`
	ID      uint64      `json:"id"`
	Method  string      `json:"method"`
	Params  interface{} `json:"params"`
}

type rpcResponse struct {
	ID     *uint64         `json:"id"`
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

type callResult struct {
	result json.RawMessage
	err    error
}

// rpcConn is one socket connection and the calls waiting on it.
type rpcConn struct {
	conn    net.Conn
	writeMu sync.Mutex
	pending map[uint64]chan callResult
}

// SocketTransport speaks JSON-RPC 2.0 over the lightning-rpc unix socket.
// Requests share one connection and are matched to responses by id. The
// connection is opened lazily and reopened on the next call after it drops.
type SocketTransport struct {
	path       string
	dial       DialFunc
	newBackOff func() backoff.BackOff
	log        *zap.Logger

	counter uint64

	mu      sync.Mutex
	current *rpcConn
	dialing chan struct{} // closed when the dial in progress finishes
	closed  bool
}

// NewSocketTransport returns a transport for the socket at path. No
// connection is made until the first call.
func NewSocketTransport(path string, opts ...SocketOption) *SocketTransport {
	t := &SocketTransport{
		path: path,
		dial: func(ctx context.Context, path string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "unix", path)
		},
		newBackOff: defaultDialBackOff,
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func defaultDialBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 100 * time.Millisecond
	b.MaxInterval = time.Second
	b.MaxElapsedTime = 5 * time.Second
	return backoff.WithMaxRetries(b, 3)
}

// Call implements Caller.
func (t *SocketTransport) Call(ctx context.Context, method string, params interface{}) (json.RawMessage, error) {
	rc, err := t.connection(ctx)
	if err != nil {
		return nil, err
	}

	id := atomic.AddUint64(&t.counter, 1)
	payload, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		ID:      id,
		Method:  method,
		Params:  positional(params),
	})
	if err != nil {
		return nil, errors.Wrap(err, "encode request")
	}

	ch := make(chan callResult, 1)
	if !t.register(rc, id, ch) {
		return nil, errors.New("lightning-rpc connection lost")
	}

	rc.writeMu.Lock()
	_, err = rc.conn.Write(payload)
	rc.writeMu.Unlock()
	if err != nil {
		t.unregister(rc, id)
		t.drop(rc, err)
		return nil, errors.Wrap(err, "write request")
	}

	select {
	case res := <-ch:
		return res.result, res.err
	case <-ctx.Done():
		t.unregister(rc, id)
		return nil, ctx.Err()
	}
}

// Close closes the connection and fails calls still in flight.
func (t *SocketTransport) Close() error {
	t.mu.Lock()
	t.closed = true
	rc := t.current
	t.current = nil
	t.mu.Unlock()

	if rc == nil {
		return nil
	}
	t.failPending(rc, ErrClosed)
	return rc.conn.Close()
}

// connection returns the live connection, dialing one if needed. Only one
// caller dials at a time; the others wait for it or for their own ctx.
func (t *SocketTransport) connection(ctx context.Context) (*rpcConn, error) {
	for {
		t.mu.Lock()
		if t.closed {
			t.mu.Unlock()
			return nil, ErrClosed
		}
		if rc := t.current; rc != nil {
			t.mu.Unlock()
			return rc, nil
		}
		if wait := t.dialing; wait != nil {
			t.mu.Unlock()
			select {
			case <-wait:
				continue
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		done := make(chan struct{})
		t.dialing = done
		t.mu.Unlock()

		rc, err := t.open(ctx)

		t.mu.Lock()
		t.dialing = nil
		if err == nil {
			if t.closed {
				_ = rc.conn.Close()
				rc, err = nil, ErrClosed
			} else {
				t.current = rc
			}
		}
		t.mu.Unlock()
		close(done)

		if err != nil {
			return nil, err
		}
		go t.readLoop(rc)
		t.log.Debug("connected to lightning-rpc", zap.String("path", t.path))
		return rc, nil
	}
}

// open dials the socket, retrying per the dial backoff.
func (t *SocketTransport) open(ctx context.Context) (*rpcConn, error) {
	var conn net.Conn
	operation := func() error {
		var err error
		conn, err = t.dial(ctx, t.path)
		return err
	}
	notify := func(err error, wait time.Duration) {
		t.log.Debug("lightning-rpc dial failed, retrying",
			zap.String("path", t.path),
			zap.Duration("wait", wait),
			zap.Error(err),
		)
	}
	if err := backoff.RetryNotify(operation, backoff.WithContext(t.newBackOff(), ctx), notify); err != nil {
		return nil, errors.Wrapf(err, "dial %s", t.path)
	}

	return &rpcConn{
		conn:    conn,
		pending: make(map[uint64]chan callResult),
	}, nil
}

func (t *SocketTransport) readLoop(rc *rpcConn) {
	dec := json.NewDecoder(rc.conn)
	for {
		var resp rpcResponse
		if err := dec.Decode(&resp); err != nil {
			t.drop(rc, err)
			return
		}
		if resp.ID == nil {
			// notifications carry no id
			continue
		}

		t.mu.Lock()
		ch := rc.pending[*resp.ID]
		delete(rc.pending, *resp.ID)
		t.mu.Unlock()

		if ch == nil {
			continue
		}
		if resp.Error != nil {
			ch <- callResult{err: resp.Error}
			continue
		}
		ch <- callResult{result: resp.Result}
	}
}

func (t *SocketTransport) register(rc *rpcConn, id uint64, ch chan callResult) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if rc.pending == nil {
		return false
	}
	rc.pending[id] = ch
	return true
}

func (t *SocketTransport) unregister(rc *rpcConn, id uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(rc.pending, id)
}

// drop forgets rc as the current connection and fails its pending calls.
func (t *SocketTransport) drop(rc *rpcConn, cause error) {
	t.mu.Lock()
	if t.current == rc {
		t.current = nil
	}
	closed := t.closed
	t.mu.Unlock()

	if closed {
		cause = ErrClosed
	} else {
		t.log.Debug("lightning-rpc connection lost", zap.String("path", t.path), zap.Error(cause))
	}
	t.failPending(rc, errors.Wrap(cause, "lightning-rpc connection lost"))
	_ = rc.conn.Close()
}

func (t *SocketTransport) failPending(rc *rpcConn, err error) {
	t.mu.Lock()
	pending := rc.pending
	rc.pending = nil
	t.mu.Unlock()

	for _, ch := range pending {
		ch <- callResult{err: err}
	}
}
