package lightning

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrClosed is returned by calls issued after the transport was closed.
var ErrClosed = errors.New("lightning rpc transport closed")

// RPCError is a JSON-RPC error object returned by the node.
type RPCError struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// AsRPCError returns the node error wrapped in err, if any.
func AsRPCError(err error) (*RPCError, bool) {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr, true
	}
	return nil, false
}
