// Package peerswap exposes the peerswap plugin methods of a Core Lightning node.
//
// Results are returned as raw JSON so callers can forward them without
// reshaping what the plugin produced.
package peerswap

import (
	"context"
	"encoding/json"

	"peerswap-api/internal/client/lightning"
)

// RPC method names registered by the peerswap plugin.
const (
	MethodReloadPolicy      = "peerswap-reloadpolicy"
	MethodGetSwap           = "peerswap-getswap"
	MethodListSwaps         = "peerswap-listswaps"
	MethodListActiveSwaps   = "peerswap-listactiveswaps"
	MethodListSwapRequests  = "peerswap-listswaprequests"
	MethodListPeers         = "peerswap-listpeers"
	MethodAllowSwapRequests = "peerswap-allowswaprequests"
	MethodAddPeer           = "peerswap-addpeer"
	MethodRemovePeer        = "peerswap-removepeer"
	MethodResendMessage     = "peerswap-resendmsg"
	MethodSwapIn            = "peerswap-swap-in"
	MethodSwapOut           = "peerswap-swap-out"
)

//go:generate mockgen -destination=../mocks/mock_peerswap_client.go -package=mocks peerswap-api/internal/peerswap Client

// Client is the peerswap RPC surface.
type Client interface {
	ReloadPolicy(ctx context.Context) (json.RawMessage, error)
	GetSwap(ctx context.Context, swapID string) (json.RawMessage, error)
	ListSwaps(ctx context.Context) (json.RawMessage, error)
	ListActiveSwaps(ctx context.Context) (json.RawMessage, error)
	ListSwapRequests(ctx context.Context) (json.RawMessage, error)
	ListPeers(ctx context.Context) (json.RawMessage, error)
	AllowSwapRequests(ctx context.Context, isAllowed string) (json.RawMessage, error)
	AddPeer(ctx context.Context, pubkey string) (json.RawMessage, error)
	RemovePeer(ctx context.Context, pubkey string) (json.RawMessage, error)
	ResendMessage(ctx context.Context, swapID string) (json.RawMessage, error)
	SwapIn(ctx context.Context, amountSats json.RawMessage, shortChannelID string, asset string) (json.RawMessage, error)
	SwapOut(ctx context.Context, amountSats json.RawMessage, shortChannelID string, asset string) (json.RawMessage, error)
}

// RPCClient implements Client on top of a lightning.Caller. Arguments are
// sent positionally in the order the plugin declares them.
type RPCClient struct {
	caller lightning.Caller
}

// NewRPCClient returns a Client issuing calls through caller.
func NewRPCClient(caller lightning.Caller) *RPCClient {
	return &RPCClient{caller: caller}
}

var _ Client = (*RPCClient)(nil)

func (c *RPCClient) ReloadPolicy(ctx context.Context) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodReloadPolicy, nil)
}

func (c *RPCClient) GetSwap(ctx context.Context, swapID string) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodGetSwap, []interface{}{swapID})
}

func (c *RPCClient) ListSwaps(ctx context.Context) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodListSwaps, nil)
}

func (c *RPCClient) ListActiveSwaps(ctx context.Context) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodListActiveSwaps, nil)
}

func (c *RPCClient) ListSwapRequests(ctx context.Context) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodListSwapRequests, nil)
}

func (c *RPCClient) ListPeers(ctx context.Context) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodListPeers, nil)
}

func (c *RPCClient) AllowSwapRequests(ctx context.Context, isAllowed string) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodAllowSwapRequests, []interface{}{isAllowed})
}

func (c *RPCClient) AddPeer(ctx context.Context, pubkey string) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodAddPeer, []interface{}{pubkey})
}

func (c *RPCClient) RemovePeer(ctx context.Context, pubkey string) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodRemovePeer, []interface{}{pubkey})
}

func (c *RPCClient) ResendMessage(ctx context.Context, swapID string) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodResendMessage, []interface{}{swapID})
}

func (c *RPCClient) SwapIn(ctx context.Context, amountSats json.RawMessage, shortChannelID string, asset string) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodSwapIn, []interface{}{amountSats, shortChannelID, asset})
}

func (c *RPCClient) SwapOut(ctx context.Context, amountSats json.RawMessage, shortChannelID string, asset string) (json.RawMessage, error) {
	return c.caller.Call(ctx, MethodSwapOut, []interface{}{amountSats, shortChannelID, asset})
}
