package lightning

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRESTTransport_Call(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "test-rune", r.Header.Get(RuneHeader))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		switch r.URL.Path {
		case "/v1/peerswap-addpeer":
			assert.JSONEq(t, `["02abcdef"]`, string(body))
			_, _ = w.Write([]byte(`{"reserve_onchain_msat":2000000,"peer_allowlist":["02abcdef"],"accept_all_peers":false}`))
		case "/v1/peerswap-listswaps":
			assert.JSONEq(t, `[]`, string(body))
			_, _ = w.Write([]byte(`[]`))
		case "/v1/peerswap-getswap":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"code":-1,"message":"swap not found"}`))
		case "/v1/peerswap-resendmsg":
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":{"code":-32602,"message":"missing swap_id"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`not found`))
		}
	}))
	defer server.Close()

	transport := NewRESTTransport(server.URL, "test-rune")
	ctx := context.Background()

	t.Run("result is passed through", func(t *testing.T) {
		result, err := transport.Call(ctx, "peerswap-addpeer", []interface{}{"02abcdef"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"reserve_onchain_msat":2000000,"peer_allowlist":["02abcdef"],"accept_all_peers":false}`, string(result))
	})

	t.Run("nil params post an empty array", func(t *testing.T) {
		result, err := transport.Call(ctx, "peerswap-listswaps", nil)
		require.NoError(t, err)
		assert.Equal(t, json.RawMessage(`[]`), result)
	})

	t.Run("bare rpc error body", func(t *testing.T) {
		_, err := transport.Call(ctx, "peerswap-getswap", []interface{}{"abc"})
		rpcErr, ok := AsRPCError(err)
		require.True(t, ok)
		assert.Equal(t, -1, rpcErr.Code)
		assert.Equal(t, "swap not found", rpcErr.Message)
	})

	t.Run("nested rpc error body", func(t *testing.T) {
		_, err := transport.Call(ctx, "peerswap-resendmsg", []interface{}{""})
		rpcErr, ok := AsRPCError(err)
		require.True(t, ok)
		assert.Equal(t, -32602, rpcErr.Code)
	})

	t.Run("non rpc failure keeps http error", func(t *testing.T) {
		_, err := transport.Call(ctx, "unknown", nil)
		require.Error(t, err)
		_, ok := AsRPCError(err)
		assert.False(t, ok)
		assert.Contains(t, err.Error(), "clnrest")
		assert.Contains(t, err.Error(), "404")
	})

	assert.NoError(t, transport.Close())
}
