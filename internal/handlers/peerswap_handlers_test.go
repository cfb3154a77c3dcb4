package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"peerswap-api/internal/client/lightning"
	"peerswap-api/internal/middleware"
	"peerswap-api/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func setupPeerswapRouter(t *testing.T) (*gin.Engine, *mocks.MockClient, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := mocks.NewMockClientForTest(t)
	core, logs := observer.New(zapcore.DebugLevel)
	handler := NewPeerswapHandler(client, zap.New(core))

	router := gin.New()
	router.Use(middleware.CorrelationIDMiddleware())
	handler.RegisterRoutes(router.Group("/v1/peerswap"))
	return router, client, logs
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type operationCase struct {
	name   string
	method string
	path   string
	body   string
	// expect registers the single client call the route must make
	expect func(m *mocks.MockClientMockRecorder) *gomock.Call
	result string
	// expectedBody defaults to result
	expectedBody string
}

var operationCases = []operationCase{
	{
		name:   "reloadPolicy",
		method: http.MethodGet,
		path:   "/v1/peerswap/reloadPolicy",
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.ReloadPolicy(gomock.Any())
		},
		result: `{"reserve_onchain_msat":2000000,"peer_allowlist":["02aa"],"accept_all_peers":false}`,
	},
	{
		name:   "getSwap",
		method: http.MethodGet,
		path:   "/v1/peerswap/swap/abc",
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.GetSwap(gomock.Any(), "abc")
		},
		result: `{"id":"abc","state":"State_ClaimedPreimage","amount":50000}`,
	},
	{
		name:   "listSwaps",
		method: http.MethodGet,
		path:   "/v1/peerswap/listSwaps",
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.ListSwaps(gomock.Any())
		},
		result: `[{"id":"abc"},{"id":"def"}]`,
	},
	{
		name:   "listActiveSwaps",
		method: http.MethodGet,
		path:   "/v1/peerswap/listActiveSwaps",
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.ListActiveSwaps(gomock.Any())
		},
		result: `[{"id":"abc","state":"State_SwapOutSender_AwaitTxConfirmation"}]`,
	},
	{
		name:   "listSwapRequests",
		method: http.MethodGet,
		path:   "/v1/peerswap/listSwapRequests",
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.ListSwapRequests(gomock.Any())
		},
		result: `[{"node_id":"02aa","requests":{"swap-in":{"btc":{"total":1}}}}]`,
	},
	{
		name:   "listPeers",
		method: http.MethodGet,
		path:   "/v1/peerswap/listPeers",
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.ListPeers(gomock.Any())
		},
		result: `[{"nodeid":"02aa","swaps_allowed":true,"supported_assets":["btc","lbtc"],"channels":[],"total_fee_paid":0}]`,
	},
	{
		name:   "allowSwapRequests",
		method: http.MethodGet,
		path:   "/v1/peerswap/allowSwapRequests/false",
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.AllowSwapRequests(gomock.Any(), "false")
		},
		result: `"swaps are now denied"`,
	},
	{
		name:   "addPeer",
		method: http.MethodGet,
		path:   "/v1/peerswap/addPeer/02aa",
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.AddPeer(gomock.Any(), "02aa")
		},
		result: `{"peer_allowlist":["02aa"],"accept_all_peers":false}`,
	},
	{
		name:   "removePeer",
		method: http.MethodGet,
		path:   "/v1/peerswap/removePeer/02aa",
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.RemovePeer(gomock.Any(), "02aa")
		},
		result: `{"peer_allowlist":[],"accept_all_peers":false}`,
	},
	{
		name:   "resendMessage",
		method: http.MethodGet,
		path:   "/v1/peerswap/resendMessage/abc",
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.ResendMessage(gomock.Any(), "abc")
		},
		result:       `{}`,
		expectedBody: `true`,
	},
	{
		name:   "swapIn",
		method: http.MethodPost,
		path:   "/v1/peerswap/swapIn",
		body:   `{"amountSats":50000,"shortChannelId":"123x1x0","asset":"btc"}`,
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.SwapIn(gomock.Any(), json.RawMessage("50000"), "123x1x0", "btc")
		},
		result: `{"id":"abc","type":"swap-in","amount":50000}`,
	},
	{
		name:   "swapOut",
		method: http.MethodPost,
		path:   "/v1/peerswap/swapOut",
		body:   `{"amountSats":100000,"shortChannelId":"700x2x1","asset":"lbtc"}`,
		expect: func(m *mocks.MockClientMockRecorder) *gomock.Call {
			return m.SwapOut(gomock.Any(), json.RawMessage("100000"), "700x2x1", "lbtc")
		},
		result: `{"id":"def","type":"swap-out","amount":100000}`,
	},
}

func TestPeerswapHandler_Success(t *testing.T) {
	for _, tt := range operationCases {
		t.Run(tt.name, func(t *testing.T) {
			router, client, logs := setupPeerswapRouter(t)
			tt.expect(client.EXPECT()).Return(json.RawMessage(tt.result), nil).Times(1)

			w := doRequest(router, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusOK, w.Code)
			expected := tt.expectedBody
			if expected == "" {
				expected = tt.result
			}
			assert.JSONEq(t, expected, w.Body.String())

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, zapcore.InfoLevel, entry.Level)
			assert.Equal(t, tt.name, entry.ContextMap()["operation"])
		})
	}
}

func TestPeerswapHandler_Failure(t *testing.T) {
	for _, tt := range operationCases {
		t.Run(tt.name, func(t *testing.T) {
			router, client, logs := setupPeerswapRouter(t)
			tt.expect(client.EXPECT()).Return(nil, errors.New("node unreachable")).Times(1)

			w := doRequest(router, tt.method, tt.path, tt.body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":"node unreachable"}`, w.Body.String())

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, zapcore.WarnLevel, entry.Level)
			assert.Equal(t, tt.name, entry.ContextMap()["operation"])
			assert.Equal(t, "node unreachable", entry.ContextMap()["error"])
		})
	}
}

func TestPeerswapHandler_NodeErrorObject(t *testing.T) {
	router, client, _ := setupPeerswapRouter(t)
	rpcErr := &lightning.RPCError{
		Code:    -1,
		Message: "swap abc not found",
		Data:    json.RawMessage(`{"swap_id":"abc"}`),
	}
	client.EXPECT().GetSwap(gomock.Any(), "abc").
		Return(nil, fmt.Errorf("peerswap-getswap: %w", rpcErr))

	w := doRequest(router, http.MethodGet, "/v1/peerswap/swap/abc", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t,
		`{"error":{"code":-1,"message":"swap abc not found","data":{"swap_id":"abc"}}}`,
		w.Body.String())
}

func TestPeerswapHandler_ParameterExtraction(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		expect func(m *mocks.MockClientMockRecorder) *gomock.Call
	}{
		{
			name:   "swap id from query",
			path:   "/v1/peerswap/swap?swapId=xyz",
			expect: func(m *mocks.MockClientMockRecorder) *gomock.Call { return m.GetSwap(gomock.Any(), "xyz") },
		},
		{
			name:   "route parameter wins over query",
			path:   "/v1/peerswap/swap/fromPath?swapId=fromQuery",
			expect: func(m *mocks.MockClientMockRecorder) *gomock.Call { return m.GetSwap(gomock.Any(), "fromPath") },
		},
		{
			name:   "missing parameter forwarded as empty string",
			path:   "/v1/peerswap/swap",
			expect: func(m *mocks.MockClientMockRecorder) *gomock.Call { return m.GetSwap(gomock.Any(), "") },
		},
		{
			name:   "allow flag from query is not interpreted",
			path:   "/v1/peerswap/allowSwapRequests?isAllowed=yes",
			expect: func(m *mocks.MockClientMockRecorder) *gomock.Call { return m.AllowSwapRequests(gomock.Any(), "yes") },
		},
		{
			name:   "pubkey from query",
			path:   "/v1/peerswap/addPeer?pubkey=03bb",
			expect: func(m *mocks.MockClientMockRecorder) *gomock.Call { return m.AddPeer(gomock.Any(), "03bb") },
		},
		{
			name:   "remove pubkey from query",
			path:   "/v1/peerswap/removePeer?pubkey=03bb",
			expect: func(m *mocks.MockClientMockRecorder) *gomock.Call { return m.RemovePeer(gomock.Any(), "03bb") },
		},
		{
			name:   "resend swap id from query",
			path:   "/v1/peerswap/resendMessage?swapId=xyz",
			expect: func(m *mocks.MockClientMockRecorder) *gomock.Call { return m.ResendMessage(gomock.Any(), "xyz") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, client, _ := setupPeerswapRouter(t)
			tt.expect(client.EXPECT()).Return(json.RawMessage(`{}`), nil).Times(1)

			w := doRequest(router, http.MethodGet, tt.path, "")
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestPeerswapHandler_ListSwapsEmpty(t *testing.T) {
	router, client, _ := setupPeerswapRouter(t)
	client.EXPECT().ListSwaps(gomock.Any()).Return(json.RawMessage(`[]`), nil)

	w := doRequest(router, http.MethodGet, "/v1/peerswap/listSwaps", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `[]`, w.Body.String())
}

func TestPeerswapHandler_SwapInEchoesNodeRecord(t *testing.T) {
	router, client, _ := setupPeerswapRouter(t)
	client.EXPECT().SwapIn(gomock.Any(), json.RawMessage("50000"), "123x1x0", "btc").
		DoAndReturn(func(_ context.Context, amountSats json.RawMessage, shortChannelID, asset string) (json.RawMessage, error) {
			return json.Marshal(map[string]interface{}{
				"amt_sat":          amountSats,
				"short_channel_id": shortChannelID,
				"asset":            asset,
			})
		})

	w := doRequest(router, http.MethodPost, "/v1/peerswap/swapIn",
		`{"amountSats":50000,"shortChannelId":"123x1x0","asset":"btc"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"amt_sat":50000,"short_channel_id":"123x1x0","asset":"btc"}`, w.Body.String())
}

func TestPeerswapHandler_GetSwapNotFound(t *testing.T) {
	router, client, logs := setupPeerswapRouter(t)
	client.EXPECT().GetSwap(gomock.Any(), "abc").Return(nil, errors.New("not found"))

	w := doRequest(router, http.MethodGet, "/v1/peerswap/swap?swapId=abc", "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "abc", logs.All()[0].ContextMap()["swap_id"])
}

func TestPeerswapHandler_MalformedSwapBody(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{name: "swapIn invalid json", path: "/v1/peerswap/swapIn", body: `{"amountSats":`},
		{name: "swapOut invalid json", path: "/v1/peerswap/swapOut", body: `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: any client call fails the test
			router, _, logs := setupPeerswapRouter(t)

			w := doRequest(router, http.MethodPost, tt.path, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp["error"])

			require.Equal(t, 1, logs.Len())
			assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
		})
	}
}

func TestPeerswapHandler_SwapAmountForwardedAsSent(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		amount string
		expect func(m *mocks.MockClientMockRecorder, amount json.RawMessage) *gomock.Call
	}{
		{
			name:   "swapIn numeric string",
			path:   "/v1/peerswap/swapIn",
			amount: `"50000"`,
			expect: func(m *mocks.MockClientMockRecorder, amount json.RawMessage) *gomock.Call {
				return m.SwapIn(gomock.Any(), amount, "123x1x0", "btc")
			},
		},
		{
			name:   "swapIn negative",
			path:   "/v1/peerswap/swapIn",
			amount: `-1`,
			expect: func(m *mocks.MockClientMockRecorder, amount json.RawMessage) *gomock.Call {
				return m.SwapIn(gomock.Any(), amount, "123x1x0", "btc")
			},
		},
		{
			name:   "swapOut fractional",
			path:   "/v1/peerswap/swapOut",
			amount: `50000.0`,
			expect: func(m *mocks.MockClientMockRecorder, amount json.RawMessage) *gomock.Call {
				return m.SwapOut(gomock.Any(), amount, "123x1x0", "btc")
			},
		},
		{
			name:   "swapOut non-numeric string",
			path:   "/v1/peerswap/swapOut",
			amount: `"lots"`,
			expect: func(m *mocks.MockClientMockRecorder, amount json.RawMessage) *gomock.Call {
				return m.SwapOut(gomock.Any(), amount, "123x1x0", "btc")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, client, logs := setupPeerswapRouter(t)
			nodeErr := &lightning.RPCError{Code: -1, Message: "amount invalid"}
			tt.expect(client.EXPECT(), json.RawMessage(tt.amount)).Return(nil, nodeErr)

			w := doRequest(router, http.MethodPost, tt.path,
				`{"amountSats":`+tt.amount+`,"shortChannelId":"123x1x0","asset":"btc"}`)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"error":{"code":-1,"message":"amount invalid"}}`, w.Body.String())
			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tt.amount, logs.All()[0].ContextMap()["amount_sats"])
		})
	}
}

func TestPeerswapHandler_LogsCorrelationID(t *testing.T) {
	router, client, logs := setupPeerswapRouter(t)
	client.EXPECT().ListPeers(gomock.Any()).Return(json.RawMessage(`[]`), nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/peerswap/listPeers", nil)
	req.Header.Set(middleware.CorrelationIDHeader, "corr-42")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "corr-42", logs.All()[0].ContextMap()["correlation_id"])
}
