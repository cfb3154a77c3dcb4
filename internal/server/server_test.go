package server

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"peerswap-api/internal/auth"
	"peerswap-api/internal/client/lightning"
	"peerswap-api/internal/config"
	"peerswap-api/internal/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		Stage:          "local",
		Port:           "0",
		LogLevel:       "info",
		LnTransport:    config.TransportSocket,
		LnRPCPath:      "/tmp/lightning-rpc",
		MacaroonDir:    "certs",
		CORSOrigins:    []string{"*"},
		RateLimitRPS:   50,
		RateLimitBurst: 100,
	}
}

func newTestServer(t *testing.T, cfg *config.Config, verifier auth.Verifier) (*Server, *mocks.MockClient) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client := mocks.NewMockClientForTest(t)
	srv, err := New(cfg, Deps{Peerswap: client, Verifier: verifier})
	require.NoError(t, err)
	t.Cleanup(srv.Close)
	return srv, client
}

func serve(srv *Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)
	return w
}

func TestNew_RequiresVerifierUnlessAuthDisabled(t *testing.T) {
	client := mocks.NewMockClientForTest(t)

	_, err := New(testConfig(), Deps{Peerswap: client})
	assert.Error(t, err)

	cfg := testConfig()
	cfg.AuthDisabled = true
	srv, err := New(cfg, Deps{Peerswap: client})
	require.NoError(t, err)
	srv.Close()

	_, err = New(cfg, Deps{})
	assert.Error(t, err)
}

func TestServer_Health(t *testing.T) {
	srv, _ := newTestServer(t, testConfig(), nil)
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","stage":"local"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
}

func TestServer_PeerswapRoutesRequireMacaroon(t *testing.T) {
	store, err := auth.LoadOrCreate(t.TempDir(), nil)
	require.NoError(t, err)
	access, err := store.AccessMacaroon()
	require.NoError(t, err)

	srv, client := newTestServer(t, testConfig(), store)
	client.EXPECT().ListPeers(gomock.Any()).Return(json.RawMessage(`[]`), nil).Times(2)

	for _, prefix := range []string{"/v1/peerswap", "/peerswap"} {
		t.Run(prefix, func(t *testing.T) {
			w := serve(srv, httptest.NewRequest(http.MethodGet, prefix+"/listPeers", nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)

			req := httptest.NewRequest(http.MethodGet, prefix+"/listPeers", nil)
			req.Header.Set(auth.MacaroonHeader, hex.EncodeToString(access))
			w = serve(srv, req)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, `[]`, w.Body.String())
		})
	}
}

func TestServer_AuthDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.AuthDisabled = true
	srv, client := newTestServer(t, cfg, nil)
	client.EXPECT().GetSwap(gomock.Any(), "abc").Return(nil, errors.New("not found"))

	w := serve(srv, httptest.NewRequest(http.MethodGet, "/peerswap/swap?swapId=abc", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"not found"}`, w.Body.String())
}

func TestServer_CORSPreflight(t *testing.T) {
	cfg := testConfig()
	cfg.CORSOrigins = []string{"http://localhost:3000"}
	srv, _ := newTestServer(t, cfg, nil)

	req := httptest.NewRequest(http.MethodOptions, "/v1/peerswap/swapIn", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "macaroon,content-type")
	w := serve(srv, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_SwaggerDoc(t *testing.T) {
	srv, _ := newTestServer(t, testConfig(), nil)
	w := serve(srv, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/peerswap/swapIn")
	assert.Contains(t, w.Body.String(), "MacaroonAuth")
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	cfg := testConfig()
	cfg.AuthDisabled = true
	gin.SetMode(gin.TestMode)

	closed := false
	srv, err := New(cfg, Deps{
		Peerswap: mocks.NewMockClientForTest(t),
		Closers:  []func() error{func() error { closed = true; return nil }},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, srv.Run(ctx))
	assert.True(t, closed)
}

type fakeSecrets struct {
	value string
	err   error
	arn   string
}

func (f *fakeSecrets) GetSecretString(ctx context.Context, secretArn string, fallbackValue string) (string, error) {
	f.arn = secretArn
	if f.err != nil {
		return "", f.err
	}
	return f.value, nil
}

func TestNewTransport(t *testing.T) {
	ctx := context.Background()

	t.Run("socket", func(t *testing.T) {
		transport, err := NewTransport(ctx, testConfig(), nil, zap.NewNop())
		require.NoError(t, err)
		defer transport.Close()
		assert.IsType(t, &lightning.SocketTransport{}, transport)
	})

	t.Run("rest with plain rune", func(t *testing.T) {
		cfg := testConfig()
		cfg.LnTransport = config.TransportREST
		cfg.LnRESTURL = "https://localhost:3010"
		cfg.LnRune = "rune-value"

		transport, err := NewTransport(ctx, cfg, nil, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &lightning.RESTTransport{}, transport)
	})

	t.Run("rest with rune from secrets", func(t *testing.T) {
		cfg := testConfig()
		cfg.LnTransport = config.TransportREST
		cfg.LnRESTURL = "https://localhost:3010"
		cfg.LnRuneSecretARN = "arn:aws:secretsmanager:us-east-1:123:secret:rune"
		secrets := &fakeSecrets{value: "secret-rune"}

		_, err := NewTransport(ctx, cfg, secrets, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, cfg.LnRuneSecretARN, secrets.arn)
	})

	t.Run("rest without rune", func(t *testing.T) {
		cfg := testConfig()
		cfg.LnTransport = config.TransportREST
		cfg.LnRESTURL = "https://localhost:3010"

		_, err := NewTransport(ctx, cfg, nil, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("secret lookup failure", func(t *testing.T) {
		cfg := testConfig()
		cfg.LnTransport = config.TransportREST
		cfg.LnRESTURL = "https://localhost:3010"
		cfg.LnRuneSecretARN = "arn:aws:secretsmanager:us-east-1:123:secret:rune"

		_, err := NewTransport(ctx, cfg, &fakeSecrets{err: errors.New("access denied")}, zap.NewNop())
		assert.ErrorContains(t, err, "access denied")
	})

	t.Run("rest with self-signed certificate", func(t *testing.T) {
		node := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/getinfo", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"02abc"}`))
		}))
		defer node.Close()

		cfg := testConfig()
		cfg.LnTransport = config.TransportREST
		cfg.LnRESTURL = node.URL
		cfg.LnRune = "rune-value"

		strict, err := NewTransport(ctx, cfg, nil, zap.NewNop())
		require.NoError(t, err)
		_, err = strict.Call(ctx, "getinfo", nil)
		assert.Error(t, err)

		cfg.LnRESTInsecureTLS = true
		insecure, err := NewTransport(ctx, cfg, nil, zap.NewNop())
		require.NoError(t, err)
		result, err := insecure.Call(ctx, "getinfo", nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"02abc"}`, string(result))
	})
}

func TestBootstrap_CreatesMacaroons(t *testing.T) {
	cfg := testConfig()
	cfg.MacaroonDir = t.TempDir()
	gin.SetMode(gin.TestMode)

	srv, err := Bootstrap(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer srv.Close()

	_, err = auth.LoadOrCreate(cfg.MacaroonDir, nil)
	assert.NoError(t, err)
	assert.FileExists(t, cfg.MacaroonDir+"/"+auth.AccessMacaroonFile)
}
