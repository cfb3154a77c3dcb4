package server

import (
	"context"
	"fmt"

	"peerswap-api/internal/auth"
	clientaws "peerswap-api/internal/client/aws"
	clienthttp "peerswap-api/internal/client/http"
	"peerswap-api/internal/client/lightning"
	"peerswap-api/internal/config"
	"peerswap-api/internal/peerswap"

	"go.uber.org/zap"
)

// SecretGetter resolves a secret by ARN, falling back to a plain value.
type SecretGetter interface {
	GetSecretString(ctx context.Context, secretArn string, fallbackValue string) (string, error)
}

// NewTransport opens the configured route to the node. secrets is only
// consulted for the REST transport when a rune secret ARN is set.
func NewTransport(ctx context.Context, cfg *config.Config, secrets SecretGetter, log *zap.Logger) (lightning.Transport, error) {
	switch cfg.LnTransport {
	case config.TransportSocket:
		log.Info("Using lightning-rpc socket", zap.String("path", cfg.LnRPCPath))
		return lightning.NewSocketTransport(cfg.LnRPCPath, lightning.WithSocketLogger(log)), nil

	case config.TransportREST:
		accessRune := cfg.LnRune
		if cfg.LnRuneSecretARN != "" {
			if secrets == nil {
				return nil, fmt.Errorf("ln_rune_secret_arn is set but no secrets client is available")
			}
			var err error
			accessRune, err = secrets.GetSecretString(ctx, cfg.LnRuneSecretARN, cfg.LnRune)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve rune: %w", err)
			}
		}
		if accessRune == "" {
			return nil, fmt.Errorf("a rune is required for the %s transport", config.TransportREST)
		}

		opts := []clienthttp.ClientOption{}
		if cfg.LnRESTRetries > 0 {
			retry := clienthttp.DefaultRetryConfig()
			retry.MaxRetries = cfg.LnRESTRetries
			opts = append(opts, clienthttp.WithRetryConfig(retry))
		}
		if cfg.LnRESTInsecureTLS {
			log.Warn("TLS certificate verification disabled for clnrest")
			opts = append(opts, clienthttp.WithInsecureTLS())
		}
		log.Info("Using clnrest", zap.String("url", cfg.LnRESTURL))
		return lightning.NewRESTTransport(cfg.LnRESTURL, accessRune, opts...), nil

	default:
		return nil, fmt.Errorf("unknown ln_transport %q", cfg.LnTransport)
	}
}

// Bootstrap wires the node client, the macaroon store and the HTTP server
// from cfg.
func Bootstrap(ctx context.Context, cfg *config.Config, log *zap.Logger) (*Server, error) {
	var secrets SecretGetter
	if cfg.LnTransport == config.TransportREST && cfg.LnRuneSecretARN != "" {
		sm, err := clientaws.NewSecretsManagerClient(ctx)
		if err != nil {
			return nil, err
		}
		secrets = sm
	}

	transport, err := NewTransport(ctx, cfg, secrets, log.Named("lightning"))
	if err != nil {
		return nil, err
	}
	node := lightning.NewClient(transport,
		lightning.WithTimeout(cfg.LnRPCTimeout),
		lightning.WithLogger(log.Named("lightning")),
	)

	deps := Deps{
		Peerswap: peerswap.NewRPCClient(node),
		Node:     node,
		Log:      log,
		Closers:  []func() error{node.Close},
	}

	if !cfg.AuthDisabled {
		store, err := auth.LoadOrCreate(cfg.MacaroonDir, log.Named("auth"))
		if err != nil {
			_ = node.Close()
			return nil, err
		}
		deps.Verifier = store
	}

	srv, err := New(cfg, deps)
	if err != nil {
		_ = node.Close()
		return nil, err
	}
	return srv, nil
}
