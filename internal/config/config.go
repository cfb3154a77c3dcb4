// Package config loads the service configuration from the environment,
// an optional .env file and an optional peerswap-api.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"peerswap-api/internal/helpers"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Transport names accepted for LnTransport.
const (
	TransportSocket = "socket"
	TransportREST   = "rest"
)

// EnvPrefix is prepended to every environment variable, e.g. PEERSWAP_API_PORT.
const EnvPrefix = "PEERSWAP_API"

// Config holds the application configuration
type Config struct {
	Stage    string
	Port     string
	LogLevel string

	LnTransport       string
	LnRPCPath         string
	LnRESTURL         string
	LnRune            string
	LnRuneSecretARN   string
	LnRPCTimeout      time.Duration
	LnRESTRetries     int
	LnRESTInsecureTLS bool

	MacaroonDir  string
	AuthDisabled bool

	CORSOrigins    []string
	RateLimitRPS   int
	RateLimitBurst int
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()

	v.SetDefault("stage", helpers.StageLocal)
	v.SetDefault("port", "3001")
	v.SetDefault("log_level", "info")
	v.SetDefault("ln_transport", TransportSocket)
	v.SetDefault("ln_rpc_path", filepath.Join(home, ".lightning", "bitcoin", "lightning-rpc"))
	v.SetDefault("ln_rest_url", "")
	v.SetDefault("ln_rune", "")
	v.SetDefault("ln_rune_secret_arn", "")
	v.SetDefault("ln_rpc_timeout", "0s")
	v.SetDefault("ln_rest_retries", 0)
	v.SetDefault("ln_rest_insecure_tls", false)
	v.SetDefault("macaroon_dir", "certs")
	v.SetDefault("auth_disabled", false)
	v.SetDefault("cors_origins", "*")
	v.SetDefault("rate_limit_rps", 50)
	v.SetDefault("rate_limit_burst", 100)
}

// New returns a viper instance wired to the environment and the optional config file.
func New() *viper.Viper {
	v := viper.New()
	v.SetConfigName("peerswap-api")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.peerswap-api")

	SetDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads .env (if present) and the optional config file, then decodes v.
func Load(v *viper.Viper) (*Config, error) {
	// Missing .env is fine, the environment may already be populated
	_ = godotenv.Load()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return FromViper(v)
}

// FromViper builds and validates a Config from already populated settings.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Stage:             v.GetString("stage"),
		Port:              v.GetString("port"),
		LogLevel:          v.GetString("log_level"),
		LnTransport:       strings.ToLower(v.GetString("ln_transport")),
		LnRPCPath:         v.GetString("ln_rpc_path"),
		LnRESTURL:         v.GetString("ln_rest_url"),
		LnRune:            v.GetString("ln_rune"),
		LnRuneSecretARN:   v.GetString("ln_rune_secret_arn"),
		LnRPCTimeout:      v.GetDuration("ln_rpc_timeout"),
		LnRESTRetries:     v.GetInt("ln_rest_retries"),
		LnRESTInsecureTLS: v.GetBool("ln_rest_insecure_tls"),
		MacaroonDir:       v.GetString("macaroon_dir"),
		AuthDisabled:      v.GetBool("auth_disabled"),
		CORSOrigins:       stringList(v, "cors_origins"),
		RateLimitRPS:      v.GetInt("rate_limit_rps"),
		RateLimitBurst:    v.GetInt("rate_limit_burst"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for values the server cannot start with.
func (c *Config) Validate() error {
	if !helpers.IsValidStage(c.Stage) {
		return fmt.Errorf("invalid stage %q", c.Stage)
	}
	if c.Port == "" {
		return fmt.Errorf("port is required")
	}

	switch c.LnTransport {
	case TransportSocket:
		if c.LnRPCPath == "" {
			return fmt.Errorf("ln_rpc_path is required for the %s transport", TransportSocket)
		}
	case TransportREST:
		if c.LnRESTURL == "" {
			return fmt.Errorf("ln_rest_url is required for the %s transport", TransportREST)
		}
	default:
		return fmt.Errorf("unknown ln_transport %q", c.LnTransport)
	}

	if c.LnRPCTimeout < 0 {
		return fmt.Errorf("ln_rpc_timeout must not be negative")
	}
	if c.LnRESTRetries < 0 {
		return fmt.Errorf("ln_rest_retries must not be negative")
	}
	if !c.AuthDisabled && c.MacaroonDir == "" {
		return fmt.Errorf("macaroon_dir is required unless auth is disabled")
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return fmt.Errorf("rate limits must not be negative")
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// stringList accepts both a YAML list and a comma separated env value.
func stringList(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		out = append(out, splitList(item)...)
	}
	return out
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
