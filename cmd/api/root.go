package main

import (
	"fmt"
	"os"
	"strings"

	"peerswap-api/internal/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var version = "dev"

// settings is shared by every command; flags are bound onto it in init.
var settings = config.New()

var rootCmd = &cobra.Command{
	Use:   "peerswap-api",
	Short: "REST API for the peerswap plugin of a Core Lightning node",
	Long: `peerswap-api exposes the peerswap plugin of a Core Lightning node over HTTP.

Requests are authenticated with a macaroon generated on first start and
forwarded to the node over its lightning-rpc socket or the clnrest plugin.

Examples:
  peerswap-api
  peerswap-api serve --port 3001 --ln-rpc-path ~/.lightning/bitcoin/lightning-rpc
  peerswap-api macaroon --base64`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	return err
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("stage", "", "Runtime stage: local, dev or prod")
	flags.String("port", "", "HTTP listen port")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.String("ln-transport", "", "How to reach the node: socket or rest")
	flags.String("ln-rpc-path", "", "Path to the lightning-rpc unix socket")
	flags.String("ln-rest-url", "", "Base URL of the clnrest plugin")
	flags.String("macaroon-dir", "", "Directory holding rootKey.key and access.macaroon")
	flags.Bool("auth-disabled", false, "Serve without macaroon authentication")

	for _, name := range []string{
		"stage", "port", "log-level", "ln-transport", "ln-rpc-path",
		"ln-rest-url", "macaroon-dir", "auth-disabled",
	} {
		if err := settings.BindPFlag(flagKey(name), flags.Lookup(name)); err != nil {
			panic(err)
		}
	}

	rootCmd.AddCommand(serveCmd, macaroonCmd)
}

// flagKey maps a flag name to its configuration key.
func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "\n%s %v\n\n", color.RedString("Error:"), err)
}
