package main

import (
	"os"
	"os/signal"
	"syscall"

	"peerswap-api/internal/config"
	"peerswap-api/internal/helpers"
	"peerswap-api/internal/logger"
	"peerswap-api/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API (default)",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(settings)
	if err != nil {
		return err
	}

	logger.InitLoggerWithConfig(logger.Config{
		Level:       cfg.LogLevel,
		Stage:       cfg.Stage,
		EnableColor: cfg.Stage != helpers.StageProd,
	})
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.Bootstrap(ctx, cfg, logger.Log)
	if err != nil {
		logger.Error("Failed to initialize server", zap.Error(err))
		return err
	}

	return srv.Run(ctx)
}
