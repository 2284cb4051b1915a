package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"irisform/config"
	qhttp "irisform/http"
	"irisform/logging"
	"irisform/ml"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP form server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
}

func runServe(ctx context.Context, opts *rootOptions) error {
	// 1. Load config
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.debug {
		cfg.Debug = true
	}

	logger := logging.New(cfg.Log, cfg.Debug)
	defer func() { _ = logger.Sync() }()

	// 2. Load model once; the handler only reads it
	handle, err := ml.OpenHandle(cfg.Model.Path)
	if err != nil {
		logger.Error("failed to load model", zap.String("path", cfg.Model.Path), zap.Error(err))
		return err
	}
	logger.Info("model loaded", zap.String("path", handle.Path()))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.Model.Watch {
		go func() {
			if err := handle.Watch(ctx, logger); err != nil {
				logger.Warn("model watcher stopped", zap.Error(err))
			}
		}()
	}

	// 3. Start HTTP server
	server := qhttp.NewServer(qhttp.ServerConfig{
		Port:         cfg.Http.Port,
		Timeout:      cfg.Http.Timeout,
		MaxFormBytes: cfg.Http.MaxFormBytes,
	}, qhttp.NewHandler(ml.NewAdapter(handle), logger), logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	// 4. Handle graceful shutdown
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	if err := server.Stop(); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}
	logger.Info("exiting")
	return nil
}
