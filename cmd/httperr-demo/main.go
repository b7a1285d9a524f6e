// SPDX-FileCopyrightText: Copyright 2025 Stacklok, Inc.
// SPDX-License-Identifier: Apache-2.0

// Command httperr-demo serves a small item API whose handlers report failures
// as httperr values and render them through the recovery boundary.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/stacklok/toolhive-httperr/config"
	"github.com/stacklok/toolhive-httperr/env"
	"github.com/stacklok/toolhive-httperr/httperr"
	"github.com/stacklok/toolhive-httperr/logger"
	"github.com/stacklok/toolhive-httperr/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "", "path to the YAML config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "httperr-demo: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	envReader := &env.OSReader{}

	cfg, err := config.Load(configPath, envReader)
	if err != nil {
		return err
	}

	zl, err := logger.New(envReader, cfg)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = zl.Sync() }()
	zap.ReplaceGlobals(zl)

	log, err := newErrorLogger(cfg, zl)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Address,
		Handler:           newRouter(log, newStore()),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		zl.Sugar().Infof("listening on %s", cfg.Address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	zl.Sugar().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newErrorLogger picks the sink the recovery boundary logs to.
func newErrorLogger(cfg config.Config, zl *zap.Logger) (httperr.Logger, error) {
	switch cfg.Log.Backend {
	case config.BackendSlog:
		format, err := logging.ParseFormat(cfg.Log.Format)
		if err != nil {
			return nil, err
		}
		level, err := logging.ParseLevel(cfg.Log.Level)
		if err != nil {
			return nil, err
		}
		return logging.ErrorfLogger{Logger: logging.New(logging.WithFormat(format), logging.WithLevel(level))}, nil
	case config.BackendLogr:
		return logger.ErrorLogr{Logger: logger.NewLogr(zl)}, nil
	default:
		return zl.Sugar(), nil
	}
}
