// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/project-votes/cliparse"
	"github.com/danielhkuo/project-votes/kv"
	"github.com/danielhkuo/project-votes/logging"
	"github.com/danielhkuo/project-votes/middleware"
	"github.com/danielhkuo/project-votes/router"
	"github.com/danielhkuo/project-votes/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to the substrate
	substrate, err := kv.Open(ctx, cfg.StoreOptions())
	if err != nil {
		slog.Error("store connection failed", "backend", cfg.Backend, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := substrate.Close(); err != nil {
			slog.Error("store close failed", "error", err)
		}
	}()
	slog.Info("Store ready", "backend", cfg.Backend)

	st := store.New(substrate)

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(router.NewRouter(st, cfg)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// ListenAndServe returns as soon as Shutdown starts; drained waits for
	// in-flight requests before the store is closed.
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		// Wait for Ctrl-C or SIGTERM
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("graceful shutdown failed", "error", err)
			server.Close()
		}
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
		return
	}
	<-drained
	slog.Info("Server closed")
}
