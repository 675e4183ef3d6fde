// Package main starts the development server that hosts the sign-up page
// and its WASM bundle.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/vcrobe/passwordcheck/internal/config"
	"github.com/vcrobe/passwordcheck/internal/logger"
	"github.com/vcrobe/passwordcheck/internal/server"
)

func main() {
	log := logger.New()

	options, err := config.Parse(os.Args[1:], os.Getenv)
	if err != nil {
		// The logger is not configured yet; fall back to zap's development defaults.
		zap.NewExample().Fatal("invalid configuration", zap.Error(err))
	}

	if err := log.Init(options.LogLevel); err != nil {
		zap.NewExample().Fatal("failed to init logger", zap.Error(err))
	}
	defer func() { _ = log.Log.Sync() }()
	zapLogger := log.Log

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	router, err := server.NewRouter(options, zapLogger, reg)
	if err != nil {
		zapLogger.Fatal("cannot build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              options.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		zapLogger.Info("dev server listening",
			zap.String("addr", options.Addr),
			zap.String("static_dir", options.StaticDir),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("graceful shutdown failed", zap.Error(err))
	}
	zapLogger.Info("dev server stopped")
}
