// Package server provides the dev server's HTTP routes: the host page, the
// WASM bundle and operational endpoints.
package server

import (
	"fmt"
	"mime"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/vcrobe/passwordcheck/internal/config"
	"github.com/vcrobe/passwordcheck/internal/middleware"
)

// NewRouter constructs the dev server handler.
//
// Routes:
//
//	GET /          → host page with the mount element
//	GET /static/*  → files from options.StaticDir
//	GET /healthz   → liveness probe
//	GET /metrics   → Prometheus metrics from reg
func NewRouter(options *config.Options, logger *zap.Logger, reg *prometheus.Registry) (http.Handler, error) {
	// Some platforms have no mime entry for .wasm, and
	// instantiateStreaming refuses anything but application/wasm.
	if err := mime.AddExtensionType(".wasm", "application/wasm"); err != nil {
		return nil, fmt.Errorf("register wasm mime type: %w", err)
	}

	page, err := renderIndex(options.MountID)
	if err != nil {
		return nil, err
	}

	metrics := middleware.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(chiMiddleware.Recoverer)
	r.Use(metrics.Handler)

	r.Get("/", indexHandler(page))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	static := http.StripPrefix("/static/", http.FileServer(http.Dir(filepath.Clean(options.StaticDir))))
	r.Get("/static/*", static.ServeHTTP)

	return r, nil
}
