// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the term resolver service.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"terms/internal/api/handler/v1handler"
	"terms/internal/config"
	"terms/pkg/controller"
	"terms/pkg/logger"
	"terms/pkg/metrics"
	"terms/pkg/resolver"
	"terms/pkg/storage"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
type Options struct {
	// SecHandlerOptions configures bearer authentication. A nil value or an
	// empty public key serves the API without authentication.
	SecHandlerOptions *v1handler.SecHandlerOptions

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins restricts CORS; empty allows every origin.
	AllowedOrigins []string
	// Registry collects and serves the metrics. Nil means the prometheus default registry.
	Registry *prometheus.Registry
}

// NewOptions maps the HTTP related settings of cfg to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		SecHandlerOptions: v1handler.NewSecHandlerOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

// Deps are the services the server exposes.
type Deps struct {
	// Storage is the term repository resolutions read from.
	Storage storage.TermStorage
	// Classes selects the domain type of each taxonomy.
	Classes resolver.ClassMapProvider
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus) feeding the resolver metrics
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes, behind bearer authentication when a public key is configured
// - pprof endpoints for profiling
// It also wraps the mux with CORS and logging middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	mux := http.NewServeMux()

	// prometheus metrics server
	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	metricsHandler := promhttp.Handler()
	if opts.Registry != nil {
		registerer = opts.Registry
		metricsHandler = promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})
	}
	mux.Handle(opts.MetricsPath, metricsHandler)

	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(registerer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	recorder, err := metrics.NewRecorder(mp)
	if err != nil {
		return nil, fmt.Errorf("could not create resolver metrics: %w", err)
	}

	// v1 specs file
	mux.HandleFunc("GET /specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	mux.Handle("/v1/docs/", v5emb.New(
		"Term Resolver",
		"/specs/v1.yaml",
		"/v1/docs/",
	))

	// v1 api
	h := v1handler.New(v1handler.Deps{
		Resolver: resolver.New(deps.Storage, resolver.Options{
			Classes: deps.Classes,
			Metrics: recorder,
		}),
	})
	var resolve http.Handler = http.HandlerFunc(h.Resolve)
	if opts.SecHandlerOptions != nil && opts.SecHandlerOptions.PublicKey != "" {
		secHandler, err := v1handler.NewSecHandler(opts.SecHandlerOptions)
		if err != nil {
			return nil, fmt.Errorf("could not create sec handler: %w", err)
		}
		resolve = controller.WithBearerAuth(secHandler)(resolve)
	} else {
		logger.Warn(ctx, "no JWT public key configured, v1 api is served without authentication")
	}
	mux.Handle("POST /v1/terms/resolve", resolve)

	// pprof
	mux.Handle("/debug/pprof/", controller.PprofMux("/debug/pprof/"))

	// cors
	handler := controller.WithCORS(opts.AllowedOrigins...)(mux)

	// logger
	handler = controller.WithLogger(handler)

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           http.TimeoutHandler(handler, opts.RequestTimeout, `{"error":{"code":"INTERNAL","message":"request timed out"}}`),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
