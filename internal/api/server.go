// Package api configures and exposes the debug HTTP server of the scanner:
// Prometheus metrics, pprof and the v1 status/control and capture journal
// routes.
package api

import (
	"fmt"
	"net/http"
	"time"

	"codescanner/internal/api/handler/v1handler"
	"codescanner/internal/config"
	"codescanner/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Options holds configuration for the HTTP server. It is typically created
// from a config.Config via NewOptions.
type Options struct {
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
	// RequestTimeout bounds a single request via http.TimeoutHandler. It
	// does not apply to pprof, whose profiles run for a requested duration.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// CORSOrigins are the origins allowed to call the API; empty allows any.
	CORSOrigins []string
}

// NewOptions maps the HTTP settings of config.Config to Options.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		CORSOrigins:       cfg.HTTP.CORSOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// Gatherer serves the metrics endpoint. Defaults to prometheus.DefaultGatherer.
	Gatherer prometheus.Gatherer
}

// NewMeterProvider returns an OpenTelemetry meter provider whose instruments
// are exported to reg, and so served on the metrics endpoint when reg is the
// Gatherer passed to NewServer.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewHandler builds the routes:
// - Prometheus metrics endpoint (MetricsPath)
// - v1 status, control and capture routes
// - pprof endpoints for profiling
// wrapped with CORS and logging middlewares.
func NewHandler(deps Deps, opts Options) http.Handler {
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	metricsPath := opts.MetricsPath
	if metricsPath == "" {
		metricsPath = "/metrics"
	}

	api := http.NewServeMux()
	api.Handle(metricsPath, promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	v1handler.New(deps.Deps).Register(api, "/v1")

	var apiHandler http.Handler = api
	if opts.RequestTimeout > 0 {
		apiHandler = http.TimeoutHandler(api, opts.RequestTimeout, `{"error":{"kind":"UNAVAILABLE","message":"request timed out"}}`)
	}

	mux := http.NewServeMux()
	mux.Handle("/debug/pprof/", controller.PprofMux("/debug/pprof/"))
	mux.Handle("/", apiHandler)

	handler := controller.WithCORS(opts.CORSOrigins...)(mux)

	return controller.WithLogger(handler)
}

// NewServer wires up and returns a configured *http.Server.
func NewServer(deps Deps, opts Options) *http.Server {
	return &http.Server{
		Addr:              opts.Addr,
		Handler:           NewHandler(deps, opts),
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}
}
