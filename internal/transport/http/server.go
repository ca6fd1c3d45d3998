package http

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"

	"github.com/light-bringer/catalog-service/internal/telemetry"
	"github.com/light-bringer/catalog-service/internal/transport/http/middleware"
	"github.com/light-bringer/catalog-service/internal/transport/http/product"
)

// Server is the HTTP boundary adapter in front of the product service.
type Server struct {
	router    *chi.Mux
	handler   *product.Handler
	logger    *logrus.Logger
	telemetry *telemetry.Telemetry
	srv       *http.Server
}

// NewServer creates a new HTTP server on the given port.
func NewServer(port string, handler *product.Handler, logger *logrus.Logger, telem *telemetry.Telemetry) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		handler:   handler,
		logger:    logger,
		telemetry: telem,
	}

	s.setupMiddleware()
	s.setupRoutes()

	s.srv = &http.Server{
		Addr:    ":" + port,
		Handler: s.instrumented(),
	}

	return s
}

// setupMiddleware configures the middleware chain.
func (s *Server) setupMiddleware() {
	s.router.Use(chimiddleware.RequestID)
	s.router.Use(chimiddleware.Recoverer)
	s.router.Use(middleware.RequestLogger(s.logger))
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.Route("/api/v1", func(r chi.Router) {
		s.handler.RegisterRoutes(r)
	})

	// Health check endpoint
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Prometheus metrics endpoint
	s.router.Get("/metrics", promhttp.HandlerFor(s.telemetry.Registry, promhttp.HandlerOpts{}).ServeHTTP)
}

// instrumented wraps the router with otelhttp so request duration and size
// metrics flow into the meter provider, tagged with the chi route pattern.
func (s *Server) instrumented() http.Handler {
	return otelhttp.NewHandler(s.router, "http-server",
		otelhttp.WithMeterProvider(s.telemetry.MeterProvider),
		otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
			return fmt.Sprintf("%s %s", r.Method, r.URL.Path)
		}),
		otelhttp.WithMetricAttributesFn(func(r *http.Request) []attribute.KeyValue {
			routePattern := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil {
				if pattern := rctx.RoutePattern(); pattern != "" {
					routePattern = pattern
				}
			}
			return []attribute.KeyValue{
				attribute.String("http.route", routePattern),
			}
		}),
	)
}

// Start starts the HTTP server and blocks until it stops.
func (s *Server) Start() error {
	s.logger.Infof("HTTP server listening on %s", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown stops the server, draining in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
