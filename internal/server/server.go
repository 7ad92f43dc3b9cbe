// Package server exposes the carbon calculators over HTTP JSON.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/solarwise/solarwise-carbon/internal/config"
	"github.com/solarwise/solarwise-carbon/internal/emissions"
)

// Server serves the calculator API backed by a read-only emission factor store.
type Server struct {
	echo    *echo.Echo
	store   *emissions.Store
	logger  zerolog.Logger
	metrics *metrics
}

// New builds a Server with all routes and middleware registered.
func New(store *emissions.Store, cfg config.Config, logger zerolog.Logger) *Server {
	s := &Server{
		echo:    echo.New(),
		store:   store,
		logger:  logger,
		metrics: newMetrics(),
	}

	e := s.echo
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.HTTPErrorHandler = s.handleError

	e.Use(middleware.Recover())
	e.Use(s.requestLogger)
	e.Use(s.metrics.middleware)
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderContentType, RequestIDHeader},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.echo.Group("/api")
	api.POST("/avoidance", s.handleAvoidance)
	api.GET("/offset-countries", s.handleOffsetCountries)
	api.POST("/offset", s.handleOffset)
	api.GET("/country-intensity", s.handleCountryIntensity)
	api.POST("/footprint", s.handleFootprint)
	api.POST("/footprint/simple", s.handleSimpleFootprint)
	api.POST("/offset-options", s.handleOffsetOptions)
	api.GET("/factors", s.handleFactors)

	s.echo.GET("/healthz", s.handleHealth)
	s.echo.GET("/metrics", s.metrics.handler())
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}

// Start listens on addr and blocks until the server stops. A graceful
// Shutdown makes Start return nil.
func (s *Server) Start(addr string) error {
	s.logger.Info().
		Str("addr", addr).
		Int("countries", s.store.Len()).
		Msg("http server listening")

	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}
