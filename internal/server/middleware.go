package server

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDHeader carries the trace id in both directions.
const RequestIDHeader = "X-Request-ID"

// traceIDFromRequest returns the caller's request id or generates a UUID.
func traceIDFromRequest(c echo.Context) string {
	if id := c.Request().Header.Get(RequestIDHeader); id != "" {
		return id
	}
	return uuid.New().String()
}

// requestLogger attaches a request-scoped logger carrying trace_id to the
// request context and writes one access log line per request.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		traceID := traceIDFromRequest(c)
		c.Response().Header().Set(RequestIDHeader, traceID)

		logger := s.logger.With().Str("trace_id", traceID).Logger()
		req := c.Request()
		c.SetRequest(req.WithContext(logger.WithContext(req.Context())))

		err := next(c)

		status := c.Response().Status
		if err != nil {
			status, _ = statusFor(err)
		}
		logger.Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request handled")
		return err
	}
}
