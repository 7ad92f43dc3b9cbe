package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Error kinds, comparable with errors.Is.
var (
	ErrValidation       = errors.New("validation error")
	ErrNotFound         = errors.New("not found")
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// Error is a request failure reported to the client as {"error": Message}.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func validationError(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func notFoundError(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps a handler error to the HTTP status and client message.
func statusFor(err error) (int, string) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch {
		case errors.Is(apiErr.Kind, ErrValidation):
			return http.StatusBadRequest, apiErr.Message
		case errors.Is(apiErr.Kind, ErrNotFound):
			return http.StatusNotFound, apiErr.Message
		case errors.Is(apiErr.Kind, ErrMethodNotAllowed):
			return http.StatusMethodNotAllowed, apiErr.Message
		}
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.Code {
		case http.StatusMethodNotAllowed:
			return httpErr.Code, "Method not allowed"
		case http.StatusNotFound:
			return httpErr.Code, "Not found"
		}
		if msg, ok := httpErr.Message.(string); ok {
			return httpErr.Code, msg
		}
		return httpErr.Code, http.StatusText(httpErr.Code)
	}

	return http.StatusInternalServerError, "Internal server error"
}

// handleError is installed as echo's HTTPErrorHandler.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, msg := statusFor(err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).Msg("request failed")
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, errorResponse{Error: msg})
	}
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to write error response")
	}
}
