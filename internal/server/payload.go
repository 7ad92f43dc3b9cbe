package server

import (
	"bytes"
	"errors"
	"io"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
)

// maxBodyBytes caps request bodies; every payload here is a handful of numbers.
const maxBodyBytes = 1 << 20

// payload is a decoded JSON object body. Keeping it untyped lets handlers
// tell "missing" from "present but not a number".
type payload map[string]any

func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxBodyBytes))
	if err != nil {
		return nil, validationError("Failed to read request body")
	}
	return body, nil
}

// decodePayload reads a JSON object body. An empty body decodes to an empty payload.
func decodePayload(c echo.Context) (payload, error) {
	body, err := readBody(c)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return payload{}, nil
	}

	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, validationError("Invalid JSON body")
	}
	if p == nil {
		p = payload{}
	}
	return p, nil
}

// decodeInto strictly decodes a JSON body into v.
func decodeInto(c echo.Context, v any) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return validationError("Invalid input: " + typeErr.Field + " has the wrong type")
		}
		return validationError("Invalid JSON body")
	}
	return nil
}

// number returns the value at key if it is a JSON number.
func (p payload) number(key string) (float64, bool) {
	v, ok := p[key].(float64)
	return v, ok
}

// str returns the value at key if it is a non-empty JSON string.
func (p payload) str(key string) (string, bool) {
	v, ok := p[key].(string)
	return v, ok && v != ""
}

// jsonSerializer routes echo's JSON rendering through goccy/go-json.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i any, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i any) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return validationError("Invalid JSON body")
	}
	return nil
}
