package api

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized       = errors.New("binance: unauthorized")
	ErrServerError        = errors.New("binance: internal server error")
	ErrServiceUnavailable = errors.New("binance: service unavailable")
	ErrSymbolNotFound     = errors.New("binance: symbol not found")
)

// snippetLimit bounds how much of a response body is kept in a DecodeError.
const snippetLimit = 256

// ConfigurationError reports a client setup problem such as a malformed proxy
// URL or an API key that cannot be sent as a header value.
type ConfigurationError struct {
	Field  string
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("binance: invalid %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("binance: invalid %s: %s", e.Field, e.Reason)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// TransportError wraps connection, DNS and TLS failures as well as failures
// reading the response body.
type TransportError struct {
	Op       string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("binance: %s %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ExchangeError is the structured error the exchange returns with a 400.
type ExchangeError struct {
	Code    int64
	Message string
}

func (e *ExchangeError) Error() string {
	return fmt.Sprintf("binance: exchange error (code: %d, message: %s)", e.Code, e.Message)
}

// UnexpectedStatusError carries any status code the classifier has no
// dedicated kind for.
type UnexpectedStatusError struct {
	Code int
}

func (e *UnexpectedStatusError) Error() string {
	return fmt.Sprintf("binance: server responded with a %d status code", e.Code)
}

// DecodeError reports a body that did not match the expected shape.
type DecodeError struct {
	TypeName string
	Body     string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("binance: cannot decode response into %s: %v (body: %q)", e.TypeName, e.Err, e.Body)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// IsExchangeError reports whether err carries an exchange error with the
// given code.
func IsExchangeError(err error, code int64) bool {
	var exErr *ExchangeError
	if errors.As(err, &exErr) {
		return exErr.Code == code
	}
	return false
}

func snippet(body []byte) string {
	if len(body) > snippetLimit {
		return string(body[:snippetLimit])
	}
	return string(body)
}
