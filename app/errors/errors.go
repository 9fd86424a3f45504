// Package errors defines the failure taxonomy shared by the feed and chat pipelines.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors matched through errors.Is
var (
	ErrTransport        = errors.New("transport failure")
	ErrParse            = errors.New("feed parse failure")
	ErrMalformedPayload = errors.New("malformed payload")
)

// TransportError represents a request-level failure against an endpoint:
// connection refused, unreadable body or a non-2xx status.
type TransportError struct {
	Endpoint   string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("request to %s failed with status %d", e.Endpoint, e.StatusCode)
	}
	if e.Err != nil {
		return fmt.Sprintf("request to %s failed: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("request to %s failed", e.Endpoint)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// NewTransportError creates a TransportError for a failed round trip
func NewTransportError(endpoint string, err error) *TransportError {
	return &TransportError{Endpoint: endpoint, Err: err}
}

// NewStatusError creates a TransportError for a non-2xx response
func NewStatusError(endpoint string, statusCode int) *TransportError {
	return &TransportError{Endpoint: endpoint, StatusCode: statusCode}
}

// ParseError represents a feed body that is not a well-formed feed document.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse feed: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// NewParseError creates a new ParseError
func NewParseError(err error) *ParseError {
	return &ParseError{Err: err}
}

// MalformedPayloadError represents a search response body that is not JSON.
// It also matches ErrTransport, since callers handle both on the same path.
type MalformedPayloadError struct {
	Err error
}

func (e *MalformedPayloadError) Error() string {
	if e.Err == nil {
		return "malformed payload"
	}
	return fmt.Sprintf("malformed payload: %v", e.Err)
}

func (e *MalformedPayloadError) Unwrap() error {
	return e.Err
}

func (e *MalformedPayloadError) Is(target error) bool {
	return target == ErrMalformedPayload || target == ErrTransport
}

// NewMalformedPayloadError creates a new MalformedPayloadError
func NewMalformedPayloadError(err error) *MalformedPayloadError {
	return &MalformedPayloadError{Err: err}
}

// IsTransportError reports whether err belongs to the transport class
func IsTransportError(err error) bool {
	return errors.Is(err, ErrTransport)
}
