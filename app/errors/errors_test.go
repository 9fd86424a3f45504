package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestTransportErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      *TransportError
		contains string
	}{
		{"status", NewStatusError("/feed.xml", 503), "status 503"},
		{"cause", NewTransportError("/search", fmt.Errorf("connection refused")), "connection refused"},
		{"bare", &TransportError{Endpoint: "/search"}, "request to /search failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !strings.Contains(tt.err.Error(), tt.contains) {
				t.Errorf("Expected error to contain '%s', got: %s", tt.contains, tt.err.Error())
			}
		})
	}
}

func TestSentinelMatching(t *testing.T) {
	wrapped := fmt.Errorf("load: %w", NewStatusError("/feed.xml", 500))
	if !errors.Is(wrapped, ErrTransport) {
		t.Error("Expected wrapped TransportError to match ErrTransport")
	}
	if errors.Is(wrapped, ErrParse) {
		t.Error("Did not expect TransportError to match ErrParse")
	}

	parseErr := fmt.Errorf("run: %w", NewParseError(fmt.Errorf("bad xml")))
	if !errors.Is(parseErr, ErrParse) {
		t.Error("Expected ParseError to match ErrParse")
	}

	var pe *ParseError
	if !errors.As(parseErr, &pe) {
		t.Fatal("Expected errors.As to find ParseError")
	}
	if pe.Err.Error() != "bad xml" {
		t.Errorf("Expected cause 'bad xml', got: %v", pe.Err)
	}
}

func TestMalformedPayloadIsTransportClass(t *testing.T) {
	err := NewMalformedPayloadError(fmt.Errorf("unexpected token"))
	if !errors.Is(err, ErrMalformedPayload) {
		t.Error("Expected match with ErrMalformedPayload")
	}
	if !IsTransportError(err) {
		t.Error("Expected malformed payload to be treated as a transport failure")
	}
}
