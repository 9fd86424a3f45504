package chat

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBlankInput(t *testing.T) {
	encoder := NewEncoder("/search")

	for _, input := range []string{"", "   ", "\t\n"} {
		_, ok := encoder.Encode(input)
		assert.False(t, ok, "input %q should not produce a request", input)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	encoder := NewEncoder("/search")

	tests := []struct {
		input    string
		expected string
	}{
		{"a b", "a b"},
		{"  padded  ", "padded"},
		{"rock & roll", "rock & roll"},
		{"1+1=2?", "1+1=2?"},
		{"¿qué pasó hoy?", "¿qué pasó hoy?"},
		{"path/with#hash", "path/with#hash"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			req, ok := encoder.Encode(tt.input)
			require.True(t, ok)

			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "/search", req.Path)
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

			values, err := url.ParseQuery(req.RawQuery)
			require.NoError(t, err)
			assert.Equal(t, []string{tt.expected}, values[QueryParam])
		})
	}
}

func TestEncodeSpacesAsPercent20(t *testing.T) {
	req, ok := NewEncoder("/search").Encode("a b")
	require.True(t, ok)
	assert.Equal(t, "q=a%20b", req.RawQuery)
	assert.Equal(t, "/search?q=a%20b", req.Endpoint())
}
