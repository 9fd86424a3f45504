package transport

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	apperrors "github.com/lysyi3m/newsdesk/app/errors"
)

// Request describes a request relative to the client's base URL.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
}

// Endpoint is the path plus query as shown to users and logs.
func (r Request) Endpoint() string {
	if r.RawQuery == "" {
		return r.Path
	}
	return r.Path + "?" + r.RawQuery
}

// URL resolves the request against base.
func (r Request) URL(base string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + r.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid request URL: %w", err)
	}
	u.RawQuery = r.RawQuery
	return u, nil
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewClient(httpClient *http.Client, baseURL, userAgent string) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// NewHTTPClient returns a client with the given timeout; zero means none.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Do performs the request and returns the body of a 2xx response. Any other
// outcome is reported as *errors.TransportError.
func (c *Client) Do(ctx context.Context, r Request) ([]byte, error) {
	endpoint := r.Endpoint()

	u, err := r.URL(c.baseURL)
	if err != nil {
		return nil, apperrors.NewTransportError(endpoint, err)
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), nil)
	if err != nil {
		return nil, apperrors.NewTransportError(endpoint, fmt.Errorf("failed to create request: %w", err))
	}

	for key, values := range r.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewTransportError(endpoint, err)
	}
	defer resp.Body.Close()

	slog.Debug("Request completed",
		"method", method,
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperrors.NewStatusError(endpoint, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewTransportError(endpoint, fmt.Errorf("failed to read response body: %w", err))
	}

	return data, nil
}
