package transport

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/lysyi3m/newsdesk/app/errors"
)

func TestDoReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("Expected path '/search', got: %s", r.URL.Path)
		}
		if r.URL.Query().Get("q") != "hello world" {
			t.Errorf("Expected q 'hello world', got: %s", r.URL.Query().Get("q"))
		}
		if r.Header.Get("User-Agent") != "test-agent" {
			t.Errorf("Expected user agent 'test-agent', got: %s", r.Header.Get("User-Agent"))
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("Expected content type header to be forwarded, got: %s", r.Header.Get("Content-Type"))
		}
		w.Write([]byte(`{"answer":"ok"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL+"/", "test-agent")
	data, err := client.Do(context.Background(), Request{
		Method:   http.MethodGet,
		Path:     "/search",
		RawQuery: "q=hello%20world",
		Header:   http.Header{"Content-Type": []string{"application/json"}},
	})
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if string(data) != `{"answer":"ok"}` {
		t.Errorf("Unexpected body: %s", data)
	}
}

func TestDoNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.Client(), server.URL, "")
	_, err := client.Do(context.Background(), Request{Path: "/feed.xml"})
	if err == nil {
		t.Fatal("Expected error for 404 response")
	}

	var te *apperrors.TransportError
	if !errors.As(err, &te) {
		t.Fatalf("Expected TransportError, got: %T", err)
	}
	if te.StatusCode != http.StatusNotFound {
		t.Errorf("Expected status 404, got: %d", te.StatusCode)
	}
	if te.Endpoint != "/feed.xml" {
		t.Errorf("Expected endpoint '/feed.xml', got: %s", te.Endpoint)
	}
}

func TestDoConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	client := NewClient(nil, url, "")
	_, err := client.Do(context.Background(), Request{Path: "/feed.xml"})
	if !apperrors.IsTransportError(err) {
		t.Errorf("Expected transport error, got: %v", err)
	}
}

func TestRequestEndpoint(t *testing.T) {
	r := Request{Path: "/search", RawQuery: "q=a%20b"}
	if r.Endpoint() != "/search?q=a%20b" {
		t.Errorf("Unexpected endpoint: %s", r.Endpoint())
	}
	if (Request{Path: "/feed.xml"}).Endpoint() != "/feed.xml" {
		t.Error("Expected endpoint without query to be the bare path")
	}
}
