package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apperrors "github.com/lysyi3m/newsdesk/app/errors"
	"github.com/lysyi3m/newsdesk/app/transport"
)

type stubFetcher struct {
	data     []byte
	err      error
	requests []transport.Request
}

func (f *stubFetcher) Do(ctx context.Context, r transport.Request) ([]byte, error) {
	f.requests = append(f.requests, r)
	return f.data, f.err
}

const testHint = "Make sure the feed server is running."

const twoItemFeed = `<?xml version="1.0"?>
<rss version="2.0">
  <channel>
    <title>Feed</title>
    <item>
      <title>First</title>
      <link>https://example.com/1</link>
      <description><![CDATA[<p>First <em>story</em></p>]]></description>
    </item>
    <item>
      <title>Second</title>
      <link>https://example.com/2</link>
      <description>Second story</description>
    </item>
  </channel>
</rss>`

func TestPresenterRendersCards(t *testing.T) {
	fetcher := &stubFetcher{data: []byte(twoItemFeed)}
	presenter := NewPresenter(fetcher, NewParser(), "/feed.xml", testHint)

	if presenter.View().State != ViewLoading {
		t.Errorf("Expected initial state loading, got: %s", presenter.View().State)
	}

	view := presenter.Load(context.Background())

	if len(fetcher.requests) != 1 {
		t.Fatalf("Expected 1 request, got: %d", len(fetcher.requests))
	}
	if fetcher.requests[0].Path != "/feed.xml" || fetcher.requests[0].Method != http.MethodGet {
		t.Errorf("Unexpected request: %+v", fetcher.requests[0])
	}

	if view.State != ViewCards {
		t.Fatalf("Expected cards, got: %s", view.State)
	}
	if len(view.Cards) != 2 {
		t.Fatalf("Expected 2 cards, got: %d", len(view.Cards))
	}

	first := view.Cards[0]
	if first.Title != "First" || first.Link != "https://example.com/1" {
		t.Errorf("Unexpected first card: %+v", first)
	}
	if first.Description != "First story" {
		t.Errorf("Expected sanitized description 'First story', got: %s", first.Description)
	}
	if first.Tag != TrendingTag || first.ReadMore != ReadMoreLabel {
		t.Errorf("Expected fixed labels, got tag '%s' and read more '%s'", first.Tag, first.ReadMore)
	}
	if first.ImageURL != DefaultImageURL {
		t.Errorf("Expected default image, got: %s", first.ImageURL)
	}
	if view.Cards[1].Title != "Second" {
		t.Errorf("Expected document order, got: %s", view.Cards[1].Title)
	}
	if view.Panel != nil {
		t.Error("Expected no error panel")
	}
}

func TestPresenterEmptyFeed(t *testing.T) {
	fetcher := &stubFetcher{data: []byte(`<rss version="2.0"><channel><title>Empty</title></channel></rss>`)}
	presenter := NewPresenter(fetcher, NewParser(), "/feed.xml", testHint)

	view := presenter.Load(context.Background())

	if view.State != ViewEmpty {
		t.Fatalf("Expected empty state, got: %s", view.State)
	}
	if len(view.Cards) != 0 {
		t.Errorf("Expected no cards, got: %d", len(view.Cards))
	}
	if view.Message != EmptyMessage {
		t.Errorf("Expected message '%s', got: %s", EmptyMessage, view.Message)
	}
}

func TestPresenterErrors(t *testing.T) {
	tests := []struct {
		name    string
		fetcher *stubFetcher
	}{
		{"transport failure", &stubFetcher{err: apperrors.NewTransportError("/feed.xml", fmt.Errorf("connection refused"))}},
		{"status failure", &stubFetcher{err: apperrors.NewStatusError("/feed.xml", 500)}},
		{"unparsable body", &stubFetcher{data: []byte("not xml at all")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			presenter := NewPresenter(tt.fetcher, NewParser(), "/feed.xml", testHint)
			view := presenter.Load(context.Background())

			if view.State != ViewError {
				t.Fatalf("Expected error state, got: %s", view.State)
			}
			if view.Panel == nil {
				t.Fatal("Expected error panel")
			}
			if view.Panel.Endpoint != "/feed.xml" {
				t.Errorf("Expected endpoint '/feed.xml', got: %s", view.Panel.Endpoint)
			}
			if !strings.Contains(view.Panel.Message, "/feed.xml") {
				t.Errorf("Expected message to name the endpoint, got: %s", view.Panel.Message)
			}
			if view.Panel.Hint != testHint {
				t.Errorf("Expected hint '%s', got: %s", testHint, view.Panel.Hint)
			}
			if len(view.Cards) != 0 {
				t.Errorf("Expected no cards, got: %d", len(view.Cards))
			}
		})
	}
}

func TestPresenterReplacesPreviousContent(t *testing.T) {
	fetcher := &stubFetcher{data: []byte(twoItemFeed)}
	presenter := NewPresenter(fetcher, NewParser(), "/feed.xml", testHint)

	if view := presenter.Load(context.Background()); view.State != ViewCards {
		t.Fatalf("Expected cards on first load, got: %s", view.State)
	}

	fetcher.data = nil
	fetcher.err = apperrors.NewStatusError("/feed.xml", 503)
	presenter.Load(context.Background())

	view := presenter.View()
	if view.State != ViewError {
		t.Fatalf("Expected error state after failed reload, got: %s", view.State)
	}
	if len(view.Cards) != 0 {
		t.Errorf("Expected previous cards to be replaced, got: %d", len(view.Cards))
	}
}

func TestPresenterWithHTTPServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/feed.xml" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(twoItemFeed))
	}))
	defer server.Close()

	client := transport.NewClient(server.Client(), server.URL, "test")

	view := NewPresenter(client, NewParser(), "/feed.xml", testHint).Load(context.Background())
	if view.State != ViewCards || len(view.Cards) != 2 {
		t.Errorf("Expected 2 cards, got state %s with %d cards", view.State, len(view.Cards))
	}

	view = NewPresenter(client, NewParser(), "/missing.xml", testHint).Load(context.Background())
	if view.State != ViewError {
		t.Errorf("Expected error state for 404, got: %s", view.State)
	}
}
