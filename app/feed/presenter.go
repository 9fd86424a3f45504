package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/lysyi3m/newsdesk/app/transport"
)

const (
	EmptyMessage    = "No news to show."
	ErrorPanelTitle = "Connection error"
)

// Fetcher performs a request and returns the body of a successful response.
type Fetcher interface {
	Do(ctx context.Context, r transport.Request) ([]byte, error)
}

var _ Fetcher = (*transport.Client)(nil)

// Presenter owns the feed container: it loads the feed document and turns
// it into a View.
type Presenter struct {
	fetcher  Fetcher
	parser   *Parser
	feedPath string
	hint     string

	mu   sync.RWMutex
	view View
}

func NewPresenter(fetcher Fetcher, parser *Parser, feedPath, hint string) *Presenter {
	return &Presenter{
		fetcher:  fetcher,
		parser:   parser,
		feedPath: feedPath,
		hint:     hint,
		view:     View{State: ViewLoading},
	}
}

// Load fetches and renders the feed, replacing the current view entirely.
// Failures end up in an error panel; Load itself never fails.
func (p *Presenter) Load(ctx context.Context) View {
	view := p.build(ctx)

	p.mu.Lock()
	p.view = view
	p.mu.Unlock()

	return view
}

// View returns the current content of the feed container.
func (p *Presenter) View() View {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.view
}

func (p *Presenter) build(ctx context.Context) View {
	data, err := p.fetcher.Do(ctx, transport.Request{Method: http.MethodGet, Path: p.feedPath})
	if err != nil {
		slog.Error("Failed to fetch feed", "endpoint", p.feedPath, "error", err)
		return p.errorView()
	}

	items, err := p.parser.Run(data)
	if err != nil {
		slog.Error("Failed to parse feed", "endpoint", p.feedPath, "error", err)
		return p.errorView()
	}

	if len(items) == 0 {
		slog.Debug("Feed has no items", "endpoint", p.feedPath)
		return View{State: ViewEmpty, Message: EmptyMessage}
	}

	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, NewCard(item))
	}

	slog.Info("Feed loaded", "endpoint", p.feedPath, "items", len(cards))

	return View{State: ViewCards, Cards: cards}
}

func (p *Presenter) errorView() View {
	return View{
		State: ViewError,
		Panel: &ErrorPanel{
			Title:    ErrorPanelTitle,
			Endpoint: p.feedPath,
			Message:  fmt.Sprintf("Could not read the news from %s.", p.feedPath),
			Hint:     p.hint,
		},
	}
}

func NewCard(item Item) Card {
	return Card{
		ImageURL:    item.ImageURL,
		Tag:         TrendingTag,
		Title:       item.Title,
		Link:        item.Link,
		Description: item.DescriptionText,
		ReadMore:    ReadMoreLabel,
	}
}
