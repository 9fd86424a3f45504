package feed

import (
	"bytes"
	"cmp"
	"strings"

	"github.com/mmcdole/gofeed"

	apperrors "github.com/lysyi3m/newsdesk/app/errors"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses a feed document into items in document order. Items missing
// optional fields are kept with fallbacks; only a document that is not a
// feed at all fails.
func (p *Parser) Run(data []byte) ([]Item, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, apperrors.NewParseError(err)
	}

	// Only trust the scan when it lines up with gofeed's items
	thumbs := scanBareThumbnails(data)
	if len(thumbs) != len(feed.Items) {
		thumbs = nil
	}

	items := make([]Item, 0, len(feed.Items))
	for i, item := range feed.Items {
		var thumb string
		if thumbs != nil {
			thumb = thumbs[i]
		}
		items = append(items, p.normalizeItem(item, thumb))
	}

	return items, nil
}

func (p *Parser) normalizeItem(item *gofeed.Item, bareThumbnail string) Item {
	description := ParseFragment(item.Description)

	return Item{
		Title:           cmp.Or(strings.TrimSpace(item.Title), UntitledTitle),
		DescriptionRaw:  item.Description,
		DescriptionText: description.Text(),
		ImageURL:        ResolveImage(item, bareThumbnail, description),
		Link:            cmp.Or(strings.TrimSpace(item.Link), NoLink),
	}
}
