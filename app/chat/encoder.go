package chat

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/lysyi3m/newsdesk/app/transport"
)

const QueryParam = "q"

type Encoder struct {
	searchPath string
}

func NewEncoder(searchPath string) *Encoder {
	return &Encoder{searchPath: searchPath}
}

// Encode builds the search request for text. It returns false when text is
// blank, in which case nothing should be sent.
func (e *Encoder) Encode(text string) (transport.Request, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return transport.Request{}, false
	}

	return transport.Request{
		Method:   http.MethodGet,
		Path:     e.searchPath,
		RawQuery: QueryParam + "=" + EscapeQueryValue(text),
		Header:   http.Header{"Content-Type": []string{"application/json"}},
	}, true
}

// EscapeQueryValue percent-encodes s as a single query value, spaces as %20.
func EscapeQueryValue(s string) string {
	// QueryEscape has already turned literal '+' into %2B.
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
