package feed

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Elements whose content is never visible text.
const invisibleSelector = "script, style, noscript, template"

// Fragment is an inert parse tree of a description. Building it neither fetches
// resources nor runs scripts; it is only walked.
type Fragment struct {
	doc *goquery.Document
}

// ParseFragment never fails; unreadable markup yields an empty fragment.
func ParseFragment(raw string) *Fragment {
	if strings.TrimSpace(raw) == "" {
		return &Fragment{}
	}

	node, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return &Fragment{}
	}

	return &Fragment{doc: goquery.NewDocumentFromNode(node)}
}

// Text returns the visible text with whitespace runs collapsed.
func (f *Fragment) Text() string {
	if f == nil || f.doc == nil {
		return ""
	}

	visible := f.doc.Clone()
	visible.Find(invisibleSelector).Remove()

	text := strings.Join(strings.Fields(visible.Text()), " ")
	return norm.NFC.String(text)
}

// FirstImageSrc returns the src of the first img element, or "".
func (f *Fragment) FirstImageSrc() string {
	if f == nil || f.doc == nil {
		return ""
	}

	src, _ := f.doc.Find("img").First().Attr("src")
	return strings.TrimSpace(src)
}

// ToPlainText reduces an HTML fragment to its display text.
func ToPlainText(raw string) string {
	return ParseFragment(raw).Text()
}
