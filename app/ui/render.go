package ui

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/lysyi3m/newsdesk/app/chat"
	"github.com/lysyi3m/newsdesk/app/feed"
)

// cleanText removes escape sequences and control characters from feed and
// answer text before it reaches the terminal. Newlines and tabs are kept.
func cleanText(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, ansi.Strip(s))
}

// hyperlink wraps text in an OSC 8 link; "#" means no navigation. A url
// carrying control characters is never emitted.
func hyperlink(url, text string) string {
	text = cleanText(text)
	if url == "" || url == feed.NoLink || strings.ContainsFunc(url, unicode.IsControl) {
		return text
	}
	return termenv.Hyperlink(url, text)
}

func renderFeed(view feed.View, width int) string {
	switch view.State {
	case feed.ViewCards:
		cards := make([]string, 0, len(view.Cards))
		for _, card := range view.Cards {
			cards = append(cards, renderCard(card, width))
		}
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	case feed.ViewEmpty:
		return placeholderStyle.Render(view.Message)
	case feed.ViewError:
		return renderPanel(view.Panel, width)
	default:
		return placeholderStyle.Render("Loading news...")
	}
}

func renderCard(card feed.Card, width int) string {
	inner := max(width-4, 10)

	lines := []string{
		imageStyle.Render(hyperlink(card.ImageURL, "▣ "+card.ImageURL)),
		tagStyle.Render(strings.ToUpper(card.Tag)),
		titleStyle.Width(inner).Render(hyperlink(card.Link, card.Title)),
	}
	if card.Description != "" {
		lines = append(lines, descStyle.Width(inner).Render(cleanText(card.Description)))
	}
	lines = append(lines, linkStyle.Render(hyperlink(card.Link, card.ReadMore)))

	return cardStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderPanel(panel *feed.ErrorPanel, width int) string {
	if panel == nil {
		return ""
	}

	body := strings.Join([]string{
		lipgloss.NewStyle().Bold(true).Render("⚠ " + cleanText(panel.Title)),
		cleanText(panel.Message),
		cleanText(panel.Hint),
	}, "\n\n")

	return panelStyle.Width(max(width-2, 10)).Render(body)
}

// markdownRenderer renders bot answers. It falls back to the raw text when
// glamour cannot render.
type markdownRenderer struct {
	style    string
	width    int
	renderer *glamour.TermRenderer
}

func newMarkdownRenderer(style string) *markdownRenderer {
	return &markdownRenderer{style: style}
}

func (r *markdownRenderer) render(content string, width int) string {
	if r == nil || r.style == "" {
		return content
	}

	if r.renderer == nil || r.width != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(r.style),
			glamour.WithWordWrap(max(width, 20)),
		)
		if err != nil {
			return content
		}
		r.renderer = renderer
		r.width = width
	}

	out, err := r.renderer.Render(content)
	if err != nil {
		return content
	}
	return strings.Trim(out, "\n")
}

func renderMessage(msg chat.Message, width int, md *markdownRenderer) string {
	inner := max(width-2, 10)
	content := cleanText(msg.Content)

	switch {
	case msg.Role == chat.RoleUser:
		return lipgloss.PlaceHorizontal(inner, lipgloss.Right, userMsgStyle.Render(content))
	case msg.Failed:
		return errorMsgStyle.Width(inner).Render("✗ " + content)
	}

	parts := []string{botMsgStyle.Width(inner).Render(md.render(content, inner))}
	if len(msg.Sources) > 0 {
		parts = append(parts, renderSources(msg.Sources, inner))
	}
	return strings.Join(parts, "\n")
}

func renderSources(sources []chat.Source, width int) string {
	lines := []string{lipgloss.NewStyle().Bold(true).Render(chat.SourcesLabel)}
	for i, source := range sources {
		lines = append(lines, fmt.Sprintf("  %d. %s", i+1, linkStyle.Render(hyperlink(source.URL, source.Headline))))
	}
	return sourcesStyle.Width(width).Render(strings.Join(lines, "\n"))
}

func renderTranscript(history []chat.Message, width int, md *markdownRenderer) string {
	if len(history) == 0 {
		return hintStyle.Render("Ask anything about the news.")
	}

	rendered := make([]string, 0, len(history))
	for _, msg := range history {
		rendered = append(rendered, renderMessage(msg, width, md))
	}
	return strings.Join(rendered, "\n\n")
}
