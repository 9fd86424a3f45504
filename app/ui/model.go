package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lysyi3m/newsdesk/app/chat"
	"github.com/lysyi3m/newsdesk/app/feed"
	"github.com/lysyi3m/newsdesk/app/transport"
)

// FeedLoader fills the feed container
type FeedLoader interface {
	Load(ctx context.Context) feed.View
}

// ChatSession drives the chat widget
type ChatSession interface {
	Submit(text string) (transport.Request, bool)
	Fetch(ctx context.Context, req transport.Request) ([]byte, error)
	Complete(body []byte, err error) chat.Message
	History() []chat.Message
	Pending() bool
}

var (
	_ FeedLoader  = (*feed.Presenter)(nil)
	_ ChatSession = (*chat.Session)(nil)
)

type (
	feedLoadedMsg struct {
		view feed.View
	}
	searchResultMsg struct {
		body []byte
		err  error
	}
)

// Model is the terminal surface: the feed container, the chat transcript,
// the input control and the sending indicator.
type Model struct {
	ctx     context.Context
	feed    FeedLoader
	session ChatSession
	title   string

	feedView     feed.View
	feedViewport viewport.Model
	chatViewport viewport.Model
	input        textinput.Model
	spinner      spinner.Model
	markdown     *markdownRenderer

	chatOpen bool
	ready    bool
	width    int
	height   int
}

type Option func(*Model)

// WithMarkdownStyle selects the glamour style for bot answers; "" disables
// markdown rendering.
func WithMarkdownStyle(style string) Option {
	return func(m *Model) {
		m.markdown = newMarkdownRenderer(style)
	}
}

func WithTitle(title string) Option {
	return func(m *Model) {
		m.title = title
	}
}

func NewModel(ctx context.Context, loader FeedLoader, session ChatSession, opts ...Option) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about the news..."
	ti.CharLimit = 1000
	ti.Prompt = "› "

	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = loadingStyle

	m := Model{
		ctx:          ctx,
		feed:         loader,
		session:      session,
		title:        "News",
		feedView:     feed.View{State: feed.ViewLoading},
		feedViewport: viewport.New(0, 0),
		chatViewport: viewport.New(0, 0),
		input:        ti,
		spinner:      s,
		markdown:     newMarkdownRenderer("dark"),
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadFeed(), textinput.Blink)
}

func (m Model) loadFeed() tea.Cmd {
	return func() tea.Msg {
		return feedLoadedMsg{view: m.feed.Load(m.ctx)}
	}
}

func (m Model) search(req transport.Request) tea.Cmd {
	return func() tea.Msg {
		body, err := m.session.Fetch(m.ctx, req)
		return searchResultMsg{body: body, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		m.refreshFeed()
		m.refreshTranscript()

	case feedLoadedMsg:
		m.feedView = msg.view
		m.refreshFeed()

	case searchResultMsg:
		m.session.Complete(msg.body, msg.err)
		m.refreshTranscript()

	case spinner.TickMsg:
		if m.session.Pending() {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "tab":
			m.toggleChat()
			return m, nil

		case "esc":
			if m.chatOpen {
				m.toggleChat()
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			if !m.chatOpen {
				break
			}
			req, ok := m.session.Submit(m.input.Value())
			if !ok {
				return m, nil
			}
			m.input.Reset()
			m.refreshTranscript()
			return m, tea.Batch(m.search(req), m.spinner.Tick)
		}

		if m.chatOpen {
			// Letters belong to the input; only navigation keys scroll the transcript.
			switch msg.Type {
			case tea.KeyUp, tea.KeyDown, tea.KeyPgUp, tea.KeyPgDown:
				m.chatViewport, cmd = m.chatViewport.Update(msg)
			default:
				m.input, cmd = m.input.Update(msg)
			}
			cmds = append(cmds, cmd)
		} else {
			m.feedViewport, cmd = m.feedViewport.Update(msg)
			cmds = append(cmds, cmd)
		}

	default:
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) toggleChat() {
	m.chatOpen = !m.chatOpen
	if m.chatOpen {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
	m.layout()
	m.refreshFeed()
	m.refreshTranscript()
}

// layout splits the screen between the feed and, when open, the chat widget.
func (m *Model) layout() {
	if !m.ready {
		return
	}

	const headerHeight = 2
	const inputHeight = 3

	contentWidth := max(m.width, 20)
	available := max(m.height-headerHeight, 6)

	feedHeight := available
	chatHeight := 0
	if m.chatOpen {
		chatHeight = max(available/2, inputHeight+3)
		feedHeight = max(available-chatHeight, 3)
	}

	m.feedViewport.Width = contentWidth
	m.feedViewport.Height = feedHeight

	m.chatViewport.Width = contentWidth - 2
	m.chatViewport.Height = max(chatHeight-inputHeight-2, 1)
	m.input.Width = contentWidth - 8
}

func (m *Model) refreshFeed() {
	m.feedViewport.SetContent(renderFeed(m.feedView, m.feedViewport.Width))
	m.feedViewport.GotoTop()
}

// refreshTranscript re-renders the chat and pins it to the latest message.
func (m *Model) refreshTranscript() {
	m.chatViewport.SetContent(renderTranscript(m.session.History(), m.chatViewport.Width, m.markdown))
	m.chatViewport.GotoBottom()
}

func (m Model) View() string {
	if !m.ready {
		return loadingStyle.Render("  Initializing...")
	}

	header := headerStyle.Render("📰 "+m.title) + hintStyle.Render("  tab: chat • ↑/↓: scroll • esc: quit")
	sections := []string{header, m.feedViewport.View()}

	if m.chatOpen {
		status := hintStyle.Render("enter to send")
		if m.session.Pending() {
			status = m.spinner.View() + loadingStyle.Render(" sending...")
		}

		widget := lipgloss.JoinVertical(lipgloss.Left,
			m.chatViewport.View(),
			strings.Repeat("─", max(m.chatViewport.Width, 1)),
			m.input.View(),
			status,
		)
		sections = append(sections, chatStyle.Width(max(m.width-2, 10)).Render(widget))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// FeedView returns what the feed container currently shows.
func (m Model) FeedView() feed.View {
	return m.feedView
}

func (m Model) ChatOpen() bool {
	return m.chatOpen
}

func (m Model) InputValue() string {
	return m.input.Value()
}
