package chat

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/lysyi3m/newsdesk/app/transport"
)

// Searcher performs a search request and returns the body of a successful
// response.
type Searcher interface {
	Do(ctx context.Context, r transport.Request) ([]byte, error)
}

var _ Searcher = (*transport.Client)(nil)

// Session owns the transcript and the in-flight flag of the chat widget.
//
// A session accepts one submission at a time: Submit is rejected while a
// request is pending, so responses are always applied in send order.
type Session struct {
	encoder  *Encoder
	searcher Searcher

	mu      sync.Mutex
	history []Message
	pending bool
}

func NewSession(encoder *Encoder, searcher Searcher) *Session {
	return &Session{
		encoder:  encoder,
		searcher: searcher,
	}
}

// Submit moves the session from Idle to Awaiting. The user message is
// appended immediately. It returns false, changing nothing, for blank text
// or while another request is pending.
func (s *Session) Submit(text string) (transport.Request, bool) {
	req, ok := s.encoder.Encode(text)
	if !ok {
		return transport.Request{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		slog.Debug("Submission ignored, request in flight")
		return transport.Request{}, false
	}

	s.history = append(s.history, Message{Role: RoleUser, Content: strings.TrimSpace(text)})
	s.pending = true

	return req, true
}

// Fetch performs the round trip for a submitted request without touching
// session state.
func (s *Session) Fetch(ctx context.Context, req transport.Request) ([]byte, error) {
	return s.searcher.Do(ctx, req)
}

// Complete moves the session back to Idle, appending the bot reply for body,
// or the connection error message when err is set or body is not JSON.
func (s *Session) Complete(body []byte, err error) Message {
	var msg Message
	if err == nil {
		msg, err = PresentBody(body)
	}
	if err != nil {
		slog.Error("Search request failed", "error", err)
		msg = Message{Role: RoleBot, Content: ConnectionError, Failed: true}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, msg)
	s.pending = false

	return msg
}

// Send runs a whole submission: Submit, Fetch and Complete. It returns false
// when the submission was not accepted.
func (s *Session) Send(ctx context.Context, text string) (Message, bool) {
	req, ok := s.Submit(text)
	if !ok {
		return Message{}, false
	}

	body, err := s.Fetch(ctx, req)
	return s.Complete(body, err), true
}

// History returns a copy of the transcript.
func (s *Session) History() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]Message, len(s.history))
	for i, msg := range s.history {
		msg.Sources = slices.Clone(msg.Sources)
		history[i] = msg
	}
	return history
}

func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

func (s *Session) State() State {
	if s.Pending() {
		return StateAwaiting
	}
	return StateIdle
}
