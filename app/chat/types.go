package chat

type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// Fixed texts shown in the transcript
const (
	FallbackAnswer   = "Sorry, there was an error processing your answer."
	FallbackHeadline = "Original article"
	FallbackURL      = "#"
	ConnectionError  = "Error: could not reach the answer service."
	SourcesLabel     = "Sources:"
)

type Source struct {
	URL      string
	Headline string
}

// Message is one transcript entry. Once appended it is never changed.
type Message struct {
	Role    Role
	Content string
	Sources []Source
	Failed  bool
}

type State int

const (
	StateIdle State = iota
	StateAwaiting
)

func (s State) String() string {
	if s == StateAwaiting {
		return "awaiting"
	}
	return "idle"
}
