package feed

// Fallbacks applied before an item leaves the parser
const (
	UntitledTitle = "Untitled"
	NoLink        = "#"
)

// Card labels
const (
	TrendingTag   = "Trending"
	ReadMoreLabel = "Read more →"
)

type Item struct {
	Title           string
	DescriptionRaw  string
	DescriptionText string
	ImageURL        string
	Link            string
}

// Card is one render record of the feed container.
type Card struct {
	ImageURL    string
	Tag         string
	Title       string
	Link        string
	Description string
	ReadMore    string
}

type ViewState int

const (
	ViewLoading ViewState = iota
	ViewCards
	ViewEmpty
	ViewError
)

func (s ViewState) String() string {
	switch s {
	case ViewCards:
		return "cards"
	case ViewEmpty:
		return "empty"
	case ViewError:
		return "error"
	default:
		return "loading"
	}
}

// ErrorPanel replaces the feed when it cannot be loaded.
type ErrorPanel struct {
	Title    string
	Endpoint string
	Message  string
	Hint     string
}

// View is the complete content of the feed container. Each load produces a
// new View that replaces the previous one.
type View struct {
	State   ViewState
	Cards   []Card
	Panel   *ErrorPanel
	Message string
}
