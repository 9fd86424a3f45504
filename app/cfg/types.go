package cfg

import (
	"net/url"
	"time"
)

type Cfg struct {
	// Upstream endpoints
	BaseURL    string
	FeedPath   string
	SearchPath string
	Timeout    time.Duration

	// Companion server
	Port      string
	FeedFile  string
	AnswerURL *url.URL // nil disables search on the server

	// Application metadata
	UserAgent string
	LogFile   string
	Title     string
	Style     string
	Debug     bool
	Version   string
}
