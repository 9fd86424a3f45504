package cfg

import (
	"cmp"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Upstream endpoints
	BaseURL    string `long:"base-url" env:"BASE_URL" default:"http://localhost:8000" description:"Base URL of the news server"`
	FeedPath   string `long:"feed-path" env:"FEED_PATH" default:"/feed.xml" description:"Path of the feed document"`
	SearchPath string `long:"search-path" env:"SEARCH_PATH" default:"/search" description:"Path of the search endpoint"`
	Timeout    int    `long:"timeout" env:"HTTP_TIMEOUT" default:"0" description:"HTTP client timeout in seconds (0 leaves it to the transport)"`

	// Companion server
	Port      string `long:"port" env:"PORT" default:"8000" description:"HTTP server port"`
	FeedFile  string `long:"feed-file" env:"FEED_FILE" default:"./feed.xml" description:"Feed document served at /feed.xml"`
	AnswerURL string `long:"answer-url" env:"ANSWER_URL" description:"Answer service the server forwards search requests to (search is disabled when empty)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"newsdesk/1.0" description:"User agent string for HTTP requests"`
	LogFile   string `long:"log-file" env:"LOG_FILE" default:"newsdesk.log" description:"Client log file (the terminal is owned by the UI)"`
	Title     string `long:"title" env:"NEWSDESK_TITLE" default:"News" description:"Header shown above the feed"`
	Style     string `long:"style" env:"GLAMOUR_STYLE" default:"dark" description:"Markdown style for chat answers (dark, light, notty, or empty to disable)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	return LoadArgs(nil)
}

// LoadArgs parses the given arguments instead of os.Args when args is non-nil.
func LoadArgs(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	var err error
	if args == nil {
		_, err = parser.Parse()
	} else {
		_, err = parser.ParseArgs(args)
	}
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if _, err := url.ParseRequestURI(raw.BaseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw.BaseURL, err)
	}

	var answerURL *url.URL
	if raw.AnswerURL != "" {
		answerURL, err = url.ParseRequestURI(raw.AnswerURL)
		if err != nil {
			return nil, fmt.Errorf("invalid answer URL %q: %w", raw.AnswerURL, err)
		}
	}

	cfg := &Cfg{
		BaseURL:    strings.TrimRight(raw.BaseURL, "/"),
		FeedPath:   ensureLeadingSlash(raw.FeedPath),
		SearchPath: ensureLeadingSlash(raw.SearchPath),
		Timeout:    time.Duration(raw.Timeout) * time.Second,
		Port:       raw.Port,
		FeedFile:   raw.FeedFile,
		AnswerURL:  answerURL,
		UserAgent:  raw.UserAgent,
		LogFile:    raw.LogFile,
		Title:      raw.Title,
		Style:      raw.Style,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func ensureLeadingSlash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
