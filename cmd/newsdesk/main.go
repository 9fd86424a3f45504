package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lysyi3m/newsdesk/app/cfg"
	"github.com/lysyi3m/newsdesk/app/chat"
	"github.com/lysyi3m/newsdesk/app/feed"
	"github.com/lysyi3m/newsdesk/app/transport"
	"github.com/lysyi3m/newsdesk/app/ui"
)

const serverHint = "Make sure the news server is running (go run ./cmd/server)."

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	appCfg, err := cfg.Load()
	if err != nil {
		return err
	}
	if appCfg == nil {
		return nil
	}

	// The terminal belongs to the UI, so logs go to a file
	logFile, err := os.OpenFile(appCfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()

	level := slog.LevelInfo
	if appCfg.Debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{Level: level})))

	slog.Info("Starting newsdesk", "version", appCfg.Version, "base_url", appCfg.BaseURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := transport.NewClient(transport.NewHTTPClient(appCfg.Timeout), appCfg.BaseURL, appCfg.UserAgent)

	presenter := feed.NewPresenter(client, feed.NewParser(), appCfg.FeedPath, serverHint)
	session := chat.NewSession(chat.NewEncoder(appCfg.SearchPath), client)

	model := ui.NewModel(ctx, presenter, session,
		ui.WithTitle(appCfg.Title),
		ui.WithMarkdownStyle(appCfg.Style),
	)

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	slog.Info("newsdesk exited")
	return nil
}
