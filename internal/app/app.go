package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/atomicstack/slack-tui/internal/backend"
	"github.com/atomicstack/slack-tui/internal/slack"
	"github.com/atomicstack/slack-tui/internal/ui"
	"github.com/atomicstack/slack-tui/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DefaultRefresh is the channel and user list refresh interval.
	DefaultRefresh = 30 * time.Second
	// DefaultRequestTimeout bounds each history fetch and message send.
	DefaultRequestTimeout = command.DefaultTimeout
)

// Config describes user-provided application options.
type Config struct {
	Token          string
	APIURL         string
	Channel        string
	Refresh        time.Duration
	RequestTimeout time.Duration
	Width          int
	Height         int
	ShowFooter     bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	client, err := slack.New(cfg.Token, cfg.APIURL)
	if err != nil {
		return fmt.Errorf("create slack client: %w", err)
	}
	watcher := backend.NewWatcher(client, cfg.Refresh)
	defer watcher.Stop()
	model := ui.NewModel(ui.Options{
		Provider:       client,
		Watcher:        watcher,
		Width:          cfg.Width,
		Height:         cfg.Height,
		ShowFooter:     cfg.ShowFooter,
		InitialChannel: cfg.Channel,
		RequestTimeout: cfg.RequestTimeout,
	})
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
