package present

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"testdeck/pkg/bus"
	"testdeck/pkg/deck"
)

// Options configures a presenter session.
type Options struct {
	// Theme overrides the deck front matter theme when set.
	Theme string
	// Width caps the render width; zero uses the full terminal.
	Width int
	// Events, when set, receives slide_viewed/deck_reloaded notifications
	// and feeds reload triggers into the session.
	Events *bus.Bus
	// Reload re-reads the deck from disk after a watcher trigger.
	Reload func() (*deck.Deck, error)
}

// Run presents the deck full-screen until the user quits.
func Run(ctx context.Context, d *deck.Deck, opts Options) error {
	if d.Len() == 0 {
		return fmt.Errorf("deck has no slides")
	}

	var events <-chan bus.Event
	if opts.Events != nil && opts.Reload != nil {
		ch, unsubscribe := opts.Events.Subscribe(ctx, 4)
		defer unsubscribe()
		events = ch
	}

	program := tea.NewProgram(
		newModel(ctx, d, opts, events),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := program.Run()
	return err
}
