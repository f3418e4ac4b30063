package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/listbox/internal/config"
	"github.com/gravitrone/listbox/internal/items"
	"github.com/gravitrone/listbox/internal/scroll"
	"github.com/gravitrone/listbox/internal/term"
	"github.com/gravitrone/listbox/internal/ui"
)

// ErrAborted is returned when the user leaves the tea front end without
// confirming an item.
var ErrAborted = errors.New("selection aborted")

// RunSession drives a list box over screen and input using the geometry,
// colours and input mode in cfg.
func RunSession(cfg *config.Config, store *items.Store, screen scroll.Screen, input scroll.Input, logger *slog.Logger) (scroll.Selection, error) {
	colors, err := cfg.ScrollColors()
	if err != nil {
		return scroll.Selection{}, err
	}

	if cfg.Input == config.InputPoll {
		poller := term.NewPoller(input, cfg.PollInterval)
		defer poller.Close()
		input = poller
	}

	return scroll.Run(store, screen, input, scroll.Options{
		Height:  cfg.Height,
		OriginX: cfg.OriginX,
		OriginY: cfg.OriginY,
		Colors:  colors,
		Logger:  logger,
	})
}

// RunANSI puts in into raw mode and paints the list box straight onto out
// with escape sequences.
func RunANSI(cfg *config.Config, store *items.Store, in *os.File, out io.Writer, logger *slog.Logger) (scroll.Selection, error) {
	kb, err := term.OpenKeyboard(in, cfg.VimKeys)
	if err != nil {
		return scroll.Selection{}, err
	}
	defer kb.Close()

	screen := term.NewScreen(out)
	screen.Clear()
	screen.HideCursor()
	defer func() {
		screen.Reset()
		screen.ShowCursor()
		screen.Clear()
	}()

	return RunSession(cfg, store, screen, kb, logger)
}

// RunTea runs the bubbletea front end in the alternate screen.
func RunTea(cfg *config.Config, store *items.Store, logger *slog.Logger) (scroll.Selection, error) {
	model, err := ui.NewModel(store, cfg, logger)
	if err != nil {
		return scroll.Selection{}, err
	}

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return scroll.Selection{}, fmt.Errorf("tui error: %w", err)
	}

	m := final.(ui.Model)
	sel, ok := m.Result()
	if !ok {
		return scroll.Selection{}, ErrAborted
	}
	return sel, nil
}
