package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/store/memstore"
)

// Run starts the interactive list on the alternate screen and blocks until
// the user quits or ctx is cancelled. Nothing is kept after it returns.
func Run(ctx context.Context, store *memstore.Store, opt Options) error {
	// stdout belongs to Bubble Tea; logs go to a file or nowhere.
	if opt.LogFile != "" {
		f, err := tea.LogToFile(opt.LogFile, "shoplist")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer func() { _ = f.Close() }()
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(New(store, opt), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return err
	}
	return nil
}
