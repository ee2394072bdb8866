package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/holiday-planner/internal/tui"
)

type App struct {
	tui *tui.TUI
}

func NewApp(ui *tui.TUI) (*App, error) {
	if ui == nil {
		return nil, errNoUIProvided
	}
	return &App{tui: ui}, nil
}

// Run blocks until the interactive session ends. A quit initiated by the
// user is a normal exit, not an error.
func (a *App) Run() error {
	if err := a.tui.Run(context.Background()); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}
	return nil
}
