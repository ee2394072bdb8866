package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/holiday-planner/internal/adapter"
	"github.com/MKhiriev/holiday-planner/internal/logger"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	api adapter.PlannerAPI
}

func New(api adapter.PlannerAPI, _ *logger.Logger) (*TUI, error) {
	return &TUI{api: api}, nil
}

// Run drives the interactive planner until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.api)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(mainLoopModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
