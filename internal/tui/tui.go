package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lexpath/lexpath"
)

type Handler struct {
	grammar lexpath.Grammar
	strict  bool
	program *tea.Program
}

func NewHandler(grammar lexpath.Grammar, strict bool) *Handler {
	return &Handler{
		grammar: grammar,
		strict:  strict,
	}
}

func (tuiHandler *Handler) Launch(ctx context.Context, cancel context.CancelFunc) error {
	// Create a new tea program
	model := NewTeaModel(tuiHandler.grammar, tuiHandler.strict, cancel)

	tuiHandler.program = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Start the program
	if _, err := tuiHandler.program.Run(); err != nil {
		return fmt.Errorf("(tui-tea) %w", err)
	}

	return nil
}

func (tuiHandler *Handler) Stop() {
	if tuiHandler.program != nil {
		tuiHandler.program.Kill()
	}
}
