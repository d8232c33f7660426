package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
)

// Run starts the terminal UI and blocks until the user quits or ctx ends
func Run(ctx context.Context, m Model) error {
	m.ctx = ctx
	program := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
