package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomato-timer/tomato/internal/config"
	"github.com/tomato-timer/tomato/internal/services"
)

// Run starts the timer interface and blocks until the user quits.
func Run(ctx context.Context, engine *services.TimerService, tasks *services.TaskService, theme config.ThemeConfig) error {
	model := NewModel(engine, tasks, theme)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
