// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomato-timer/tomato/internal/config"
	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/services"
)

// tickMsg is sent on every timer tick.
type tickMsg time.Time

// tickCmd schedules the next once-per-second tick.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Model represents the TUI state. The countdown itself lives in the
// engine; the model drives it from the tick loop and renders snapshots.
type Model struct {
	engine   *services.TimerService
	tasks    *services.TaskService
	progress progress.Model
	theme    config.ThemeConfig

	taskName string
	width    int
	height   int
	flash    string // one-tick feedback line, e.g. after a mode switch
	err      error
}

// NewModel creates a new TUI model.
func NewModel(engine *services.TimerService, tasks *services.TaskService, theme config.ThemeConfig) Model {
	return Model{
		engine:   engine,
		tasks:    tasks,
		progress: progress.New(progress.WithGradient(theme.GradientStart, theme.GradientEnd)),
		theme:    theme,
		width:    defaultWidth(),
	}
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), m.loadTaskCmd())
}

// taskMsg carries the refreshed current task name.
type taskMsg string

func (m Model) loadTaskCmd() tea.Cmd {
	return func() tea.Msg {
		task, err := m.tasks.CurrentTask(context.Background())
		if err != nil || task == nil {
			return taskMsg("")
		}
		return taskMsg(task.Name)
	}
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = clampWidth(msg.Width - 8)
		return m, nil

	case taskMsg:
		m.taskName = string(msg)
		return m, nil

	case tickMsg:
		m.flash = ""
		result, err := m.engine.Tick(context.Background())
		if err != nil {
			m.err = err
		} else if c := result.Completion; c != nil {
			m.flash = completionFlash(c)
		}
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	ctx := context.Background()
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit

	case " ", "enter":
		var err error
		if m.engine.Snapshot().IsRunning {
			_, err = m.engine.Pause(ctx)
		} else {
			_, err = m.engine.Start(ctx)
		}
		m.err = err
		return m, nil

	case "r":
		_, m.err = m.engine.Reset(ctx)
		return m, nil

	case "w", "1":
		return m.switchTo(ctx, domain.ModeWork)
	case "b", "2":
		return m.switchTo(ctx, domain.ModeBreak)
	case "l", "3":
		return m.switchTo(ctx, domain.ModeLongBreak)
	}
	return m, nil
}

func (m Model) switchTo(ctx context.Context, mode domain.Mode) (tea.Model, tea.Cmd) {
	_, m.err = m.engine.SwitchMode(ctx, mode)
	return m, nil
}

func completionFlash(c *domain.Completion) string {
	if c.Finished == domain.ModeWork {
		if c.Next == domain.ModeLongBreak {
			return "Session complete. Long break time!"
		}
		return "Session complete. Break time!"
	}
	return "Break over. Back to work!"
}

func clampWidth(w int) int {
	if w < 20 {
		return 20
	}
	if w > 60 {
		return 60
	}
	return w
}
