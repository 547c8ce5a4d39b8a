package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"

	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/services"
)

// defaultWidth probes the terminal before the first WindowSizeMsg.
func defaultWidth() int {
	w, _, err := term.GetSize(os.Stdout.Fd())
	if err != nil || w < 40 {
		return 80
	}
	return w
}

// modeColor picks the theme color for the current mode, dimmed while
// paused mid-session.
func (m Model) modeColor(state domain.TimerState) lipgloss.Color {
	if !state.IsRunning && !state.AtFullDuration(m.engine.Settings()) {
		return lipgloss.Color(m.theme.ColorPaused)
	}
	switch state.Mode {
	case domain.ModeBreak:
		return lipgloss.Color(m.theme.ColorBreak)
	case domain.ModeLongBreak:
		return lipgloss.Color(m.theme.ColorLongBreak)
	default:
		return lipgloss.Color(m.theme.ColorWork)
	}
}

// View renders the timer screen.
func (m Model) View() string {
	state := m.engine.Snapshot()
	settings := m.engine.Settings()
	color := m.modeColor(state)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(color)
	clockStyle := lipgloss.NewStyle().Foreground(color)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorHelp))
	taskStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.ColorTask))

	title := fmt.Sprintf("%s %s", m.theme.IconApp, domain.ModeLabel(state.Mode))
	if !state.IsRunning && !state.AtFullDuration(settings) {
		title += " " + m.theme.IconPaused
	}

	full := settings.DurationSeconds(state.Mode)
	percent := 0.0
	if full > 0 {
		percent = 1 - float64(state.TimeLeft)/float64(full)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(clockStyle.Render(renderBigClock(services.FormatClock(state.TimeLeft))))
	b.WriteString("\n\n")
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n\n")

	if m.taskName != "" {
		b.WriteString(taskStyle.Render(fmt.Sprintf("%s %s", m.theme.IconTask, m.taskName)))
		b.WriteString("\n")
	}
	b.WriteString(taskStyle.Render(fmt.Sprintf("Sessions completed: %d", state.Sessions)))
	b.WriteString("\n\n")

	if m.flash != "" {
		b.WriteString(titleStyle.Render(m.flash))
		b.WriteString("\n\n")
	}
	if m.err != nil {
		b.WriteString(helpStyle.Render("error: " + m.err.Error()))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("space start/pause • r reset • w/b/l mode • q quit"))

	frame := lipgloss.NewStyle().Padding(1, 3).Render(b.String())
	if m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
	}
	return frame
}
