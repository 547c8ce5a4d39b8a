package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tomato-timer/tomato/internal/adapters/storage"
	"github.com/tomato-timer/tomato/internal/config"
	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/services"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	store, err := storage.NewMemory()
	if err != nil {
		t.Fatalf("Failed to create test storage: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	engine, err := services.NewTimerService(context.Background(), store)
	if err != nil {
		t.Fatalf("NewTimerService() error = %v", err)
	}
	return NewModel(engine, services.NewTaskService(store), config.DefaultThemeConfig())
}

func keyMsg(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_SpaceTogglesRunning(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg(" "))
	m = updated.(Model)
	if !m.engine.Snapshot().IsRunning {
		t.Error("space should start the countdown")
	}

	updated, _ = m.Update(keyMsg(" "))
	m = updated.(Model)
	if m.engine.Snapshot().IsRunning {
		t.Error("space should pause a running countdown")
	}
}

func TestModel_TickAdvancesCountdown(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg(" "))
	m = updated.(Model)
	updated, cmd := m.Update(tickMsg{})
	m = updated.(Model)

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.engine.Snapshot().TimeLeft; got != 25*60-1 {
		t.Errorf("TimeLeft = %d, want %d", got, 25*60-1)
	}
}

func TestModel_ModeKeys(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyMsg("b"))
	m = updated.(Model)
	if got := m.engine.Snapshot().Mode; got != domain.ModeBreak {
		t.Errorf("Mode = %v, want break", got)
	}

	updated, _ = m.Update(keyMsg("l"))
	m = updated.(Model)
	if got := m.engine.Snapshot().Mode; got != domain.ModeLongBreak {
		t.Errorf("Mode = %v, want longBreak", got)
	}

	updated, _ = m.Update(keyMsg("w"))
	m = updated.(Model)
	if got := m.engine.Snapshot().Mode; got != domain.ModeWork {
		t.Errorf("Mode = %v, want work", got)
	}
}

func TestModel_ViewShowsClock(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	if !strings.Contains(view, "start/pause") {
		t.Error("View() should include the key help")
	}
	if !strings.Contains(view, "Sessions completed: 0") {
		t.Errorf("View() should show the session count")
	}
}

func TestRenderBigClock(t *testing.T) {
	out := renderBigClock("25:00")
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("renderBigClock() produced %d lines, want 5", len(lines))
	}
	for i := 1; i < len(lines); i++ {
		if len([]rune(lines[i])) != len([]rune(lines[0])) {
			t.Errorf("line %d width %d differs from line 0 width %d", i, len([]rune(lines[i])), len([]rune(lines[0])))
		}
	}
}
