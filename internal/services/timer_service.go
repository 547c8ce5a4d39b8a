// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomato-timer/tomato/internal/domain"
	"github.com/tomato-timer/tomato/internal/ports"
)

// TimerService is the timer engine: the single writer of the countdown
// state. It owns loading and persisting the state, and fires the
// completion side effects (history, notification, sound, badge, git
// context) when a countdown reaches zero.
type TimerService struct {
	mu sync.Mutex

	store       ports.Store
	notifier    ports.Notifier
	audio       ports.Audio
	badge       ports.Badge
	gitDetector ports.GitDetector

	settings domain.Settings
	state    domain.TimerState

	now func() time.Time
}

// TimerOption customizes a TimerService.
type TimerOption func(*TimerService)

// WithNotifier wires desktop notifications.
func WithNotifier(n ports.Notifier) TimerOption {
	return func(s *TimerService) { s.notifier = n }
}

// WithAudio wires completion and tick sounds.
func WithAudio(a ports.Audio) TimerOption {
	return func(s *TimerService) { s.audio = a }
}

// WithBadge wires the always-visible timer indicator.
func WithBadge(b ports.Badge) TimerOption {
	return func(s *TimerService) { s.badge = b }
}

// WithGitDetector wires git context capture for work sessions.
func WithGitDetector(d ports.GitDetector) TimerOption {
	return func(s *TimerService) { s.gitDetector = d }
}

// WithClock overrides the engine's clock, for tests.
func WithClock(now func() time.Time) TimerOption {
	return func(s *TimerService) { s.now = now }
}

// NewTimerService loads settings and any persisted countdown state from
// the store and returns a ready engine.
func NewTimerService(ctx context.Context, store ports.Store, opts ...TimerOption) (*TimerService, error) {
	s := &TimerService{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	settings, err := store.Settings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	s.settings = settings

	state, ok, err := store.TimerState(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load timer state: %w", err)
	}
	if !ok {
		state = domain.NewTimerState(settings)
	} else {
		// A crashed or killed process cannot tick while gone; resume
		// paused with whatever time was left.
		state.IsRunning = false
		state.ClampTo(settings)
	}
	s.state = state

	return s, nil
}

// Snapshot returns a copy of the current countdown state.
func (s *TimerService) Snapshot() domain.TimerState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Settings returns the engine's active settings.
func (s *TimerService) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Start begins or resumes the countdown.
func (s *TimerService) Start(ctx context.Context) (domain.TimerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Start()
	return s.state, s.persist(ctx)
}

// Pause stops the countdown without losing progress.
func (s *TimerService) Pause(ctx context.Context) (domain.TimerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Pause()
	return s.state, s.persist(ctx)
}

// Reset restores the current mode's full duration, stopped.
func (s *TimerService) Reset(ctx context.Context) (domain.TimerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Reset(s.settings)
	return s.state, s.persist(ctx)
}

// SwitchMode moves to the given mode, stopped at its full duration.
func (s *TimerService) SwitchMode(ctx context.Context, m domain.Mode) (domain.TimerState, error) {
	if !domain.ValidMode(m) {
		return domain.TimerState{}, fmt.Errorf("unknown mode %q", m)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.SwitchMode(m, s.settings)
	return s.state, s.persist(ctx)
}

// ApplySettings swaps in new settings, clamping the countdown so the
// remaining time never exceeds the new mode duration.
func (s *TimerService) ApplySettings(ctx context.Context, settings domain.Settings) error {
	if err := settings.ValidateDurations(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	s.state.ClampTo(settings)
	if err := s.store.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return s.persist(ctx)
}

// Tick advances the countdown by one second and runs any completion
// side effects. Callers drive it from a once-per-second loop.
func (s *TimerService) Tick(ctx context.Context) (domain.TickResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := s.state.Tick(s.settings)
	if !result.Ticked {
		return result, nil
	}

	if result.Completion != nil {
		if err := s.onComplete(ctx, result.Completion); err != nil {
			return result, err
		}
	} else if s.audio != nil && s.settings.TickSoundEnabled {
		s.audio.Play(ports.SoundTick)
	}

	return result, s.persist(ctx)
}

// Run drives the engine from a wall-clock ticker until ctx is done.
func (s *TimerService) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if _, err := s.Tick(ctx); err != nil {
				return err
			}
		}
	}
}

// onComplete records finished work sessions and fires notifications.
// Called with the lock held, after the state machine already moved to
// the next mode. Breaks notify but leave no history.
func (s *TimerService) onComplete(ctx context.Context, c *domain.Completion) error {
	if c.Finished == domain.ModeWork {
		entry, err := s.historyEntry(ctx, c)
		if err != nil {
			return err
		}
		if err := s.store.AppendHistory(ctx, entry); err != nil {
			return fmt.Errorf("failed to record session: %w", err)
		}
	}

	if s.notifier != nil {
		title, message := completionMessage(c)
		_ = s.notifier.Notify(title, message)
	}
	if s.audio != nil && s.settings.SoundEnabled {
		if c.Finished == domain.ModeWork {
			s.audio.Play(ports.SoundWorkComplete)
		} else {
			s.audio.Play(ports.SoundBreakComplete)
		}
	}
	return nil
}

// historyEntry builds the record for a completed work session: the
// configured duration, attributed to the current task, with git context
// attached when available.
func (s *TimerService) historyEntry(ctx context.Context, c *domain.Completion) (domain.HistoryEntry, error) {
	entry := domain.HistoryEntry{
		ID:          domain.NewID(),
		TaskID:      domain.NoTaskID,
		TaskName:    domain.GenericTaskName,
		Mode:        c.Finished,
		Duration:    s.settings.DurationSeconds(c.Finished),
		CompletedAt: s.now(),
	}

	currentID, err := s.store.CurrentTaskID(ctx)
	if err != nil {
		return entry, fmt.Errorf("failed to load current task: %w", err)
	}
	if currentID != "" {
		tasks, err := s.store.Tasks(ctx)
		if err != nil {
			return entry, fmt.Errorf("failed to load tasks: %w", err)
		}
		for _, task := range tasks {
			if task.ID == currentID {
				entry.TaskID = task.ID
				entry.TaskName = task.Name
				break
			}
		}
	}

	if s.gitDetector != nil && s.gitDetector.IsAvailable() {
		if info, err := s.gitDetector.Detect(ctx, ""); err == nil && info != nil {
			entry.GitBranch = info.Branch
			entry.GitCommit = info.Commit
		}
	}

	return entry, nil
}

// persist saves the countdown state and refreshes the badge. Called
// with the lock held.
func (s *TimerService) persist(ctx context.Context) error {
	if err := s.store.SaveTimerState(ctx, s.state); err != nil {
		return fmt.Errorf("failed to save timer state: %w", err)
	}
	s.updateBadge()
	return nil
}

// updateBadge mirrors the countdown onto the indicator surface: the
// remaining time while running, a pause marker mid-session, nothing at
// the top of a mode.
func (s *TimerService) updateBadge() {
	if s.badge == nil {
		return
	}
	switch {
	case s.state.IsRunning:
		_ = s.badge.SetIndicator(FormatClock(s.state.TimeLeft))
	case !s.state.AtFullDuration(s.settings):
		_ = s.badge.SetIndicator("||")
	default:
		_ = s.badge.Clear()
	}
}

// FormatClock renders seconds as M:SS.
func FormatClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// completionMessage picks the notification text for a completion.
func completionMessage(c *domain.Completion) (title, message string) {
	if c.Finished == domain.ModeWork {
		if c.Next == domain.ModeLongBreak {
			return "🍅 Session complete", "Time for a long break!"
		}
		return "🍅 Session complete", "Time for a break!"
	}
	return "☕ Break over", "Time to work!"
}
