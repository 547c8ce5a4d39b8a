package domain

// TimerState is the countdown state machine at the heart of the timer.
//
// It is a plain value with no clock of its own: something external
// (the timer engine) calls Tick once a second while the timer runs.
// Sessions counts completed work sessions over the lifetime of the
// state and is never reset by Reset or SwitchMode.
type TimerState struct {
	Mode      Mode `json:"mode"`
	TimeLeft  int  `json:"timeLeft"` // seconds
	IsRunning bool `json:"isRunning"`
	Sessions  int  `json:"sessions"`
}

// TickResult describes what a single Tick did.
type TickResult struct {
	Ticked     bool
	Completion *Completion
}

// Completion describes a countdown that just reached zero.
type Completion struct {
	Finished    Mode // the mode whose countdown completed
	Next        Mode
	Sessions    int  // lifetime work sessions after this completion
	AutoStarted bool // next countdown began immediately per settings
}

// NewTimerState returns a fresh state: work mode, full duration, not
// running. This is also the cold-start state of the engine.
func NewTimerState(s Settings) TimerState {
	return TimerState{
		Mode:     ModeWork,
		TimeLeft: s.DurationSeconds(ModeWork),
	}
}

// Start begins or resumes the countdown. Starting at zero is a no-op;
// a completed countdown must be reset or switched first.
func (t *TimerState) Start() {
	if t.TimeLeft == 0 {
		return
	}
	t.IsRunning = true
}

// Pause stops the countdown without losing progress.
func (t *TimerState) Pause() {
	t.IsRunning = false
}

// Reset stops the countdown and restores the current mode's full
// duration. Applying it twice is the same as applying it once.
func (t *TimerState) Reset(s Settings) {
	t.IsRunning = false
	t.TimeLeft = s.DurationSeconds(t.Mode)
}

// SwitchMode moves to a different mode, stopped at its full duration.
func (t *TimerState) SwitchMode(m Mode, s Settings) {
	t.Mode = m
	t.IsRunning = false
	t.TimeLeft = s.DurationSeconds(m)
}

// ClampTo enforces TimeLeft <= duration(mode) after a settings change.
func (t *TimerState) ClampTo(s Settings) {
	if max := s.DurationSeconds(t.Mode); t.TimeLeft > max {
		t.TimeLeft = max
	}
}

// Tick advances the countdown by one second. It is a no-op unless the
// timer is running with time remaining; completion fires exactly when
// TimeLeft reaches zero.
func (t *TimerState) Tick(s Settings) TickResult {
	if !t.IsRunning || t.TimeLeft == 0 {
		return TickResult{}
	}
	t.TimeLeft--
	if t.TimeLeft > 0 {
		return TickResult{Ticked: true}
	}
	return TickResult{Ticked: true, Completion: t.complete(s)}
}

// complete handles a countdown reaching zero: records the work session,
// picks the next mode, and auto-starts it if configured.
func (t *TimerState) complete(s Settings) *Completion {
	t.IsRunning = false
	c := &Completion{Finished: t.Mode}

	if t.Mode == ModeWork {
		t.Sessions++
		if t.Sessions%SessionsBeforeLongBreak == 0 {
			t.Mode = ModeLongBreak
		} else {
			t.Mode = ModeBreak
		}
		t.IsRunning = s.AutoStartBreaks
	} else {
		t.Mode = ModeWork
		t.IsRunning = s.AutoStartWork
	}

	t.TimeLeft = s.DurationSeconds(t.Mode)
	c.Next = t.Mode
	c.Sessions = t.Sessions
	c.AutoStarted = t.IsRunning
	return c
}

// AtFullDuration reports whether the countdown sits untouched at the
// top of the current mode, the state in which the indicator is cleared.
func (t TimerState) AtFullDuration(s Settings) bool {
	return t.TimeLeft == s.DurationSeconds(t.Mode)
}
