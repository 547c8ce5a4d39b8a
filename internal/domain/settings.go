package domain

import "time"

// Settings holds the user-configurable timer behavior. The record is
// replaced wholesale on save.
type Settings struct {
	WorkDuration      int  `json:"workDuration"`      // minutes
	BreakDuration     int  `json:"breakDuration"`     // minutes
	LongBreakDuration int  `json:"longBreakDuration"` // minutes
	AutoStartBreaks   bool `json:"autoStartBreaks"`
	AutoStartWork     bool `json:"autoStartWork"`
	SoundEnabled      bool `json:"soundEnabled"`
	TickSoundEnabled  bool `json:"tickSoundEnabled"`
	OpenOnComplete    bool `json:"openOnComplete"`
	DailyGoal         int  `json:"dailyGoal"`   // work sessions per day
	WeeklyGoal        int  `json:"weeklyGoal"`  // work sessions per week
	MonthlyGoal       int  `json:"monthlyGoal"` // work sessions per month
}

// DefaultSettings returns the standard pomodoro configuration.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:      25,
		BreakDuration:     5,
		LongBreakDuration: 15,
		AutoStartBreaks:   false,
		AutoStartWork:     false,
		SoundEnabled:      true,
		TickSoundEnabled:  false,
		OpenOnComplete:    true,
		DailyGoal:         4,
		WeeklyGoal:        20,
		MonthlyGoal:       80,
	}
}

// Duration maps a mode to its configured length. Pure and total.
func (s Settings) Duration(m Mode) time.Duration {
	return time.Duration(s.DurationSeconds(m)) * time.Second
}

// DurationSeconds is Duration expressed in whole seconds, the unit the
// countdown operates in.
func (s Settings) DurationSeconds(m Mode) int {
	switch m {
	case ModeBreak:
		return s.BreakDuration * 60
	case ModeLongBreak:
		return s.LongBreakDuration * 60
	default:
		return s.WorkDuration * 60
	}
}

// ValidateDurations checks the configured durations against the bounds
// suggested by the UI (1-60 minutes). The timer itself accepts any
// settings it is handed; this is input validation for the config layer.
func (s Settings) ValidateDurations() error {
	for _, m := range []int{s.WorkDuration, s.BreakDuration, s.LongBreakDuration} {
		if m < 1 || m > 60 {
			return ErrInvalidDuration
		}
	}
	return nil
}
