// Package domain contains the core business entities for Tomato.
// These entities represent the fundamental concepts of the pomodoro timer
// and are independent of any external frameworks or infrastructure.
package domain

import (
	"fmt"
	"strings"
)

// Mode represents the current phase of the pomodoro cycle.
type Mode string

const (
	ModeWork      Mode = "work"
	ModeBreak     Mode = "break"
	ModeLongBreak Mode = "longBreak"
)

// SessionsBeforeLongBreak is the number of completed work sessions
// between long breaks.
const SessionsBeforeLongBreak = 4

// ValidMode reports whether m is one of the three timer modes.
func ValidMode(m Mode) bool {
	switch m {
	case ModeWork, ModeBreak, ModeLongBreak:
		return true
	}
	return false
}

// ParseMode converts user input to a Mode. It accepts a few common
// spellings for the long break.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "work":
		return ModeWork, nil
	case "break", "short", "shortbreak":
		return ModeBreak, nil
	case "longbreak", "long-break", "long":
		return ModeLongBreak, nil
	}
	return "", fmt.Errorf("invalid mode %q: must be work, break, or longbreak", s)
}

// ModeLabel returns a human-readable label for the mode.
func ModeLabel(m Mode) string {
	switch m {
	case ModeWork:
		return "Work"
	case ModeBreak:
		return "Break"
	case ModeLongBreak:
		return "Long Break"
	default:
		return "Unknown"
	}
}
