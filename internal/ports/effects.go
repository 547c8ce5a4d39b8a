package ports

import "context"

// Notifier delivers fire-and-forget desktop notifications on mode
// completion. This is a driven port (implemented by adapters).
type Notifier interface {
	Notify(title, message string) error
}

// SoundKind identifies one of the timer's tones.
type SoundKind string

const (
	SoundTick          SoundKind = "tick"
	SoundWorkComplete  SoundKind = "workComplete"
	SoundBreakComplete SoundKind = "breakComplete"
)

// Audio plays timer tones. Fire and forget; playback errors are the
// adapter's problem. This is a driven port.
type Audio interface {
	Play(kind SoundKind)
}

// Badge reflects the timer on an always-visible surface (a status-bar
// file for this CLI). This is a driven port.
type Badge interface {
	// SetIndicator shows text (remaining time or a paused marker).
	SetIndicator(text string) error

	// Clear removes the indicator entirely.
	Clear() error
}

// GitInfo is the git context detected for a work session.
type GitInfo struct {
	Branch string
	Commit string
}

// GitDetector captures repository context at session completion.
// This is a driven port.
type GitDetector interface {
	// Detect returns git context for the directory, or an error when
	// it is not inside a repository.
	Detect(ctx context.Context, workingDir string) (*GitInfo, error)

	// IsAvailable reports whether detection is worth attempting.
	IsAvailable() bool
}
