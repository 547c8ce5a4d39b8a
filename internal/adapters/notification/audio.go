package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/tomato-timer/tomato/internal/ports"
)

// Tone frequencies and durations for the system beeper, in Hz and ms.
// Work completion gets a higher, longer tone than the per-second tick.
const (
	tickFreq    = 440.0
	tickMillis  = 40
	workFreq    = 880.0
	workMillis  = 400
	breakFreq   = 660.0
	breakMillis = 300
)

// Audio plays timer tones through the system beeper.
type Audio struct{}

// NewAudio creates a new audio player.
func NewAudio() *Audio {
	return &Audio{}
}

// Ensure Audio implements ports.Audio.
var _ ports.Audio = (*Audio)(nil)

// Play plays the tone for the given sound kind. Playback errors are
// swallowed; a silent beeper should never interrupt the timer.
func (a *Audio) Play(kind ports.SoundKind) {
	switch kind {
	case ports.SoundTick:
		_ = beeep.Beep(tickFreq, tickMillis)
	case ports.SoundWorkComplete:
		_ = beeep.Beep(workFreq, workMillis)
	case ports.SoundBreakComplete:
		_ = beeep.Beep(breakFreq, breakMillis)
	}
}
