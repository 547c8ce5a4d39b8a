// Package notification provides desktop notification utilities.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/tomato-timer/tomato/internal/ports"
)

// Notifier handles desktop notifications.
type Notifier struct {
	enabled bool
}

// New creates a new notifier. When enabled is false all calls are no-ops.
func New(enabled bool) *Notifier {
	return &Notifier{enabled: enabled}
}

// Ensure Notifier implements ports.Notifier.
var _ ports.Notifier = (*Notifier)(nil)

// Notify displays a desktop notification if enabled.
func (n *Notifier) Notify(title, message string) error {
	if !n.enabled {
		return nil
	}
	return beeep.Notify(title, message, "")
}

// IsEnabled returns true if notifications are enabled.
func (n *Notifier) IsEnabled() bool {
	return n.enabled
}
