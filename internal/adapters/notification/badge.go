package notification

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomato-timer/tomato/internal/ports"
)

// StatusFile writes the timer indicator to a small file in the data
// directory so shell prompts and status bars can display it.
type StatusFile struct {
	path string
}

// NewStatusFile creates a badge writer rooted at the given data directory.
func NewStatusFile(dataDir string) *StatusFile {
	return &StatusFile{path: filepath.Join(dataDir, "status")}
}

// Ensure StatusFile implements ports.Badge.
var _ ports.Badge = (*StatusFile)(nil)

// SetIndicator writes the indicator text, e.g. "24:59" or "||".
func (s *StatusFile) SetIndicator(text string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create status directory: %w", err)
	}
	return os.WriteFile(s.path, []byte(text+"\n"), 0644)
}

// Clear removes the indicator file.
func (s *StatusFile) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
