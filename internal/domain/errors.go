package domain

import "errors"

// Common domain errors.
var (
	ErrEmptyTaskName      = errors.New("task name cannot be empty")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidDuration    = errors.New("duration must be between 1 and 60 minutes")
	ErrImportTooLarge     = errors.New("import file exceeds the 5 MB limit")
	ErrImportNotCSV       = errors.New("import file must be a .csv file")
	ErrImportRateLimit    = errors.New("imports are limited to one every 5 seconds")
	ErrImportTimeout      = errors.New("import exceeded the 30 second processing limit")
	ErrImportBadFormat    = errors.New("file does not match the expected CSV format")
	ErrImportNeedsConfirm = errors.New("import requires confirmation")
)
