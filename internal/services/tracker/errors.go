package tracker

import "errors"

// TrackerError is an error returned by the tracker service
type TrackerError string

func (e TrackerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     TrackerError = "config cannot be nil"
	ErrNilPlayerRepo TrackerError = "player repository cannot be nil"
	ErrNilClassifier TrackerError = "classifier cannot be nil"
	ErrNilAnnouncer  TrackerError = "announcer cannot be nil"
	ErrNilClock      TrackerError = "clock cannot be nil"
)

// Validation errors. Updates failing these never reach the store.
const (
	ErrNilInput        TrackerError = "input cannot be nil"
	ErrEmptyName       TrackerError = "name cannot be empty"
	ErrKillsOutOfRange TrackerError = "kills out of range"
)

// IsValidationError returns true for errors caused by the caller's input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrNilInput) ||
		errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrKillsOutOfRange)
}
