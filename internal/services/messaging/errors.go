package messaging

// MessagingError is an error returned by the messaging service
type MessagingError string

func (e MessagingError) Error() string {
	return string(e)
}

const (
	// ErrNilInput is returned when an operation receives a nil input
	ErrNilInput MessagingError = "input cannot be nil"

	// ErrNoCue is returned when a cue message is requested for an empty cue
	ErrNoCue MessagingError = "cue is required"

	// ErrUnknownCue is returned for cues the service has no lines for
	ErrUnknownCue MessagingError = "unknown cue"
)
