package announcer

// AnnouncerError is a custom error type for announcer configuration errors
type AnnouncerError string

// Error implements the error interface
func (e AnnouncerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig   AnnouncerError = "config cannot be nil"
	ErrNilRegistry AnnouncerError = "cue registry cannot be nil"
	ErrNilDecoder  AnnouncerError = "decoder cannot be nil"
	ErrNilSink     AnnouncerError = "audio sink cannot be nil"
	ErrBadRate     AnnouncerError = "audio sink sample rate must be positive"
)
