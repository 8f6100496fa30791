package announcer

import (
	"log/slog"

	"github.com/KirkDiggler/announcer/internal/audio"
	"github.com/KirkDiggler/announcer/internal/cues"
	"github.com/KirkDiggler/announcer/internal/models"
)

// Registry resolves a cue to its clip
type Registry interface {
	Lookup(cue models.Cue) (*cues.Resource, error)
}

// Decoder turns clip bytes into samples
type Decoder interface {
	Decode(data []byte) (*audio.Clip, error)
}

// Sink is the shared output handle clips are handed to. Play must not block
// on playback and must not modify the samples. seq is the order the cue was
// requested in, higher is newer; clips may arrive out of that order.
type Sink interface {
	Play(seq uint64, samples []float32)
	SampleRate() int
}

// Config holds configuration for the announcer service
type Config struct {
	// Registry of cue clips
	Registry Registry

	// Decoder for clip bytes
	Decoder Decoder

	// Sink is the output device mixer
	Sink Sink

	// Logger (optional)
	Logger *slog.Logger
}
