package announcer

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/KirkDiggler/announcer/internal/audio"
	"github.com/KirkDiggler/announcer/internal/models"
)

// service implements the Service interface
type service struct {
	registry Registry
	decoder  Decoder
	sink     Sink
	logger   *slog.Logger

	// decoded clips at the sink rate, filled on first use
	mu    sync.Mutex
	clips map[models.Cue]*audio.Clip

	// seq numbers cues in request order so the sink can tell a late older
	// clip from the newest one
	seq atomic.Uint64

	inflight sync.WaitGroup
}

// New creates a new announcer service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Registry == nil {
		return nil, ErrNilRegistry
	}

	if cfg.Decoder == nil {
		return nil, ErrNilDecoder
	}

	if cfg.Sink == nil {
		return nil, ErrNilSink
	}

	if cfg.Sink.SampleRate() <= 0 {
		return nil, ErrBadRate
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		registry: cfg.Registry,
		decoder:  cfg.Decoder,
		sink:     cfg.Sink,
		logger:   logger,
		clips:    make(map[models.Cue]*audio.Clip),
	}, nil
}

// Play hands the cue to a goroutine and returns immediately
func (s *service) Play(cue models.Cue) {
	seq := s.seq.Add(1)
	s.inflight.Add(1)
	go s.dispatch(cue, seq)
}

// Wait blocks until every dispatched cue has reached the sink or failed.
// Playback itself may still be sounding.
func (s *service) Wait() {
	s.inflight.Wait()
}

// Preload decodes the given cues ahead of time so the first announcement does
// not pay the decode cost. Failures are logged and left for Play to retry.
func (s *service) Preload(cues []models.Cue) {
	for _, cue := range cues {
		if _, err := s.clip(cue); err != nil {
			s.logger.Warn("failed to preload cue", "cue", cue, "error", err)
		}
	}
}

func (s *service) dispatch(cue models.Cue, seq uint64) {
	defer s.inflight.Done()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("cue playback panicked", "cue", cue, "panic", r)
		}
	}()

	clip, err := s.clip(cue)
	if err != nil {
		s.logger.Warn("cue playback failed", "cue", cue, "error", err)
		return
	}

	s.sink.Play(seq, clip.Samples)

	s.logger.Debug("cue dispatched",
		"cue", cue,
		"seq", seq,
		"duration", fmt.Sprintf("%.2fs", clip.Duration()),
	)
}

// clip returns the decoded clip for a cue, decoding it on first use. Two
// concurrent first uses may both decode; the last one wins the cache.
func (s *service) clip(cue models.Cue) (*audio.Clip, error) {
	s.mu.Lock()
	cached, ok := s.clips[cue]
	s.mu.Unlock()
	if ok {
		return cached, nil
	}

	resource, err := s.registry.Lookup(cue)
	if err != nil {
		return nil, err
	}

	data, err := resource.Load()
	if err != nil {
		return nil, err
	}

	decoded, err := s.decoder.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", resource.Source, err)
	}

	clip := audio.ResampleClip(decoded, s.sink.SampleRate())
	if len(clip.Samples) == 0 {
		return nil, fmt.Errorf("%s: %w", resource.Source, audio.ErrEmptyClip)
	}

	s.mu.Lock()
	s.clips[cue] = clip
	s.mu.Unlock()

	return clip, nil
}
