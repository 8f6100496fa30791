package audio

import (
	"fmt"
	"sync"
)

// OverlapPolicy decides what happens to sounding clips when a new one starts
type OverlapPolicy string

const (
	// OverlapMix plays the new clip on top of whatever is sounding
	OverlapMix OverlapPolicy = "mix"

	// OverlapInterrupt silences every sounding clip before starting the new one
	OverlapInterrupt OverlapPolicy = "interrupt"
)

// DefaultMaxVoices caps simultaneous clips under OverlapMix
const DefaultMaxVoices = 4

// ParseOverlapPolicy validates a policy name
func ParseOverlapPolicy(name string) (OverlapPolicy, error) {
	switch OverlapPolicy(name) {
	case "", OverlapMix:
		return OverlapMix, nil
	case OverlapInterrupt:
		return OverlapInterrupt, nil
	}
	return "", fmt.Errorf("unknown overlap policy %q", name)
}

type voice struct {
	seq      uint64
	samples  []float32
	position int
}

// MixerConfig holds mixer settings
type MixerConfig struct {
	// SampleRate of the output the mixer feeds
	SampleRate int

	// Policy for overlapping clips (default OverlapMix)
	Policy OverlapPolicy

	// MaxVoices caps simultaneous clips; the oldest is dropped first
	MaxVoices int
}

// Mixer sums queued clips into an output buffer. Play never blocks on the
// output; Read is called from the device callback.
type Mixer struct {
	mu         sync.Mutex
	voices     []*voice
	newest     uint64
	sampleRate int
	policy     OverlapPolicy
	maxVoices  int
}

// NewMixer creates a mixer for an output running at cfg.SampleRate
func NewMixer(cfg *MixerConfig) (*Mixer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mixer config cannot be nil")
	}

	if cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate %d", cfg.SampleRate)
	}

	policy, err := ParseOverlapPolicy(string(cfg.Policy))
	if err != nil {
		return nil, err
	}

	maxVoices := cfg.MaxVoices
	if maxVoices <= 0 {
		maxVoices = DefaultMaxVoices
	}

	return &Mixer{
		sampleRate: cfg.SampleRate,
		policy:     policy,
		maxVoices:  maxVoices,
	}, nil
}

// SampleRate returns the output rate clips must be resampled to
func (m *Mixer) SampleRate() int {
	return m.sampleRate
}

// Play starts a clip. seq orders clips by when they were requested, higher
// is newer, and decides which clip wins regardless of arrival order. Under
// OverlapInterrupt a clip older than the newest started one is ignored and a
// newer one replaces every voice. Under OverlapMix the lowest seq is dropped
// once the cap is reached.
func (m *Mixer) Play(seq uint64, samples []float32) {
	if len(samples) == 0 {
		return
	}

	v := &voice{seq: seq, samples: samples}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.policy == OverlapInterrupt {
		if seq < m.newest {
			return
		}
		m.newest = seq
		m.voices = []*voice{v}
		return
	}

	if seq > m.newest {
		m.newest = seq
	}

	// Keep voices ordered by seq so the cap always drops the oldest request
	i := len(m.voices)
	for i > 0 && m.voices[i-1].seq > seq {
		i--
	}
	m.voices = append(m.voices, nil)
	copy(m.voices[i+1:], m.voices[i:])
	m.voices[i] = v

	if excess := len(m.voices) - m.maxVoices; excess > 0 {
		m.voices = append(m.voices[:0:0], m.voices[excess:]...)
	}
}

// Read fills out with the mix of all sounding voices, silence when idle
func (m *Mixer) Read(out []float32) {
	for i := range out {
		out[i] = 0
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	active := m.voices[:0]
	for _, v := range m.voices {
		n := copyAdd(out, v.samples[v.position:])
		v.position += n
		if v.position < len(v.samples) {
			active = append(active, v)
		}
	}
	// Clear dropped tail entries so finished clips can be collected
	for i := len(active); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = active

	for i := range out {
		out[i] = clamp(out[i])
	}
}

// Active returns the number of sounding voices
func (m *Mixer) Active() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

// Stop silences every voice
func (m *Mixer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.voices = nil
}

func copyAdd(dst, src []float32) int {
	n := len(src)
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		dst[i] += src[i]
	}
	return n
}
