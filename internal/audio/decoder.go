// Package audio decodes announcer clips and mixes them for an output device.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tosone/minimp3"
	"github.com/youpy/go-wav"
)

// Format is a detected clip container
type Format string

const (
	FormatWAV     Format = "wav"
	FormatMP3     Format = "mp3"
	FormatUnknown Format = "unknown"
)

var (
	// ErrEmptyClip is returned when a clip decodes to no samples
	ErrEmptyClip = errors.New("clip has no samples")

	// ErrUnknownFormat is returned when the data is neither WAV nor MP3
	ErrUnknownFormat = errors.New("unknown audio format")
)

// Clip is a decoded mono clip
type Clip struct {
	Samples    []float32
	SampleRate int
}

// Duration returns the clip length in seconds
func (c *Clip) Duration() float64 {
	if c.SampleRate == 0 {
		return 0
	}
	return float64(len(c.Samples)) / float64(c.SampleRate)
}

// Decoder turns WAV or MP3 bytes into mono float32 samples
type Decoder struct{}

// NewDecoder creates a new decoder
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode detects the format and decodes the whole clip
func (d *Decoder) Decode(data []byte) (*Clip, error) {
	var (
		clip *Clip
		err  error
	)

	switch DetectFormat(data) {
	case FormatWAV:
		clip, err = d.decodeWAV(data)
	case FormatMP3:
		clip, err = d.decodeMP3(data)
	default:
		return nil, ErrUnknownFormat
	}
	if err != nil {
		return nil, err
	}

	if len(clip.Samples) == 0 {
		return nil, ErrEmptyClip
	}

	return clip, nil
}

// DetectFormat sniffs the container from the first bytes
func DetectFormat(data []byte) Format {
	if len(data) < 4 {
		return FormatUnknown
	}

	if bytes.Equal(data[:4], []byte("RIFF")) {
		return FormatWAV
	}

	// ID3 tag or an MPEG frame sync
	if bytes.Equal(data[:3], []byte("ID3")) || (data[0] == 0xFF && data[1]&0xE0 == 0xE0) {
		return FormatMP3
	}

	return FormatUnknown
}

func (d *Decoder) decodeWAV(data []byte) (*Clip, error) {
	reader := wav.NewReader(bytes.NewReader(data))

	format, err := reader.Format()
	if err != nil {
		return nil, fmt.Errorf("failed to read WAV format: %w", err)
	}

	if format.NumChannels == 0 {
		return nil, errors.New("WAV has no channels")
	}

	normalize := sampleNormalizer(format.AudioFormat, format.BitsPerSample)
	channels := uint(format.NumChannels)
	if channels > 2 {
		// go-wav only exposes two channel values per sample
		channels = 2
	}

	var samples []float32
	for {
		batch, err := reader.ReadSamples()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read WAV samples: %w", err)
		}

		for _, sample := range batch {
			var sum float32
			for ch := uint(0); ch < channels; ch++ {
				sum += normalize(reader.IntValue(sample, ch))
			}
			samples = append(samples, clamp(sum/float32(channels)))
		}
	}

	return &Clip{
		Samples:    samples,
		SampleRate: int(format.SampleRate),
	}, nil
}

func (d *Decoder) decodeMP3(data []byte) (*Clip, error) {
	decoder, pcm, err := minimp3.DecodeFull(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode MP3: %w", err)
	}
	defer decoder.Close()

	channels := decoder.Channels
	if channels <= 0 {
		return nil, errors.New("MP3 has no channels")
	}

	// 16-bit little endian interleaved PCM
	frames := len(pcm) / (2 * channels)
	samples := make([]float32, 0, frames)
	for i := 0; i < frames; i++ {
		var sum float32
		for ch := 0; ch < channels; ch++ {
			offset := (i*channels + ch) * 2
			raw := int16(uint16(pcm[offset]) | uint16(pcm[offset+1])<<8)
			sum += float32(raw) / 32768.0
		}
		samples = append(samples, clamp(sum/float32(channels)))
	}

	return &Clip{
		Samples:    samples,
		SampleRate: decoder.SampleRate,
	}, nil
}

// WAV format tags for the companded encodings go-wav expands to 16-bit values
const (
	wavFormatALaw  = 6
	wavFormatMuLaw = 7
)

// sampleNormalizer maps go-wav integer values to [-1, 1]. 8-bit PCM is
// unsigned and centered on 128; A-law and mu-law arrive already expanded to
// signed 16-bit even though the header says 8 bits.
func sampleNormalizer(audioFormat, bitsPerSample uint16) func(int) float32 {
	if audioFormat == wavFormatALaw || audioFormat == wavFormatMuLaw {
		return scaleBy(32768.0)
	}

	switch bitsPerSample {
	case 8:
		return func(v int) float32 {
			return float32(v-128) / 128.0
		}
	case 24:
		return scaleBy(8388608.0)
	case 32:
		return scaleBy(2147483648.0)
	default:
		return scaleBy(32768.0)
	}
}

func scaleBy(scale float32) func(int) float32 {
	return func(v int) float32 {
		return float32(v) / scale
	}
}

func clamp(sample float32) float32 {
	if sample > 1.0 {
		return 1.0
	}
	if sample < -1.0 {
		return -1.0
	}
	return sample
}
