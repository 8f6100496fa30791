package audio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/youpy/go-wav"
)

func encodeWAV(t *testing.T, channels uint16, sampleRate uint32, frames [][2]int) []byte {
	t.Helper()
	return encodeWAVBits(t, channels, sampleRate, 16, frames)
}

func encodeWAVBits(t *testing.T, channels uint16, sampleRate uint32, bits uint16, frames [][2]int) []byte {
	t.Helper()

	var buf bytes.Buffer
	writer := wav.NewWriter(&buf, uint32(len(frames)), channels, sampleRate, bits)

	samples := make([]wav.Sample, len(frames))
	for i, frame := range frames {
		samples[i] = wav.Sample{Values: frame}
	}
	require.NoError(t, writer.WriteSamples(samples))

	return buf.Bytes()
}

func TestDecodeMonoWAV(t *testing.T) {
	data := encodeWAV(t, 1, 22050, [][2]int{{16384}, {-16384}, {0}, {32767}})

	clip, err := NewDecoder().Decode(data)
	require.NoError(t, err)

	assert.Equal(t, 22050, clip.SampleRate)
	require.Len(t, clip.Samples, 4)
	assert.InDelta(t, 0.5, clip.Samples[0], 0.001)
	assert.InDelta(t, -0.5, clip.Samples[1], 0.001)
	assert.InDelta(t, 0.0, clip.Samples[2], 0.001)
	assert.InDelta(t, 1.0, clip.Samples[3], 0.001)
}

func TestDecode8BitWAVIsCentered(t *testing.T) {
	data := encodeWAVBits(t, 1, 8000, 8, [][2]int{{128}, {128}, {255}, {0}, {192}})

	clip, err := NewDecoder().Decode(data)
	require.NoError(t, err)

	require.Len(t, clip.Samples, 5)
	assert.InDelta(t, 0.0, clip.Samples[0], 0.001, "128 is silence in unsigned 8-bit")
	assert.InDelta(t, 0.0, clip.Samples[1], 0.001)
	assert.InDelta(t, 0.992, clip.Samples[2], 0.001)
	assert.InDelta(t, -1.0, clip.Samples[3], 0.001)
	assert.InDelta(t, 0.5, clip.Samples[4], 0.001)
}

func TestSampleNormalizer(t *testing.T) {
	testCases := []struct {
		name          string
		audioFormat   uint16
		bitsPerSample uint16
		value         int
		want          float32
	}{
		{name: "8-bit silence", audioFormat: 1, bitsPerSample: 8, value: 128, want: 0},
		{name: "8-bit low", audioFormat: 1, bitsPerSample: 8, value: 0, want: -1},
		{name: "16-bit half", audioFormat: 1, bitsPerSample: 16, value: 16384, want: 0.5},
		{name: "24-bit half", audioFormat: 1, bitsPerSample: 24, value: 4194304, want: 0.5},
		{name: "32-bit half", audioFormat: 1, bitsPerSample: 32, value: 1073741824, want: 0.5},
		{name: "a-law expanded", audioFormat: wavFormatALaw, bitsPerSample: 8, value: -16384, want: -0.5},
		{name: "mu-law silence", audioFormat: wavFormatMuLaw, bitsPerSample: 8, value: 0, want: 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			normalize := sampleNormalizer(tc.audioFormat, tc.bitsPerSample)
			assert.InDelta(t, tc.want, normalize(tc.value), 0.0001)
		})
	}
}

func TestDecodeStereoWAVDownmixes(t *testing.T) {
	data := encodeWAV(t, 2, 44100, [][2]int{{16384, 0}, {16384, 16384}, {-16384, 16384}})

	clip, err := NewDecoder().Decode(data)
	require.NoError(t, err)

	assert.Equal(t, 44100, clip.SampleRate)
	require.Len(t, clip.Samples, 3)
	assert.InDelta(t, 0.25, clip.Samples[0], 0.001)
	assert.InDelta(t, 0.5, clip.Samples[1], 0.001)
	assert.InDelta(t, 0.0, clip.Samples[2], 0.001)
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := NewDecoder().Decode([]byte("definitely not audio"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = NewDecoder().Decode(nil)
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestDetectFormat(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want Format
	}{
		{name: "riff header", data: []byte("RIFF\x00\x00\x00\x00WAVE"), want: FormatWAV},
		{name: "id3 tag", data: []byte("ID3\x04\x00"), want: FormatMP3},
		{name: "mpeg frame sync", data: []byte{0xFF, 0xFB, 0x90, 0x64}, want: FormatMP3},
		{name: "too short", data: []byte("RIF"), want: FormatUnknown},
		{name: "text", data: []byte("hello"), want: FormatUnknown},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DetectFormat(tc.data))
		})
	}
}

func TestClipDuration(t *testing.T) {
	clip := &Clip{Samples: make([]float32, 22050), SampleRate: 44100}
	assert.InDelta(t, 0.5, clip.Duration(), 0.0001)

	assert.Zero(t, (&Clip{}).Duration())
}

func TestResample(t *testing.T) {
	samples := []float32{0, 1, 0, -1}

	same := Resample(samples, 44100, 44100)
	assert.Equal(t, samples, same)
	same[0] = 9
	assert.Equal(t, float32(0), samples[0], "resample must copy")

	up := Resample(samples, 1, 2)
	require.Len(t, up, 8)
	assert.InDelta(t, 0.5, up[1], 0.0001)
	assert.InDelta(t, 1.0, up[2], 0.0001)
	assert.InDelta(t, -1.0, up[7], 0.0001)

	down := Resample(samples, 2, 1)
	require.Len(t, down, 2)
	assert.InDelta(t, 0.0, down[0], 0.0001)
	assert.InDelta(t, 0.0, down[1], 0.0001)

	assert.Empty(t, Resample(nil, 22050, 44100))
}

func TestResampleClip(t *testing.T) {
	clip := &Clip{Samples: []float32{0, 1}, SampleRate: 1}
	out := ResampleClip(clip, 2)
	assert.Equal(t, 2, out.SampleRate)
	assert.Len(t, out.Samples, 4)
	assert.Equal(t, 1, clip.SampleRate)
}
