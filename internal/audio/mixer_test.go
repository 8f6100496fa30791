package audio

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MixerTestSuite struct {
	suite.Suite
	mixer *Mixer
}

func (s *MixerTestSuite) SetupTest() {
	mixer, err := NewMixer(&MixerConfig{
		SampleRate: 8000,
		MaxVoices:  2,
	})
	s.Require().NoError(err)
	s.mixer = mixer
}

func TestMixerTestSuite(t *testing.T) {
	suite.Run(t, new(MixerTestSuite))
}

func (s *MixerTestSuite) TestSilenceWhenIdle() {
	out := []float32{1, 1, 1}
	s.mixer.Read(out)
	s.Equal([]float32{0, 0, 0}, out)
}

func (s *MixerTestSuite) TestPlaysClipAcrossReads() {
	s.mixer.Play(1, []float32{0.1, 0.2, 0.3})

	out := make([]float32, 2)
	s.mixer.Read(out)
	s.InDeltaSlice([]float32{0.1, 0.2}, out, 0.0001)
	s.Equal(1, s.mixer.Active())

	s.mixer.Read(out)
	s.InDeltaSlice([]float32{0.3, 0}, out, 0.0001)
	s.Equal(0, s.mixer.Active())
}

func (s *MixerTestSuite) TestMixesOverlappingClips() {
	s.mixer.Play(1, []float32{0.25, 0.25})
	s.mixer.Play(2, []float32{0.5, 0.5, 0.5})

	out := make([]float32, 3)
	s.mixer.Read(out)
	s.InDeltaSlice([]float32{0.75, 0.75, 0.5}, out, 0.0001)
}

func (s *MixerTestSuite) TestClampsMix() {
	s.mixer.Play(1, []float32{0.8})
	s.mixer.Play(2, []float32{0.8})

	out := make([]float32, 1)
	s.mixer.Read(out)
	s.Equal(float32(1), out[0])
}

func (s *MixerTestSuite) TestDropsOldestWhenFull() {
	s.mixer.Play(1, []float32{0.1, 0.1})
	s.mixer.Play(2, []float32{0.2, 0.2})
	s.mixer.Play(3, []float32{0.4, 0.4})

	s.Equal(2, s.mixer.Active())

	out := make([]float32, 1)
	s.mixer.Read(out)
	s.InDelta(0.6, out[0], 0.0001, "newest two clips must be kept")
}

func (s *MixerTestSuite) TestInterruptReplacesSoundingClips() {
	mixer, err := NewMixer(&MixerConfig{
		SampleRate: 8000,
		Policy:     OverlapInterrupt,
	})
	s.Require().NoError(err)

	mixer.Play(1, []float32{0.1, 0.1, 0.1})
	mixer.Play(2, []float32{0.5})

	s.Equal(1, mixer.Active())

	out := make([]float32, 2)
	mixer.Read(out)
	s.InDeltaSlice([]float32{0.5, 0}, out, 0.0001)
}

func (s *MixerTestSuite) TestInterruptIgnoresOlderLateClip() {
	mixer, err := NewMixer(&MixerConfig{
		SampleRate: 8000,
		Policy:     OverlapInterrupt,
	})
	s.Require().NoError(err)

	// The newer clip is ready first, the older one arrives after it
	mixer.Play(2, []float32{0.9, 0.9})
	mixer.Play(1, []float32{0.1, 0.1, 0.1})

	out := make([]float32, 3)
	mixer.Read(out)
	s.InDeltaSlice([]float32{0.9, 0.9, 0}, out, 0.0001)

	// Later requests still interrupt
	mixer.Play(3, []float32{0.3})
	mixer.Read(out)
	s.InDeltaSlice([]float32{0.3, 0, 0}, out, 0.0001)
}

func (s *MixerTestSuite) TestCapDropsOldestRequestNotLastArrival() {
	s.mixer.Play(2, []float32{0.2, 0.2})
	s.mixer.Play(3, []float32{0.4, 0.4})
	s.mixer.Play(1, []float32{0.1, 0.1})

	s.Equal(2, s.mixer.Active())

	out := make([]float32, 1)
	s.mixer.Read(out)
	s.InDelta(0.6, out[0], 0.0001, "the late arrival is the oldest request and is dropped")
}

func (s *MixerTestSuite) TestCapKeepsNewestWhenOlderArrivesBetween() {
	s.mixer.Play(1, []float32{0.1, 0.1})
	s.mixer.Play(4, []float32{0.4, 0.4})
	s.mixer.Play(2, []float32{0.2, 0.2})

	out := make([]float32, 1)
	s.mixer.Read(out)
	s.InDelta(0.6, out[0], 0.0001)
}

func (s *MixerTestSuite) TestEmptyClipIgnored() {
	s.mixer.Play(1, nil)
	s.Equal(0, s.mixer.Active())
}

func (s *MixerTestSuite) TestStop() {
	s.mixer.Play(1, []float32{0.1, 0.1})
	s.mixer.Stop()
	s.Equal(0, s.mixer.Active())
}

func (s *MixerTestSuite) TestConcurrentPlayAndRead() {
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(seq uint64) {
			defer wg.Done()
			s.mixer.Play(seq, []float32{0.01, 0.01, 0.01})
		}(uint64(i + 1))
		go func() {
			defer wg.Done()
			s.mixer.Read(make([]float32, 2))
		}()
	}
	wg.Wait()

	s.LessOrEqual(s.mixer.Active(), 2)
}

func (s *MixerTestSuite) TestNewMixerValidation() {
	_, err := NewMixer(nil)
	s.Error(err)

	_, err = NewMixer(&MixerConfig{})
	s.Error(err)

	_, err = NewMixer(&MixerConfig{SampleRate: 8000, Policy: "shuffle"})
	s.Error(err)

	mixer, err := NewMixer(&MixerConfig{SampleRate: 48000})
	s.Require().NoError(err)
	s.Equal(48000, mixer.SampleRate())
	s.Equal(OverlapMix, mixer.policy)
	s.Equal(DefaultMaxVoices, mixer.maxVoices)
}

func (s *MixerTestSuite) TestParseOverlapPolicy() {
	policy, err := ParseOverlapPolicy("")
	s.Require().NoError(err)
	s.Equal(OverlapMix, policy)

	policy, err = ParseOverlapPolicy("interrupt")
	s.Require().NoError(err)
	s.Equal(OverlapInterrupt, policy)

	_, err = ParseOverlapPolicy("queue")
	s.Error(err)
}
