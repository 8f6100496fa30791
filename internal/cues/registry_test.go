package cues

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/KirkDiggler/announcer/internal/audio"
	"github.com/KirkDiggler/announcer/internal/models"
	"github.com/stretchr/testify/suite"
)

type RegistryTestSuite struct {
	suite.Suite
	dir string
}

func (s *RegistryTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func TestRegistryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryTestSuite))
}

func (s *RegistryTestSuite) writeFile(name, content string) string {
	file := filepath.Join(s.dir, name)
	s.Require().NoError(os.MkdirAll(filepath.Dir(file), 0o755))
	s.Require().NoError(os.WriteFile(file, []byte(content), 0o644))
	return file
}

func (s *RegistryTestSuite) TestBuiltinClipsCoverEveryCue() {
	registry, err := New(nil)
	s.Require().NoError(err)

	s.Equal(models.AllCues(), registry.Cues())

	decoder := audio.NewDecoder()
	for _, cue := range models.AllCues() {
		resource, err := registry.Lookup(cue)
		s.Require().NoError(err, "cue %s", cue)

		data, err := resource.Load()
		s.Require().NoError(err, "cue %s", cue)

		clip, err := decoder.Decode(data)
		s.Require().NoError(err, "cue %s", cue)
		s.NotEmpty(clip.Samples, "cue %s", cue)
	}
}

func (s *RegistryTestSuite) TestLookupUnknownCue() {
	registry, err := New(&Config{})
	s.Require().NoError(err)

	_, err = registry.Lookup(models.Cue("first_blood"))
	s.ErrorIs(err, ErrCueNotFound)

	_, err = registry.Lookup(models.CueNone)
	s.ErrorIs(err, ErrCueNotFound)
}

func (s *RegistryTestSuite) TestCustomFSSkipsMissingClips() {
	registry, err := New(&Config{
		FS: fstest.MapFS{
			"sounds/double_kill.wav": &fstest.MapFile{Data: []byte("RIFF-double")},
		},
	})
	s.Require().NoError(err)

	s.Equal([]models.Cue{models.CueDoubleKill}, registry.Cues())

	resource, err := registry.Lookup(models.CueDoubleKill)
	s.Require().NoError(err)
	data, err := resource.Load()
	s.Require().NoError(err)
	s.Equal("RIFF-double", string(data))

	_, err = registry.Lookup(models.CueGodlike)
	s.ErrorIs(err, ErrCueNotFound)
}

func (s *RegistryTestSuite) TestOverridesFile() {
	s.writeFile("clips/double.mp3", "ID3-double")
	absolute := s.writeFile("elsewhere/godlike.wav", "RIFF-godlike")
	file := s.writeFile("cues.yaml", `
cues:
  double_kill: clips/double.mp3
  godlike: `+absolute+`
`)

	registry, err := New(&Config{OverridesFile: file})
	s.Require().NoError(err)

	resource, err := registry.Lookup(models.CueDoubleKill)
	s.Require().NoError(err)
	s.Equal(filepath.Join(s.dir, "clips/double.mp3"), resource.Source)
	data, err := resource.Load()
	s.Require().NoError(err)
	s.Equal("ID3-double", string(data))

	resource, err = registry.Lookup(models.CueGodlike)
	s.Require().NoError(err)
	s.Equal(absolute, resource.Source)

	// Cues not overridden keep the built-in clip
	resource, err = registry.Lookup(models.CueRampage)
	s.Require().NoError(err)
	s.Equal("builtin:sounds/rampage.wav", resource.Source)
}

func (s *RegistryTestSuite) TestOverridesUnknownCue() {
	s.writeFile("first.wav", "RIFF")
	file := s.writeFile("cues.yaml", "cues:\n  first_blood: first.wav\n")

	_, err := New(&Config{OverridesFile: file})
	s.ErrorContains(err, "unknown cue")
}

func (s *RegistryTestSuite) TestOverridesMissingClip() {
	file := s.writeFile("cues.yaml", "cues:\n  rampage: nope.wav\n")

	_, err := New(&Config{OverridesFile: file})
	s.Error(err)
}

func (s *RegistryTestSuite) TestOverridesBadYAML() {
	file := s.writeFile("cues.yaml", "cues: [not, a, map")

	_, err := New(&Config{OverridesFile: file})
	s.ErrorContains(err, "failed to parse cue overrides")
}

func (s *RegistryTestSuite) TestOverridesFileMissing() {
	_, err := New(&Config{OverridesFile: filepath.Join(s.dir, "missing.yaml")})
	s.ErrorContains(err, "failed to read cue overrides")
}

func (s *RegistryTestSuite) TestLoadAfterClipRemoved() {
	clip := s.writeFile("rampage.wav", "RIFF")
	file := s.writeFile("cues.yaml", "cues:\n  rampage: rampage.wav\n")

	registry, err := New(&Config{OverridesFile: file})
	s.Require().NoError(err)

	s.Require().NoError(os.Remove(clip))

	resource, err := registry.Lookup(models.CueRampage)
	s.Require().NoError(err)
	_, err = resource.Load()
	s.Error(err)
}
