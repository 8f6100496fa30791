// Package cues maps announcer cues to the clips that play for them.
package cues

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/KirkDiggler/announcer/internal/models"
	"gopkg.in/yaml.v3"
)

// soundDir is the directory inside the clip filesystem holding <cue>.wav files
const soundDir = "sounds"

// ErrCueNotFound is returned when a cue has no registered clip
var ErrCueNotFound = errors.New("cue not registered")

// Resource is a playable clip for a cue
type Resource struct {
	// Cue the clip belongs to
	Cue models.Cue

	// Source names where the clip is read from
	Source string

	fsys fs.FS
	path string
}

// Load reads the clip bytes
func (r *Resource) Load() ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if r.fsys != nil {
		data, err = fs.ReadFile(r.fsys, r.path)
	} else {
		data, err = os.ReadFile(r.path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read clip for %s from %s: %w", r.Cue, r.Source, err)
	}
	return data, nil
}

// Config for the registry
type Config struct {
	// FS holds sounds/<cue>.wav clips (optional, defaults to the built-in clips)
	FS fs.FS

	// OverridesFile is a YAML file replacing clips per cue (optional)
	OverridesFile string

	// Logger (optional)
	Logger *slog.Logger
}

// overrides is the YAML layout of the overrides file. Relative paths resolve
// against the file's directory.
//
//	cues:
//	  double_kill: clips/double.mp3
//	  godlike: /usr/share/sounds/godlike.wav
type overrides struct {
	Cues map[string]string `yaml:"cues"`
}

// Registry is the immutable cue to clip mapping built at startup
type Registry struct {
	resources map[models.Cue]*Resource
}

// New builds the registry from the built-in clips and the optional overrides file
func New(cfg *Config) (*Registry, error) {
	if cfg == nil {
		cfg = &Config{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	fsys := cfg.FS
	if fsys == nil {
		fsys = soundFiles
	}

	resources := make(map[models.Cue]*Resource)
	for _, cue := range models.AllCues() {
		clipPath := path.Join(soundDir, string(cue)+".wav")
		if _, err := fs.Stat(fsys, clipPath); err != nil {
			logger.Debug("no built-in clip for cue", "cue", cue)
			continue
		}
		resources[cue] = &Resource{
			Cue:    cue,
			Source: "builtin:" + clipPath,
			fsys:   fsys,
			path:   clipPath,
		}
	}

	if cfg.OverridesFile != "" {
		loaded, err := loadOverrides(cfg.OverridesFile)
		if err != nil {
			return nil, err
		}
		for cue, resource := range loaded {
			logger.Info("cue clip overridden", "cue", cue, "source", resource.Source)
			resources[cue] = resource
		}
	}

	return &Registry{
		resources: resources,
	}, nil
}

func loadOverrides(file string) (map[models.Cue]*Resource, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read cue overrides: %w", err)
	}

	var parsed overrides
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse cue overrides %s: %w", file, err)
	}

	baseDir := filepath.Dir(file)
	resources := make(map[models.Cue]*Resource, len(parsed.Cues))
	for name, clip := range parsed.Cues {
		cue := models.Cue(name)
		if !cue.IsValid() {
			return nil, fmt.Errorf("unknown cue %q in %s", name, file)
		}
		if clip == "" {
			return nil, fmt.Errorf("empty clip path for cue %q in %s", name, file)
		}

		if !filepath.IsAbs(clip) {
			clip = filepath.Join(baseDir, clip)
		}
		if _, err := os.Stat(clip); err != nil {
			return nil, fmt.Errorf("clip for cue %q: %w", name, err)
		}

		resources[cue] = &Resource{
			Cue:    cue,
			Source: clip,
			path:   clip,
		}
	}

	return resources, nil
}

// Lookup returns the clip registered for a cue
func (r *Registry) Lookup(cue models.Cue) (*Resource, error) {
	resource, ok := r.resources[cue]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCueNotFound, cue)
	}
	return resource, nil
}

// Cues returns the registered cues, lowest rank first
func (r *Registry) Cues() []models.Cue {
	var registered []models.Cue
	for _, cue := range models.AllCues() {
		if _, ok := r.resources[cue]; ok {
			registered = append(registered, cue)
		}
	}
	return registered
}
