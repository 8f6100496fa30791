// Package device opens the portaudio output stream that announcer clips play on.
package device

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/KirkDiggler/announcer/internal/audio"
	"github.com/gordonklaus/portaudio"
)

// Config holds configuration for the output device
type Config struct {
	// Name is a case-insensitive substring of the device name, empty for the host default
	Name string

	// Policy for overlapping clips
	Policy audio.OverlapPolicy

	// MaxVoices caps simultaneous clips
	MaxVoices int

	// Logger (optional)
	Logger *slog.Logger
}

// Output is the opened output device. It is shared by every dispatch; callers
// only add clips to its mixer.
type Output struct {
	stream *portaudio.Stream
	mixer  *audio.Mixer
	device audio.DeviceDescriptor
	logger *slog.Logger

	closeOnce sync.Once
}

// Open initializes portaudio, selects the device and starts a mono output stream
func Open(cfg *Config) (*Output, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := portaudio.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize PortAudio: %w", err)
	}

	output, err := open(cfg, logger)
	if err != nil {
		if termErr := portaudio.Terminate(); termErr != nil {
			logger.Warn("failed to terminate PortAudio", "error", termErr)
		}
		return nil, err
	}

	return output, nil
}

func open(cfg *Config, logger *slog.Logger) (*Output, error) {
	infos, err := portaudio.Devices()
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	selected, err := audio.SelectDevice(describe(infos), cfg.Name)
	if err != nil {
		return nil, err
	}
	info := infos[selected.Index]

	sampleRate := int(info.DefaultSampleRate)
	mixer, err := audio.NewMixer(&audio.MixerConfig{
		SampleRate: sampleRate,
		Policy:     cfg.Policy,
		MaxVoices:  cfg.MaxVoices,
	})
	if err != nil {
		return nil, err
	}

	params := portaudio.HighLatencyParameters(nil, info)
	params.Output.Channels = 1

	stream, err := portaudio.OpenStream(params, mixer.Read)
	if err != nil {
		return nil, fmt.Errorf("failed to open output stream on %q: %w", info.Name, err)
	}

	if err := stream.Start(); err != nil {
		if closeErr := stream.Close(); closeErr != nil {
			logger.Warn("failed to close output stream", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to start output stream on %q: %w", info.Name, err)
	}

	logger.Info("audio output opened",
		"device", info.Name,
		"host_api", selected.HostAPI,
		"sample_rate", sampleRate,
		"policy", cfg.Policy,
	)

	return &Output{
		stream: stream,
		mixer:  mixer,
		device: selected,
		logger: logger,
	}, nil
}

// Mixer returns the mixer feeding the stream
func (o *Output) Mixer() *audio.Mixer {
	return o.mixer
}

// Device returns the selected device
func (o *Output) Device() audio.DeviceDescriptor {
	return o.device
}

// Close stops the stream and releases portaudio
func (o *Output) Close() error {
	var err error
	o.closeOnce.Do(func() {
		o.mixer.Stop()
		if stopErr := o.stream.Stop(); stopErr != nil {
			err = fmt.Errorf("failed to stop output stream: %w", stopErr)
		}
		if closeErr := o.stream.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close output stream: %w", closeErr)
		}
		if termErr := portaudio.Terminate(); termErr != nil && err == nil {
			err = fmt.Errorf("failed to terminate PortAudio: %w", termErr)
		}
	})
	return err
}

// List prints the output devices of the host
func List(w io.Writer) error {
	if err := portaudio.Initialize(); err != nil {
		return fmt.Errorf("failed to initialize PortAudio: %w", err)
	}
	defer portaudio.Terminate()

	infos, err := portaudio.Devices()
	if err != nil {
		return fmt.Errorf("failed to list devices: %w", err)
	}

	return audio.PrintDevices(w, describe(infos))
}

func describe(infos []*portaudio.DeviceInfo) []audio.DeviceDescriptor {
	var defaultName string
	if def, err := portaudio.DefaultOutputDevice(); err == nil && def != nil {
		defaultName = def.Name
	}

	devices := make([]audio.DeviceDescriptor, 0, len(infos))
	for i, info := range infos {
		hostAPI := ""
		if info.HostApi != nil {
			hostAPI = info.HostApi.Name
		}
		devices = append(devices, audio.DeviceDescriptor{
			Index:             i,
			Name:              info.Name,
			HostAPI:           hostAPI,
			OutputChannels:    info.MaxOutputChannels,
			DefaultSampleRate: info.DefaultSampleRate,
			IsDefault:         info.Name == defaultName,
		})
	}
	return devices
}
