package audio

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoOutputDevice is returned when no device can play audio
var ErrNoOutputDevice = errors.New("no matching output device")

// DeviceDescriptor describes an output-capable device
type DeviceDescriptor struct {
	Index             int
	Name              string
	HostAPI           string
	OutputChannels    int
	DefaultSampleRate float64
	IsDefault         bool
}

// SelectDevice picks the device whose name contains query, case-insensitively.
// An empty query picks the default output device. Devices without output
// channels are never selected. An exact name match wins over a substring match.
func SelectDevice(devices []DeviceDescriptor, query string) (DeviceDescriptor, error) {
	query = strings.TrimSpace(query)
	needle := strings.ToLower(query)

	var (
		match DeviceDescriptor
		found bool
	)

	for _, device := range devices {
		if device.OutputChannels <= 0 {
			continue
		}

		if query == "" {
			if device.IsDefault {
				return device, nil
			}
			continue
		}

		name := strings.ToLower(device.Name)
		if name == needle {
			return device, nil
		}
		if !found && strings.Contains(name, needle) {
			match = device
			found = true
		}
	}

	if found {
		return match, nil
	}

	if query == "" {
		return DeviceDescriptor{}, fmt.Errorf("%w: no default output device", ErrNoOutputDevice)
	}
	return DeviceDescriptor{}, fmt.Errorf("%w: %q", ErrNoOutputDevice, query)
}

// PrintDevices writes the output-capable devices, marking the default one
func PrintDevices(w io.Writer, devices []DeviceDescriptor) error {
	printed := 0
	for _, device := range devices {
		if device.OutputChannels <= 0 {
			continue
		}

		marker := " "
		if device.IsDefault {
			marker = "*"
		}

		if _, err := fmt.Fprintf(w, "%s %2d  %s [%s] %d ch, %.0f Hz\n",
			marker, device.Index, device.Name, device.HostAPI,
			device.OutputChannels, device.DefaultSampleRate); err != nil {
			return err
		}
		printed++
	}

	if printed == 0 {
		_, err := fmt.Fprintln(w, "no output devices found")
		return err
	}
	return nil
}
