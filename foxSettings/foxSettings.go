// Package: github.com/Foxenfurter/foxHVPSLib/foxSettings
// filename foxSettings.go
// Package is designed to hold the demo settings: device limits plus one parameter set per
// waveform. Defaults match the bench demo; a JSON file can override any of them.
package foxSettings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

const packageName = "foxSettings"

type Settings struct {
	MaxVoltage   float64                       `json:"maxVoltage"` // V, device limit
	SampleRate   float64                       `json:"sampleRate"` // Hz, applied to every waveform without its own rate
	Sine         foxWaveGen.SineParams         `json:"sine"`
	Square       foxWaveGen.SquareParams       `json:"square"`
	Chirp        foxWaveGen.ChirpParams        `json:"chirp"`
	Heartbeat    foxWaveGen.HeartbeatParams    `json:"heartbeat"`
	Superimposed foxWaveGen.SuperimposedParams `json:"superimposed"`
}

// Default returns the bench demo values: a 6 kV channel driven at 1 kHz.
func Default() Settings {
	s := Settings{
		MaxVoltage: 6000,
		SampleRate: 1000,
		Sine:       foxWaveGen.SineParams{Frequency: 10},
		Square:     foxWaveGen.SquareParams{Frequency: 1, Duty: 0.5},
		Chirp:      foxWaveGen.ChirpParams{F0: 0.2, F1: 50, Duration: 2, DcOffset: 2000},
		Heartbeat:  foxWaveGen.HeartbeatParams{VoltageLub: 4500, DcOffset: 2000},
		Superimposed: foxWaveGen.SuperimposedParams{
			F0:           1,
			F1:           50,
			MaxVoltageF1: 1000,
		},
	}
	s.fill()
	return s
}

// fill copies the global limits into every waveform that left them unset.
func (s *Settings) fill() {
	rate := func(r *float64) {
		if *r == 0 {
			*r = s.SampleRate
		}
	}
	peak := func(v *float64) {
		if *v == 0 {
			*v = s.MaxVoltage
		}
	}
	rate(&s.Sine.SampleRate)
	rate(&s.Square.SampleRate)
	rate(&s.Chirp.SampleRate)
	rate(&s.Heartbeat.SampleRate)
	rate(&s.Superimposed.SampleRate)
	peak(&s.Sine.MaxVoltage)
	peak(&s.Square.MaxVoltage)
	peak(&s.Chirp.MaxVoltage)
	peak(&s.Heartbeat.MaxVoltage)
	if s.Superimposed.MaxVoltageF0 == 0 {
		// the f0 arm takes whatever headroom the f1 arm and the offset leave
		s.Superimposed.MaxVoltageF0 = s.MaxVoltage - s.Superimposed.MaxVoltageF1 - s.Superimposed.DcOffset
	}
}

// Load overlays the JSON file at path on the defaults. A blank path returns the defaults.
func Load(path string) (Settings, error) {
	const functionName = "Load"
	s := Default()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return s, fmt.Errorf(packageName+":"+functionName+": %w", err)
	}
	return Parse(data)
}

// Parse overlays JSON data on the defaults.
func Parse(data []byte) (Settings, error) {
	const functionName = "Parse"
	s := Default()
	// start from the bare defaults so that global changes reach every waveform
	s.clearDerived()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf(packageName+":"+functionName+": %w", err)
	}
	s.fill()
	return s, nil
}

func (s *Settings) clearDerived() {
	s.Sine.SampleRate, s.Sine.MaxVoltage = 0, 0
	s.Square.SampleRate, s.Square.MaxVoltage = 0, 0
	s.Chirp.SampleRate, s.Chirp.MaxVoltage = 0, 0
	s.Heartbeat.SampleRate, s.Heartbeat.MaxVoltage = 0, 0
	s.Superimposed.SampleRate, s.Superimposed.MaxVoltageF0 = 0, 0
}

// Waveform returns the configured parameters for kind.
func (s Settings) Waveform(kind foxWaveGen.Kind) foxWaveGen.Waveform {
	switch kind {
	case foxWaveGen.Sine:
		return s.Sine
	case foxWaveGen.Square:
		return s.Square
	case foxWaveGen.Chirp:
		return s.Chirp
	case foxWaveGen.Heartbeat:
		return s.Heartbeat
	case foxWaveGen.Superimposed:
		return s.Superimposed
	}
	return nil
}

// Catalog returns every waveform in menu order.
func (s Settings) Catalog() []foxWaveGen.Waveform {
	catalog := make([]foxWaveGen.Waveform, 0, len(foxWaveGen.Kinds))
	for _, kind := range foxWaveGen.Kinds {
		catalog = append(catalog, s.Waveform(kind))
	}
	return catalog
}

// Validate checks the device limits and every waveform.
func (s Settings) Validate() error {
	const functionName = "Validate"
	if !(s.MaxVoltage > 0) {
		return fmt.Errorf("%s:%s: maxVoltage must be positive, got %g", packageName, functionName, s.MaxVoltage)
	}
	for _, w := range s.Catalog() {
		if err := w.Validate(); err != nil {
			return fmt.Errorf(packageName+":"+functionName+": %w", err)
		}
	}
	return nil
}
