// Package: github.com/Foxenfurter/foxHVPSLib/foxHVPS
// filename foxHVPS.go
// Package is designed to hand generated waveforms to an HVPS output channel.
// The device connection itself lives outside this library; anything that satisfies
// Channel can be driven, from real hardware to the in-memory and file sinks here.
package foxHVPS

import (
	"errors"
	"fmt"

	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

const packageName = "foxHVPS"

// Channel is the output sink contract of one HVPS channel. Calls block until the
// device has accepted the command.
type Channel interface {
	// Waveform uploads samples in volts to be played at sampleRate Hz.
	Waveform(samples []float64, sampleRate float64) error
	// Zero drives the output to 0 V.
	Zero() error
}

// PeriodicChannel is a Channel with built-in sine and square primitives.
type PeriodicChannel interface {
	Channel
	Sine(frequency, amplitude float64) error
	Square(frequency, amplitude, duty float64) error
}

// LabelledChannel is implemented by sinks that want to know which waveform
// the next Waveform call carries, e.g. to name an output file.
type LabelledChannel interface {
	Channel
	Label(kind foxWaveGen.Kind)
}

// DeviceError is returned by channels when the sink rejects or fails a command.
type DeviceError struct {
	Op  string
	Err error
}

func (e *DeviceError) Error() string {
	return fmt.Sprintf("%s: device %s failed: %v", packageName, e.Op, e.Err)
}

func (e *DeviceError) Unwrap() error { return e.Err }

// NewDeviceError wraps err for operation op. A nil err gives nil.
func NewDeviceError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &DeviceError{Op: op, Err: err}
}

// IsDeviceError reports whether err, or anything it wraps, is a DeviceError.
func IsDeviceError(err error) bool {
	var d *DeviceError
	return errors.As(err, &d)
}

type waveformOnly struct {
	Channel
}

// WaveformOnly hides any native primitives of ch so every waveform is synthesised.
func WaveformOnly(ch Channel) Channel {
	return waveformOnly{ch}
}

func (w waveformOnly) Label(kind foxWaveGen.Kind) {
	if labelled, ok := w.Channel.(LabelledChannel); ok {
		labelled.Label(kind)
	}
}
