// Package: github.com/Foxenfurter/foxHVPSLib/foxWaveGen
// filename foxWaveGen.go
// Package is designed to synthesise the HVPS demo waveforms as voltage sample buffers.
// Each generator is a pure function of its parameter struct, so the package holds no state
// and can be called from several goroutines at once.
package foxWaveGen

import (
	"errors"
	"fmt"
	"strings"
)

const packageName = "foxWaveGen"

// Kind identifies one waveform in the demo catalog. The zero value is Unknown,
// used for buffers that were never labelled, e.g. a replayed file without a kind in its name.
type Kind byte

const (
	Unknown Kind = iota
	Sine
	Square
	Chirp
	Heartbeat
	Superimposed
)

// Kinds lists every waveform kind in menu order.
var Kinds = []Kind{Sine, Square, Chirp, Heartbeat, Superimposed}

func (k Kind) String() string {
	switch k {
	case Unknown:
		return "unknown"
	case Sine:
		return "sine"
	case Square:
		return "square"
	case Chirp:
		return "chirp"
	case Heartbeat:
		return "heartbeat"
	case Superimposed:
		return "superimposed"
	}
	return "?"
}

// ParseKind maps a kind name (case insensitive) back to its Kind. Unknown is never
// returned without an error.
func ParseKind(name string) (Kind, error) {
	name = strings.TrimSpace(name)
	for _, k := range Kinds {
		if strings.EqualFold(name, k.String()) {
			return k, nil
		}
	}
	return Unknown, fmt.Errorf("%s: unknown waveform kind %q", packageName, name)
}

// Waveform is implemented by the parameter struct of every waveform kind.
// The set is closed: only this package can add members.
type Waveform interface {
	Kind() Kind
	// Validate reports a ParameterError when the parameters are physically inconsistent.
	Validate() error
	// Generate validates and then synthesises one complete buffer.
	Generate() (SampleBuffer, error)

	waveform()
}

// ParameterError is returned when generator inputs are physically inconsistent.
// It is raised before any sample is produced and values are never clamped.
type ParameterError struct {
	Kind   Kind
	Field  string
	Reason string
}

func (e ParameterError) Error() string {
	return fmt.Sprintf("%s: %s: invalid %s: %s", packageName, e.Kind, e.Field, e.Reason)
}

// NewParameterError builds a ParameterError with a formatted reason.
func NewParameterError(kind Kind, field, format string, a ...interface{}) error {
	return ParameterError{Kind: kind, Field: field, Reason: fmt.Sprintf(format, a...)}
}

// IsParameterError reports whether err, or anything it wraps, is a ParameterError.
func IsParameterError(err error) bool {
	var p ParameterError
	return errors.As(err, &p)
}

// InspectFunc receives a finished buffer for debugging, e.g. printing its spectrum.
type InspectFunc func(SampleBuffer)

// SampleBuffer is one complete output waveform in volts together with its playback rate.
// The samples are private so a returned buffer cannot be changed by its consumers.
type SampleBuffer struct {
	kind       Kind
	samples    []float64
	sampleRate float64
}

// NewSampleBuffer copies samples into a new buffer. Used when a buffer comes from
// outside the generators, e.g. a decoded file or a resampled preview.
func NewSampleBuffer(kind Kind, samples []float64, sampleRate float64) SampleBuffer {
	return newBuffer(kind, sampleRate, samples)
}

// newBuffer concatenates the segments into a freshly allocated buffer.
func newBuffer(kind Kind, sampleRate float64, segments ...[]float64) SampleBuffer {
	total := 0
	for _, s := range segments {
		total += len(s)
	}
	samples := make([]float64, 0, total)
	for _, s := range segments {
		samples = append(samples, s...)
	}
	return SampleBuffer{kind: kind, samples: samples, sampleRate: sampleRate}
}

func (b SampleBuffer) Kind() Kind          { return b.kind }
func (b SampleBuffer) SampleRate() float64 { return b.sampleRate }
func (b SampleBuffer) Len() int            { return len(b.samples) }
func (b SampleBuffer) At(i int) float64    { return b.samples[i] }
func (b SampleBuffer) IsEmpty() bool       { return len(b.samples) == 0 }

// Samples returns a copy of the voltages, ready to hand to an output channel.
func (b SampleBuffer) Samples() []float64 {
	out := make([]float64, len(b.samples))
	copy(out, b.samples)
	return out
}

// Duration is the playback time in seconds.
func (b SampleBuffer) Duration() float64 {
	if b.sampleRate <= 0 {
		return 0
	}
	return float64(len(b.samples)) / b.sampleRate
}

// Inspect runs the hooks against the buffer and returns it unchanged, so it can be chained
// after Generate. Nil hooks are skipped.
func (b SampleBuffer) Inspect(hooks ...InspectFunc) SampleBuffer {
	for _, hook := range hooks {
		if hook != nil {
			hook(b)
		}
	}
	return b
}

func (b SampleBuffer) String() string {
	return fmt.Sprintf("%s: %d samples @ %g Hz (%.3fs)", b.kind, len(b.samples), b.sampleRate, b.Duration())
}
