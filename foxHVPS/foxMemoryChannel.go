package foxHVPS

import (
	"sync"

	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

// Call is one command received by a MemoryChannel.
type Call struct {
	Op         string // waveform, sine, square or zero
	Kind       foxWaveGen.Kind
	Samples    []float64
	SampleRate float64
	Frequency  float64
	Amplitude  float64
	Duty       float64
}

// MemoryChannel records every command it receives. It stands in for a device in
// tests and dry runs. Setting Fail makes every command matching FailOp return a
// DeviceError; a blank FailOp fails all commands.
type MemoryChannel struct {
	mu     sync.Mutex
	calls  []Call
	label  foxWaveGen.Kind
	Fail   error
	FailOp string
}

func (m *MemoryChannel) record(call Call) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil && (m.FailOp == "" || m.FailOp == call.Op) {
		return NewDeviceError(call.Op, m.Fail)
	}
	m.calls = append(m.calls, call)
	return nil
}

func (m *MemoryChannel) Label(kind foxWaveGen.Kind) {
	m.mu.Lock()
	m.label = kind
	m.mu.Unlock()
}

func (m *MemoryChannel) Waveform(samples []float64, sampleRate float64) error {
	m.mu.Lock()
	kind := m.label
	m.mu.Unlock()
	kept := make([]float64, len(samples))
	copy(kept, samples)
	return m.record(Call{Op: "waveform", Kind: kind, Samples: kept, SampleRate: sampleRate})
}

func (m *MemoryChannel) Sine(frequency, amplitude float64) error {
	return m.record(Call{Op: "sine", Kind: foxWaveGen.Sine, Frequency: frequency, Amplitude: amplitude})
}

func (m *MemoryChannel) Square(frequency, amplitude, duty float64) error {
	return m.record(Call{Op: "square", Kind: foxWaveGen.Square, Frequency: frequency, Amplitude: amplitude, Duty: duty})
}

func (m *MemoryChannel) Zero() error {
	return m.record(Call{Op: "zero"})
}

// Calls returns a copy of the commands received so far.
func (m *MemoryChannel) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// Last returns the most recent command, or false when there is none.
func (m *MemoryChannel) Last() (Call, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.calls) == 0 {
		return Call{}, false
	}
	return m.calls[len(m.calls)-1], true
}
