package foxHVPS

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Foxenfurter/foxHVPSLib/foxAudioEncoder"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

// EncoderChannel writes every waveform to a numbered file in Directory,
// e.g. 0003_heartbeat.wav. It has no native primitives.
type EncoderChannel struct {
	Directory      string
	Type           string // WAV, PCM or CSV
	BitDepth       int
	FullScaleVolts float64
	PreviewRate    int

	DebugFunc func(string)
	DebugOn   bool

	mu    sync.Mutex
	count int
	label foxWaveGen.Kind
	files []string
}

func (e *EncoderChannel) Label(kind foxWaveGen.Kind) {
	e.mu.Lock()
	e.label = kind
	e.mu.Unlock()
}

func (e *EncoderChannel) Waveform(samples []float64, sampleRate float64) error {
	const functionName = "Waveform"
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := os.MkdirAll(e.Directory, os.ModePerm); err != nil {
		return NewDeviceError("waveform", err)
	}
	e.count++
	filename := filepath.Join(e.Directory, fmt.Sprintf("%04d_%s.%s", e.count, e.label, strings.ToLower(e.Type)))
	encoder := foxAudioEncoder.AudioEncoder{
		Type:           e.Type,
		BitDepth:       e.BitDepth,
		FullScaleVolts: e.FullScaleVolts,
		PreviewRate:    e.PreviewRate,
		Filename:       filename,
		DebugFunc:      e.DebugFunc,
		DebugOn:        e.DebugOn,
	}
	if err := encoder.EncodeBuffer(foxWaveGen.NewSampleBuffer(e.label, samples, sampleRate)); err != nil {
		return NewDeviceError("waveform", err)
	}
	e.files = append(e.files, filename)
	e.debug(packageName + ":EncoderChannel:" + functionName + " wrote " + filename)
	return nil
}

// Zero writes nothing; a file sink has no output level to reset.
func (e *EncoderChannel) Zero() error {
	e.debug(packageName + ":EncoderChannel:Zero")
	return nil
}

// Files lists the files written so far.
func (e *EncoderChannel) Files() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.files...)
}

func (e *EncoderChannel) debug(message string) {
	if e.DebugOn {
		if e.DebugFunc != nil {
			e.DebugFunc(message)
		} else {
			println(message)
		}
	}
}
