// package loads a previously exported waveform file back into a voltage buffer
// so that it can be replayed to a channel
package foxAudioDecoder

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/Foxenfurter/foxHVPSLib/foxNormalizer"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const packageName = "foxAudioDecoder"

type PCMDecoder struct {
	SampleRate     int
	BitDepth       int
	NumChannels    int
	FullScaleVolts float64 // must match the value used when encoding
	Kind           foxWaveGen.Kind
	Filename       string
	Reader         io.ReadSeeker // used when Filename is blank

	DebugFunc func(string)
	DebugOn   bool
}

// Load decodes the whole WAV file and returns its first channel in volts.
func (myDecoder *PCMDecoder) Load() (foxWaveGen.SampleBuffer, error) {
	const functionName = "Load"
	if myDecoder.FullScaleVolts <= 0 {
		return foxWaveGen.SampleBuffer{}, errors.New(packageName + ":" + functionName + ": full scale voltage must be positive")
	}
	reader := myDecoder.Reader
	if myDecoder.Filename != "" {
		file, err := os.Open(filepath.Clean(myDecoder.Filename))
		if err != nil {
			return foxWaveGen.SampleBuffer{}, fmt.Errorf(packageName+":"+functionName+": %w", err)
		}
		defer file.Close()
		reader = file
	}
	if reader == nil {
		return foxWaveGen.SampleBuffer{}, errors.New(packageName + ":" + functionName + ": no input")
	}

	decoder := wav.NewDecoder(reader)
	if !decoder.IsValidFile() {
		return foxWaveGen.SampleBuffer{}, errors.New(packageName + ":" + functionName + ": not a valid wav file")
	}
	pcm, err := decoder.FullPCMBuffer()
	if err != nil {
		return foxWaveGen.SampleBuffer{}, fmt.Errorf(packageName+":"+functionName+": %w", err)
	}
	myDecoder.SampleRate = int(decoder.SampleRate)
	myDecoder.BitDepth = int(decoder.BitDepth)
	myDecoder.NumChannels = int(decoder.NumChans)
	if myDecoder.NumChannels < 1 || myDecoder.BitDepth < 8 {
		return foxWaveGen.SampleBuffer{}, errors.New(packageName + ":" + functionName + ": unsupported wav format")
	}

	unit := firstChannel(pcm, myDecoder.NumChannels, myDecoder.BitDepth)
	volts := foxNormalizer.ScaleFromFullScale(unit, myDecoder.FullScaleVolts)
	myDecoder.debug(fmt.Sprintf(packageName+":"+functionName+" %d samples @ %d Hz, %d bit, %d channels",
		len(volts), myDecoder.SampleRate, myDecoder.BitDepth, myDecoder.NumChannels))

	return foxWaveGen.NewSampleBuffer(myDecoder.Kind, volts, float64(myDecoder.SampleRate)), nil
}

// firstChannel de-interleaves channel 0 and scales it to [-1, 1].
func firstChannel(pcm *audio.IntBuffer, numChannels, bitDepth int) []float64 {
	maxValue := math.Pow(2, float64(bitDepth-1)) - 1
	frames := len(pcm.Data) / numChannels
	unit := make([]float64, frames)
	for i := range unit {
		unit[i] = float64(pcm.Data[i*numChannels]) / maxValue
	}
	return unit
}

// KindFromFilename finds a waveform kind among the underscore separated parts
// of a file name such as "0003_heartbeat.wav".
func KindFromFilename(name string) (foxWaveGen.Kind, bool) {
	stem := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	for _, part := range strings.Split(stem, "_") {
		if kind, err := foxWaveGen.ParseKind(part); err == nil {
			return kind, true
		}
	}
	return foxWaveGen.Unknown, false
}

func (myDecoder *PCMDecoder) debug(message string) {
	if myDecoder.DebugOn {
		if myDecoder.DebugFunc != nil {
			myDecoder.DebugFunc(message)
		} else {
			println(message)
		}
	}
}
