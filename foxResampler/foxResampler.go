// Package: github.com/Foxenfurter/foxHVPSLib/foxResampler
// filename foxResampler.go
// Package is designed to convert voltage buffers between sample rates, e.g. to export
// a 1 kHz device waveform at a rate that ordinary audio tools will open
package foxResampler

import (
	"errors"
	"fmt"
	"math"

	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
	"github.com/zeozeozeo/gomplerate"
)

type Resampler struct {
	FromSampleRate int
	ToSampleRate   int
	DebugOn        bool //enables debugging
	DebugFunc      func(string)
}

const packageName = "foxResampler"

// NewResampler prepares a mono resampler between the two rates.
func NewResampler(fromSampleRate, toSampleRate int) *Resampler {
	return &Resampler{
		FromSampleRate: fromSampleRate,
		ToSampleRate:   toSampleRate,
	}
}

// Function to handle debug calls, allowing for different logging implementations
func (myResampler *Resampler) debug(message string) {
	if myResampler.DebugOn {
		if myResampler.DebugFunc != nil {
			myResampler.DebugFunc(message)
		} else { // if no external debug function available just print the message
			println(message)
		}
	}
}

// Resample converts the samples from FromSampleRate to ToSampleRate.
// The input is not modified; equal rates return a copy.
func (myResampler *Resampler) Resample(samples []float64) ([]float64, error) {
	const functionName = "Resample"
	if myResampler.FromSampleRate <= 0 || myResampler.ToSampleRate <= 0 {
		return nil, errors.New(packageName + ":" + functionName + ": sample rates must be positive")
	}
	if myResampler.FromSampleRate == myResampler.ToSampleRate {
		myResampler.debug(packageName + ":" + functionName + ": Source and Target sample rates are the same..")
		out := make([]float64, len(samples))
		copy(out, samples)
		return out, nil
	}

	r, err := gomplerate.NewResampler(1, myResampler.FromSampleRate, myResampler.ToSampleRate)
	if err != nil {
		return nil, fmt.Errorf(packageName+":"+functionName+": %w", err)
	}
	input := make([]float64, len(samples))
	copy(input, samples)
	out := r.ResampleFloat64(input)
	myResampler.debug(fmt.Sprintf(packageName+":"+functionName+": %d samples @ %d Hz -> %d samples @ %d Hz",
		len(samples), myResampler.FromSampleRate, len(out), myResampler.ToSampleRate))
	return out, nil
}

// ResampleBuffer converts a whole buffer, taking the source rate from the buffer itself.
func (myResampler *Resampler) ResampleBuffer(buffer foxWaveGen.SampleBuffer) (foxWaveGen.SampleBuffer, error) {
	myResampler.FromSampleRate = int(math.Round(buffer.SampleRate()))
	out, err := myResampler.Resample(buffer.Samples())
	if err != nil {
		return foxWaveGen.SampleBuffer{}, err
	}
	return foxWaveGen.NewSampleBuffer(buffer.Kind(), out, float64(myResampler.ToSampleRate)), nil
}
