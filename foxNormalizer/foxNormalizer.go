// Package: github.com/Foxenfurter/foxHVPSLib/foxNormalizer
// filename foxNormalizer.go
// Package is designed to measure voltage buffers, check them against device limits
// and map them to and from the [-1,1] full scale used by the encoders

package foxNormalizer

import (
	"fmt"
	"math"
)

const packageName = "foxNormalizer"

// Calculates the largest absolute voltage in the buffer - used for limit checks and scaling
func CalculatePeak(samples []float64) float64 {
	peak := 0.0
	if samples == nil {
		return peak
	}
	for _, sample := range samples {
		sampleAbs := math.Abs(sample)
		if sampleAbs > peak {
			peak = sampleAbs
		}
	}
	return peak
}

// VoltageRange returns the lowest and highest sample. An empty buffer gives 0, 0.
func VoltageRange(samples []float64) (float64, float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	low, high := samples[0], samples[0]
	for _, sample := range samples[1:] {
		low = math.Min(low, sample)
		high = math.Max(high, sample)
	}
	return low, high
}

// LimitError reports the first sample that falls outside the permitted window.
type LimitError struct {
	Index int
	Value float64
	Low   float64
	High  float64
}

func (e LimitError) Error() string {
	return fmt.Sprintf("%s: sample %d is %.3f V, outside [%g, %g] V", packageName, e.Index, e.Value, e.Low, e.High)
}

// CheckVoltageRange returns a LimitError for the first sample outside [low, high].
// NaN and infinite values always fail.
func CheckVoltageRange(samples []float64, low, high float64) error {
	for i, sample := range samples {
		if math.IsNaN(sample) || math.IsInf(sample, 0) || sample < low || sample > high {
			return LimitError{Index: i, Value: sample, Low: low, High: high}
		}
	}
	return nil
}

// Normalises a buffer so that max maps onto targetLevel.
func NormalizeChannel(samples []float64, targetLevel float64, max float64) []float64 {
	// Check for divide by zero and no normalization needed
	if max == 0.0 || max == targetLevel {
		return samples
	}
	normalizationFactor := targetLevel / max

	normalized := make([]float64, len(samples))
	for i := range samples {
		normalized[i] = samples[i] * normalizationFactor
	}
	return normalized
}

// ScaleToFullScale maps [0, fullScale] volts onto [-1, 1] so that the whole
// unipolar supply range uses the full resolution of a signed PCM sample.
func ScaleToFullScale(samples []float64, fullScale float64) []float64 {
	scaled := NormalizeChannel(samples, 2, fullScale)
	out := make([]float64, len(scaled))
	for i, v := range scaled {
		out[i] = v - 1
	}
	return out
}

// ScaleFromFullScale is the inverse of ScaleToFullScale.
func ScaleFromFullScale(samples []float64, fullScale float64) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = (v + 1) * fullScale / 2
	}
	return out
}
