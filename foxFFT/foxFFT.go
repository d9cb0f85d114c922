// Package: github.com/Foxenfurter/foxHVPSLib/foxFFT
// filename foxFFT.go
// Package is designed to summarise the frequency content of a voltage buffer so that a
// generated waveform can be checked from the log instead of a plot
package foxFFT

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"
	"strings"

	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
	"github.com/mjibson/go-dsp/fft"
)

const packageName = "foxFFT"

// Peak is one spectral line, Magnitude in volts of sine amplitude.
type Peak struct {
	Frequency float64
	Magnitude float64
}

// Spectrum is the one sided amplitude spectrum of a buffer with its DC level removed.
type Spectrum struct {
	SampleRate float64
	Resolution float64 // Hz per bin
	Mean       float64 // the removed DC level in volts
	Magnitudes []float64
}

// Analyse runs a real FFT over the whole buffer. Any length is accepted.
func Analyse(buffer foxWaveGen.SampleBuffer) (Spectrum, error) {
	const functionName = "Analyse"
	if buffer.Len() < 2 {
		return Spectrum{}, errors.New(packageName + ":" + functionName + ": need at least 2 samples")
	}
	samples := buffer.Samples()
	mean := 0.0
	for _, v := range samples {
		mean += v
	}
	mean /= float64(len(samples))
	for i := range samples {
		samples[i] -= mean
	}

	bins := fft.FFTReal(samples)
	n := len(samples)
	magnitudes := make([]float64, n/2+1)
	for k := range magnitudes {
		magnitudes[k] = 2 * cmplx.Abs(bins[k]) / float64(n)
	}
	return Spectrum{
		SampleRate: buffer.SampleRate(),
		Resolution: buffer.SampleRate() / float64(n),
		Mean:       mean,
		Magnitudes: magnitudes,
	}, nil
}

// Dominant returns the strongest line.
func (s Spectrum) Dominant() Peak {
	best := Peak{}
	for k, m := range s.Magnitudes {
		if m > best.Magnitude {
			best = Peak{Frequency: float64(k) * s.Resolution, Magnitude: m}
		}
	}
	return best
}

// Peaks returns up to n local maxima, strongest first.
func (s Spectrum) Peaks(n int) []Peak {
	var peaks []Peak
	m := s.Magnitudes
	for k := 1; k < len(m); k++ {
		left := m[k-1]
		right := 0.0
		if k+1 < len(m) {
			right = m[k+1]
		}
		if m[k] > left && m[k] >= right {
			peaks = append(peaks, Peak{Frequency: float64(k) * s.Resolution, Magnitude: m[k]})
		}
	}
	sort.Slice(peaks, func(i, j int) bool { return peaks[i].Magnitude > peaks[j].Magnitude })
	if len(peaks) > n {
		peaks = peaks[:n]
	}
	return peaks
}

// Summary formats the mean level and the strongest lines on one line.
func (s Spectrum) Summary(n int) string {
	var parts []string
	for _, p := range s.Peaks(n) {
		parts = append(parts, fmt.Sprintf("%.2f Hz %.1f V", p.Frequency, p.Magnitude))
	}
	return fmt.Sprintf("mean %.1f V, resolution %.3f Hz, peaks [%s]", s.Mean, s.Resolution, strings.Join(parts, ", "))
}

// Inspector returns a hook for SampleBuffer.Inspect that reports the spectrum through report.
func Inspector(report func(string), peaks int) foxWaveGen.InspectFunc {
	return func(buffer foxWaveGen.SampleBuffer) {
		spectrum, err := Analyse(buffer)
		if err != nil {
			report(fmt.Sprintf("%s: %v", buffer.Kind(), err))
			return
		}
		report(fmt.Sprintf("%s: %s", buffer, spectrum.Summary(peaks)))
	}
}

// BinOf returns the bin index closest to frequency.
func (s Spectrum) BinOf(frequency float64) int {
	return int(math.Round(frequency / s.Resolution))
}
