package foxWaveGen

import (
	"math"
)

// linspace returns n evenly spaced values over [start, stop], both ends included.
// n == 1 gives just start and n <= 0 an empty slice.
func linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	out[n-1] = stop
	return out
}

// halfCosine samples amplitude*0.5*(sin(θ)+1)+baseline with θ spread evenly over
// [phase, phase+span]. With phase -π/2 and span 2π the segment leaves the baseline,
// touches baseline+amplitude half way and returns, with zero slope at both ends.
func halfCosine(n int, amplitude, baseline, phase, span float64) []float64 {
	out := linspace(phase, phase+span, n)
	for i, theta := range out {
		out[i] = amplitude*0.5*(math.Sin(theta)+1) + baseline
	}
	return out
}

// linearChirp is cos(2π(f0·t + k·t²/2)) with k = (f1-f0)/t1, so the instantaneous
// frequency moves linearly from f0 at t=0 to f1 at t=t1.
func linearChirp(t, f0, f1, t1 float64) float64 {
	k := (f1 - f0) / t1
	return math.Cos(2 * math.Pi * (f0*t + 0.5*k*t*t))
}

// phaseSamples rounds the sample count of one phase; a result of zero is allowed.
func phaseSamples(samplesPerCycle, fraction float64) int {
	return int(math.Round(samplesPerCycle * fraction))
}

func reversed(in []float64) []float64 {
	out := make([]float64, len(in))
	for i, v := range in {
		out[len(in)-1-i] = v
	}
	return out
}

// ================ parameter checks =====================

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func checkPositive(kind Kind, field string, v float64) error {
	if !isFinite(v) || v <= 0 {
		return NewParameterError(kind, field, "must be a finite value > 0, got %g", v)
	}
	return nil
}

func checkNonNegative(kind Kind, field string, v float64) error {
	if !isFinite(v) || v < 0 {
		return NewParameterError(kind, field, "must be a finite value >= 0, got %g", v)
	}
	return nil
}

func checkFraction(kind Kind, field string, v float64) error {
	if !isFinite(v) || v < 0 || v > 1 {
		return NewParameterError(kind, field, "must lie in [0,1], got %g", v)
	}
	return nil
}

// maxSamples bounds every sample count before it is converted to an int.
const maxSamples = math.MaxInt32

// checkSampleCount rejects counts that are not finite, negative or too large to
// allocate. n is the unrounded count, e.g. SampleRate/Frequency.
func checkSampleCount(kind Kind, field string, n float64) error {
	if !isFinite(n) || n < 0 || math.Round(n) > maxSamples {
		return NewParameterError(kind, field, "gives %g samples, must lie in [0, %d]", n, maxSamples)
	}
	return nil
}

// checkOrdered requires low <= high, e.g. an offset below the peak voltage.
func checkOrdered(kind Kind, lowField string, low float64, highField string, high float64) error {
	if low > high {
		return NewParameterError(kind, lowField, "%g V exceeds %s %g V", low, highField, high)
	}
	return nil
}

// checkNyquist rejects sample rates that would alias the highest frequency present.
func checkNyquist(kind Kind, sampleRate float64, frequencies ...float64) error {
	highest := 0.0
	for _, f := range frequencies {
		highest = math.Max(highest, f)
	}
	if sampleRate <= 2*highest {
		return NewParameterError(kind, "SampleRate", "%g Hz must exceed twice the highest frequency (%g Hz)", sampleRate, highest)
	}
	return nil
}

// firstError returns the first non-nil error, letting Validate methods list checks in order.
func firstError(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
