package foxWaveGen

import (
	"math"
)

// DefaultRampSamples is the length of the safety ramp at each end of a chirp.
const DefaultRampSamples = 100

// ChirpParams describes a linear sweep from F0 to F1 over Duration that then
// sweeps back ("bounce"), so the output lasts twice Duration plus the ramps.
type ChirpParams struct {
	SampleRate  float64 // Hz
	F0          float64 // Hz, start frequency
	F1          float64 // Hz, end frequency
	Duration    float64 // s, one direction of the sweep
	MaxVoltage  float64 // V
	DcOffset    float64 // V, trough of the sweep and top of the ramps
	RampSamples int     // 0 selects DefaultRampSamples
}

func (p ChirpParams) Kind() Kind { return Chirp }
func (p ChirpParams) waveform()  {}

func (p ChirpParams) withDefaults() ChirpParams {
	if p.RampSamples == 0 {
		p.RampSamples = DefaultRampSamples
	}
	return p
}

// SweepSamples is the length of one direction of the sweep.
func (p ChirpParams) SweepSamples() int {
	return int(math.Round(p.Duration * p.SampleRate))
}

func (p ChirpParams) Validate() error {
	p = p.withDefaults()
	err := firstError(
		checkPositive(Chirp, "SampleRate", p.SampleRate),
		checkPositive(Chirp, "F0", p.F0),
		checkPositive(Chirp, "F1", p.F1),
		checkPositive(Chirp, "Duration", p.Duration),
		checkNonNegative(Chirp, "DcOffset", p.DcOffset),
		checkNonNegative(Chirp, "MaxVoltage", p.MaxVoltage),
		checkOrdered(Chirp, "DcOffset", p.DcOffset, "MaxVoltage", p.MaxVoltage),
		checkNyquist(Chirp, p.SampleRate, p.F0, p.F1),
	)
	if err != nil {
		return err
	}
	if p.RampSamples < 2 {
		return NewParameterError(Chirp, "RampSamples", "need at least 2 samples, got %d", p.RampSamples)
	}
	if err := checkSampleCount(Chirp, "Duration", 2*p.Duration*p.SampleRate+2*float64(p.RampSamples)); err != nil {
		return err
	}
	if p.SweepSamples() < 1 {
		return NewParameterError(Chirp, "Duration", "%gs holds no samples at %g Hz", p.Duration, p.SampleRate)
	}
	return nil
}

// Generate returns ramp-up, sweep, mirrored sweep, ramp-down. The ramps run
// linearly between 0 V and DcOffset so the supply never steps to operating voltage.
func (p ChirpParams) Generate() (SampleBuffer, error) {
	if err := p.Validate(); err != nil {
		return SampleBuffer{}, err
	}
	p = p.withDefaults()

	n := p.SweepSamples()
	span := p.MaxVoltage - p.DcOffset
	sweep := make([]float64, 2*n)
	for i, t := range linspace(0, p.Duration, n) {
		// inverted so the sweep starts from the bottom of its range
		unit := -0.5*linearChirp(t, p.F0, p.F1, p.Duration) + 0.5
		v := span*unit + p.DcOffset
		sweep[i] = v
		sweep[2*n-1-i] = v
	}

	rampUp := linspace(0, p.DcOffset, p.RampSamples)
	return newBuffer(Chirp, p.SampleRate, rampUp, sweep, reversed(rampUp)), nil
}
