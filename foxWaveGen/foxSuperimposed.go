package foxWaveGen

import (
	"math"
)

const ratioTolerance = 1e-9

// SuperimposedParams adds F1 on top of one period of F0. F1 must be an integer
// multiple of F0 so that both arms span exactly the same time.
type SuperimposedParams struct {
	SampleRate   float64 // Hz
	F0           float64 // Hz, base frequency
	F1           float64 // Hz, modulation frequency
	MaxVoltageF0 float64 // V, swing of the F0 arm
	MaxVoltageF1 float64 // V, swing of the F1 arm
	DcOffset     float64 // V
}

func (p SuperimposedParams) Kind() Kind { return Superimposed }
func (p SuperimposedParams) waveform()  {}

// CycleRatio returns F1/F0 when it is a positive integer.
func (p SuperimposedParams) CycleRatio() (int, error) {
	ratio := p.F1 / p.F0
	k := math.Round(ratio)
	if k < 1 || math.Abs(ratio-k) > ratioTolerance*math.Max(1, ratio) {
		return 0, NewParameterError(Superimposed, "F1", "%g Hz is not an integer multiple of F0 (%g Hz)", p.F1, p.F0)
	}
	return int(k), nil
}

func (p SuperimposedParams) Validate() error {
	err := firstError(
		checkPositive(Superimposed, "SampleRate", p.SampleRate),
		checkPositive(Superimposed, "F0", p.F0),
		checkPositive(Superimposed, "F1", p.F1),
		checkNonNegative(Superimposed, "MaxVoltageF0", p.MaxVoltageF0),
		checkNonNegative(Superimposed, "MaxVoltageF1", p.MaxVoltageF1),
		checkNonNegative(Superimposed, "DcOffset", p.DcOffset),
	)
	if err != nil {
		return err
	}
	if err := checkSampleCount(Superimposed, "F0", p.SampleRate/p.F0); err != nil {
		return err
	}
	if _, err := p.CycleRatio(); err != nil {
		return err
	}
	return checkNyquist(Superimposed, p.SampleRate, p.F0, p.F1)
}

// Arms returns the two unsummed components. Both are sized from the same F0 period
// so they always line up sample for sample.
func (p SuperimposedParams) Arms() ([]float64, []float64, error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	cycles, _ := p.CycleRatio()
	n := int(math.Round(p.SampleRate / p.F0))

	f0Arm := halfCosine(n, p.MaxVoltageF0, 0, -math.Pi/2, 2*math.Pi)
	f1Arm := halfCosine(n, p.MaxVoltageF1, 0, -math.Pi/2, 2*math.Pi*float64(cycles))
	if len(f0Arm) != len(f1Arm) {
		return nil, nil, NewParameterError(Superimposed, "F1", "arm lengths differ (%d vs %d samples)", len(f0Arm), len(f1Arm))
	}
	return f0Arm, f1Arm, nil
}

func (p SuperimposedParams) Generate() (SampleBuffer, error) {
	f0Arm, f1Arm, err := p.Arms()
	if err != nil {
		return SampleBuffer{}, err
	}
	out := make([]float64, len(f0Arm))
	for i := range out {
		out[i] = f0Arm[i] + f1Arm[i] + p.DcOffset
	}
	return newBuffer(Superimposed, p.SampleRate, out), nil
}
