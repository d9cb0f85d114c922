package foxWaveGen

import (
	"math"
)

// SineParams is a unipolar sine swinging between DcOffset and MaxVoltage.
// Channels with a native sine primitive play it directly; this generator is the fallback.
type SineParams struct {
	SampleRate float64 // Hz
	Frequency  float64 // Hz
	MaxVoltage float64 // V
	DcOffset   float64 // V
	Cycles     int     // periods in the buffer, 0 selects 1
}

// SquareParams is a square wave that sits at MaxVoltage for Duty of each period
// and at DcOffset for the rest.
type SquareParams struct {
	SampleRate float64 // Hz
	Frequency  float64 // Hz
	MaxVoltage float64 // V
	DcOffset   float64 // V
	Duty       float64 // fraction of the period spent high
	Cycles     int     // periods in the buffer, 0 selects 1
}

func (p SineParams) Kind() Kind   { return Sine }
func (p SineParams) waveform()    {}
func (p SquareParams) Kind() Kind { return Square }
func (p SquareParams) waveform()  {}

func cyclesOrDefault(c int) int {
	if c == 0 {
		return 1
	}
	return c
}

func (p SineParams) Validate() error {
	err := firstError(
		checkPositive(Sine, "SampleRate", p.SampleRate),
		checkPositive(Sine, "Frequency", p.Frequency),
		checkNonNegative(Sine, "DcOffset", p.DcOffset),
		checkNonNegative(Sine, "MaxVoltage", p.MaxVoltage),
		checkOrdered(Sine, "DcOffset", p.DcOffset, "MaxVoltage", p.MaxVoltage),
		checkNyquist(Sine, p.SampleRate, p.Frequency),
	)
	if err != nil {
		return err
	}
	if p.Cycles < 0 {
		return NewParameterError(Sine, "Cycles", "must be >= 0, got %d", p.Cycles)
	}
	return checkSampleCount(Sine, "Frequency", p.SampleRate*float64(cyclesOrDefault(p.Cycles))/p.Frequency)
}

func (p SineParams) Generate() (SampleBuffer, error) {
	if err := p.Validate(); err != nil {
		return SampleBuffer{}, err
	}
	cycles := float64(cyclesOrDefault(p.Cycles))
	n := int(math.Round(p.SampleRate * cycles / p.Frequency))
	out := halfCosine(n, p.MaxVoltage-p.DcOffset, p.DcOffset, -math.Pi/2, 2*math.Pi*cycles)
	return newBuffer(Sine, p.SampleRate, out), nil
}

func (p SquareParams) Validate() error {
	err := firstError(
		checkPositive(Square, "SampleRate", p.SampleRate),
		checkPositive(Square, "Frequency", p.Frequency),
		checkNonNegative(Square, "DcOffset", p.DcOffset),
		checkNonNegative(Square, "MaxVoltage", p.MaxVoltage),
		checkOrdered(Square, "DcOffset", p.DcOffset, "MaxVoltage", p.MaxVoltage),
		checkFraction(Square, "Duty", p.Duty),
		checkNyquist(Square, p.SampleRate, p.Frequency),
	)
	if err != nil {
		return err
	}
	if p.Cycles < 0 {
		return NewParameterError(Square, "Cycles", "must be >= 0, got %d", p.Cycles)
	}
	perPeriod := math.Round(p.SampleRate / p.Frequency)
	return checkSampleCount(Square, "Frequency", perPeriod*float64(cyclesOrDefault(p.Cycles)))
}

func (p SquareParams) Generate() (SampleBuffer, error) {
	if err := p.Validate(); err != nil {
		return SampleBuffer{}, err
	}
	perPeriod := int(math.Round(p.SampleRate / p.Frequency))
	high := int(math.Round(float64(perPeriod) * p.Duty))

	period := make([]float64, perPeriod)
	for i := range period {
		if i < high {
			period[i] = p.MaxVoltage
		} else {
			period[i] = p.DcOffset
		}
	}
	cycles := cyclesOrDefault(p.Cycles)
	segments := make([][]float64, cycles)
	for c := range segments {
		segments[c] = period
	}
	return newBuffer(Square, p.SampleRate, segments...), nil
}
