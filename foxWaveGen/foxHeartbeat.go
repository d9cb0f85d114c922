package foxWaveGen

import (
	"math"
)

const (
	DefaultHeartbeatFrequency = 1.0  // Hz, one beat per second
	DefaultHeartbeatFraction  = 0.25 // share of the cycle for each of the four phases
	fractionTolerance         = 1e-9
)

// HeartbeatParams describes one cardiac cycle: lub, down, dub, down.
// A zero BaseFrequency selects 1 Hz. When all three fractions are zero each phase
// gets a quarter of the cycle; once any fraction is set, a zero fraction means an
// empty phase.
type HeartbeatParams struct {
	SampleRate    float64 // Hz
	MaxVoltage    float64 // V, peak of the dub beat
	VoltageLub    float64 // V, peak of the lub beat
	DcOffset      float64 // V, resting level between beats
	BaseFrequency float64 // Hz
	FractionLub   float64
	FractionDown  float64 // used twice, after lub and after dub
	FractionDub   float64
}

func (p HeartbeatParams) Kind() Kind { return Heartbeat }
func (p HeartbeatParams) waveform()  {}

func (p HeartbeatParams) withDefaults() HeartbeatParams {
	if p.BaseFrequency == 0 {
		p.BaseFrequency = DefaultHeartbeatFrequency
	}
	if p.FractionLub == 0 && p.FractionDown == 0 && p.FractionDub == 0 {
		p.FractionLub = DefaultHeartbeatFraction
		p.FractionDown = DefaultHeartbeatFraction
		p.FractionDub = DefaultHeartbeatFraction
	}
	return p
}

func (p HeartbeatParams) Validate() error {
	p = p.withDefaults()
	err := firstError(
		checkPositive(Heartbeat, "SampleRate", p.SampleRate),
		checkPositive(Heartbeat, "BaseFrequency", p.BaseFrequency),
		checkNonNegative(Heartbeat, "DcOffset", p.DcOffset),
		checkNonNegative(Heartbeat, "VoltageLub", p.VoltageLub),
		checkNonNegative(Heartbeat, "MaxVoltage", p.MaxVoltage),
		checkOrdered(Heartbeat, "DcOffset", p.DcOffset, "VoltageLub", p.VoltageLub),
		checkOrdered(Heartbeat, "VoltageLub", p.VoltageLub, "MaxVoltage", p.MaxVoltage),
		checkFraction(Heartbeat, "FractionLub", p.FractionLub),
		checkFraction(Heartbeat, "FractionDown", p.FractionDown),
		checkFraction(Heartbeat, "FractionDub", p.FractionDub),
	)
	if err != nil {
		return err
	}
	sum := p.FractionLub + 2*p.FractionDown + p.FractionDub
	if math.Abs(sum-1) > fractionTolerance {
		return NewParameterError(Heartbeat, "Fractions", "lub + 2*down + dub must equal 1, got %g", sum)
	}
	return checkSampleCount(Heartbeat, "SampleRate", p.SampleRate/p.BaseFrequency)
}

// Generate builds a single beat; callers loop it for periodic output.
// At very low sample rates a phase may round to zero samples and is simply empty.
func (p HeartbeatParams) Generate() (SampleBuffer, error) {
	if err := p.Validate(); err != nil {
		return SampleBuffer{}, err
	}
	p = p.withDefaults()
	samplesPerCycle := p.SampleRate / p.BaseFrequency

	lub := halfCosine(phaseSamples(samplesPerCycle, p.FractionLub), p.VoltageLub-p.DcOffset, p.DcOffset, -math.Pi/2, 2*math.Pi)
	// the resting phase keeps the same S-curve form with no swing, so it holds the offset
	down := halfCosine(phaseSamples(samplesPerCycle, p.FractionDown), 0, p.DcOffset, math.Pi/2, 2*math.Pi)
	dub := halfCosine(phaseSamples(samplesPerCycle, p.FractionDub), p.MaxVoltage-p.DcOffset, p.DcOffset, -math.Pi/2, 2*math.Pi)

	return newBuffer(Heartbeat, p.SampleRate, lub, down, dub, down), nil
}
