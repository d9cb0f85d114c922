package foxHVPS

import (
	"errors"
	"fmt"

	"github.com/Foxenfurter/foxHVPSLib/foxNormalizer"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

// Player validates waveforms and streams them to a Channel.
type Player struct {
	Channel    Channel
	MaxVoltage float64 // device limit; buffers outside [0, MaxVoltage] are refused. 0 disables the check
	Inspect    []foxWaveGen.InspectFunc

	DebugFunc func(string) // enables the use of an external debug function supplied at the application level - expect to use foxLog
	DebugOn   bool         //enables debugging
}

// Play validates w and sends it to the channel. Sine and square waves without a DC
// offset use the channel's own primitives when it has them; everything else is
// synthesised and uploaded as samples.
func (p *Player) Play(w foxWaveGen.Waveform) error {
	const functionName = "Play"
	if p.Channel == nil {
		return errors.New(packageName + ":" + functionName + ": no channel")
	}
	if err := w.Validate(); err != nil {
		return err
	}
	if periodic, ok := p.Channel.(PeriodicChannel); ok {
		if handled, err := p.playNative(periodic, w); handled {
			return err
		}
	}

	buffer, err := w.Generate()
	if err != nil {
		return err
	}
	return p.PlayBuffer(buffer)
}

func (p *Player) playNative(ch PeriodicChannel, w foxWaveGen.Waveform) (bool, error) {
	const functionName = "playNative"
	switch params := w.(type) {
	case foxWaveGen.SineParams:
		if params.DcOffset != 0 || params.Cycles > 1 {
			return false, nil
		}
		if err := p.checkPeak(foxWaveGen.Sine, params.MaxVoltage); err != nil {
			return true, err
		}
		p.debug(fmt.Sprintf(packageName+":"+functionName+" native sine %g Hz %g V", params.Frequency, params.MaxVoltage))
		return true, ch.Sine(params.Frequency, params.MaxVoltage)
	case foxWaveGen.SquareParams:
		if params.DcOffset != 0 || params.Cycles > 1 {
			return false, nil
		}
		if err := p.checkPeak(foxWaveGen.Square, params.MaxVoltage); err != nil {
			return true, err
		}
		p.debug(fmt.Sprintf(packageName+":"+functionName+" native square %g Hz %g V duty %g", params.Frequency, params.MaxVoltage, params.Duty))
		return true, ch.Square(params.Frequency, params.MaxVoltage, params.Duty)
	}
	return false, nil
}

func (p *Player) checkPeak(kind foxWaveGen.Kind, peak float64) error {
	if p.MaxVoltage > 0 && peak > p.MaxVoltage {
		return foxWaveGen.NewParameterError(kind, "MaxVoltage", "%g V exceeds the device limit of %g V", peak, p.MaxVoltage)
	}
	return nil
}

// PlayBuffer sends an already generated or replayed buffer to the channel.
func (p *Player) PlayBuffer(buffer foxWaveGen.SampleBuffer) error {
	const functionName = "PlayBuffer"
	if p.Channel == nil {
		return errors.New(packageName + ":" + functionName + ": no channel")
	}
	if buffer.IsEmpty() {
		return foxWaveGen.NewParameterError(buffer.Kind(), "SampleRate", "%g Hz leaves no samples to play", buffer.SampleRate())
	}
	samples := buffer.Samples()
	if p.MaxVoltage > 0 {
		if err := foxNormalizer.CheckVoltageRange(samples, 0, p.MaxVoltage); err != nil {
			return foxWaveGen.NewParameterError(buffer.Kind(), "MaxVoltage", "%v", err)
		}
	}
	buffer.Inspect(p.Inspect...)

	if labelled, ok := p.Channel.(LabelledChannel); ok {
		labelled.Label(buffer.Kind())
	}
	p.debug(fmt.Sprintf(packageName+":"+functionName+" %s", buffer))
	// channel errors are returned unchanged
	return p.Channel.Waveform(samples, buffer.SampleRate())
}

// Zero drives the channel output to 0 V.
func (p *Player) Zero() error {
	if p.Channel == nil {
		return errors.New(packageName + ":Zero: no channel")
	}
	p.debug(packageName + ":Zero")
	return p.Channel.Zero()
}

// Function to handle debug calls, allowing for different logging implementations
func (p *Player) debug(message string) {
	if p.DebugOn {
		if p.DebugFunc != nil {
			p.DebugFunc(message)
		} else { // if no external debug function available just print the message
			println(message)
		}
	}
}
