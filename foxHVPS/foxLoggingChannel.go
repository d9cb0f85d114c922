package foxHVPS

import (
	"sync"

	"github.com/Foxenfurter/foxHVPSLib/foxLog"
	"github.com/Foxenfurter/foxHVPSLib/foxNormalizer"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

// LoggingChannel writes one log line per command and forwards it to Next.
type LoggingChannel struct {
	Next   Channel
	Logger *foxLog.Logger

	mu    sync.Mutex
	label foxWaveGen.Kind
}

type loggingPeriodicChannel struct {
	*LoggingChannel
	next PeriodicChannel
}

// NewLoggingChannel wraps next. The result keeps native primitives only when next has them.
func NewLoggingChannel(next Channel, logger *foxLog.Logger) Channel {
	lc := &LoggingChannel{Next: next, Logger: logger}
	if periodic, ok := next.(PeriodicChannel); ok {
		return loggingPeriodicChannel{LoggingChannel: lc, next: periodic}
	}
	return lc
}

func (l *LoggingChannel) Label(kind foxWaveGen.Kind) {
	l.mu.Lock()
	l.label = kind
	l.mu.Unlock()
	if labelled, ok := l.Next.(LabelledChannel); ok {
		labelled.Label(kind)
	}
}

func (l *LoggingChannel) Waveform(samples []float64, sampleRate float64) error {
	l.mu.Lock()
	kind := l.label
	l.mu.Unlock()
	low, high := foxNormalizer.VoltageRange(samples)
	l.Logger.Infof("waveform %s: %d samples @ %g Hz, %.1f..%.1f V", kind, len(samples), sampleRate, low, high)
	return l.result("waveform", l.Next.Waveform(samples, sampleRate))
}

func (l *LoggingChannel) Zero() error {
	l.Logger.Info("zero output")
	return l.result("zero", l.Next.Zero())
}

func (l *LoggingChannel) result(op string, err error) error {
	if err != nil {
		l.Logger.Errorf("%s: %v", op, err)
	}
	return err
}

func (l loggingPeriodicChannel) Sine(frequency, amplitude float64) error {
	l.Logger.Infof("native sine %g Hz, %g V", frequency, amplitude)
	return l.result("sine", l.next.Sine(frequency, amplitude))
}

func (l loggingPeriodicChannel) Square(frequency, amplitude, duty float64) error {
	l.Logger.Infof("native square %g Hz, %g V, duty %g", frequency, amplitude, duty)
	return l.result("square", l.next.Square(frequency, amplitude, duty))
}
