package foxFFT_test

import (
	"fmt"
	"math"
	"os"
	"strings"
	"testing"

	"github.com/Foxenfurter/foxHVPSLib/foxFFT"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

func TestDominantSine(t *testing.T) {
	buffer, err := foxWaveGen.SineParams{SampleRate: 1000, Frequency: 10, MaxVoltage: 6000, Cycles: 10}.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	spectrum, err := foxFFT.Analyse(buffer)
	if err != nil {
		t.Fatalf("Analyse failed: %v", err)
	}
	dominant := spectrum.Dominant()
	fmt.Println("Sine:", spectrum.Summary(3))
	if dominant.Frequency != 10 {
		t.Errorf("expected 10 Hz, got %.3f Hz", dominant.Frequency)
	}
	if math.Abs(dominant.Magnitude-3000) > 100 {
		t.Errorf("expected about 3000 V amplitude, got %.1f", dominant.Magnitude)
	}
	if math.Abs(spectrum.Mean-3000) > 10 {
		t.Errorf("expected a mean near 3000 V, got %.1f", spectrum.Mean)
	}
}

func TestSuperimposedComponents(t *testing.T) {
	buffer, err := foxWaveGen.SuperimposedParams{SampleRate: 1000, F0: 1, F1: 50, MaxVoltageF0: 5000, MaxVoltageF1: 1000}.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	spectrum, err := foxFFT.Analyse(buffer)
	if err != nil {
		t.Fatalf("Analyse failed: %v", err)
	}
	peaks := spectrum.Peaks(2)
	if len(peaks) != 2 {
		t.Fatalf("expected 2 peaks, got %v", peaks)
	}
	if peaks[0].Frequency != 1 || peaks[1].Frequency != 50 {
		t.Errorf("expected lines at 1 Hz and 50 Hz, got %v", peaks)
	}
	if spectrum.BinOf(50) != 50 {
		t.Errorf("expected bin 50 for 50 Hz, got %d", spectrum.BinOf(50))
	}
}

func TestInspector(t *testing.T) {
	var reports []string
	hook := foxFFT.Inspector(func(m string) { reports = append(reports, m) }, 2)
	buffer, _ := foxWaveGen.SineParams{SampleRate: 1000, Frequency: 10, MaxVoltage: 6000}.Generate()
	buffer.Inspect(hook)
	foxWaveGen.NewSampleBuffer(foxWaveGen.Sine, []float64{1}, 1000).Inspect(hook)

	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %v", reports)
	}
	if !strings.Contains(reports[0], "10.00 Hz") {
		t.Errorf("expected the sine line in %q", reports[0])
	}
	if !strings.Contains(reports[1], "at least 2 samples") {
		t.Errorf("expected a short buffer error, got %q", reports[1])
	}
}

func TestMain(m *testing.M) {
	fmt.Println("Running FFT Test:")
	os.Exit(m.Run())
}
