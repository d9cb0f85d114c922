package foxCsvEncoder_test

import (
	"testing"

	foxCsvEncoder "github.com/Foxenfurter/foxHVPSLib/foxAudioEncoder/foxCsvEncoder"
)

func TestFoxCSVEncoder(t *testing.T) {
	encoder := &foxCsvEncoder.FoxEncoder{SampleRate: 1000, Precision: 1}

	header, err := encoder.EncodeHeader()
	if err != nil {
		t.Fatalf("EncodeHeader failed: %v", err)
	}
	if string(header) != "index,time_s,volts\n" {
		t.Errorf("unexpected header %q", header)
	}

	first, _ := encoder.EncodeData([]float64{0, 2000})
	second, err := encoder.EncodeData([]float64{6000})
	if err != nil {
		t.Fatalf("EncodeData failed: %v", err)
	}
	expected := "0,0.000000,0.0\n1,0.001000,2000.0\n"
	if string(first) != expected {
		t.Errorf("expected %q, got %q", expected, first)
	}
	if string(second) != "2,0.002000,6000.0\n" {
		t.Errorf("expected row numbering to continue, got %q", second)
	}
	if encoder.GetPeak() != 6000 {
		t.Errorf("expected peak 6000, got %f", encoder.GetPeak())
	}
}

func TestFoxCSVEncoderNeedsRate(t *testing.T) {
	encoder := &foxCsvEncoder.FoxEncoder{}
	if _, err := encoder.EncodeData([]float64{1}); err == nil {
		t.Errorf("expected an error without a sample rate")
	}
}
