package foxWavEncoder_test

import (
	"encoding/binary"
	"fmt"
	"reflect"
	"testing"

	foxWavEncoder "github.com/Foxenfurter/foxHVPSLib/foxAudioEncoder/foxWavEncoder"
)

func TestFoxWAVEncoder(t *testing.T) {
	// Create a FoxWAVEncoder instance for testing
	encoder := &foxWavEncoder.FoxEncoder{
		SampleRate:     1000,
		BitDepth:       16,
		FullScaleVolts: 6000,
		Size:           6,
	}

	headerResult, errH := encoder.EncodeHeader()
	if errH != nil {
		t.Fatalf("EncodeWavHeader failed with error: %v", errH)
	}
	fmt.Println("Header Byte array:", headerResult)
	if len(headerResult) != 44 || string(headerResult[0:4]) != "RIFF" || string(headerResult[8:12]) != "WAVE" {
		t.Fatalf("unexpected header: %v", headerResult)
	}
	if got := binary.LittleEndian.Uint16(headerResult[22:24]); got != 1 {
		t.Errorf("expected a mono header, got %d channels", got)
	}
	if got := binary.LittleEndian.Uint32(headerResult[24:28]); got != 1000 {
		t.Errorf("expected 1000 Hz, got %d", got)
	}
	if got := binary.LittleEndian.Uint32(headerResult[40:44]); got != 6 {
		t.Errorf("expected a data size of 6, got %d", got)
	}

	// bottom, middle and top of the supply range
	volts := []float64{0, 3000, 6000}
	expectedPCMData := []byte{
		0x01, 0x80, // -32767
		0x00, 0x00, // 0
		0xFF, 0x7F, // 32767
	}

	pcmData, err := encoder.EncodeData(volts)
	if err != nil {
		t.Fatalf("Error converting to PCM: %v", err)
	}
	fmt.Println("Expected Byte array: ", expectedPCMData)
	fmt.Println("Actual Byte array: ", pcmData)

	if !reflect.DeepEqual(pcmData, expectedPCMData) {
		t.Errorf("PCM data does not match the expected result.")
	}
	if encoder.GetPeak() != 6000 {
		t.Errorf("expected peak 6000 V, got %f", encoder.GetPeak())
	}
}

func TestFoxWAVEncoderClipsAndDepths(t *testing.T) {
	encoder := &foxWavEncoder.FoxEncoder{SampleRate: 1000, BitDepth: 24, FullScaleVolts: 100}
	pcmData, err := encoder.EncodeData([]float64{150, -50})
	if err != nil {
		t.Fatalf("Error converting to PCM: %v", err)
	}
	expected := []byte{0xFF, 0xFF, 0x7F, 0x01, 0x00, 0x80}
	if !reflect.DeepEqual(pcmData, expected) {
		t.Errorf("expected clipped 24 bit samples %v, got %v", expected, pcmData)
	}

	encoder.BitDepth = 32
	if pcmData, _ = encoder.EncodeData([]float64{50}); len(pcmData) != 4 {
		t.Errorf("expected 4 bytes per 32 bit sample, got %d", len(pcmData))
	}

	encoder.BitDepth = 12
	if _, err := encoder.EncodeHeader(); err == nil {
		t.Errorf("expected an error for 12 bit output")
	}
}

func TestFoxWAVEncoderStreamingHeader(t *testing.T) {
	encoder := &foxWavEncoder.FoxEncoder{SampleRate: 1000, BitDepth: 16, FullScaleVolts: 6000}
	header, err := encoder.EncodeHeader()
	if err != nil {
		t.Fatalf("EncodeWavHeader failed with error: %v", err)
	}
	if got := binary.LittleEndian.Uint32(header[4:8]); got != 0xFFFFFFFF {
		t.Errorf("expected an open-ended RIFF size, got %d", got)
	}
}
