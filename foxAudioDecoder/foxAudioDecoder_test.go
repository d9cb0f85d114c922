package foxAudioDecoder_test

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/Foxenfurter/foxHVPSLib/foxAudioDecoder"
	"github.com/Foxenfurter/foxHVPSLib/foxAudioEncoder"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

func TestPCMDecoderRoundTrip(t *testing.T) {
	buffer, err := foxWaveGen.HeartbeatParams{SampleRate: 1000, MaxVoltage: 6000, VoltageLub: 4500, DcOffset: 2000}.Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	filename := filepath.Join(t.TempDir(), "0001_heartbeat.wav")
	encoder := foxAudioEncoder.AudioEncoder{Type: "Wav", BitDepth: 16, FullScaleVolts: 6000, Filename: filename}
	if err := encoder.EncodeBuffer(buffer); err != nil {
		t.Fatalf("EncodeBuffer failed: %v", err)
	}

	kind, ok := foxAudioDecoder.KindFromFilename(filename)
	if !ok || kind != foxWaveGen.Heartbeat {
		t.Fatalf("expected heartbeat from the file name, got %v %v", kind, ok)
	}
	decoder := foxAudioDecoder.PCMDecoder{Filename: filename, FullScaleVolts: 6000, Kind: kind}
	fmt.Println("Decoding input file... ", decoder.Filename)
	loaded, err := decoder.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Len() != buffer.Len() || loaded.SampleRate() != 1000 || loaded.Kind() != foxWaveGen.Heartbeat {
		t.Fatalf("expected %s, got %s", buffer, loaded)
	}
	if decoder.BitDepth != 16 || decoder.NumChannels != 1 {
		t.Errorf("unexpected format: %d bit, %d channels", decoder.BitDepth, decoder.NumChannels)
	}
	// one 16 bit step is 2*6000/32767 V
	for i := 0; i < buffer.Len(); i++ {
		if math.Abs(loaded.At(i)-buffer.At(i)) > 0.5 {
			t.Fatalf("sample %d: expected %.3f V, got %.3f V", i, buffer.At(i), loaded.At(i))
		}
	}
}

func TestPCMDecoderRejectsGarbage(t *testing.T) {
	decoder := foxAudioDecoder.PCMDecoder{Reader: bytes.NewReader([]byte("index,time_s,volts\n")), FullScaleVolts: 6000}
	if _, err := decoder.Load(); err == nil {
		t.Errorf("expected an error for a non wav input")
	}
	decoder = foxAudioDecoder.PCMDecoder{Filename: filepath.Join(t.TempDir(), "missing.wav"), FullScaleVolts: 6000}
	if _, err := decoder.Load(); err == nil {
		t.Errorf("expected an error for a missing file")
	}
}

func TestKindFromFilename(t *testing.T) {
	if kind, ok := foxAudioDecoder.KindFromFilename("capture.wav"); ok || kind != foxWaveGen.Unknown {
		t.Errorf("expected no kind in a plain file name, got %v", kind)
	}
	if kind, ok := foxAudioDecoder.KindFromFilename("/tmp/out/chirp_preview.wav"); !ok || kind != foxWaveGen.Chirp {
		t.Errorf("expected chirp, got %v %v", kind, ok)
	}
}

func TestMain(m *testing.M) {
	fmt.Println("Running Decoder Test:")
	os.Exit(m.Run())
}
