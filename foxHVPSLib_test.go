package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	foxbufferedstdinreader "github.com/Foxenfurter/foxHVPSLib/foxBufferedStdinReader"
	"github.com/Foxenfurter/foxHVPSLib/foxHVPS"
	"github.com/Foxenfurter/foxHVPSLib/foxSettings"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

func TestParseMenuChoice(t *testing.T) {
	for n := 0; n <= 6; n++ {
		choice, err := ParseMenuChoice(fmt.Sprintf(" %d ", n))
		if err != nil || int(choice) != n {
			t.Errorf("%d: got %v %v", n, choice, err)
		}
	}
	for _, input := range []string{"", "7", "-1", "sine", "1.5"} {
		if _, err := ParseMenuChoice(input); err == nil {
			t.Errorf("expected %q to be rejected", input)
		}
	}
	if kind, ok := MenuHeartbeat.Kind(); !ok || kind != foxWaveGen.Heartbeat {
		t.Errorf("expected heartbeat, got %v %v", kind, ok)
	}
	if _, ok := MenuExit.Kind(); ok {
		t.Errorf("exit has no waveform")
	}
}

func TestRunMenu(t *testing.T) {
	channel := &foxHVPS.MemoryChannel{}
	player := &foxHVPS.Player{Channel: channel, MaxVoltage: 6000}
	in := foxbufferedstdinreader.NewBufferedReader(strings.NewReader("4\n9\n1\n5\n0\n6\n3\n"))
	var out bytes.Buffer

	if err := runMenu(in, &out, player, foxSettings.Default()); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}
	fmt.Println(out.String())

	var ops []string
	for _, call := range channel.Calls() {
		ops = append(ops, call.Op+":"+call.Kind.String())
	}
	// the chirp after exit is never read
	expected := "waveform:heartbeat sine:sine waveform:superimposed zero:unknown zero:unknown"
	if got := strings.Join(ops, " "); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
	if !strings.Contains(out.String(), "Invalid input. Please enter a number between 0 and 6.") {
		t.Errorf("expected the invalid input message")
	}
	if !strings.Contains(out.String(), "Exiting...") {
		t.Errorf("expected the exit message")
	}
}

func TestRunMenuParameterErrorContinues(t *testing.T) {
	settings := foxSettings.Default()
	settings.Chirp.F1 = 600 // aliases at 1 kHz
	channel := &foxHVPS.MemoryChannel{}
	player := &foxHVPS.Player{Channel: channel, MaxVoltage: 6000}
	in := foxbufferedstdinreader.NewBufferedReader(strings.NewReader("3\n4\n"))
	var out bytes.Buffer

	if err := runMenu(in, &out, player, settings); err != nil {
		t.Fatalf("runMenu failed: %v", err)
	}
	if !strings.Contains(out.String(), "invalid SampleRate") {
		t.Errorf("expected the chirp to be rejected, got:\n%s", out.String())
	}
	calls := channel.Calls()
	// heartbeat, then zero at end of input
	if len(calls) != 2 || calls[0].Kind != foxWaveGen.Heartbeat || calls[1].Op != "zero" {
		t.Errorf("unexpected calls %+v", calls)
	}
}

func TestRunExportAndReplay(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "hvps.log")
	outDir := filepath.Join(dir, "out")
	var out bytes.Buffer

	err := run([]string{"-out", outDir, "-log", logFile, "-inspect", "-synthesize"}, strings.NewReader("4\n1\n6\n"), &out)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	heartbeatFile := filepath.Join(outDir, "0001_heartbeat.wav")
	if _, err := os.Stat(heartbeatFile); err != nil {
		t.Fatalf("expected %s: %v", heartbeatFile, err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "0002_sine.wav")); err != nil {
		t.Errorf("expected a synthesised sine file: %v", err)
	}

	err = run([]string{"-replay", heartbeatFile, "-log", logFile}, strings.NewReader(""), &out)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	content, _ := os.ReadFile(logFile)
	log := string(content)
	for _, want := range []string{"peaks [", "replaying heartbeat: 1000 samples", "waveform heartbeat"} {
		if !strings.Contains(log, want) {
			t.Errorf("expected %q in the log:\n%s", want, log)
		}
	}
}

func TestRunRejectsBadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte(`{"heartbeat": {"VoltageLub": 9000}}`), 0644)
	if err := run([]string{"-settings", path}, strings.NewReader(""), &bytes.Buffer{}); !foxWaveGen.IsParameterError(err) {
		t.Errorf("expected a ParameterError, got %v", err)
	}
}
