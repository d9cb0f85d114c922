package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Foxenfurter/foxHVPSLib/foxLog"
	"github.com/Foxenfurter/foxHVPSLib/foxSettings"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

func TestRenderCatalog(t *testing.T) {
	var log bytes.Buffer
	job := renderJob{
		OutDir:    filepath.Join(t.TempDir(), "catalog"),
		Format:    "CSV",
		FullScale: 6000,
		Logger:    foxLog.NewWriterLogger(&log, "gen", false),
	}
	files, err := job.render(context.Background(), foxSettings.Default().Catalog())
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if len(files) != len(foxWaveGen.Kinds) {
		t.Fatalf("expected %d files, got %d", len(foxWaveGen.Kinds), len(files))
	}
	for i, kind := range foxWaveGen.Kinds {
		if filepath.Base(files[i]) != kind.String()+".csv" {
			t.Errorf("expected %s.csv, got %s", kind, files[i])
		}
		content, err := os.ReadFile(files[i])
		if err != nil || !strings.HasPrefix(string(content), "index,time_s,volts\n") {
			t.Errorf("%s: unexpected content (%v)", files[i], err)
		}
	}
	if strings.Count(log.String(), "peaks [") != len(foxWaveGen.Kinds) {
		t.Errorf("expected one spectrum line per waveform:\n%s", log.String())
	}
}

func TestRenderStopsOnParameterError(t *testing.T) {
	settings := foxSettings.Default()
	settings.Superimposed.F1 = 49.5
	job := renderJob{OutDir: t.TempDir(), Format: "WAV", BitDepth: 16, FullScale: 6000, Logger: foxLog.NewWriterLogger(&bytes.Buffer{}, "gen", false)}
	if _, err := job.render(context.Background(), settings.Catalog()); !foxWaveGen.IsParameterError(err) {
		t.Errorf("expected a ParameterError, got %v", err)
	}
}

func TestRenderRefusesOverLimitWaveform(t *testing.T) {
	// 5000 V + 1000 V + 500 V offset peaks near 6500 V, above the 6000 V full scale
	overLimit := foxWaveGen.SuperimposedParams{SampleRate: 1000, F0: 1, F1: 50, MaxVoltageF0: 5000, MaxVoltageF1: 1000, DcOffset: 500}
	outDir := t.TempDir()
	job := renderJob{OutDir: outDir, Format: "WAV", BitDepth: 16, FullScale: 6000, Logger: foxLog.NewWriterLogger(&bytes.Buffer{}, "gen", false)}

	_, err := job.render(context.Background(), []foxWaveGen.Waveform{overLimit})
	if !foxWaveGen.IsParameterError(err) {
		t.Fatalf("expected a ParameterError, got %v", err)
	}
	if !strings.Contains(err.Error(), "MaxVoltage") {
		t.Errorf("expected the error to name MaxVoltage, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(outDir, "superimposed.wav")); !os.IsNotExist(err) {
		t.Errorf("expected no file for a refused waveform, got %v", err)
	}
}

func TestSelectKinds(t *testing.T) {
	catalog := foxSettings.Default().Catalog()
	selected, err := selectKinds(catalog, "chirp, Heartbeat")
	if err != nil || len(selected) != 2 || selected[0].Kind() != foxWaveGen.Chirp {
		t.Errorf("unexpected selection %v %v", selected, err)
	}
	if _, err := selectKinds(catalog, "sawtooth"); err == nil {
		t.Errorf("expected an unknown kind to be rejected")
	}
	all, _ := selectKinds(catalog, "")
	if len(all) != len(catalog) {
		t.Errorf("expected the whole catalog")
	}
}
