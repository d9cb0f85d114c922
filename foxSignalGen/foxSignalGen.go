// foxSignalGen renders the whole waveform catalog to files, one goroutine per waveform.
// Useful for checking generator output in an audio editor or spreadsheet without a device.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Foxenfurter/foxHVPSLib/foxAudioEncoder"
	"github.com/Foxenfurter/foxHVPSLib/foxFFT"
	"github.com/Foxenfurter/foxHVPSLib/foxLog"
	"github.com/Foxenfurter/foxHVPSLib/foxNormalizer"
	"github.com/Foxenfurter/foxHVPSLib/foxSettings"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
	"golang.org/x/sync/errgroup"
)

type renderJob struct {
	OutDir      string
	Format      string
	BitDepth    int
	PreviewRate int
	FullScale   float64
	Logger      *foxLog.Logger
}

// render generates and encodes every waveform concurrently. A buffer outside
// [0, FullScale] is refused rather than clipped by the encoder. The first failure
// cancels the jobs that have not started encoding yet.
func (job renderJob) render(ctx context.Context, catalog []foxWaveGen.Waveform) ([]string, error) {
	if err := os.MkdirAll(job.OutDir, os.ModePerm); err != nil {
		return nil, err
	}
	files := make([]string, len(catalog))
	g, ctx := errgroup.WithContext(ctx)
	for i, w := range catalog {
		i, w := i, w
		g.Go(func() error {
			buffer, err := w.Generate()
			if err != nil {
				return err
			}
			if err := foxNormalizer.CheckVoltageRange(buffer.Samples(), 0, job.FullScale); err != nil {
				return foxWaveGen.NewParameterError(w.Kind(), "MaxVoltage", "%v", err)
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			buffer.Inspect(foxFFT.Inspector(job.Logger.Info, 3))

			filename := filepath.Join(job.OutDir, fmt.Sprintf("%s.%s", w.Kind(), strings.ToLower(job.Format)))
			encoder := foxAudioEncoder.AudioEncoder{
				Type:           job.Format,
				BitDepth:       job.BitDepth,
				FullScaleVolts: job.FullScale,
				PreviewRate:    job.PreviewRate,
				Filename:       filename,
				DebugFunc:      job.Logger.Debug,
				DebugOn:        job.Logger.DebugEnabled,
			}
			if err := encoder.EncodeBuffer(buffer); err != nil {
				return fmt.Errorf("%s: %w", w.Kind(), err)
			}
			job.Logger.Infof("wrote %s (%s, peak %.1f V)", filename, buffer, encoder.Peak)
			files[i] = filename
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return files, nil
}

// selectKinds filters the catalog by a comma separated list of kind names; blank keeps all.
func selectKinds(catalog []foxWaveGen.Waveform, list string) ([]foxWaveGen.Waveform, error) {
	if strings.TrimSpace(list) == "" {
		return catalog, nil
	}
	var selected []foxWaveGen.Waveform
	for _, name := range strings.Split(list, ",") {
		kind, err := foxWaveGen.ParseKind(name)
		if err != nil {
			return nil, err
		}
		for _, w := range catalog {
			if w.Kind() == kind {
				selected = append(selected, w)
			}
		}
	}
	return selected, nil
}

func main() {
	settingsFile := flag.String("settings", "", "JSON file overriding the demo settings")
	outDir := flag.String("out", "waveforms", "output directory")
	format := flag.String("format", "WAV", "WAV, PCM or CSV")
	bitDepth := flag.Int("bitdepth", 16, "WAV/PCM bit depth")
	previewRate := flag.Int("preview", 0, "resample to this rate (Hz) before writing")
	kinds := flag.String("kinds", "", "comma separated waveform kinds, default all")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := foxLog.NewWriterLogger(os.Stderr, "", *debug)
	settings, err := foxSettings.Load(*settingsFile)
	if err != nil {
		logger.FatalError(err.Error())
	}
	if err := settings.Validate(); err != nil {
		logger.FatalError(err.Error())
	}
	catalog, err := selectKinds(settings.Catalog(), *kinds)
	if err != nil {
		logger.FatalError(err.Error())
	}

	job := renderJob{
		OutDir:      *outDir,
		Format:      *format,
		BitDepth:    *bitDepth,
		PreviewRate: *previewRate,
		FullScale:   settings.MaxVoltage,
		Logger:      logger,
	}
	files, err := job.render(context.Background(), catalog)
	if err != nil {
		logger.FatalError(err.Error())
	}
	fmt.Println("Generated", len(files), "waveform files in", *outDir)
}
