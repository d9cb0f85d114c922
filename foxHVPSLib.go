package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	foxbufferedstdinreader "github.com/Foxenfurter/foxHVPSLib/foxBufferedStdinReader"
	"github.com/Foxenfurter/foxHVPSLib/foxAudioDecoder"
	"github.com/Foxenfurter/foxHVPSLib/foxFFT"
	"github.com/Foxenfurter/foxHVPSLib/foxHVPS"
	"github.com/Foxenfurter/foxHVPSLib/foxLog"
	"github.com/Foxenfurter/foxHVPSLib/foxSettings"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

const packageName = "foxHVPSLib"

// MenuChoice is one entry of the interactive menu.
type MenuChoice int

const (
	MenuZero MenuChoice = iota
	MenuSine
	MenuSquare
	MenuChirp
	MenuHeartbeat
	MenuSuperimposed
	MenuExit
)

var menuText = []string{
	"Zero voltage",
	"Sine",
	"Square",
	"Chirp",
	"Heartbeat",
	"Superimposed sines",
	"Exit",
}

func (c MenuChoice) String() string {
	if c < MenuZero || c > MenuExit {
		return "?"
	}
	return menuText[c]
}

// Kind maps a waveform choice to its generator; ok is false for zero and exit.
func (c MenuChoice) Kind() (foxWaveGen.Kind, bool) {
	switch c {
	case MenuSine:
		return foxWaveGen.Sine, true
	case MenuSquare:
		return foxWaveGen.Square, true
	case MenuChirp:
		return foxWaveGen.Chirp, true
	case MenuHeartbeat:
		return foxWaveGen.Heartbeat, true
	case MenuSuperimposed:
		return foxWaveGen.Superimposed, true
	}
	return foxWaveGen.Unknown, false
}

// ParseMenuChoice accepts only the digits 0 to 6.
func ParseMenuChoice(input string) (MenuChoice, error) {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || n < int(MenuZero) || n > int(MenuExit) {
		return 0, fmt.Errorf("invalid input %q", strings.TrimSpace(input))
	}
	return MenuChoice(n), nil
}

type options struct {
	settingsFile string
	outDir       string
	format       string
	bitDepth     int
	previewRate  int
	logFile      string
	debug        bool
	inspect      bool
	synthesize   bool
	replay       string
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet(packageName, flag.ContinueOnError)
	fs.StringVar(&o.settingsFile, "settings", "", "JSON file overriding the demo settings")
	fs.StringVar(&o.outDir, "out", "", "write each waveform to a numbered file in this directory instead of a dry run channel")
	fs.StringVar(&o.format, "format", "WAV", "output file format: WAV, PCM or CSV")
	fs.IntVar(&o.bitDepth, "bitdepth", 16, "WAV/PCM bit depth: 16, 24 or 32")
	fs.IntVar(&o.previewRate, "preview", 0, "resample exported files to this rate (Hz)")
	fs.StringVar(&o.logFile, "log", "", "log file (default stderr)")
	fs.BoolVar(&o.debug, "debug", false, "enable debug logging")
	fs.BoolVar(&o.inspect, "inspect", false, "log the spectrum of every generated waveform")
	fs.BoolVar(&o.synthesize, "synthesize", false, "synthesise sine and square instead of using the channel's own primitives")
	fs.StringVar(&o.replay, "replay", "", "play a previously exported WAV file and exit")
	err := fs.Parse(args)
	return o, err
}

func newLogger(o options) (*foxLog.Logger, error) {
	if o.logFile == "" {
		return foxLog.NewWriterLogger(os.Stderr, "", o.debug), nil
	}
	return foxLog.NewLogger(o.logFile, "", o.debug)
}

// newChannel builds the sink stack: file or memory channel, logging decorator,
// optionally without native primitives.
func newChannel(o options, settings foxSettings.Settings, logger *foxLog.Logger) foxHVPS.Channel {
	var channel foxHVPS.Channel
	if o.outDir != "" {
		channel = &foxHVPS.EncoderChannel{
			Directory:      o.outDir,
			Type:           o.format,
			BitDepth:       o.bitDepth,
			FullScaleVolts: settings.MaxVoltage,
			PreviewRate:    o.previewRate,
			DebugFunc:      logger.Debug,
			DebugOn:        o.debug,
		}
	} else {
		channel = &foxHVPS.MemoryChannel{}
	}
	if o.synthesize {
		channel = foxHVPS.WaveformOnly(channel)
	}
	return foxHVPS.NewLoggingChannel(channel, logger)
}

// runMenu shows the menu and dispatches choices until exit or end of input.
// Parameter errors are reported and the loop continues; device errors end it.
func runMenu(in *foxbufferedstdinreader.BufferedStdinReader, out io.Writer, player *foxHVPS.Player, settings foxSettings.Settings) error {
	const functionName = "runMenu"
	for {
		fmt.Fprintln(out, "Select output signal")
		for c := MenuZero; c <= MenuExit; c++ {
			fmt.Fprintf(out, "%d: %s\n", c, c)
		}
		fmt.Fprintf(out, "Enter your choice (%d-%d): ", MenuZero, MenuExit)

		line, err := in.ReadLine(0)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return player.Zero()
		}
		if err != nil {
			return fmt.Errorf(packageName+":"+functionName+": %w", err)
		}
		choice, err := ParseMenuChoice(line)
		if err != nil {
			fmt.Fprintf(out, "Invalid input. Please enter a number between %d and %d.\n", MenuZero, MenuExit)
			continue
		}

		switch choice {
		case MenuZero:
			fmt.Fprintln(out, "Zero output.")
			if err := player.Zero(); err != nil {
				return err
			}
		case MenuExit:
			fmt.Fprintln(out, "Exiting...")
			return player.Zero()
		default:
			kind, _ := choice.Kind()
			fmt.Fprintf(out, "%s waveform.\n", choice)
			err := player.Play(settings.Waveform(kind))
			if foxWaveGen.IsParameterError(err) {
				fmt.Fprintln(out, err)
				continue
			}
			if err != nil {
				return err
			}
		}
	}
}

func replay(o options, settings foxSettings.Settings, player *foxHVPS.Player, logger *foxLog.Logger) error {
	kind, ok := foxAudioDecoder.KindFromFilename(o.replay)
	if !ok {
		logger.Warnf("no waveform kind in %s, labelling it %s", o.replay, kind)
	}
	decoder := foxAudioDecoder.PCMDecoder{
		Filename:       o.replay,
		FullScaleVolts: settings.MaxVoltage,
		Kind:           kind,
		DebugFunc:      logger.Debug,
		DebugOn:        o.debug,
	}
	buffer, err := decoder.Load()
	if err != nil {
		return err
	}
	logger.Infof("replaying %s", buffer)
	return player.PlayBuffer(buffer)
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	logger, err := newLogger(o)
	if err != nil {
		return err
	}
	defer logger.Close()

	settings, err := foxSettings.Load(o.settingsFile)
	if err != nil {
		return err
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	player := &foxHVPS.Player{
		Channel:    newChannel(o, settings, logger),
		MaxVoltage: settings.MaxVoltage,
		DebugFunc:  logger.Debug,
		DebugOn:    o.debug,
	}
	if o.inspect {
		player.Inspect = append(player.Inspect, foxFFT.Inspector(logger.Info, 3))
	}
	logger.Infof("session started, limit %g V", settings.MaxVoltage)

	if o.replay != "" {
		return replay(o, settings, player, logger)
	}
	return runMenu(foxbufferedstdinreader.NewBufferedReader(stdin), stdout, player, settings)
}

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
