// package calls an encoder based upon the supplied format
// and then processes the returned bytestream
// either to standard out, to a supplied writer or to the supplied file name
package foxAudioEncoder

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	foxCsvEncoder "github.com/Foxenfurter/foxHVPSLib/foxAudioEncoder/foxCsvEncoder"
	foxWavEncoder "github.com/Foxenfurter/foxHVPSLib/foxAudioEncoder/foxWavEncoder"
	"github.com/Foxenfurter/foxHVPSLib/foxResampler"
	"github.com/Foxenfurter/foxHVPSLib/foxWaveGen"
)

const packageName = "foxAudioEncoder"

// AudioEncoder writes mono voltage buffers as WAV, headerless PCM or CSV.
type AudioEncoder struct {
	SampleRate     int
	BitDepth       int
	FullScaleVolts float64 // voltage mapped onto PCM full scale
	PreviewRate    int     // when set, EncodeBuffer resamples to this rate first
	Size           int64   // bytes of sample data, 0 when unknown
	Type           string  // WAV, PCM or CSV
	Filename       string  // blank writes to Output, or stdout when Output is nil
	Output         io.Writer
	file           *os.File      // Holds the open file handle
	writer         *bufio.Writer // Buffered writer for efficient writes

	DebugFunc  func(string) // enables the use of an external debug function supplied at the application level - expect to use foxLog
	DebugOn    bool         //enables debugging
	encoder    EncoderInterface
	Peak       float64
	NumSamples int64
}

// each Encoder must have these methods defined
type EncoderInterface interface {
	EncodeHeader() ([]byte, error)
	EncodeData(volts []float64) ([]byte, error)
	GetPeak() float64
}

const (
	TargetBytesPerWrite = 8192
	DefaultBitDepth     = 16
)

// Constructor for Encoder
func (myEncoder *AudioEncoder) Initialise() error {
	const functionName = "Initialise"

	var err error
	if myEncoder.BitDepth == 0 {
		myEncoder.BitDepth = DefaultBitDepth
	}
	// Remove existing file if it exists and a filename is provided
	if myEncoder.Filename != "" {
		//clean and standardize the file path
		myEncoder.Filename = filepath.ToSlash(filepath.Clean(myEncoder.Filename))

		if _, err := os.Stat(myEncoder.Filename); err == nil {
			err = os.Remove(myEncoder.Filename)
			if err != nil {
				return fmt.Errorf(packageName+":"+functionName+":error removing existing file: %w", err)
			}
		}
	}

	// Decide which encoder to use
	switch strings.ToUpper(myEncoder.Type) {
	case "WAV":
		myEncoder.encoder = myEncoder.newWavEncoder()
		myEncoder.debug(packageName + ":" + functionName + "  Creating wav header...")

		err = myEncoder.writeHeader() // Write header during initialization
		if err != nil {
			return fmt.Errorf(packageName+":"+functionName+":error writing wav header: %w", err)
		}
	case "PCM":
		//no header for PCM
		myEncoder.encoder = myEncoder.newWavEncoder()
		myEncoder.debug(packageName + ":" + functionName + "  PCM Output...")
	case "CSV":
		myEncoder.encoder = &foxCsvEncoder.FoxEncoder{SampleRate: float64(myEncoder.SampleRate)}
		err = myEncoder.writeHeader()
		if err != nil {
			return fmt.Errorf(packageName+":"+functionName+":error writing csv header: %w", err)
		}
	default:
		return errors.New(packageName + ":" + functionName + ":unsupported encoder type " + myEncoder.Type)
	}

	myEncoder.debug(fmt.Sprintf(packageName+":"+functionName+" Header SampleRate: [%v] BitDepth: [%v] FullScale: [%v V] Size [%v] ",
		myEncoder.SampleRate, myEncoder.BitDepth, myEncoder.FullScaleVolts, myEncoder.Size))
	return err
}

func (myEncoder *AudioEncoder) newWavEncoder() *foxWavEncoder.FoxEncoder {
	return &foxWavEncoder.FoxEncoder{
		SampleRate:     myEncoder.SampleRate,
		BitDepth:       myEncoder.BitDepth,
		FullScaleVolts: myEncoder.FullScaleVolts,
		Size:           myEncoder.Size,
	}
}

// Call low level encoder to convert volts to the bytestream of choice, and then call output writer
func (myEncoder *AudioEncoder) EncodeData(volts []float64) error {
	const functionName = "EncodeData"
	if myEncoder.encoder == nil {
		return errors.New(packageName + ":" + functionName + ": encoder not initialised")
	}
	encodedData, err := myEncoder.encoder.EncodeData(volts)
	if err != nil {
		return errors.New(packageName + ":" + functionName + ": " + err.Error())
	}
	myEncoder.Peak = myEncoder.encoder.GetPeak()
	myEncoder.NumSamples += int64(len(volts))
	return myEncoder.writeData(encodedData)
}

// EncodeBuffer writes a complete buffer: it takes the rate and size from the buffer,
// optionally resamples it, writes header and data in batches and closes the output.
func (myEncoder *AudioEncoder) EncodeBuffer(buffer foxWaveGen.SampleBuffer) error {
	const functionName = "EncodeBuffer"
	if myEncoder.PreviewRate > 0 {
		myResampler := foxResampler.NewResampler(0, myEncoder.PreviewRate)
		myResampler.DebugFunc = myEncoder.DebugFunc
		myResampler.DebugOn = myEncoder.DebugOn
		resampled, err := myResampler.ResampleBuffer(buffer)
		if err != nil {
			return fmt.Errorf(packageName+":"+functionName+": %w", err)
		}
		buffer = resampled
	}
	if myEncoder.BitDepth == 0 {
		myEncoder.BitDepth = DefaultBitDepth
	}
	myEncoder.SampleRate = int(buffer.SampleRate() + 0.5)
	myEncoder.Size = int64(buffer.Len() * myEncoder.BitDepth / 8)

	if err := myEncoder.Initialise(); err != nil {
		return err
	}
	samples := buffer.Samples()
	batch := TargetBytesPerWrite / (myEncoder.BitDepth / 8)
	for start := 0; start < len(samples); start += batch {
		end := start + batch
		if end > len(samples) {
			end = len(samples)
		}
		if err := myEncoder.EncodeData(samples[start:end]); err != nil {
			myEncoder.Close()
			return fmt.Errorf(packageName+":"+functionName+": %w", err)
		}
	}
	myEncoder.debug(fmt.Sprintf(packageName+":"+functionName+" Total samples encoded: %v peak %.1f V", myEncoder.NumSamples, myEncoder.Peak))
	return myEncoder.Close()
}

// Helper functions for file writing
func (myEncoder *AudioEncoder) writeHeader() error {
	const functionName = "writeHeader"
	myEncoder.debug(packageName + ":" + functionName + " generate and write Header..")
	headerBytes, err := myEncoder.encoder.EncodeHeader()
	if err != nil {
		return errors.New(packageName + ":" + functionName + ": " + err.Error())
	}
	err = myEncoder.writeData(headerBytes)
	if err != nil {
		return errors.New(packageName + ":" + functionName + ": " + err.Error())
	}
	return nil
}

func (e *AudioEncoder) writeData(data []byte) error {
	const functionName = "writeData"
	if e.Filename == "" {
		out := e.Output
		if out == nil {
			out = os.Stdout
		}
		// Write directly without buffering
		if _, err := out.Write(data); err != nil {
			return fmt.Errorf("%s:%s: %w", packageName, functionName, err)
		}
		return nil
	}

	// Initialize file and writer on first use
	if e.file == nil {
		file, err := os.OpenFile(e.Filename, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("%s:%s: %w", packageName, functionName, err)
		}
		e.file = file
		e.writer = bufio.NewWriter(file)
	}

	// Write data through the buffer
	if _, err := e.writer.Write(data); err != nil {
		return fmt.Errorf("%s:%s: %w", packageName, functionName, err)
	}
	return nil
}

func (e *AudioEncoder) Close() error {
	const functionName = "Close"
	var err error

	// Flush buffered data before closing
	if e.writer != nil {
		if flushErr := e.writer.Flush(); flushErr != nil {
			err = fmt.Errorf("%s:%s: flush error: %w", packageName, functionName, flushErr)
		}
		e.writer = nil
	}

	// Close the file handle if open
	if e.file != nil {
		if closeErr := e.file.Close(); closeErr != nil {
			if err != nil {
				err = fmt.Errorf("%v; close error: %w", err, closeErr)
			} else {
				err = fmt.Errorf("%s:%s: close error: %w", packageName, functionName, closeErr)
			}
		}
		e.file = nil
	}

	return err
}

// Function to handle debug calls, allowing for different logging implementations
func (myEncoder *AudioEncoder) debug(message string) {
	if myEncoder.DebugOn {
		if myEncoder.DebugFunc != nil {
			myEncoder.DebugFunc(message)
		} else { // if no external debug function available just print the message
			println(message)
		}
	}
}
