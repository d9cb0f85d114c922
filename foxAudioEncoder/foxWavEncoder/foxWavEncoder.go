// Package: github.com/Foxenfurter/foxHVPSLib/foxAudioEncoder/foxWavEncoder
// pkg for encoding a voltage stream into mono wav format. The header is written first and
// the body follows it, so the output can be streamed to a pipe as well as to a file.
// Volts are mapped so that [0, FullScaleVolts] covers the whole signed PCM range.

package foxWavEncoder

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"strconv"

	"github.com/Foxenfurter/foxHVPSLib/foxNormalizer"
)

// Structure holds basic information about the Samples to be encoded
type FoxEncoder struct {
	SampleRate     int
	BitDepth       int
	FullScaleVolts float64
	Size           int64 // bytes of sample data, 0 when unknown
	peak           float64
}

const numChannels = 1

const maxValue32BitInt = 2147483647
const minValue32BitInt = -2147483648
const maxValue24BitInt = 8388607
const minValue24BitInt = -8388608
const maxValue16Bit = 32767.0
const minValue16Bit = -32768.0

/*
EncodeHeader generates the WAV file header (RIFF format) as a byte slice
using information from ther FoxEncoder Struct
*/
func (we *FoxEncoder) EncodeHeader() ([]byte, error) {
	if we.BitDepth != 16 && we.BitDepth != 24 && we.BitDepth != 32 {
		return nil, errors.New("foxWavEncoder: unsupported target bit depth: " + strconv.Itoa(we.BitDepth))
	}
	var dataSize, fileSize int64

	if we.Size != 0 {
		dataSize = we.Size
		fileSize = we.Size + 36
	} else {
		dataSize = math.MaxUint32 - 36 // Representing an unknown or unlimited size
		fileSize = math.MaxUint32
	}

	// Create a buffer to store the WAV header
	headerBuffer := new(bytes.Buffer)

	headerBuffer.WriteString("RIFF")
	binary.Write(headerBuffer, binary.LittleEndian, uint32(fileSize))
	headerBuffer.WriteString("WAVE")

	// Write the format chunk
	headerBuffer.WriteString("fmt ")
	binary.Write(headerBuffer, binary.LittleEndian, int32(16))                                        // Size of the format chunk
	binary.Write(headerBuffer, binary.LittleEndian, int16(1))                                         // Audio format (PCM)
	binary.Write(headerBuffer, binary.LittleEndian, int16(numChannels))                               // Number of channels
	binary.Write(headerBuffer, binary.LittleEndian, int32(we.SampleRate))                             // Sample rate
	binary.Write(headerBuffer, binary.LittleEndian, int32(we.SampleRate*numChannels*(we.BitDepth/8))) // Byte rate
	binary.Write(headerBuffer, binary.LittleEndian, int16(numChannels*(we.BitDepth/8)))               // Block align
	binary.Write(headerBuffer, binary.LittleEndian, int16(we.BitDepth))                               // Bits per sample

	// Write the data chunk header to the buffer
	headerBuffer.WriteString("data")
	binary.Write(headerBuffer, binary.LittleEndian, uint32(dataSize))
	return headerBuffer.Bytes(), nil
}

// EncodeData converts volts to little-endian PCM. Values beyond full scale are clipped.
func (we *FoxEncoder) EncodeData(volts []float64) ([]byte, error) {
	if we.FullScaleVolts <= 0 {
		return nil, errors.New("foxWavEncoder: full scale voltage must be positive")
	}
	we.peak = math.Max(we.peak, foxNormalizer.CalculatePeak(volts))
	scaled := foxNormalizer.ScaleToFullScale(volts, we.FullScaleVolts)

	// Create a buffer to accumulate encoded samples
	encodedBuffer := new(bytes.Buffer)
	encodedBuffer.Grow(len(scaled) * we.BitDepth / 8)
	for _, v := range scaled {
		sample := math.Max(-1.0, math.Min(1.0, v))
		switch we.BitDepth {
		case 16:
			encodedBuffer.Write(we.convertTo16BitSample(sample))
		case 24:
			encodedBuffer.Write(we.convertTo24BitSample(sample))
		case 32:
			encodedBuffer.Write(we.convertTo32BitSample(sample))
		default:
			return nil, errors.New("foxWavEncoder: unsupported target bit depth: " + strconv.Itoa(we.BitDepth))
		}
	}
	return encodedBuffer.Bytes(), nil
}

// GetPeak returns the highest voltage encoded so far.
func (we *FoxEncoder) GetPeak() float64 {
	return we.peak
}

func (we *FoxEncoder) convertTo16BitSample(sample float64) []byte {
	// Scale the sample to the range of 16-bit signed integers and clip it
	clippedValue := int16(math.Max(minValue16Bit, math.Min(maxValue16Bit, math.Round(sample*maxValue16Bit))))

	return []byte{
		byte(clippedValue & 0xFF),
		byte((clippedValue >> 8) & 0xFF),
	}
}

// convertTo24BitSample converts a float64 sample to 24-bit PCM.
func (we *FoxEncoder) convertTo24BitSample(sample float64) []byte {
	// Combine scaling, rounding, and clipping in one step with integer math
	intValue := int32(math.Max(math.Min(math.Round(sample*float64(maxValue24BitInt)), float64(maxValue24BitInt)), float64(minValue24BitInt)))

	return []byte{
		byte(intValue & 0xFF),
		byte((intValue >> 8) & 0xFF),
		byte((intValue >> 16) & 0xFF),
	}
}

// convertTo32BitSample converts a float64 sample to 32-bit PCM.
func (we *FoxEncoder) convertTo32BitSample(sample float64) []byte {
	intValue := int32(math.Max(math.Min(math.Round(sample*float64(maxValue32BitInt)), float64(maxValue32BitInt)), float64(minValue32BitInt)))

	return []byte{
		byte(intValue & 0xFF),
		byte((intValue >> 8) & 0xFF),
		byte((intValue >> 16) & 0xFF),
		byte((intValue >> 24) & 0xFF),
	}
}
