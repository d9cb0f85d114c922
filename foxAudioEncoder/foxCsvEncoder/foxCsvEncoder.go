// Package: github.com/Foxenfurter/foxHVPSLib/foxAudioEncoder/foxCsvEncoder
// pkg for encoding a voltage stream as CSV rows of sample index, time and volts,
// for inspection in a spreadsheet. Rows continue across calls to EncodeData.

package foxCsvEncoder

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strconv"
)

type FoxEncoder struct {
	SampleRate float64
	Precision  int // decimal places for volts, 0 selects 3
	index      int64
	peak       float64
}

func (ce *FoxEncoder) EncodeHeader() ([]byte, error) {
	return ce.encodeRows([][]string{{"index", "time_s", "volts"}})
}

func (ce *FoxEncoder) EncodeData(volts []float64) ([]byte, error) {
	if ce.SampleRate <= 0 {
		return nil, errors.New("foxCsvEncoder: sample rate must be positive")
	}
	precision := ce.Precision
	if precision == 0 {
		precision = 3
	}
	rows := make([][]string, len(volts))
	for i, v := range volts {
		rows[i] = []string{
			strconv.FormatInt(ce.index, 10),
			strconv.FormatFloat(float64(ce.index)/ce.SampleRate, 'f', 6, 64),
			strconv.FormatFloat(v, 'f', precision, 64),
		}
		ce.index++
		if v > ce.peak {
			ce.peak = v
		}
	}
	return ce.encodeRows(rows)
}

// GetPeak returns the highest voltage encoded so far.
func (ce *FoxEncoder) GetPeak() float64 {
	return ce.peak
}

func (ce *FoxEncoder) encodeRows(rows [][]string) ([]byte, error) {
	var out bytes.Buffer
	w := csv.NewWriter(&out)
	if err := w.WriteAll(rows); err != nil {
		return nil, errors.New("foxCsvEncoder: " + err.Error())
	}
	return out.Bytes(), nil
}
