package foxbufferedstdinreader_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	foxbufferedstdinreader "github.com/Foxenfurter/foxHVPSLib/foxBufferedStdinReader"
)

func TestReadLines(t *testing.T) {
	reader := foxbufferedstdinreader.NewBufferedReader(strings.NewReader("1\r\n4\n6"))
	expected := []string{"1", "4", "6"}
	for _, want := range expected {
		got, err := reader.ReadLine(time.Second)
		if err != nil {
			t.Fatalf("ReadLine failed: %v", err)
		}
		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	}
	if _, err := reader.ReadLine(time.Second); !errors.Is(err, io.EOF) {
		t.Errorf("expected io.EOF, got %v", err)
	}
}

func TestReadLineTimeout(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	reader := foxbufferedstdinreader.NewBufferedReader(pr)
	if _, err := reader.ReadLine(50 * time.Millisecond); !errors.Is(err, foxbufferedstdinreader.ErrTimeout) {
		t.Fatalf("expected ErrTimeout, got %v", err)
	}
	go pw.Write([]byte("2\n"))
	got, err := reader.ReadLine(time.Second)
	if err != nil || got != "2" {
		t.Errorf("expected \"2\", got %q %v", got, err)
	}
}
