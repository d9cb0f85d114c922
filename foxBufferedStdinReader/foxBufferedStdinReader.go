package foxbufferedstdinreader

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// ErrTimeout is returned by ReadLine when no complete line arrived in time.
var ErrTimeout = errors.New("foxbufferedstdinreader: line timeout")

// BufferedStdinReader drains its source on a goroutine so that the menu can
// wait for a line with a deadline instead of blocking on the terminal.
type BufferedStdinReader struct {
	buf     *bytes.Buffer
	readErr error
	mutex   sync.Mutex
	source  io.Reader
}

func NewBufferedStdinReader() *BufferedStdinReader {
	return NewBufferedReader(os.Stdin)
}

// NewBufferedReader reads from any source, e.g. a script of menu choices.
func NewBufferedReader(source io.Reader) *BufferedStdinReader {
	b := &BufferedStdinReader{
		buf:    bytes.NewBuffer(make([]byte, 0, 4096)),
		source: source,
	}
	go b.continuousRead()
	return b
}

func (b *BufferedStdinReader) continuousRead() {
	tmp := make([]byte, 4096)
	for {
		n, err := b.source.Read(tmp)
		b.mutex.Lock()
		b.buf.Write(tmp[:n])
		if err != nil {
			b.readErr = err
			b.mutex.Unlock()
			return
		}
		b.mutex.Unlock()
	}
}

// ReadLine returns the next line without its line ending. A timeout of zero waits forever.
// Once the source is exhausted a trailing partial line is returned, then io.EOF.
func (b *BufferedStdinReader) ReadLine(timeout time.Duration) (string, error) {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}
	for {
		b.mutex.Lock()
		if i := bytes.IndexByte(b.buf.Bytes(), '\n'); i >= 0 {
			line := string(b.buf.Next(i + 1))
			b.mutex.Unlock()
			return strings.TrimRight(line, "\r\n"), nil
		}
		if b.readErr != nil {
			err := b.readErr
			if b.buf.Len() > 0 {
				line := b.buf.String()
				b.buf.Reset()
				b.mutex.Unlock()
				return strings.TrimRight(line, "\r"), nil
			}
			b.mutex.Unlock()
			return "", err
		}
		b.mutex.Unlock()
		if !deadline.IsZero() && time.Now().After(deadline) {
			return "", ErrTimeout
		}
		time.Sleep(20 * time.Millisecond)
	}
}
