package foxLog

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger writes one line per entry: timestamp, session id, level, message.
// It is safe for use from several goroutines.
type Logger struct {
	mu           sync.Mutex
	out          io.Writer
	closer       io.Closer
	DebugEnabled bool
	SessionId    string
}

const (
	Info       = "Info"
	Debug      = "Debug"
	Error      = "Error"
	Warn       = "Warn"
	FatalError = "FatalError"
)

// NewLogger appends to the file at logFilePath, creating it if needed.
func NewLogger(logFilePath, sessionId string, debugEnabled bool) (*Logger, error) {
	logFile, err := os.OpenFile(
		filepath.Clean(logFilePath),
		os.O_APPEND|os.O_CREATE|os.O_WRONLY,
		0644,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	logger := NewWriterLogger(logFile, sessionId, debugEnabled)
	logger.closer = logFile
	return logger, nil
}

// NewWriterLogger logs to any writer, e.g. os.Stderr. Close does not close w.
// An empty sessionId is replaced with a random one so runs can be told apart.
func NewWriterLogger(w io.Writer, sessionId string, debugEnabled bool) *Logger {
	if sessionId == "" {
		sessionId = uuid.NewString()
	}
	return &Logger{
		out:          w,
		SessionId:    sessionId,
		DebugEnabled: debugEnabled,
	}
}

func (l *Logger) Log(logType, description string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if logType == Debug && !l.DebugEnabled {
		return
	}
	if l.out == nil {
		return
	}

	logEntry := fmt.Sprintf("%s %s [%s] %s\n",
		time.Now().Format("2006-01-02 15:04:05.999999"),
		l.SessionId,
		logType,
		description,
	)

	if _, err := io.WriteString(l.out, logEntry); err != nil {
		log.Printf("LOG ERROR: Failed to write log entry: %v", err)
	}
}

// Simplified helper methods
func (l *Logger) Debug(description string) { l.Log(Debug, description) }
func (l *Logger) Info(description string)  { l.Log(Info, description) }
func (l *Logger) Warn(description string)  { l.Log(Warn, description) }
func (l *Logger) Error(description string) { l.Log(Error, description) }

func (l *Logger) Debugf(format string, a ...interface{}) { l.Log(Debug, fmt.Sprintf(format, a...)) }
func (l *Logger) Infof(format string, a ...interface{})  { l.Log(Info, fmt.Sprintf(format, a...)) }
func (l *Logger) Warnf(format string, a ...interface{})  { l.Log(Warn, fmt.Sprintf(format, a...)) }
func (l *Logger) Errorf(format string, a ...interface{}) { l.Log(Error, fmt.Sprintf(format, a...)) }

func (l *Logger) FatalError(description string) {
	l.Log(FatalError, description)
	l.Close()
	os.Exit(1)
}

// Close releases the log file. Later entries are dropped.
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closer != nil {
		if err := l.closer.Close(); err != nil {
			log.Printf("LOG ERROR: Failed to close log file: %v", err)
		}
		l.closer = nil
		l.out = nil
	}
}
