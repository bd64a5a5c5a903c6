// Package logbook provides the append-only bootstrap log.
//
// Every line has the form "<timestamp> - <message>" with a
// "2006-01-02 15:04:05" timestamp prefix. The logbook is an explicitly
// passed handle, not an ambient file path; it is the only state webforge
// persists across runs.
package logbook

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// TimeLayout is the timestamp prefix layout for log lines.
const TimeLayout = "2006-01-02 15:04:05"

// Logbook appends timestamped lines to a single writer.
type Logbook struct {
	mu      sync.Mutex
	w       io.Writer
	closer  io.Closer
	nowFunc func() time.Time
}

// Open creates (or opens for append) the log file at path, creating parent
// directories as needed.
func Open(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	return &Logbook{w: f, closer: f, nowFunc: time.Now}, nil
}

// New creates a Logbook writing to w. Used by tests and by NewNop.
func New(w io.Writer) *Logbook {
	return &Logbook{w: w, nowFunc: time.Now}
}

// NewNop returns a Logbook that discards everything.
func NewNop() *Logbook {
	return New(io.Discard)
}

// SetNowFunc overrides the time source for testing.
func (l *Logbook) SetNowFunc(fn func() time.Time) {
	l.nowFunc = fn
}

// Append writes one timestamped line to the log.
func (l *Logbook) Append(msg string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := fmt.Fprintf(l.w, "%s - %s\n", l.nowFunc().Format(TimeLayout), msg)
	return err
}

// Appendf is Append with fmt.Sprintf formatting.
func (l *Logbook) Appendf(format string, args ...any) error {
	return l.Append(fmt.Sprintf(format, args...))
}

// Close closes the underlying file, if any.
func (l *Logbook) Close() error {
	if l.closer == nil {
		return nil
	}
	return l.closer.Close()
}
