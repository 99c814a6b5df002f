// Package report carries the human-readable notifications the catalog and its
// file store emit: added, removed, not found, malformed line, saved, imported.
package report

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Reporter receives a message and the time it happened. Implementations must not panic.
type Reporter interface {
	Report(msg string, at time.Time)
}

// Func adapts a plain function to Reporter.
type Func func(msg string, at time.Time)

func (f Func) Report(msg string, at time.Time) { f(msg, at) }

// Discard drops every report.
var Discard Reporter = Func(func(string, time.Time) {})

// Logrus writes reports as info entries stamped with the report time.
type Logrus struct {
	log *logrus.Logger
}

// NewLogrus wraps an existing logger.
func NewLogrus(l *logrus.Logger) *Logrus {
	return &Logrus{log: l}
}

// NewLogger builds a logger writing to w.
//
// Level values: "debug", "info", "warn", "error" (default: "info").
// Format values: "text", "json" (default: "text").
func NewLogger(w io.Writer, level, format string) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(parseLevel(level))
	if strings.ToLower(format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})
	}
	return l
}

func parseLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

func (l *Logrus) Report(msg string, at time.Time) {
	l.log.WithTime(at).Info(msg)
}

// Entry is one recorded report.
type Entry struct {
	Message string
	At      time.Time
}

// Recorder keeps reports in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func (r *Recorder) Report(msg string, at time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Message: msg, At: at})
}

// Entries returns a copy of everything recorded so far.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Messages returns the recorded messages in order.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Message
	}
	return out
}
