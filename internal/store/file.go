// Package store persists a catalog to a flat text file, one publication per
// line in the form "title | author | year | kind".
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"library/internal/publication"
	"library/internal/report"
)

var (
	// ErrWrite wraps failures to create or write the catalog file.
	ErrWrite = errors.New("write catalog file")
	// ErrRead wraps failures to read an existing catalog file.
	ErrRead = errors.New("read catalog file")
)

const maxLineSize = 1 << 20

// File reads and writes one catalog file.
type File struct {
	path     string
	reporter report.Reporter
	now      func() time.Time
}

// Option configures a File.
type Option func(*File)

// WithReporter sets where save/load notifications go. Defaults to report.Discard.
func WithReporter(r report.Reporter) Option {
	return func(f *File) {
		if r != nil {
			f.reporter = r
		}
	}
}

// WithClock overrides the time source used for notifications.
func WithClock(now func() time.Time) Option {
	return func(f *File) {
		if now != nil {
			f.now = now
		}
	}
}

// NewFile returns a store for the file at path.
func NewFile(path string, opts ...Option) *File {
	f := &File{path: path, reporter: report.Discard, now: time.Now}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Path returns the file the store reads and writes.
func (f *File) Path() string { return f.path }

func (f *File) report(format string, args ...any) {
	f.reporter.Report(fmt.Sprintf(format, args...), f.now())
}

// Save replaces the file's contents with every publication in c.
func (f *File) Save(c Lister) error {
	out, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	if err := writeLines(out, c.All()); err != nil {
		_ = out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	f.report("Library was saved to \"%s\".", f.path)
	return nil
}

func writeLines(out io.Writer, pubs []publication.Publication) error {
	w := bufio.NewWriter(out)
	for _, p := range pubs {
		if _, err := w.WriteString(FormatLine(p) + "\n"); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// Load appends every well-formed line of the file to c and returns how many
// publications were added. Malformed lines are reported and skipped, lines of
// an unknown kind are skipped silently, and a missing file leaves c untouched.
func (f *File) Load(c Adder) (int, error) {
	in, err := os.Open(f.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			f.report("File \"%s\" not found.", f.path)
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %w", ErrRead, err)
	}
	defer in.Close()

	added := 0
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Text()
		p, err := ParseLine(line)
		switch {
		case errors.Is(err, publication.ErrUnknownKind):
			continue
		case err != nil:
			f.report("Incorrect line: %s", strings.TrimSpace(line))
			continue
		}
		c.Add(p)
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("%w: %w", ErrRead, err)
	}

	f.report("Imported %d publications from %s.", added, f.path)
	return added, nil
}
