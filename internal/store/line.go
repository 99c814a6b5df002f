package store

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"library/internal/publication"
)

// Separator splits the fields of a catalog line. It is not escaped, so a title
// or author containing it cannot be read back.
const Separator = " | "

const fieldCount = 4

// ErrMalformed is returned for a line that does not hold four valid fields.
var ErrMalformed = errors.New("malformed catalog line")

// FormatLine renders p as "title | author | year | kind" without a line terminator.
func FormatLine(p publication.Publication) string {
	return strings.Join([]string{
		p.Title(),
		p.Author(),
		strconv.Itoa(p.Year()),
		string(p.Kind()),
	}, Separator)
}

// ParseLine builds a publication from one catalog line. Surrounding whitespace
// is ignored. A line with an unregistered kind returns publication.ErrUnknownKind.
func ParseLine(line string) (publication.Publication, error) {
	parts := strings.Split(strings.TrimSpace(line), Separator)
	if len(parts) != fieldCount {
		return nil, fmt.Errorf("%w: want %d fields, got %d", ErrMalformed, fieldCount, len(parts))
	}

	title, author, year, kind := parts[0], parts[1], parts[2], publication.Kind(parts[3])

	// Unknown kinds win over a bad record.
	ctor, ok := publication.Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", publication.ErrUnknownKind, kind)
	}

	rec, err := publication.NewRecord(title, author, year)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	p, err := ctor(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return p, nil
}
