package publication

import "fmt"

// Kind tags a publication variant. It is also the last field of a catalog file line.
type Kind string

const (
	KindBook     Kind = "book"
	KindMagazine Kind = "magazine"
)

// Publication is one catalog entry. Implementations are immutable once built,
// and catalogs compare them by pointer identity.
type Publication interface {
	Title() string
	Author() string
	Year() int
	Kind() Kind
	String() string
}

// formatEntry is the base rendering shared by all kinds.
func formatEntry(title, author string, year int) string {
	return fmt.Sprintf("%s - %s, %d", title, author, year)
}

// Book is a publication of kind "book".
type Book struct {
	title  string
	author string
	year   int
}

// NewBook validates r and returns a new Book.
func NewBook(r Record) (*Book, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &Book{title: r.Title, author: r.Author, year: r.Year}, nil
}

func (b *Book) Title() string  { return b.title }
func (b *Book) Author() string { return b.author }
func (b *Book) Year() int      { return b.year }
func (b *Book) Kind() Kind     { return KindBook }

func (b *Book) String() string {
	return formatEntry(b.title, b.author, b.year)
}

// Magazine is a publication of kind "magazine".
type Magazine struct {
	title  string
	author string
	year   int
}

// NewMagazine validates r and returns a new Magazine.
func NewMagazine(r Record) (*Magazine, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return &Magazine{title: r.Title, author: r.Author, year: r.Year}, nil
}

func (m *Magazine) Title() string  { return m.title }
func (m *Magazine) Author() string { return m.author }
func (m *Magazine) Year() int      { return m.year }
func (m *Magazine) Kind() Kind     { return KindMagazine }

func (m *Magazine) String() string {
	return "[Magazine] " + formatEntry(m.title, m.author, m.year)
}
