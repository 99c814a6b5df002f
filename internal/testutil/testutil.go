package testutil

import (
	"testing"

	"library/internal/publication"
)

// SampleFile is the catalog file produced by saving SampleCatalog.
const SampleFile = "1984 | George Orwell | 1949 | book\nNational Geographic | Various | 2023 | magazine\n"

// Book builds a book or fails the test.
func Book(t testing.TB, title, author string, year int) *publication.Book {
	t.Helper()
	b, err := publication.NewBook(publication.Record{Title: title, Author: author, Year: year})
	if err != nil {
		t.Fatalf("new book %q: %v", title, err)
	}
	return b
}

// Magazine builds a magazine or fails the test.
func Magazine(t testing.TB, title, author string, year int) *publication.Magazine {
	t.Helper()
	m, err := publication.NewMagazine(publication.Record{Title: title, Author: author, Year: year})
	if err != nil {
		t.Fatalf("new magazine %q: %v", title, err)
	}
	return m
}

// SampleCatalog returns the two publications in SampleFile, in order.
func SampleCatalog(t testing.TB) []publication.Publication {
	t.Helper()
	return []publication.Publication{
		Book(t, "1984", "George Orwell", 1949),
		Magazine(t, "National Geographic", "Various", 2023),
	}
}
