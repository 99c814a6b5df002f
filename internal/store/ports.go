package store

import "library/internal/publication"

// Lister is the read side of a catalog that Save needs.
type Lister interface {
	All() []publication.Publication
}

// Adder is the write side of a catalog that Load needs.
type Adder interface {
	Add(p publication.Publication)
}
