package publication

import (
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrUnknownKind is returned by Build for a kind nobody registered.
var ErrUnknownKind = errors.New("unknown publication kind")

// Constructor builds a publication of one kind from a validated record.
type Constructor func(Record) (Publication, error)

var (
	registryMu sync.RWMutex
	registry   = map[Kind]Constructor{}
)

func init() {
	Register(KindBook, func(r Record) (Publication, error) {
		b, err := NewBook(r)
		if err != nil {
			return nil, err
		}
		return b, nil
	})
	Register(KindMagazine, func(r Record) (Publication, error) {
		m, err := NewMagazine(r)
		if err != nil {
			return nil, err
		}
		return m, nil
	})
}

// Register binds kind to ctor, replacing any previous binding.
func Register(kind Kind, ctor Constructor) {
	if kind == "" {
		panic("publication: Register with empty kind")
	}
	if ctor == nil {
		panic("publication: Register with nil constructor for " + string(kind))
	}
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[kind] = ctor
}

// Lookup returns the constructor registered for kind.
func Lookup(kind Kind) (Constructor, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	ctor, ok := registry[kind]
	return ctor, ok
}

// Kinds lists the registered kinds in lexical order.
func Kinds() []Kind {
	registryMu.RLock()
	defer registryMu.RUnlock()
	out := make([]Kind, 0, len(registry))
	for k := range registry {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Build constructs a publication of the given kind.
func Build(kind Kind, r Record) (Publication, error) {
	ctor, ok := Lookup(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return ctor(r)
}
