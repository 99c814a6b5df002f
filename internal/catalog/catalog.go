// Package catalog keeps an ordered, in-memory collection of publications.
package catalog

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"sync"
	"time"

	"library/internal/publication"
	"library/internal/report"
)

// Catalog is an insertion-ordered list of publications. Entries are matched by
// pointer identity, so two equal-looking books are still distinct entries.
// It is safe for concurrent use.
type Catalog struct {
	mu       sync.RWMutex
	items    []publication.Publication
	reporter report.Reporter
	now      func() time.Time

	add    Mutation
	remove Mutation
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithReporter sets where add/remove notifications go. Defaults to report.Discard.
func WithReporter(r report.Reporter) Option {
	return func(c *Catalog) {
		if r != nil {
			c.reporter = r
		}
	}
}

// WithClock overrides the time source used for notifications.
func WithClock(now func() time.Time) Option {
	return func(c *Catalog) {
		if now != nil {
			c.now = now
		}
	}
}

// WithSeed pre-populates the catalog without emitting notifications.
func WithSeed(pubs ...publication.Publication) Option {
	return func(c *Catalog) {
		c.items = append(c.items, pubs...)
	}
}

// New returns a catalog configured by opts.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		reporter: report.Discard,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.add = LogAdded(c.reporter, c.now, c.appendItem)
	c.remove = RequirePresent(c.reporter, c.now,
		LogRemoved(c.reporter, c.now, c.deleteItem))
	return c
}

// Add appends p to the end of the catalog.
func (c *Catalog) Add(p publication.Publication) {
	c.add(p)
}

// Remove deletes the first entry that is p itself. It reports and returns
// false when p is not in the catalog.
func (c *Catalog) Remove(p publication.Publication) bool {
	return c.remove(p)
}

// Contains reports whether p itself is in the catalog.
func (c *Catalog) Contains(p publication.Publication) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return indexOf(c.items, p) >= 0
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// All returns a copy of the entries in insertion order.
func (c *Catalog) All() []publication.Publication {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]publication.Publication(nil), c.items...)
}

// Iterate yields every entry in insertion order. Each traversal starts from
// the first entry and sees the catalog as it was when the traversal began.
func (c *Catalog) Iterate() iter.Seq[publication.Publication] {
	return func(yield func(publication.Publication) bool) {
		for _, p := range c.All() {
			if !yield(p) {
				return
			}
		}
	}
}

// FilterByAuthor yields the entries whose author equals author exactly.
func (c *Catalog) FilterByAuthor(author string) iter.Seq[publication.Publication] {
	return func(yield func(publication.Publication) bool) {
		for p := range c.Iterate() {
			if p.Author() != author {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func (c *Catalog) String() string {
	items := c.All()
	lines := make([]string, len(items))
	for i, p := range items {
		lines[i] = p.String()
	}
	return fmt.Sprintf("Library of %d publications:\n%s", len(items), strings.Join(lines, "\n"))
}

func (c *Catalog) appendItem(p publication.Publication) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, p)
	return true
}

// deleteItem looks p up and removes it under one write lock, so concurrent
// removals of the same entry succeed exactly once.
func (c *Catalog) deleteItem(p publication.Publication) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := indexOf(c.items, p)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	return true
}

func indexOf(items []publication.Publication, p publication.Publication) int {
	for i, it := range items {
		if it == p {
			return i
		}
	}
	return -1
}
