package catalog

import (
	"fmt"
	"time"

	"library/internal/publication"
	"library/internal/report"
)

// Mutation changes the catalog for one publication and reports whether it did.
type Mutation func(p publication.Publication) bool

// timestampLayout renders times the way the add notification shows them.
const timestampLayout = "2006-01-02 15:04:05.000000"

// LogAdded reports every publication that next accepted.
func LogAdded(r report.Reporter, now func() time.Time, next Mutation) Mutation {
	return func(p publication.Publication) bool {
		ok := next(p)
		if ok {
			at := now()
			r.Report(fmt.Sprintf("Added publication %s at %s.", describe(p), at.Format(timestampLayout)), at)
		}
		return ok
	}
}

// LogRemoved reports every publication that next removed.
func LogRemoved(r report.Reporter, now func() time.Time, next Mutation) Mutation {
	return func(p publication.Publication) bool {
		ok := next(p)
		if ok {
			r.Report(fmt.Sprintf("Removed publication %s.", describe(p)), now())
		}
		return ok
	}
}

// RequirePresent reports that p was not found whenever next declines to
// remove it. next must do its own lookup atomically with the removal.
func RequirePresent(r report.Reporter, now func() time.Time, next Mutation) Mutation {
	return func(p publication.Publication) bool {
		if next(p) {
			return true
		}
		r.Report(fmt.Sprintf("Publication \"%s\" not found.", describe(p)), now())
		return false
	}
}

func describe(p publication.Publication) string {
	if p == nil {
		return "<nil>"
	}
	return p.String()
}
