package directory

import "context"

// Predicate selects records. Where is a boolean SQL expression over the columns
// of the "Therapist" table; Match is the same condition evaluated in memory.
// Both must describe the same set of records.
type Predicate struct {
	Where string
	Match func(Therapist) bool
}

func (p Predicate) matches(t Therapist) bool {
	return p.Match != nil && p.Match(t)
}

// Store is the queryable record collection.
type Store interface {
	// CountAll returns the number of records.
	CountAll(ctx context.Context) (int64, error)
	// Count returns the number of records matching p.
	Count(ctx context.Context, p Predicate) (int64, error)
	// CountEach returns the total and one count per predicate in a single pass.
	CountEach(ctx context.Context, preds ...Predicate) (int64, []int64, error)
	// Find returns up to limit records matching p, ordered by id.
	Find(ctx context.Context, p Predicate, limit int) ([]Therapist, error)
	// Latest returns up to limit records, newest first.
	Latest(ctx context.Context, limit int) ([]Therapist, error)
	// Get returns a single record or ErrNotFound.
	Get(ctx context.Context, id string) (Therapist, error)
	// UpdateField overwrites one field of one record with value, verbatim.
	UpdateField(ctx context.Context, id string, field Field, value string) error
}
