package directory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"
)

// MemoryStore is an in-process Store used for tests and local development.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Therapist
	now     func() time.Time
}

// NewMemoryStore returns a store pre-filled with records.
func NewMemoryStore(records ...Therapist) *MemoryStore {
	s := &MemoryStore{
		records: make(map[string]Therapist, len(records)),
		now:     time.Now,
	}
	for _, r := range records {
		s.records[r.ID] = r
	}
	return s
}

func (s *MemoryStore) CountAll(ctx context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return int64(len(s.records)), nil
}

func (s *MemoryStore) Count(ctx context.Context, p Predicate) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, r := range s.records {
		if p.matches(r) {
			n++
		}
	}
	return n, nil
}

func (s *MemoryStore) CountEach(ctx context.Context, preds ...Predicate) (int64, []int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make([]int64, len(preds))
	for _, r := range s.records {
		for i, p := range preds {
			if p.matches(r) {
				counts[i]++
			}
		}
	}
	return int64(len(s.records)), counts, nil
}

func (s *MemoryStore) Find(ctx context.Context, p Predicate, limit int) ([]Therapist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []Therapist
	for _, r := range s.records {
		if p.matches(r) {
			out = append(out, r)
		}
	}
	slices.SortFunc(out, func(a, b Therapist) int { return cmp.Compare(a.ID, b.ID) })
	return truncate(out, limit), nil
}

func (s *MemoryStore) Latest(ctx context.Context, limit int) ([]Therapist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Therapist, 0, len(s.records))
	for _, r := range s.records {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b Therapist) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return truncate(out, limit), nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (Therapist, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[id]
	if !ok {
		return Therapist{}, ErrNotFound
	}
	return r, nil
}

func (s *MemoryStore) UpdateField(ctx context.Context, id string, field Field, value string) error {
	if !field.Valid() {
		return ErrFieldNotEditable
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	field.Set(&r, value)
	r.UpdatedAt = s.now()
	s.records[id] = r
	return nil
}

func truncate(list []Therapist, limit int) []Therapist {
	if limit > 0 && len(list) > limit {
		return list[:limit]
	}
	return list
}
