// Package bladestore implements a sparse map from canonical basis blades to
// coefficients.
//
// Keys are bucketed by blade.Blade.Hash and compared with blade.Blade.Equal,
// so lookups cost O(1) amortized independent of blade length. The store
// carries no algebra semantics: zero values are stored like any other.
package bladestore

import (
	"iter"
	"slices"

	"github.com/hupe1980/cliffgo/blade"
)

type entry struct {
	blade blade.Blade
	value float64
}

// Store maps blades to float64 coefficients.
// A Store is not safe for concurrent mutation.
type Store struct {
	buckets map[uint32][]entry
	size    int
}

// New creates an empty store.
func New() *Store {
	return &Store{buckets: make(map[uint32][]entry)}
}

// WithCapacity creates an empty store sized for n entries.
func WithCapacity(n int) *Store {
	return &Store{buckets: make(map[uint32][]entry, n)}
}

// Clone returns a field-wise copy of s. The copy shares no mutable state
// with s.
func (s *Store) Clone() *Store {
	c := &Store{
		buckets: make(map[uint32][]entry, len(s.buckets)),
		size:    s.size,
	}
	for k, bucket := range s.buckets {
		c.buckets[k] = slices.Clone(bucket)
	}
	return c
}

// Set inserts or overwrites the coefficient of b and returns s.
func (s *Store) Set(b blade.Blade, value float64) *Store {
	key := b.Hash()
	bucket := s.buckets[key]

	for i := range bucket {
		if bucket[i].blade.Equal(b) {
			bucket[i].value = value
			return s
		}
	}

	s.buckets[key] = append(bucket, entry{blade: b, value: value})
	s.size++

	return s
}

// Get returns the coefficient of b and whether it is present.
func (s *Store) Get(b blade.Blade) (float64, bool) {
	for _, e := range s.buckets[b.Hash()] {
		if e.blade.Equal(b) {
			return e.value, true
		}
	}
	return 0, false
}

// Update replaces the coefficient of b with fn(current), where current is
// def when b is absent.
func (s *Store) Update(b blade.Blade, fn func(float64) float64, def float64) {
	current, ok := s.Get(b)
	if !ok {
		current = def
	}
	s.Set(b, fn(current))
}

// Remove deletes b and reports whether a mapping existed.
func (s *Store) Remove(b blade.Blade) bool {
	key := b.Hash()
	bucket := s.buckets[key]

	for i := range bucket {
		if !bucket[i].blade.Equal(b) {
			continue
		}
		if len(bucket) == 1 {
			delete(s.buckets, key)
		} else {
			s.buckets[key] = slices.Delete(bucket, i, i+1)
		}
		s.size--
		return true
	}

	return false
}

// Len returns the number of stored blades.
func (s *Store) Len() int {
	return s.size
}

// Clear removes all entries.
func (s *Store) Clear() {
	clear(s.buckets)
	s.size = 0
}

// Values yields all coefficients in unspecified order.
func (s *Store) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for _, bucket := range s.buckets {
			for _, e := range bucket {
				if !yield(e.value) {
					return
				}
			}
		}
	}
}

// Entries yields blade/coefficient pairs in unspecified order.
// Callers that need a stable order must sort.
func (s *Store) Entries() iter.Seq2[blade.Blade, float64] {
	return func(yield func(blade.Blade, float64) bool) {
		for _, bucket := range s.buckets {
			for _, e := range bucket {
				if !yield(e.blade, e.value) {
					return
				}
			}
		}
	}
}
