// Package vector implements the append only record store used by the
// converters along with the summary they report on the diagnostic stream.
package vector

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// AllocSize is the number of records the store grows by each time it runs out of room.
const AllocSize = 200

// ErrOutOfMemory is returned when the store can't grow to hold more records.
var ErrOutOfMemory = errors.New("Out of memory")

// Store is an ordered, append only sequence of records. Capacity grows in
// chunks of AllocSize records.
type Store[T any] struct {
	// Limit is the maximum number of records the store may hold. Growing past
	// it fails with ErrOutOfMemory. Zero means no limit.
	Limit int

	recs []T
}

// Reserve makes sure n more records can be appended without growing again.
// On failure the store is left as it was so everything already stored
// remains usable.
func (s *Store[T]) Reserve(n int) error {
	need := len(s.recs) + n
	if need <= cap(s.recs) {
		return nil
	}
	if s.Limit > 0 && need > s.Limit {
		return errors.Wrapf(ErrOutOfMemory, "growing past %d records", s.Limit)
	}
	size := cap(s.recs)
	for size < need {
		size += AllocSize
	}
	if s.Limit > 0 && size > s.Limit {
		size = s.Limit
	}
	recs := make([]T, len(s.recs), size)
	copy(recs, s.recs)
	s.recs = recs
	return nil
}

// Append adds r to the end of the store, growing it if needed.
func (s *Store[T]) Append(r T) error {
	if err := s.Reserve(1); err != nil {
		return err
	}
	s.recs = append(s.recs, r)
	return nil
}

// Len returns the number of records stored.
func (s *Store[T]) Len() int {
	return len(s.recs)
}

// Cap returns the number of records the store can hold before it needs to grow.
func (s *Store[T]) Cap() int {
	return cap(s.recs)
}

// At returns the i'th record.
func (s *Store[T]) At(i int) T {
	return s.recs[i]
}

// Records returns the stored records in append order. The slice aliases the
// store and must not be modified.
func (s *Store[T]) Records() []T {
	return s.recs
}

// Summary is what a conversion pass reports when it's done.
type Summary struct {
	Lines       int
	Vectors     int
	OutOfMemory bool
}

// WriteTo writes the diagnostic lines for the pass to w.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	var total int64
	if s.OutOfMemory {
		n, err := fmt.Fprintf(w, "%v\n", ErrOutOfMemory)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	n, err := fmt.Fprintf(w, "Lines processed: %d\nVectors generated: %d\n", s.Lines, s.Vectors)
	total += int64(n)
	return total, err
}
