package domain

import (
	"encoding/json"
	"slices"

	"github.com/google/uuid"
)

// IDSet is an unordered set of entity ids. It is stored as a sorted JSON
// array so documents are stable across writes.
type IDSet map[uuid.UUID]struct{}

// NewIDSet returns a set containing ids.
func NewIDSet(ids ...uuid.UUID) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Add inserts id and reports whether the set changed. A nil set is
// allocated on first insert.
func (s *IDSet) Add(id uuid.UUID) bool {
	if *s == nil {
		*s = make(IDSet)
	}
	if _, ok := (*s)[id]; ok {
		return false
	}
	(*s)[id] = struct{}{}
	return true
}

// Remove deletes id and reports whether the set changed.
func (s IDSet) Remove(id uuid.UUID) bool {
	if _, ok := s[id]; !ok {
		return false
	}
	delete(s, id)
	return true
}

// Has reports whether id is in the set.
func (s IDSet) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s IDSet) Len() int { return len(s) }

// Sorted returns the ids in ascending string order.
func (s IDSet) Sorted() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	slices.SortFunc(ids, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	return ids
}

func (s IDSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Sorted())
}

func (s *IDSet) UnmarshalJSON(data []byte) error {
	var ids []uuid.UUID
	if err := json.Unmarshal(data, &ids); err != nil {
		return err
	}
	*s = NewIDSet(ids...)
	return nil
}

// removeID returns ids without id, preserving order, and whether id was present.
func removeID(ids []uuid.UUID, id uuid.UUID) ([]uuid.UUID, bool) {
	i := slices.Index(ids, id)
	if i < 0 {
		return ids, false
	}
	return slices.Delete(ids, i, i+1), true
}
