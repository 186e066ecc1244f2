package googlegeo

import (
	"encoding/json"
	"sort"
	"strings"
)

// Set is a deduplicated collection of catalog values. The API sends such
// collections as JSON arrays in replies and expects them pipe-joined in
// request parameters. The zero Set is empty and ready to use.
type Set[T Tag] struct {
	elems map[T]struct{}
}

// NewSet builds a Set from the given elements, collapsing duplicates.
func NewSet[T Tag](elems ...T) Set[T] {
	s := Set[T]{elems: make(map[T]struct{}, len(elems))}
	for _, e := range elems {
		s.elems[e] = struct{}{}
	}
	return s
}

// Len reports the number of distinct elements.
func (s Set[T]) Len() int {
	return len(s.elems)
}

// Contains reports whether v is in the set.
func (s Set[T]) Contains(v T) bool {
	_, ok := s.elems[v]
	return ok
}

// Labels returns the wire labels of the elements in lexicographic order.
func (s Set[T]) Labels() []string {
	labels := make([]string, 0, len(s.elems))
	for e := range s.elems {
		labels = append(labels, e.tag())
	}
	sort.Strings(labels)
	return labels
}

// String renders the set in the API's pipe-joined query parameter form,
// e.g. "country|locality".
func (s Set[T]) String() string {
	return strings.Join(s.Labels(), "|")
}

// UnmarshalJSON decodes the wire array form, collapsing duplicates.
func (s *Set[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	*s = NewSet(elems...)
	return nil
}

// MarshalJSON encodes the set as an array sorted by label.
func (s Set[T]) MarshalJSON() ([]byte, error) {
	elems := make([]T, 0, len(s.elems))
	for e := range s.elems {
		elems = append(elems, e)
	}
	sort.Slice(elems, func(i, j int) bool { return elems[i].tag() < elems[j].tag() })
	return json.Marshal(elems)
}
