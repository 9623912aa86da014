package enumset

import (
	"fmt"
	"slices"

	"github.com/museun/fsm"
)

// Set is an immutable, ordered collection of distinct values. Its members
// satisfy the state contract of the fsm package, which makes any list of
// values known only at runtime usable as a cursor domain.
type Set[T comparable] struct {
	values []T
	index  map[T]int
}

// New creates a Set from the given values, preserving their order. It returns
// ErrEmptySet when no values are given and ErrDuplicateValue when a value
// appears more than once.
func New[T comparable](values ...T) (*Set[T], error) {
	if len(values) == 0 {
		return nil, ErrEmptySet
	}

	index := make(map[T]int, len(values))
	for i, v := range values {
		if _, ok := index[v]; ok {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateValue, v)
		}
		index[v] = i
	}

	return &Set[T]{values: slices.Clone(values), index: index}, nil
}

// MustNew is like New but panics on invalid input. Use it for sets assembled
// at program start from known-good values.
func MustNew[T comparable](values ...T) *Set[T] {
	s, err := New(values...)
	if err != nil {
		panic(fmt.Sprintf("failed to create enum set: %v", err))
	}
	return s
}

// Len returns the number of values in the set.
func (s *Set[T]) Len() int { return len(s.values) }

// Values returns a copy of the values in set order.
func (s *Set[T]) Values() []T { return slices.Clone(s.values) }

// Contains reports whether v is one of the set values.
func (s *Set[T]) Contains(v T) bool {
	_, ok := s.index[v]
	return ok
}

// At returns the member at index i, or a no-such-state error when i is
// outside [0, Len).
func (s *Set[T]) At(i int) (Member[T], error) {
	if i < 0 || i >= len(s.values) {
		return Member[T]{}, fsm.NewErrNoSuchState(i, len(s.values))
	}
	return Member[T]{set: s, value: s.values[i]}, nil
}

// Member binds v to the set as a cursor value. It returns ErrNotMember when
// v is not one of the set values.
func (s *Set[T]) Member(v T) (Member[T], error) {
	if _, ok := s.index[v]; !ok {
		return Member[T]{}, fmt.Errorf("%w: %v", ErrNotMember, v)
	}
	return Member[T]{set: s, value: v}, nil
}

// Start returns the member at index 0.
func (s *Set[T]) Start() Member[T] {
	return Member[T]{set: s, value: s.values[0]}
}

// End returns the member at index Len-1.
func (s *Set[T]) End() Member[T] {
	return Member[T]{set: s, value: s.values[len(s.values)-1]}
}
