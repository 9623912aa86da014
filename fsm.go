package fsm

import "fmt"

// State is the contract a type must satisfy to be used as a cursor value.
//
// A State type describes a closed, ordered set of N distinct values (N >= 1),
// each mapped to exactly one index in [0, N). The mapping must be a bijection
// and must not change at runtime. Equality is ordinary comparison; ordering
// follows Index.
//
// Count and FromIndex should not depend on the receiver value: the type-level
// helpers (Start, End, Len, StateAt) call them on the zero value of S.
// Table-backed implementations that cannot meet that requirement, such as
// enumset.Member, remain fully usable with the value-level operations and
// expose the type-level queries on their set instead.
type State[S any] interface {
	comparable

	// Index returns the position of the receiver in the fixed order,
	// in [0, Count).
	Index() int

	// FromIndex returns the unique state at position i, or a no-such-state
	// error if i is outside [0, Count).
	FromIndex(i int) (S, error)

	// Count returns the number of states, N >= 1, fixed for the type.
	Count() int
}

// Start returns the state at index 0.
func Start[S State[S]]() S {
	var zero S
	return mustState(zero, 0)
}

// End returns the state at index Len-1.
func End[S State[S]]() S {
	var zero S
	return mustState(zero, zero.Count()-1)
}

// Len returns the number of states of S.
func Len[S State[S]]() int {
	var zero S
	return zero.Count()
}

// StateAt returns the state at index i, or a no-such-state error if i is
// outside [0, Len). It is the only fallible operation in the package.
func StateAt[S State[S]](i int) (S, error) {
	var zero S
	return zero.FromIndex(i)
}

// Next advances the cursor to the following state, wrapping from the last
// state back to the first, and returns the state that was current before the
// call.
func Next[S State[S]](s *S) S {
	prior := *s
	*s = mustState(prior, (prior.Index()+1)%prior.Count())
	return prior
}

// Previous retreats the cursor to the preceding state, wrapping from the
// first state back to the last, and returns the state that was current before
// the call.
func Previous[S State[S]](s *S) S {
	prior := *s
	i := prior.Index()
	if i == 0 {
		i = prior.Count()
	}
	*s = mustState(prior, i-1)
	return prior
}

// Goto moves the cursor to target unconditionally and returns the state that
// was current before the call.
func Goto[S State[S]](s *S, target S) S {
	prior := *s
	*s = target
	return prior
}

// mustState resolves an index that is in range by construction. A failure
// means the descriptor violates its contract, which is a programming error,
// not a recoverable condition.
func mustState[S State[S]](s S, i int) S {
	out, err := s.FromIndex(i)
	if err != nil {
		panic(fmt.Sprintf("broken state descriptor %T: no state at index %d: %v", s, i, err))
	}
	return out
}
