package fsm

import "iter"

// Iterator walks the states of S starting from a snapshot of a cursor value.
// Sessions are created with Cycle or Once and do not share state with the
// cursor that produced them.
//
// Every pull yields the state that is current at the time of the call and
// then advances the session, so the starting state is the first element
// yielded. A bounded session completes the moment the element about to be
// yielded is the boundary for the pulled end: End going forward, Start going
// backward. The boundary element itself is still yielded. Both ends walk the
// same position and share one completion flag, so once either end finishes
// the run, no more elements are produced.
type Iterator[S State[S]] struct {
	item     S
	pos      int
	infinite bool
	reversed bool
	done     bool
}

// Cycle returns an infinite session starting at from. It wraps around
// indefinitely and never completes; consumers impose their own limit, for
// example with Take.
func Cycle[S State[S]](from S) *Iterator[S] {
	return &Iterator[S]{item: from, pos: from.Index(), infinite: true}
}

// Once returns a bounded session starting at from. Pulled forward it stops
// after yielding End; pulled backward it stops after yielding Start.
func Once[S State[S]](from S) *Iterator[S] {
	return &Iterator[S]{item: from, pos: from.Index()}
}

// Next yields the next element from the front of the session. The second
// return is false once the session has completed.
func (it *Iterator[S]) Next() (S, bool) {
	if it.reversed {
		return it.back()
	}
	return it.front()
}

// NextBack yields the next element from the back of the session, walking
// toward Start. The second return is false once the session has completed.
func (it *Iterator[S]) NextBack() (S, bool) {
	if it.reversed {
		return it.front()
	}
	return it.back()
}

// Rev swaps the two ends of the session, so Next pulls from the back and
// NextBack from the front. It returns the same session for chaining; the walk
// continues from the current position in the new direction.
func (it *Iterator[S]) Rev() *Iterator[S] {
	it.reversed = !it.reversed
	return it
}

// Done reports whether the session has completed. Infinite sessions never
// complete.
func (it *Iterator[S]) Done() bool {
	return it.done
}

// Seq adapts the session for range-over-func iteration, pulling from the
// front. Ranging over an infinite session runs until the loop breaks.
func (it *Iterator[S]) Seq() iter.Seq[S] {
	return func(yield func(S) bool) {
		for {
			s, ok := it.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Take pulls up to n elements from the front and returns them. It is the
// consumer-side limit for infinite sessions.
func (it *Iterator[S]) Take(n int) []S {
	if n <= 0 {
		return nil
	}
	out := make([]S, 0, n)
	for range n {
		s, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, s)
	}
	return out
}

// Collect drains the session from the front and returns all remaining
// elements. It must only be called on bounded sessions; an infinite session
// never drains.
func (it *Iterator[S]) Collect() []S {
	var out []S
	for {
		s, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, s)
	}
}

func (it *Iterator[S]) front() (S, bool) {
	if it.done {
		var zero S
		return zero, false
	}
	if !it.infinite && it.pos == it.item.Count()-1 {
		it.done = true
	}
	cur := Next(&it.item)
	it.pos = it.item.Index()
	return cur, true
}

func (it *Iterator[S]) back() (S, bool) {
	if it.done {
		var zero S
		return zero, false
	}
	if !it.infinite && it.pos == 0 {
		it.done = true
	}
	cur := Previous(&it.item)
	it.pos = it.item.Index()
	return cur, true
}
