package enumset

import (
	"fmt"

	"github.com/museun/fsm"
)

// Member is a set value bound to its Set, satisfying the state contract of
// the fsm package. Members of the same Set compare equal when they hold the
// same value; members of different Sets never compare equal, even for equal
// values.
//
// The zero Member belongs to no set: Count reports 0, Index reports -1 and
// FromIndex always fails. Because the type-level helpers of the fsm package
// instantiate on the zero value, use Set.Start, Set.End and Set.Len in place
// of fsm.Start, fsm.End and fsm.Len for set-backed cursors. The value-level
// operations, fsm.Next, fsm.Previous, fsm.Goto and the iteration sessions,
// work as usual.
type Member[T comparable] struct {
	set   *Set[T]
	value T
}

// Value returns the underlying set value.
func (m Member[T]) Value() T { return m.value }

// Index returns the position of the member in set order, or -1 for the zero
// Member.
func (m Member[T]) Index() int {
	if m.set == nil {
		return -1
	}
	return m.set.index[m.value]
}

// FromIndex returns the member at position i of the same set, or a
// no-such-state error when i is out of range.
func (m Member[T]) FromIndex(i int) (Member[T], error) {
	if m.set == nil {
		return Member[T]{}, fsm.NewErrNoSuchState(i, 0)
	}
	return m.set.At(i)
}

// Count returns the size of the backing set, or 0 for the zero Member.
func (m Member[T]) Count() int {
	if m.set == nil {
		return 0
	}
	return m.set.Len()
}

func (m Member[T]) String() string {
	return fmt.Sprint(m.value)
}
