package fsm

import (
	"errors"
	"fmt"
)

// ErrNoSuchState indicates that an index outside [0, Count) was asked to
// resolve to a state.
type ErrNoSuchState struct {
	Index int
	Count int
}

func (e *ErrNoSuchState) Error() string {
	return fmt.Sprintf("no such state: index %d is outside [0, %d)", e.Index, e.Count)
}

// NewErrNoSuchState creates the error FromIndex implementations return for an
// out-of-range index.
func NewErrNoSuchState(index, count int) *ErrNoSuchState {
	return &ErrNoSuchState{
		Index: index,
		Count: count,
	}
}

// IsNoSuchStateError checks if the error is a no-such-state error.
func IsNoSuchStateError(err error) bool {
	var e *ErrNoSuchState
	return errors.As(err, &e)
}
