package fsm

// Binary marks a State type as having exactly two states. BinaryState carries
// no behavior and is never called; declaring it is the opt-in that makes Flip
// available, so only types whose Count is 2 may declare it. Code generated by
// fsmgen adds the marker automatically when the enum has two constants.
type Binary[S any] interface {
	State[S]

	// BinaryState marks the type as two-state.
	BinaryState()
}

// Flip toggles a two-state cursor to its other state and returns the state
// that was current before the call. It is Next constrained to Binary types,
// so flipping twice restores the original state.
func Flip[S Binary[S]](s *S) S {
	return Next(s)
}
