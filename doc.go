// Package fsm provides a type-safe cursor over closed, ordered sets of
// states, the essential core of the finite-state-machine (FSM) pattern.
//
// The package revolves around one minimal interface – State – that maps a
// fixed set of N values onto the indexes [0, N) and back. Any type carrying
// that bijection gets the full toolkit:
//  1. Type-level queries: Start, End, Len and StateAt
//  2. Cursor movement with wraparound: Next, Previous and Goto
//  3. Flip for types that opt in as two-state via the Binary marker
//  4. Cyclic and bounded iteration sessions with double-ended pulling
//
// Enum-like types get their State methods generated by the fsmgen command,
// while sets only known at runtime can use pkg/enumset, which adapts ordered
// value tables to the same contract.
//
// # Architecture
//
// All operations are package-level generic functions instantiated on the
// state type itself, so a cursor is nothing more than a plain value of S.
// Movement functions take *S, replace the pointed-to value and return the
// state that was current before the call, which makes "advance and use the
// old value" a one-liner.
//
// Start, End, Len and StateAt resolve through the zero value of S and
// therefore require descriptors whose Count and FromIndex do not depend on
// the receiver. Value-level operations call the live receiver and work for
// table-backed descriptors too.
//
// # Usage
//
// A descriptor is usually an integer enum with generated methods:
//
//	import "github.com/museun/fsm"
//
//	type Phase int
//
//	const (
//	    Boot Phase = iota
//	    Run
//	    Halt
//	)
//
//	//go:generate fsmgen --type Phase
//
//	cur := fsm.Start[Phase]()        // Boot
//	prior := fsm.Next(&cur)          // prior == Boot, cur == Run
//	prior = fsm.Goto(&cur, Halt)     // prior == Run, cur == Halt
//	prior = fsm.Next(&cur)           // prior == Halt, cur == Boot (wraps)
//
// # Iteration
//
// Cycle starts an infinite session, Once a bounded one. Each pull yields the
// element that is current at the time of the call and then advances, so the
// starting state comes out first:
//
//	fsm.Once(Boot).Collect()          // [Boot Run Halt]
//	fsm.Once(Halt).Rev().Collect()    // [Halt Run Boot]
//	fsm.Cycle(Boot).Take(4)           // [Boot Run Halt Boot]
//
// Bounded sessions can be pulled from both ends via Next and NextBack; both
// ends share a single completion flag, so the session ends as soon as either
// end walks past its boundary.
//
// # Two-State Types
//
// Types with exactly two states may declare the no-op BinaryState method to
// satisfy Binary and unlock Flip:
//
//	on := fsm.Start[Toggle]()
//	was := fsm.Flip(&on)             // toggles, returns the prior state
//
// fsmgen emits the marker automatically when the enum has two constants.
//
// # Error Handling
//
// The only fallible operation is index resolution. Errors can be inspected
// with the helper predicate:
//
//	if _, err := fsm.StateAt[Phase](99); fsm.IsNoSuchStateError(err) { /* ... */ }
//
// # Concurrency
//
// Cursors and iteration sessions are plain values with no internal locking.
// Share them across goroutines only with external synchronization; distinct
// cursors and sessions over the same type are always independent.
//
// # See Also
//
// pkg/enumset adapts runtime-defined ordered sets to the State contract, and
// cmd/fsmgen generates descriptor methods for integer enums.
package fsm
