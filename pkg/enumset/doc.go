// Package enumset adapts ordered sets of values that are only known at
// runtime to the state contract of the fsm package.
//
// Compile-time enums get their cursor methods generated by fsmgen, but
// workflow stages loaded from configuration, feature rollout phases fetched
// from a database or any other dynamic list cannot. A Set captures such a
// list once, validates it and hands out Member values that plug into the
// cursor engine and iteration sessions of the fsm package unchanged.
//
// # Usage
//
//	set := enumset.MustNew("pending", "active", "closed")
//
//	cur := set.Start()
//	fsm.Next(&cur)                   // cur is now "active"
//	fsm.Once(cur).Collect()          // [active closed]
//	fsm.Once(set.End()).Rev().Take(2) // [closed active]
//
// Sets of strings can also be loaded from YAML:
//
//	set, err := enumset.FromYAML(data)
//
// # Limitations
//
// A Member carries a pointer to its Set, so the type-level helpers of the
// fsm package, which instantiate on the zero value, cannot see the backing
// table. Use Set.Start, Set.End, Set.Len and Set.At instead; everything that
// operates on a live value works as usual.
//
// Sets are immutable after construction and safe for concurrent use.
package enumset
