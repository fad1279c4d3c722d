// Package automaton drives a partitioned cellular automaton: it owns the
// current global state, composes the preparation and update circuits, and
// asks an external evaluator for the next state on every tick.
//
// What:
//
//   - State is the ordered list of per-site values, one per lattice site.
//   - Evaluator is the external function that executes a circuit over a
//     declared number of sites and returns the resulting state.
//   - Automaton concatenates its frames' wound circuits once at construction
//     (frames are immutable, so the update circuit never changes) and
//     replaces its state wholesale on each Tick.
//
// Tick:
//
//	combined = Preparation(state) ++ cached update circuit
//	state    = evaluator(combined, size)
//
// Preparation emits one OpSet instruction per nonzero site, so the evaluator
// starts from a fresh substrate encoding the current pattern.
//
// Failure:
//
//   - Tick with no evaluator bound fails with ErrBackendNotConfigured.
//   - An evaluator failure surfaces as ErrBackend wrapping the evaluator's
//     own status; the automaton's state is left untouched either way.
//
// Concurrency:
//
//	Tessellations and frames are immutable and safe to share across
//	automatons. A single Automaton performs no locking of its own: callers
//	must serialize Tick/Iterate, at most one in flight per instance.
//
// Errors:
//
//   - ErrBackendNotConfigured: Tick attempted with a nil evaluator.
//   - ErrBackend: the evaluator reported failure; its status is carried in
//     the error message, never reinterpreted.
package automaton
