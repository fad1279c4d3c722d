// Package automaton defines the Automaton, State, and Evaluator types plus
// sentinel errors for the tick loop.
package automaton

import (
	"errors"

	"github.com/lattix/pqca/frame"
)

// Sentinel errors for the tick loop.
var (
	// ErrBackendNotConfigured indicates Tick was called with no evaluator bound.
	ErrBackendNotConfigured = errors.New("automaton: no evaluator configured")
	// ErrBackend indicates the evaluator reported failure; the wrapped detail
	// carries the evaluator's own status opaquely.
	ErrBackend = errors.New("automaton: evaluator reported failure")
)

// OpSet is the opaque payload of preparation instructions. Evaluators that
// execute circuits give it "flip this site out of the default value" meaning;
// the automaton itself never interprets it.
const OpSet = "x"

// State is the global automaton state: one discrete value per site, in site
// order.
type State []int

// clone returns an independent copy of the state.
func (s State) clone() State {
	out := make(State, len(s))
	copy(out, s)

	return out
}

// Evaluator executes a circuit over the declared number of sites and returns
// the resulting state, of exactly that length. It is an opaque external
// call: it either returns a full new state or an error, with no partial
// result. Callers wanting timeouts or cancellation wrap the evaluator
// themselves.
type Evaluator func(circuit frame.Circuit, sites int) (State, error)

// Automaton holds the current state, the update frames, and the evaluator.
// The combined update circuit is computed once at construction. Not safe for
// concurrent ticks; callers serialize access per instance.
type Automaton struct {
	frames []*frame.Frame
	eval   Evaluator
	state  State
	update frame.Circuit
}
