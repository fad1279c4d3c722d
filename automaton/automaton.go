package automaton

import (
	"fmt"

	"github.com/lattix/pqca/frame"
)

// New builds an Automaton over the given initial state, update frames, and
// evaluator. The initial state is copied; the frames' wound circuits are
// concatenated once, in list order, into the cached update circuit.
// Every frame is expected to be wound over a tessellation of exactly
// len(initial) sites; a mismatch is a caller error that surfaces when the
// evaluator executes the circuit.
func New(initial State, frames []*frame.Frame, eval Evaluator) *Automaton {
	update := make(frame.Circuit, 0)
	for _, f := range frames {
		update = append(update, f.Instructions()...)
	}

	return &Automaton{
		frames: frames,
		eval:   eval,
		state:  initial.clone(),
		update: update,
	}
}

// Preparation derives the circuit that initializes a fresh substrate into the
// pattern s: one OpSet instruction per nonzero site, in site order. Pure
// function of the state.
func Preparation(s State) frame.Circuit {
	circuit := make(frame.Circuit, 0, len(s))
	for site, value := range s {
		if value != 0 {
			circuit = append(circuit, frame.Instruction{Op: OpSet, Slots: []int{site}})
		}
	}

	return circuit
}

// State returns a copy of the current global state.
func (a *Automaton) State() State { return a.state.clone() }

// UpdateCircuit returns a copy of the cached full-lattice update circuit,
// all frames concatenated in list order.
func (a *Automaton) UpdateCircuit() frame.Circuit {
	out := make(frame.Circuit, len(a.update))
	copy(out, a.update)

	return out
}

// Tick runs one update step: it composes the preparation circuit for the
// current state with the cached update circuit, hands the combination to the
// evaluator, and replaces the state with the result.
// Returns ErrBackendNotConfigured if no evaluator is bound, or ErrBackend
// wrapping the evaluator's status on failure; in both cases the state is
// left unchanged.
func (a *Automaton) Tick() (State, error) {
	if a.eval == nil {
		return nil, ErrBackendNotConfigured
	}

	combined := append(Preparation(a.state), a.update...)
	next, err := a.eval(combined, len(a.state))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackend, err)
	}
	a.state = next.clone()

	return a.state.clone(), nil
}

// Iterate runs Tick exactly n times and returns the n resulting states in
// order, not including the pre-iteration state. n ≤ 0 returns an empty
// sequence without invoking the evaluator. A failed tick aborts the
// iteration and propagates its error, leaving the state at the last
// successful tick.
func (a *Automaton) Iterate(n int) ([]State, error) {
	states := make([]State, 0, max(n, 0))
	for i := 0; i < n; i++ {
		next, err := a.Tick()
		if err != nil {
			return nil, err
		}
		states = append(states, next)
	}

	return states, nil
}

// String renders a short diagnostic form: current state and frame count.
func (a *Automaton) String() string {
	return fmt.Sprintf("Automaton(state=%v, frames=%d)", []int(a.state), len(a.frames))
}
