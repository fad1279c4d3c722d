// Package backend implements reference evaluators: a deterministic classical
// circuit interpreter and seeded random-state helpers.
package backend

import (
	"errors"
	"fmt"

	"github.com/lattix/pqca/automaton"
	"github.com/lattix/pqca/frame"
)

// Sentinel errors for classical evaluation.
var (
	// ErrUnknownOp indicates an instruction outside the classical vocabulary
	// or with the wrong slot arity.
	ErrUnknownOp = errors.New("backend: unknown or malformed instruction")
	// ErrSlotRange indicates a slot index outside the declared register.
	ErrSlotRange = errors.New("backend: slot index outside register")
)

// Classical instruction vocabulary. OpX doubles as the automaton's
// preparation payload.
const (
	// OpX flips one bit.
	OpX = automaton.OpSet
	// OpSwap exchanges two bits.
	OpSwap = "swap"
	// OpCX flips the second bit when the first is set.
	OpCX = "cx"
	// OpCCX flips the third bit when the first two are set.
	OpCCX = "ccx"
)

// Classical returns an evaluator that executes circuits on a classical bit
// register: a fresh all-zero register of the declared size, instructions
// applied in sequence, the final register returned as the next state.
// Complexity per call: O(len(circuit)).
func Classical() automaton.Evaluator {
	return func(circuit frame.Circuit, sites int) (automaton.State, error) {
		reg := make(automaton.State, sites)
		for _, ins := range circuit {
			if err := apply(reg, ins); err != nil {
				return nil, err
			}
		}

		return reg, nil
	}
}

// apply executes one instruction against the register in place.
func apply(reg automaton.State, ins frame.Instruction) error {
	op, ok := ins.Op.(string)
	if !ok {
		return fmt.Errorf("%w: payload %v", ErrUnknownOp, ins.Op)
	}
	for _, slot := range ins.Slots {
		if slot < 0 || slot >= len(reg) {
			return fmt.Errorf("%w: slot %d, register size %d", ErrSlotRange, slot, len(reg))
		}
	}

	switch {
	case op == OpX && len(ins.Slots) == 1:
		reg[ins.Slots[0]] ^= 1
	case op == OpSwap && len(ins.Slots) == 2:
		a, b := ins.Slots[0], ins.Slots[1]
		reg[a], reg[b] = reg[b], reg[a]
	case op == OpCX && len(ins.Slots) == 2:
		if reg[ins.Slots[0]] != 0 {
			reg[ins.Slots[1]] ^= 1
		}
	case op == OpCCX && len(ins.Slots) == 3:
		if reg[ins.Slots[0]] != 0 && reg[ins.Slots[1]] != 0 {
			reg[ins.Slots[2]] ^= 1
		}
	default:
		return fmt.Errorf("%w: %q with %d slots", ErrUnknownOp, op, len(ins.Slots))
	}

	return nil
}
