// Package backend supplies reference evaluators for driving an automaton
// without an external simulator.
//
// What:
//
//   - Classical returns an evaluator that interprets the x/swap/cx/ccx
//     vocabulary on a classical bit register: every tick starts from an
//     all-zero register, applies the combined circuit in order, and returns
//     the register as the next state. Deterministic, so runs reproduce
//     exactly.
//   - RandomBits builds a seeded pseudo-random 0/1 initial state. The seed
//     is an explicit parameter; process-global random state is never used.
//
// Why:
//
//   - The automaton core treats its evaluator as an opaque collaborator;
//     this package makes the module runnable end-to-end and gives tests a
//     backend whose behavior can be pinned instruction by instruction.
//
// Errors:
//
//   - ErrUnknownOp: an instruction payload outside the classical vocabulary,
//     or with the wrong number of slots.
//   - ErrSlotRange: a slot index outside the declared register.
//
// Both surface to automaton callers wrapped in automaton.ErrBackend.
package backend
