package backend

import (
	"math/rand/v2"

	"github.com/lattix/pqca/automaton"
)

// RandomBits returns a deterministic pseudo-random 0/1 state of n sites for
// the given seed. The same (n, seed) pair always yields the same state, so
// experiment fixtures reproduce without process-wide seeding.
func RandomBits(n int, seed int64) automaton.State {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	state := make(automaton.State, n)
	for i := range state {
		state[i] = rng.IntN(2)
	}

	return state
}
