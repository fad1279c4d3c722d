package backend_test

import (
	"testing"

	"github.com/lattix/pqca/automaton"
	"github.com/lattix/pqca/backend"
	"github.com/lattix/pqca/frame"
	"github.com/lattix/pqca/tessellation"
)

// BenchmarkTick measures one full tick (preparation + wound update +
// classical evaluation) on a 16384-site ring with two alternating frames.
func BenchmarkTick(b *testing.B) {
	tess, err := tessellation.OneDimensional(16384, 2)
	if err != nil {
		b.Fatalf("setup OneDimensional failed: %v", err)
	}
	shifted, err := tess.ShiftedBy(1)
	if err != nil {
		b.Fatalf("setup ShiftedBy failed: %v", err)
	}
	swap := frame.Circuit{{Op: backend.OpSwap, Slots: []int{0, 1}}}
	base, err := frame.New(tess, swap)
	if err != nil {
		b.Fatalf("setup frame failed: %v", err)
	}
	twin, err := frame.New(shifted, swap)
	if err != nil {
		b.Fatalf("setup frame failed: %v", err)
	}
	a := automaton.New(backend.RandomBits(16384, 42),
		[]*frame.Frame{base, twin}, backend.Classical())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = a.Tick(); err != nil {
			b.Fatalf("Tick failed: %v", err)
		}
	}
}
