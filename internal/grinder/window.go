package grinder

import "lesiw.io/seedgrinder/internal/posix"

// Window holds the generator states at positions p through p+31: slot 0
// is the seed under test and slot k is its k-th output.
type Window [WindowSize]uint32

// Fill rebuilds w from seed using jumps, a table of Jump(0) through
// Jump(WindowSize-1).
func (w *Window) Fill(seed uint32, jumps []posix.LCG) {
	for i, j := range jumps[:WindowSize] {
		w[i] = j.Step(seed)
	}
}

// Advance moves every slot forward by the same jump. Since every slot is
// a fixed offset from the seed, the result equals a Fill from the
// advanced seed.
func (w *Window) Advance(j posix.LCG) {
	for i, x := range w {
		w[i] = j.Step(x)
	}
}

func (w *Window) Seed() uint32 {
	return w[0]
}

// Reduce returns w with each slot taken modulo its entry in moduli.
func (w *Window) Reduce(moduli *[WindowSize]uint32) Window {
	var r Window
	for i, m := range moduli {
		if m == 0 {
			r[i] = w[i]
		} else {
			r[i] = w[i] % m
		}
	}
	return r
}
