package grinder

import (
	"errors"
	"fmt"
	"math/bits"
)

var ErrUnreachable = errors.New("these seeds can't work")

// Stride is the arithmetic progression of positions worth visiting:
// Offset, Offset+Step, Offset+2*Step, ...
type Stride struct {
	Offset uint32
	Step   uint32
}

// Full visits every position.
func Full() Stride {
	return Stride{Offset: 0, Step: 1}
}

// PlanStride narrows the scan using the clock constraint, if any.
//
// The clock is the clock register reduced mod 660, plus 60 past the
// fold. Both terms are multiples of q = 4, so the clock and the register
// agree mod q. The low bits of a full-period LCG cycle with period q,
// which pins the position mod q.
func PlanStride(cfg *Config, c *Constraints) (Stride, error) {
	clock, ok := c.Get(Clock)
	if !ok {
		return Full(), nil
	}
	q := lowPow2(cfg.Moduli[clockReg], clockGap)
	if q == 1 {
		return Full(), nil
	}
	if j := cfg.Gen.Jump(uint64(q)); j.Mult%q != 1 || j.Inc%q != 0 {
		return Full(), nil
	}
	for o := uint32(0); o < q; o++ {
		reg := cfg.Gen.Jump(uint64(o) + clockReg).Step(cfg.BaseSeed)
		if reg%q == clock%q {
			return Stride{Offset: o, Step: q}, nil
		}
	}
	return Stride{}, fmt.Errorf("%w: clock %d", ErrUnreachable, clock)
}

// lowPow2 returns the largest power of two dividing both a and b.
func lowPow2(a, b uint32) uint32 {
	return 1 << min(bits.TrailingZeros32(a), bits.TrailingZeros32(b), 31)
}

// First returns the first position of s at or after p.
func (s Stride) First(p uint64) uint64 {
	step, off := uint64(s.Step), uint64(s.Offset)
	if p <= off {
		return off
	}
	return p + (step-(p-off)%step)%step
}

// Count returns the number of positions of s in [start, end).
func (s Stride) Count(start, end uint64) uint64 {
	first := s.First(start)
	if first >= end {
		return 0
	}
	return (end-first-1)/uint64(s.Step) + 1
}
