package posix

// Constants of the sample rand() given in POSIX.1, truncated to 31 bits.
const (
	Multiplier = 1103515245
	Increment  = 12345
	Mask       = 0x7FFFFFFF
)

// LCG is the affine map x -> (x*Mult + Inc) mod 2^31.
//
// Composing two such maps gives another one, so n steps of a generator
// collapse into a single LCG and any position of the sequence can be
// reached with one multiply-add.
type LCG struct {
	Mult uint32
	Inc  uint32
}

// Identity leaves the state unchanged.
func Identity() LCG {
	return LCG{Mult: 1, Inc: 0}
}

// Rand returns the POSIX sample generator.
func Rand() LCG {
	return LCG{Mult: Multiplier, Inc: Increment}
}

// Step applies g once. Products wrap at 2^32; only the low 31 bits are
// kept.
func (g LCG) Step(x uint32) uint32 {
	return (x*g.Mult + g.Inc) & Mask
}

// Then returns the map applying g first and h second.
func (g LCG) Then(h LCG) LCG {
	return LCG{
		Mult: (g.Mult * h.Mult) & Mask,
		Inc:  (g.Inc*h.Mult + h.Inc) & Mask,
	}
}

// Jump returns the map equivalent to n applications of g.
func (g LCG) Jump(n uint64) LCG {
	acc, cur := Identity(), g
	for n != 0 {
		if n&1 != 0 {
			acc = acc.Then(cur)
		}
		cur = cur.Then(cur)
		n >>= 1
	}
	return acc
}

// Table returns Jump(0) through Jump(n-1).
func (g LCG) Table(n int) []LCG {
	t := make([]LCG, n)
	acc := Identity()
	for i := range t {
		t[i] = acc
		acc = acc.Then(g)
	}
	return t
}

// FullPeriod reports whether g visits all 2^31 states.
func (g LCG) FullPeriod() bool {
	return g.Inc&1 == 1 && g.Mult&3 == 1
}

// Source is a running generator. Its output is the state after each step.
type Source struct {
	g LCG
	x uint32
}

func NewSource(g LCG, seed uint32) *Source {
	return &Source{g: g, x: seed & Mask}
}

func (s *Source) State() uint32 {
	return s.x
}

func (s *Source) Next() uint32 {
	s.x = s.g.Step(s.x)
	return s.x
}

// Advance moves the source n steps forward in O(log n).
func (s *Source) Advance(n uint64) {
	s.x = s.g.Jump(n).Step(s.x)
}
