package grinder

// Unconstrained marks a constraint slot that accepts any value. It is
// above every derivable field, so it never compares equal to one.
const Unconstrained = 0x10000

// Constraints holds one required value per slot, or Unconstrained.
// Position and Seed are carried for layout only and never matched.
type Constraints [NumSlots]uint32

func NewConstraints() Constraints {
	var c Constraints
	for i := range c {
		c[i] = Unconstrained
	}
	return c
}

func (c *Constraints) Set(s Slot, v uint32) {
	c[s] = v
}

func (c *Constraints) Get(s Slot) (uint32, bool) {
	return c[s], c[s] != Unconstrained
}

// Count returns the number of constrained fields.
func (c *Constraints) Count() int {
	n := 0
	for _, v := range c[:NumFields] {
		if v != Unconstrained {
			n++
		}
	}
	return n
}

// Score returns how many fields of f equal their constraint.
func (c *Constraints) Score(f *Fields) int {
	n := 0
	for i, v := range f {
		n += eq(v, c[i])
	}
	return n
}

// Match reports whether f satisfies every constrained slot.
func (c *Constraints) Match(f *Fields) bool {
	return c.Score(f) == c.Count()
}

// MatchBatch sets hits[i] for each fs[i] that satisfies c. hits must be
// at least as long as fs.
func (c *Constraints) MatchBatch(fs []Fields, hits []bool) {
	want := c.Count()
	for i := range fs {
		hits[i] = c.Score(&fs[i]) == want
	}
}

func eq(a, b uint32) int {
	if a == b {
		return 1
	}
	return 0
}
