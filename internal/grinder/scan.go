package grinder

import (
	"context"

	"lesiw.io/seedgrinder/internal/posix"
)

// Result is one matching seed. It is never modified once produced.
type Result struct {
	Position uint32
	Seed     uint32
	Fields   Fields
}

// Values returns the result in slot order, Position and Seed included.
func (r Result) Values() [NumSlots]uint32 {
	var v [NumSlots]uint32
	copy(v[:], r.Fields[:])
	v[Position] = r.Position
	v[Seed] = r.Seed
	return v
}

// At derives the fields of the seed at position p, p < Space.
func At(cfg *Config, p uint64) Result {
	var w Window
	w.Fill(cfg.Gen.Jump(p).Step(cfg.BaseSeed), cfg.Gen.Table(WindowSize))
	r := w.Reduce(&cfg.Moduli)
	return Result{Position: uint32(p), Seed: w.Seed(), Fields: Derive(&r)}
}

// flushEvery is how many positions a scanner evaluates between progress
// updates.
const flushEvery = 1 << 16

// scanner evaluates runs of one stride progression, Width positions at a
// time. Lane l of a batch starting at position p holds the window of
// p + l*Step; after each batch all lanes hop Width*Step positions.
type scanner struct {
	cfg    *Config
	c      Constraints
	stride Stride
	jumps  []posix.LCG
	step   posix.LCG
	hop    posix.LCG
}

func newScanner(cfg *Config, c Constraints, s Stride) *scanner {
	return &scanner{
		cfg:    cfg,
		c:      c,
		stride: s,
		jumps:  cfg.Gen.Table(WindowSize),
		step:   cfg.Gen.Jump(uint64(s.Step)),
		hop:    cfg.Gen.Jump(uint64(s.Step) * uint64(cfg.Width)),
	}
}

// scan evaluates n positions of the progression starting at first, which
// must lie on it. It returns at most Cap results in position order. stop
// and ctx are checked between batches; a stopped scan returns what it has
// found so far.
func (s *scanner) scan(ctx context.Context, first, n uint64, stop func() bool, prog *progress) ([]Result, error) {
	var (
		width   = s.cfg.Width
		step    = uint64(s.stride.Step)
		lanes   = make([]Window, width)
		fields  = make([]Fields, width)
		hits    = make([]bool, width)
		results []Result
		pending uint64
	)
	seed := s.cfg.Gen.Jump(first).Step(s.cfg.BaseSeed)
	for l := range lanes {
		lanes[l].Fill(seed, s.jumps)
		seed = s.step.Step(seed)
	}
	defer func() { prog.add(pending) }()

	for k := uint64(0); k < n; k += uint64(width) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if stop != nil && stop() {
			return results, nil
		}
		live := int(min(uint64(width), n-k))
		for l := 0; l < live; l++ {
			r := lanes[l].Reduce(&s.cfg.Moduli)
			fields[l] = Derive(&r)
		}
		s.c.MatchBatch(fields[:live], hits[:live])
		for l := 0; l < live; l++ {
			if !hits[l] {
				continue
			}
			results = append(results, Result{
				Position: uint32(first + (k+uint64(l))*step),
				Seed:     lanes[l].Seed(),
				Fields:   fields[l],
			})
			if len(results) >= s.cfg.Cap {
				pending += uint64(l + 1)
				return results, nil
			}
		}
		for l := range lanes {
			lanes[l].Advance(s.hop)
		}
		if pending += uint64(live); pending >= flushEvery {
			prog.add(pending)
			pending = 0
		}
	}
	return results, nil
}
