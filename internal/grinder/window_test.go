package grinder_test

import (
	"testing"

	"github.com/dgryski/go-pcgr"

	"lesiw.io/seedgrinder/internal/grinder"
	"lesiw.io/seedgrinder/internal/posix"
)

// stepWindow builds the window of position p the slow way, stepping the
// generator one state at a time from the base seed.
func stepWindow(cfg *grinder.Config, p int) grinder.Window {
	src := posix.NewSource(cfg.Gen, cfg.BaseSeed)
	for i := 0; i < p; i++ {
		src.Next()
	}
	var w grinder.Window
	w[0] = src.State()
	for i := 1; i < grinder.WindowSize; i++ {
		w[i] = src.Next()
	}
	return w
}

func TestWindowFillMatchesStepping(t *testing.T) {
	cfg := grinder.DefaultConfig()
	for _, p := range []int{0, 1, 2, 31, 32, 33, 64, 1000, 65537, 1 << 20} {
		if got, want := windowAt(cfg, uint64(p)), stepWindow(cfg, p); got != want {
			t.Errorf("position %d: skip-ahead window differs from stepped window", p)
		}
	}
}

func TestWindowAdvanceMatchesFill(t *testing.T) {
	cfg := grinder.DefaultConfig()
	jumps := cfg.Gen.Table(grinder.WindowSize)
	rnd := pcgr.New(0xC0FFEE, 7)
	for i := 0; i < 200; i++ {
		p := uint64(rnd.Next() & (grinder.Space - 1))
		hop := uint64(rnd.Next()%64 + 1)
		w := windowAt(cfg, p)
		for k := 1; k <= 5; k++ {
			w.Advance(cfg.Gen.Jump(hop))
			var want grinder.Window
			want.Fill(cfg.Gen.Jump(p+uint64(k)*hop).Step(cfg.BaseSeed), jumps)
			if w != want {
				t.Fatalf("position %d hop %d x%d: advanced window differs from filled window", p, hop, k)
			}
		}
	}
}

func TestWindowAdvanceWraps(t *testing.T) {
	cfg := grinder.DefaultConfig()
	w := windowAt(cfg, grinder.Space-3)
	w.Advance(cfg.Gen.Jump(5))
	if want := windowAt(cfg, 2); w != want {
		t.Errorf("window past the end of the space did not wrap to position 2")
	}
}

func TestWindowReduce(t *testing.T) {
	cfg := grinder.DefaultConfig()
	w := windowAt(cfg, 0)
	r := w.Reduce(&cfg.Moduli)
	for i, m := range cfg.Moduli {
		want := w[i]
		if m != 0 {
			want = w[i] % m
		}
		if r[i] != want {
			t.Errorf("slot %d: got %d, want %d", i, r[i], want)
		}
	}
	if r[0] != cfg.BaseSeed {
		t.Errorf("unreduced seed slot changed: %#x", r[0])
	}
}
