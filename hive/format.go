package hive

import (
	"fmt"
	"io"

	"lesiw.io/seedgrinder/internal/grinder"
)

// writeResult prints r as position, seed, clock, blood, carbon, spin,
// bug, arsonist and case word.
func writeResult(w io.Writer, cfg *grinder.Config, r grinder.Result) {
	v := r.Values()
	clock := v[grinder.Clock]
	fmt.Fprintf(w, "%10d,0x%08X,%02d:%02d,%04d,%04d,%04d,%03d,%1d,%s\n",
		v[grinder.Position], v[grinder.Seed], clock/60, clock%60,
		v[grinder.Blood], v[grinder.Carbon], v[grinder.Spin], v[grinder.Bug],
		v[grinder.Arsonist], cfg.Word(v[grinder.Case]))
}

func writeSummary(w io.Writer, n int, capped bool) {
	if capped {
		fmt.Fprintf(w, "%10d+ results found\n", n)
	} else {
		fmt.Fprintf(w, "%11d results found\n", n)
	}
}
