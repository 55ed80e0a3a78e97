package hive

import (
	"strconv"

	"lesiw.io/seedgrinder/internal/flag"
	"lesiw.io/seedgrinder/internal/grinder"
)

const deriveUsage = `usage: seedgrinder derive POSITION...

Print the fields of the seed at each seed-space position, in the same
format as grind.`

func init() {
	Bees["derive"] = Derive
}

func Derive(cmd *Cmd) int {
	flags := flag.NewFlagSet(cmd.Stderr, "derive")
	flags.Usage = deriveUsage
	if err := flags.Parse(cmd.Args[1:]...); err != nil {
		return 1
	}
	if len(flags.Args) == 0 {
		flags.PrintError("error: needs 1 argument")
		return 1
	}
	ps := make([]uint64, len(flags.Args))
	for i, arg := range flags.Args {
		p, err := strconv.ParseUint(arg, 10, 64)
		if err != nil || p >= grinder.Space {
			flags.PrintError("error: bad position: " + arg)
			return 1
		}
		ps[i] = p
	}
	cfg := grinder.DefaultConfig()
	for _, p := range ps {
		writeResult(cmd.Stdout, cfg, grinder.At(cfg, p))
	}
	return 0
}
