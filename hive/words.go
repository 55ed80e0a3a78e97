package hive

import (
	"fmt"

	"lesiw.io/seedgrinder/internal/flag"
	"lesiw.io/seedgrinder/internal/grinder"
)

const wordsUsage = `usage: seedgrinder words

List the briefcase words accepted by grind --case.`

func init() {
	Bees["words"] = Words
}

func Words(cmd *Cmd) int {
	flags := flag.NewFlagSet(cmd.Stderr, "words")
	flags.Usage = wordsUsage
	if err := flags.Parse(cmd.Args[1:]...); err != nil {
		return 1
	} else if len(flags.Args) > 0 {
		flags.PrintError("error: too many arguments")
		return 1
	}
	cfg := grinder.DefaultConfig()
	for i, w := range cfg.Words {
		if cfg.Reachable(grinder.Case, uint32(i)) {
			fmt.Fprintf(cmd.Stdout, "%2d %s\n", i, w)
		} else {
			fmt.Fprintf(cmd.Stdout, "%2d %s (never drawn)\n", i, w)
		}
	}
	return 0
}
