package hive

import (
	"fmt"
	"os/signal"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"lesiw.io/seedgrinder/internal/flag"
	"lesiw.io/seedgrinder/internal/grinder"
)

const grindUsage = `usage: seedgrinder grind [flags]

Search the seed space for seeds that derive every given value. At least
one value, or --all, is required. Results are printed newest first.`

// progressEvery is how often a running search logs its progress.
const progressEvery = 5 * time.Second

func init() {
	Bees["grind"] = Grind
}

func Grind(cmd *Cmd) int {
	var (
		q       query
		flags   = flag.NewFlagSet(cmd.Stderr, "grind")
		all     = flags.Bool("all", "Search with no constraint")
		path    = flags.String("f", "Read constraints from YAML `profile`")
		workers = flags.Int("j", "Scan with `workers` goroutines (default: CPU count)")
		start   = flags.Uint64("start", "First `position` to scan")
		end     = flags.Uint64("end", "Stop before `position` (default: 2147483648)")
		quiet   = flags.Bool("q", "Log warnings only")
		verbose = flags.Bool("v", "Log every finished chunk")
	)
	flags.StringVar(&q.Clock, "clock", "Clock `HH:MM`, 00:00 to 11:59")
	flags.StringVar(&q.Blood, "blood", "Blood pack `code`, 4 digits 1-9")
	flags.StringVar(&q.Carbon, "carbon", "Carbon paper `code`, 4 digits 1-9")
	flags.StringVar(&q.Spin, "spin", "Spin lock `code`, 4 digits 1-9")
	flags.StringVar(&q.Bug, "bug", "Bug room `code`, 3 distinct digits 1-9")
	flags.StringVar(&q.Arsonist, "arsonist", "Arsonist `room`, 1-6")
	flags.StringVar(&q.Case, "case", "Briefcase `word`")
	flags.Usage = grindUsage
	if err := flags.Parse(cmd.Args[1:]...); err != nil {
		return 1
	}
	if len(flags.Args) > 0 {
		flags.PrintError("error: unexpected argument: " + flags.Args[0])
		return 1
	}

	if *path != "" {
		p, err := readProfile(*path)
		if err != nil {
			fmt.Fprintln(cmd.Stderr, err)
			return 1
		}
		for _, v := range []struct {
			name string
			dst  *string
			val  string
		}{
			{"clock", &q.Clock, p.Clock},
			{"blood", &q.Blood, p.Blood},
			{"carbon", &q.Carbon, p.Carbon},
			{"spin", &q.Spin, p.Spin},
			{"bug", &q.Bug, p.Bug},
			{"arsonist", &q.Arsonist, p.Arsonist},
			{"case", &q.Case, p.Case},
		} {
			if !flags.Set(v.name) {
				*v.dst = v.val
			}
		}
		if !flags.Set("all") {
			*all = p.All
		}
		if !flags.Set("j") {
			*workers = p.Workers
		}
		if !flags.Set("start") {
			*start = p.Start
		}
		if !flags.Set("end") {
			*end = p.End
		}
	}

	cfg := grinder.DefaultConfig()
	c, err := q.constraints(cfg)
	if err != nil {
		prettyPrintError(cmd.Stderr, err)
		flags.PrintUsage()
		return 1
	} else if c.Count() == 0 && !*all {
		flags.PrintError(ErrNoConstraint.Error())
		return 1
	}
	if *end == 0 {
		*end = grinder.Space
	}
	if *end > grinder.Space || *start > *end {
		flags.PrintError(fmt.Sprintf("error: bad range: %d to %d", *start, *end))
		return 1
	}
	if *workers <= 0 {
		*workers = cpus()
	}

	log := newLogger(cmd.Stderr, *quiet, *verbose)
	for _, s := range []grinder.Slot{grinder.Clock, grinder.Case} {
		if v, ok := c.Get(s); ok && !cfg.Reachable(s, v) {
			log.Warnf("no seed derives this %s; expect no results", s)
		}
	}
	log.WithFields(q.fields()).WithFields(logrus.Fields{
		"workers": *workers,
		"start":   *start,
		"end":     *end,
	}).Info("grinding")

	ctx, stop := signal.NotifyContext(cmd.Ctx, interruptSignals()...)
	defer stop()
	began := time.Now()
	p := message.NewPrinter(language.English)
	report, err := grinder.Search(ctx, cfg, c, grinder.Options{
		Range:         grinder.Range{Start: *start, End: *end},
		Workers:       *workers,
		ProgressEvery: progressEvery,
		OnProgress: func(pr grinder.Progress) {
			log.Info(p.Sprintf("scanned %d of %d positions (%.1f%%)",
				pr.Done, pr.Total, pr.Percent()))
		},
		OnChunk: func(i int, r grinder.Range, found int) {
			log.WithFields(logrus.Fields{
				"chunk": i,
				"start": r.Start,
				"end":   r.End,
				"found": found,
			}).Debug("chunk done")
		},
	})
	if ctx.Err() != nil {
		fmt.Fprintln(cmd.Stderr, "interrupted")
		return 1
	} else if err != nil {
		fmt.Fprintln(cmd.Stderr, err)
		return 1
	}
	log.WithFields(logrus.Fields{
		"results": len(report.Results),
		"capped":  report.Capped,
		"stride":  fmt.Sprintf("%d+%dn", report.Stride.Offset, report.Stride.Step),
		"scanned": p.Sprintf("%d", report.Scanned),
		"elapsed": time.Since(began).Round(time.Millisecond),
	}).Info("done")

	for i := len(report.Results) - 1; i >= 0; i-- {
		writeResult(cmd.Stdout, cfg, report.Results[i])
	}
	writeSummary(cmd.Stdout, len(report.Results), report.Capped)
	return 0
}

func (q *query) fields() logrus.Fields {
	f := logrus.Fields{}
	for k, v := range map[string]string{
		"clock":    q.Clock,
		"blood":    q.Blood,
		"carbon":   q.Carbon,
		"spin":     q.Spin,
		"bug":      q.Bug,
		"arsonist": q.Arsonist,
		"case":     q.Case,
	} {
		if v != "" {
			f[k] = v
		}
	}
	return f
}
