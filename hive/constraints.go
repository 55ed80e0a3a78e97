package hive

import (
	"strconv"
	"strings"

	"lesiw.io/seedgrinder/internal/grinder"
)

// query is the text of each constraint as given on the command line or
// in a profile. Empty strings are unconstrained.
type query struct {
	Clock    string
	Blood    string
	Carbon   string
	Spin     string
	Bug      string
	Arsonist string
	Case     string
}

func (q *query) constraints(cfg *grinder.Config) (grinder.Constraints, error) {
	c := grinder.NewConstraints()
	for _, f := range []struct {
		slot  grinder.Slot
		val   string
		parse func(string) (uint32, *ConstraintError)
	}{
		{grinder.Clock, q.Clock, parseClock},
		{grinder.Blood, q.Blood, codeParser(4, false)},
		{grinder.Carbon, q.Carbon, codeParser(4, false)},
		{grinder.Spin, q.Spin, codeParser(4, false)},
		{grinder.Bug, q.Bug, codeParser(3, true)},
		{grinder.Arsonist, q.Arsonist, parseArsonist},
		{grinder.Case, q.Case, wordParser(cfg)},
	} {
		if f.val == "" {
			continue
		}
		v, err := f.parse(f.val)
		if err != nil {
			err.Flag, err.Value = f.slot.String(), f.val
			return c, err
		}
		c.Set(f.slot, v)
	}
	return c, nil
}

func badValue(col int, reason string) *ConstraintError {
	return &ConstraintError{Col: col, Reason: reason}
}

// parseClock reads HH:MM on a 12 hour dial into minutes.
func parseClock(s string) (uint32, *ConstraintError) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, badValue(-1, "want HH:MM")
	}
	h, err := strconv.ParseUint(hh, 10, 8)
	if err != nil || hh == "" {
		return 0, badValue(0, "bad hour")
	} else if h >= 12 {
		return 0, badValue(0, "hour must be 0-11")
	}
	m, err := strconv.ParseUint(mm, 10, 8)
	if err != nil || mm == "" {
		return 0, badValue(len(hh)+1, "bad minute")
	} else if m >= 60 {
		return 0, badValue(len(hh)+1, "minute must be 0-59")
	}
	return uint32(60*h + m), nil
}

// codeParser reads a code of n digits 1-9, optionally all distinct.
func codeParser(n int, distinct bool) func(string) (uint32, *ConstraintError) {
	return func(s string) (uint32, *ConstraintError) {
		var v uint32
		for i := 0; i < len(s); i++ {
			switch d := s[i]; {
			case d < '0' || d > '9':
				return 0, badValue(i, "not a digit")
			case d == '0':
				return 0, badValue(i, "codes never contain 0")
			case distinct && strings.IndexByte(s[:i], d) >= 0:
				return 0, badValue(i, "digits must all differ")
			default:
				v = v*10 + uint32(d-'0')
			}
		}
		if len(s) != n {
			return 0, badValue(-1, "want "+strconv.Itoa(n)+" digits")
		}
		return v, nil
	}
}

func parseArsonist(s string) (uint32, *ConstraintError) {
	if len(s) != 1 || s[0] < '1' || s[0] > '6' {
		return 0, badValue(-1, "want a room from 1 to 6")
	}
	return uint32(s[0] - '0'), nil
}

func wordParser(cfg *grinder.Config) func(string) (uint32, *ConstraintError) {
	return func(s string) (uint32, *ConstraintError) {
		i, ok := cfg.WordIndex(s)
		if !ok {
			return 0, badValue(-1, "not a briefcase word, see: seedgrinder words")
		}
		return i, nil
	}
}
