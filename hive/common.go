package hive

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

type prettyError interface {
	Error() string
	Pretty() string
}

func prettyPrintError(w io.Writer, err error) {
	var pe prettyError
	if errors.As(err, &pe) {
		_, _ = io.WriteString(w, pe.Pretty())
	} else {
		_, _ = io.WriteString(w, err.Error())
	}
	_, _ = io.WriteString(w, "\n")
}

var ErrNoConstraint = errors.New("no constraint given: pass at least one, or --all")

// ConstraintError is a constraint value that cannot be searched for.
// Col is the offending byte of Value, or -1 when the whole value is at
// fault.
type ConstraintError struct {
	Flag   string
	Value  string
	Col    int
	Reason string
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("bad --%s %q: %s", e.Flag, e.Value, e.Reason)
}

func (e *ConstraintError) Pretty() string {
	prefix := "--" + e.Flag + " "
	pad := strings.Repeat(" ", len(prefix))
	mark := strings.Repeat("^", max(len(e.Value), 1))
	if e.Col >= 0 && e.Col < len(e.Value) {
		pad += strings.Repeat(" ", e.Col)
		mark = "^"
	}
	return prefix + e.Value + "\n" + pad + mark + " " + e.Reason
}
