//go:build !windows
// +build !windows

package hive

import (
	"os"

	"golang.org/x/sys/unix"
)

func interruptSignals() []os.Signal {
	return []os.Signal{unix.SIGINT, unix.SIGTERM}
}
