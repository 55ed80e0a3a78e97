//go:build windows
// +build windows

package hive

import "os"

func interruptSignals() []os.Signal {
	return []os.Signal{os.Interrupt}
}
