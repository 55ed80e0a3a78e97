//go:build linux
// +build linux

package hive

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// cpus returns the number of CPUs this process may run on.
func cpus() int {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return runtime.NumCPU()
	}
	return max(set.Count(), 1)
}
