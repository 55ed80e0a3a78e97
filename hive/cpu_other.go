//go:build !linux && !windows
// +build !linux,!windows

package hive

import "runtime"

func cpus() int {
	return runtime.NumCPU()
}
