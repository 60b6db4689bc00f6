//go:build arm64

package popcnt

import "golang.org/x/sys/cpu"

func init() {
	// CNT is part of baseline ASIMD.
	hasHWPopcount = cpu.ARM64.HasASIMD
	initBackend()
}
