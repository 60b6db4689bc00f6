//go:build amd64

package popcnt

import "golang.org/x/sys/cpu"

func init() {
	hasHWPopcount = cpu.X86.HasPOPCNT
	initBackend()
}
