//go:build !amd64 && !arm64

package popcnt

func init() {
	// No feature detection on other architectures; the portable loop is
	// always correct there.
	hasHWPopcount = false
	initBackend()
}
