//go:build !amd64

package reqcore

// Non-amd64 targets never attempt the widened tier; findCarriageReturn
// degrades straight to the portable 8-byte SWAR scan and scalar remainder.
func init() {
	wideScanEnabled = false
}
