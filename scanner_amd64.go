//go:build amd64

package reqcore

import "golang.org/x/sys/cpu"

// On amd64 with AVX2 present, findCarriageReturn additionally tries the
// 32-byte-wide tier before falling back to the portable 8-byte SWAR scan.
// AVX2 itself gains us nothing here beyond a wider memory stride (the
// comparison is still the scalar SWAR trick, see findCRWide) but the gate
// mirrors the spec's width-tiering contract and the teacher's convention
// of probing CPU features before taking a widened fast path.
func init() {
	wideScanEnabled = cpu.X86.HasAVX2
}
