package embervk

import "unsafe"

// safeString returns s with the NUL terminator the C side expects.
func safeString(s string) string {
	if len(s) == 0 {
		return "\x00"
	}
	if s[len(s)-1] != '\x00' {
		return s + "\x00"
	}
	return s
}

// safeStrings terminates every element without mutating the input slice.
func safeStrings(list []string) []string {
	out := make([]string, len(list))
	for i := range list {
		out[i] = safeString(list[i])
	}
	return out
}

// checkExisting returns the members of required present in actual, plus a
// count of how many were missing. Names are compared without terminators.
func checkExisting(actual, required []string) (existing []string, missing int) {
	for j := range required {
		found := false
		for i := range actual {
			if actual[i] == required[j] {
				found = true
				break
			}
		}
		if found {
			existing = append(existing, required[j])
		} else {
			missing++
		}
	}
	return existing, missing
}

func clampUint32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

type sliceHeader struct {
	Data uintptr
	Len  int
	Cap  int
}

// sliceUint32 reinterprets SPIR-V bytes as the uint32 words Vulkan expects.
// The caller guarantees len(data) is a multiple of 4.
func sliceUint32(data []byte) []uint32 {
	const m = 0x7fffffff
	return (*[m / 4]uint32)(unsafe.Pointer((*sliceHeader)(unsafe.Pointer(&data)).Data))[:len(data)/4]
}
