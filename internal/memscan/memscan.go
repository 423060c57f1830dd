// Package memscan searches the current process's writable memory for a byte
// pattern, the way a cheat tool looks for a known value.
package memscan

import "errors"

var (
	// ErrUnsupported is returned on platforms without /proc/self/mem.
	ErrUnsupported = errors.New("memscan: unsupported platform")
	// ErrEmptyPattern is returned when the pattern has no bytes.
	ErrEmptyPattern = errors.New("memscan: empty pattern")
)

// Region is a mapped address range [Start, End).
type Region struct {
	Start uintptr
	End   uintptr
}

// countFrom counts occurrences of pattern in buf that start before limit.
func countFrom(buf, pattern []byte, limit int) int {
	n := 0
	for i := 0; i+len(pattern) <= len(buf) && i < limit; i++ {
		if buf[i] != pattern[0] {
			continue
		}
		match := true
		for j := 1; j < len(pattern); j++ {
			if buf[i+j] != pattern[j] {
				match = false
				break
			}
		}
		if match {
			n++
		}
	}
	return n
}

// subtract removes [start, end) from r, returning what is left.
func subtract(r Region, start, end uintptr) []Region {
	if end <= r.Start || start >= r.End {
		return []Region{r}
	}
	var out []Region
	if start > r.Start {
		out = append(out, Region{Start: r.Start, End: start})
	}
	if end < r.End {
		out = append(out, Region{Start: end, End: r.End})
	}
	return out
}
