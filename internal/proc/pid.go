package proc

import "math"

// maxPIDDigits is the maximum decimal width of a 32-bit PID. Longer
// strings cannot name a process directory and are rejected before any
// arithmetic.
const maxPIDDigits = 10

// ParsePID parses a process-table entry name as a PID. It accepts only
// all-digit strings whose value fits in an int32 and is greater than
// zero; anything else is not a process directory. PID 0 is reserved by
// the kernel and never appears in the table.
func ParsePID(s string) (int32, bool) {
	if len(s) == 0 || len(s) > maxPIDDigits {
		return 0, false
	}
	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int64(c-'0')
		if n > math.MaxInt32 {
			return 0, false
		}
	}
	if n == 0 {
		return 0, false
	}
	return int32(n), true
}
