package crosssells

import (
	"math"
	"strings"
)

// coerceID converts a submitted value to an integer the lenient way form
// values are treated elsewhere in the admin: optional surrounding space and
// sign, then leading digits. Anything without leading digits is 0 and
// values out of range saturate.
func coerceID(s string) int64 {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '-' || s[0] == '+') {
		neg = s[0] == '-'
		s = s[1:]
	}

	var n int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := int64(c - '0')
		if n > (math.MaxInt64-d)/10 {
			if neg {
				return math.MinInt64
			}
			return math.MaxInt64
		}
		n = n*10 + d
	}
	if neg {
		return -n
	}
	return n
}
