package oracle

import "math"

// Bits returns the Shannon entropy in bits of a uniform distribution over
// n objects: log2(n), floored at zero for n <= 1.
func Bits(n int) float64 {
	if n <= 1 {
		return 0
	}
	return math.Log2(float64(n))
}
