package utils

import (
	"cmp"
	"math"
	"math/bits"
)

// SatAdd returns a+b, clamped to math.MaxUint64 instead of wrapping.
func SatAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// SatSub returns a-b, clamped to zero.
func SatSub(a, b uint64) uint64 {
	if b > a {
		return 0
	}
	return a - b
}

// SatMul returns a*b, clamped to math.MaxUint64.
func SatMul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return math.MaxUint64
	}
	return lo
}

// MulDiv returns a*b/c computed with a 128-bit intermediate so large
// operands do not overflow. The result saturates when it does not fit.
// c == 0 is treated as 1.
func MulDiv(a, b, c uint64) uint64 {
	if c == 0 {
		c = 1
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= c {
		return math.MaxUint64
	}
	q, _ := bits.Div64(hi, lo, c)
	return q
}

// ApplyPercentage raises old by pct percent: old + max(1, old*pct/100).
// The increase is never smaller than one so small values still grow.
func ApplyPercentage(old, pct uint64) uint64 {
	increase := max(MulDiv(old, pct, 100), 1)
	return SatAdd(old, increase)
}

// SumValues adds every value of m with saturation.
func SumValues[K comparable](m map[K]uint64) uint64 {
	var total uint64
	for _, v := range m {
		total = SatAdd(total, v)
	}
	return total
}

// Clamp bounds v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	return min(max(v, lo), hi)
}
