package serialwrite

import "unsafe"

var pow32 = [...]float32{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
}

var pow64 = [...]float64{
	1, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7,
	1e8, 1e9, 1e10, 1e11, 1e12, 1e13, 1e14, 1e15,
}

// narrow reports whether F is a 32-bit float.
func narrow[F Float]() bool {
	var f F
	return unsafe.Sizeof(f) == 4
}

// MaxPrecision returns the largest number of fractional digits
// [WriteFloat] emits for F: 7 for 32-bit floats and 15 for 64-bit floats.
// Larger requests are clamped to it.
func MaxPrecision[F Float]() int {
	if narrow[F]() {
		return len(pow32) - 1
	}
	return len(pow64) - 1
}

// pow10 returns 10^n in the precision of F. n must be within
// [0, MaxPrecision[F]()].
func pow10[F Float](n int) F {
	if narrow[F]() {
		return F(pow32[n])
	}
	return F(pow64[n])
}

// clampPrecision limits nodp to what the power table for F can scale.
func clampPrecision[F Float](nodp int) int {
	if m := MaxPrecision[F](); nodp > m {
		return m
	}
	return nodp
}
