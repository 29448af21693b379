package serialwrite

import "math"

// u64Base is the largest power of ten a uint64 holds.
const u64Base = 1e19

// tally accumulates the bytes written by the sub-steps of one call.
type tally struct {
	n   int
	err error
}

// add records a sub-step and reports whether it succeeded. A failed
// sub-step still contributes the bytes it completed before failing.
func (t *tally) add(n int, err error) bool {
	t.n += n
	if err != nil {
		t.err = err
		return false
	}
	return true
}

func (t *tally) result() (int, error) { return t.n, t.err }

// WriteFloat writes v in fixed-point notation with nodp fractional digits.
//
// Digits are truncated, not rounded: WriteFloat(w, 12.345, 2) writes
// "12.34". nodp is clamped to [MaxPrecision]; nodp <= 0 writes the integer
// part only, without a decimal point. Magnitudes beyond the range of a
// uint64 are written as the leading digits followed by zeros.
func WriteFloat[F Float](w *Writer, v F, nodp int) (int, error) {
	var t tally
	f := v
	if f < 0 {
		f = -f
		if !t.add(w.WriteString("-")) {
			return t.result()
		}
	}
	if nonFinite(f) {
		t.add(writeNonFinite(w, f))
		return t.result()
	}

	base := F(u64Base)
	blocks := 0
	for f > base*base {
		f /= base
		blocks++
	}
	shifts := 0
	for f > base {
		f /= 10
		shifts++
	}

	ip := uint64(f)
	if !t.add(WriteInt(w, ip)) {
		return t.result()
	}
	for range blocks {
		if !t.add(w.writeZeros(len(zeros))) {
			return t.result()
		}
	}
	for range shifts {
		if !t.add(w.writeZeros(1)) {
			return t.result()
		}
	}
	if nodp <= 0 {
		return t.result()
	}

	nodp = clampPrecision[F](nodp)
	frac := uint64((f - F(ip)) * pow10[F](nodp))
	if !t.add(w.WriteString(".")) {
		return t.result()
	}
	for nodp > 1 && F(frac) < pow10[F](nodp-1) {
		if !t.add(w.writeZeros(1)) {
			return t.result()
		}
		nodp--
	}
	t.add(WriteInt(w, frac))
	return t.result()
}

func nonFinite[F Float](f F) bool {
	return math.IsNaN(float64(f)) || math.IsInf(float64(f), 0)
}

// writeNonFinite writes the name of a NaN or an infinity. The sign of an
// infinity is written by the caller.
func writeNonFinite[F Float](w *Writer, f F) (int, error) {
	if math.IsNaN(float64(f)) {
		return w.WriteString("NaN")
	}
	return w.WriteString("inf")
}
