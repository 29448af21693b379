package serialwrite

// WriteExp writes v in exponential notation: a sign column ('-' or a space),
// a mantissa in [1, 10) with nodp fractional digits, the exponent marker and
// a three-digit exponent.
//
//	WriteExp(w, 12.345, 2)  //  " 1.23e001"
//	WriteExp(w, -0.5, 1)    //  "-5.0e-001"
//
// The mantissa is truncated like [WriteFloat]. Zero is written with a zero
// exponent. NaN and infinities are written by name after the sign column,
// without an exponent.
func WriteExp[F Float](w *Writer, v F, nodp int) (int, error) {
	var t tally
	f := v
	sign := " "
	if f < 0 {
		f = -f
		sign = "-"
	}
	if !t.add(w.WriteString(sign)) {
		return t.result()
	}
	if nonFinite(f) {
		t.add(writeNonFinite(w, f))
		return t.result()
	}

	exp := 0
	if f != 0 {
		for f >= 10 {
			exp++
			f /= 10
		}
		for f < 1 {
			exp--
			f *= 10
		}
	}

	if !t.add(WriteFloat(w, f, nodp)) {
		return t.result()
	}
	if !t.add(w.WriteString(w.cfg.ExpMarker)) {
		return t.result()
	}
	if exp < 0 {
		exp = -exp
		if !t.add(w.WriteString("-")) {
			return t.result()
		}
	}
	switch {
	case exp < 10:
		if !t.add(w.writeZeros(2)) {
			return t.result()
		}
	case exp < 100:
		if !t.add(w.writeZeros(1)) {
			return t.result()
		}
	}
	t.add(WriteInt(w, exp))
	return t.result()
}
