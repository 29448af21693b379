package serialwrite

// WriteSlice writes vs framed by the Writer's slice delimiters, formatting
// each element with each. With the default config the output is
//
//	"[ " + elem + ", " + elem + ", " + ... + "]"
//
// Every element, including the last, is followed by the separator.
func WriteSlice[T any](w *Writer, vs []T, each func(*Writer, T) (int, error)) (int, error) {
	var t tally
	if !t.add(w.WriteString(w.cfg.SliceOpen)) {
		return t.result()
	}
	for _, v := range vs {
		if !t.add(each(w, v)) {
			return t.result()
		}
		if !t.add(w.WriteString(w.cfg.SliceSep)) {
			return t.result()
		}
	}
	t.add(w.WriteString(w.cfg.SliceClose))
	return t.result()
}

// WriteInts writes an integer slice.
func WriteInts[T Integer](w *Writer, vs []T) (int, error) {
	return WriteSlice(w, vs, WriteInt[T])
}

// WriteFloats writes a float slice, each element with nodp fractional digits.
func WriteFloats[F Float](w *Writer, vs []F, nodp int) (int, error) {
	return WriteSlice(w, vs, func(w *Writer, v F) (int, error) {
		return WriteFloat(w, v, nodp)
	})
}

// WriteExps writes a float slice in exponential notation.
func WriteExps[F Float](w *Writer, vs []F, nodp int) (int, error) {
	return WriteSlice(w, vs, func(w *Writer, v F) (int, error) {
		return WriteExp(w, v, nodp)
	})
}
