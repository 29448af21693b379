package serialwrite

// Ln terminates the line of a completed write. It takes the results of
// another Writer call directly:
//
//	n, err := w.Ln(serialwrite.WriteFloat(w, v, 2))
//
// A failed call is returned untouched and nothing more is written. If the
// terminator itself fails, its error is returned with n.
func (w *Writer) Ln(n int, err error) (int, error) {
	if err != nil {
		return n, err
	}
	m, err := w.WriteString(w.cfg.LineEnding)
	return n + m, err
}

// Writeln writes a line terminator.
func (w *Writer) Writeln() (int, error) {
	return w.WriteString(w.cfg.LineEnding)
}

// WritelnString writes s followed by a line terminator.
func (w *Writer) WritelnString(s string) (int, error) {
	return w.Ln(w.WriteString(s))
}

// WritelnInt writes v followed by a line terminator.
func WritelnInt[T Integer](w *Writer, v T) (int, error) {
	return w.Ln(WriteInt(w, v))
}

// WritelnFloat writes v in fixed-point notation followed by a line terminator.
func WritelnFloat[F Float](w *Writer, v F, nodp int) (int, error) {
	return w.Ln(WriteFloat(w, v, nodp))
}

// WritelnExp writes v in exponential notation followed by a line terminator.
func WritelnExp[F Float](w *Writer, v F, nodp int) (int, error) {
	return w.Ln(WriteExp(w, v, nodp))
}

// WritelnInts writes an integer slice followed by a line terminator.
func WritelnInts[T Integer](w *Writer, vs []T) (int, error) {
	return w.Ln(WriteInts(w, vs))
}

// WritelnFloats writes a float slice followed by a line terminator.
func WritelnFloats[F Float](w *Writer, vs []F, nodp int) (int, error) {
	return w.Ln(WriteFloats(w, vs, nodp))
}

// WritelnExps writes a float slice in exponential notation followed by a
// line terminator.
func WritelnExps[F Float](w *Writer, vs []F, nodp int) (int, error) {
	return w.Ln(WriteExps(w, vs, nodp))
}
