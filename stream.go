package serialwrite

import "iter"

// WriteSeq writes the values of seq as a slice, in the same framing as
// [WriteSlice], as they arrive. It stops pulling from seq at the first
// failed write.
func WriteSeq[T any](w *Writer, seq iter.Seq[T], each func(*Writer, T) (int, error)) (int, error) {
	var t tally
	if !t.add(w.WriteString(w.cfg.SliceOpen)) {
		return t.result()
	}
	for v := range seq {
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

// WriteChan writes values received from ch until it is closed.
// It is a thin wrapper around [WriteSeq]. On a failed write the remaining
// values are left in ch.
func WriteChan[T any](w *Writer, ch <-chan T, each func(*Writer, T) (int, error)) (int, error) {
	return WriteSeq(w, chanToSeq(ch), each)
}

func chanToSeq[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}
