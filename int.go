package serialwrite

import "strconv"

// WriteInt writes v in base 10. Negative values carry a single leading '-'.
func WriteInt[T Integer](w *Writer, v T) (int, error) {
	var b []byte
	if v < 0 {
		b = strconv.AppendInt(w.buf[:0], int64(v), 10)
	} else {
		b = strconv.AppendUint(w.buf[:0], uint64(v), 10)
	}
	return w.emit(b)
}
