package serialwrite

import (
	"errors"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnknownKind       = errors.New("unknown kind")
	ErrUnknownNotation   = errors.New("unknown notation")
	ErrUnsupportedReport = errors.New("unsupported report format")
	ErrInvalidValue      = errors.New("invalid value")
)

// scratchSize holds the decimal digits of any 64-bit integer plus a sign.
const scratchSize = 20

// Integer is the set of integer types [WriteInt] accepts.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float is the set of floating-point types [WriteFloat] and [WriteExp] accept.
type Float interface {
	~float32 | ~float64
}

// Writer formats numbers into a sink without allocating.
//
// A Writer owns a small scratch buffer that every call overwrites, so a
// Writer must not be used from more than one goroutine at a time. Give each
// goroutine its own Writer instead of sharing one behind a lock.
type Writer struct {
	sink io.Writer
	cfg  Config
	buf  [scratchSize]byte
}

// New returns a Writer bound to sink using [DefaultConfig].
func New(sink io.Writer) *Writer {
	return &Writer{sink: sink, cfg: DefaultConfig()}
}

// NewWithConfig returns a Writer bound to sink using cfg.
func NewWithConfig(sink io.Writer, cfg Config) (*Writer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Writer{sink: sink, cfg: cfg}, nil
}

// Reset rebinds the Writer to a new sink, keeping its config.
func (w *Writer) Reset(sink io.Writer) {
	w.sink = sink
}

// Config returns the Writer's config.
func (w *Writer) Config() Config { return w.cfg }

// WriteString writes s to the sink and returns the bytes written.
func (w *Writer) WriteString(s string) (int, error) {
	if len(s) <= len(w.buf) {
		n := copy(w.buf[:], s)
		return w.emit(w.buf[:n])
	}
	n, err := io.WriteString(w.sink, s)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// emit hands p to the sink. A short write is not an error; the count of a
// failed write is dropped so callers only report completed sub-steps.
func (w *Writer) emit(p []byte) (int, error) {
	n, err := w.sink.Write(p)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// zeros backs the zero runs emitted by the float formatters.
const zeros = "0000000000000000000"

func (w *Writer) writeZeros(n int) (int, error) {
	return w.WriteString(zeros[:n])
}
