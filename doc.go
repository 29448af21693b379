// Package serialwrite writes integers and floats as ASCII text to a byte
// sink without allocating.
//
// It targets links where memory is tight and a write can be partial or fail
// halfway through a value, such as a USB serial port. A [Writer] owns one
// small scratch buffer and is bound to an [io.Writer] sink. Every call writes
// its text in pieces straight to the sink and returns the number of bytes
// written.
//
//	w := serialwrite.New(port)
//	serialwrite.WriteInt(w, int16(-300))          // "-300"
//	serialwrite.WriteFloat(w, float32(12.345), 2) // "12.34"
//	serialwrite.WriteExp(w, 12.345, 2)            // " 1.23e001"
//	serialwrite.WriteInts(w, []uint8{1, 2})       // "[ 1, 2, ]"
//	serialwrite.WritelnFloat(w, 0.5, 3)           // "0.500\r\n"
//
// # Floats
//
// [WriteFloat] truncates to the requested number of fractional digits; it
// never rounds. The precision is clamped to [MaxPrecision]: 7 digits for
// float32 and 15 for float64. Values too large for a uint64 integer part are
// written as their leading digits followed by zeros.
//
// [WriteExp] writes a sign column ('-' or a space) so that mixed-sign columns
// line up, a mantissa in [1, 10) and an exponent zero-padded to three digits.
//
// # Errors
//
// The only failure is a sink error, which is returned unchanged together
// with the bytes written by the steps that completed before it. This holds
// through every composite call: a slice of floats that fails on its third
// element reports the bytes of the opening bracket and the first two
// elements. A short write is not an error; its count is reported as-is and
// nothing is retried.
//
// # Self-checks
//
// A [Plan] lists [Check] values, each naming a kind, a value and the text it
// must produce. [BoundaryPlan] covers the limits of every width. Results
// render through [WriteReport] as a table, TSV, YAML or JSON Lines, and
// [WriteTranscript] streams them through a Writer the way a device would
// print them. The serialcheck command runs plans from the command line.
//
// The package exports sentinel errors for plan and config handling:
//
//   - [ErrInvalidConfig]: a config field is empty, non-ASCII or malformed
//   - [ErrUnknownKind]: unknown kind name
//   - [ErrUnknownNotation]: unknown notation name
//   - [ErrInvalidValue]: a check value does not parse as its kind
//   - [ErrUnsupportedReport]: unknown report format or border style
package serialwrite
