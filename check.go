package serialwrite

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Check describes one formatting call and the text it must produce.
//
// Values are decimal literals or one of the keywords "max" and "min", plus
// "epsilon" and "smallest" for float kinds. A non-empty Values list formats
// a slice; otherwise Value is formatted as a scalar.
type Check struct {
	Name      string   `yaml:"name" json:"name"`
	Kind      Kind     `yaml:"kind" json:"kind"`
	Notation  Notation `yaml:"notation,omitempty" json:"notation,omitempty"`
	Value     string   `yaml:"value,omitempty" json:"value,omitempty"`
	Values    []string `yaml:"values,omitempty" json:"values,omitempty"`
	Precision int      `yaml:"precision,omitempty" json:"precision,omitempty"`
	Line      bool     `yaml:"line,omitempty" json:"line,omitempty"`
	Want      string   `yaml:"want,omitempty" json:"want,omitempty"`
}

// Result is the outcome of running a [Check].
type Result struct {
	Check
	Got     string
	Written int
	Err     error
}

// Passed reports whether the check wrote its expected text without error.
// A check without an expectation passes when it writes without error.
func (r Result) Passed() bool {
	if r.Err != nil {
		return false
	}
	return r.Want == "" || r.Got == r.Want
}

// Validate reports whether c describes a call that can be made.
func (c Check) Validate() error {
	_, err := c.formatter()
	return err
}

// Run formats c into memory using a Writer configured with cfg.
func (c Check) Run(cfg Config) Result {
	res := Result{Check: c}
	var buf bytes.Buffer
	w, err := NewWithConfig(&buf, cfg)
	if err != nil {
		res.Err = err
		return res
	}
	write, err := c.formatter()
	if err != nil {
		res.Err = err
		return res
	}
	res.Written, res.Err = write(w)
	res.Got = buf.String()
	return res
}

// formatter resolves c into the Writer call it describes.
func (c Check) formatter() (func(*Writer) (int, error), error) {
	var (
		write func(*Writer) (int, error)
		err   error
	)
	switch c.Kind {
	case Int:
		write, err = intFormatter[int](c)
	case Int8:
		write, err = intFormatter[int8](c)
	case Int16:
		write, err = intFormatter[int16](c)
	case Int32:
		write, err = intFormatter[int32](c)
	case Int64:
		write, err = intFormatter[int64](c)
	case Uint:
		write, err = intFormatter[uint](c)
	case Uint8:
		write, err = intFormatter[uint8](c)
	case Uint16:
		write, err = intFormatter[uint16](c)
	case Uint32:
		write, err = intFormatter[uint32](c)
	case Uint64:
		write, err = intFormatter[uint64](c)
	case Float32:
		write, err = floatFormatter[float32](c)
	case Float64:
		write, err = floatFormatter[float64](c)
	default:
		return nil, fmt.Errorf("%w: %q in check %q", ErrUnknownKind, c.Kind, c.Name)
	}
	if err != nil {
		return nil, err
	}
	if c.Line {
		return func(w *Writer) (int, error) { return w.Ln(write(w)) }, nil
	}
	return write, nil
}

func intFormatter[T Integer](c Check) (func(*Writer) (int, error), error) {
	if c.Notation != "" && c.Notation != Fixed {
		return nil, fmt.Errorf("%w: check %q: notation %q applies to float kinds only", ErrInvalidValue, c.Name, c.Notation)
	}
	if len(c.Values) > 0 {
		vs, err := parseAll(c, parseInt[T])
		if err != nil {
			return nil, err
		}
		return func(w *Writer) (int, error) { return WriteInts(w, vs) }, nil
	}
	v, err := parseInt[T](c.Kind, c.Value)
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", c.Name, err)
	}
	return func(w *Writer) (int, error) { return WriteInt(w, v) }, nil
}

func floatFormatter[F Float](c Check) (func(*Writer) (int, error), error) {
	notation, err := ParseNotation(string(c.Notation))
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", c.Name, err)
	}
	nodp := c.Precision
	if len(c.Values) > 0 {
		vs, err := parseAll(c, parseFloat[F])
		if err != nil {
			return nil, err
		}
		if notation == Exponential {
			return func(w *Writer) (int, error) { return WriteExps(w, vs, nodp) }, nil
		}
		return func(w *Writer) (int, error) { return WriteFloats(w, vs, nodp) }, nil
	}
	v, err := parseFloat[F](c.Kind, c.Value)
	if err != nil {
		return nil, fmt.Errorf("check %q: %w", c.Name, err)
	}
	if notation == Exponential {
		return func(w *Writer) (int, error) { return WriteExp(w, v, nodp) }, nil
	}
	return func(w *Writer) (int, error) { return WriteFloat(w, v, nodp) }, nil
}

func parseAll[T any](c Check, parse func(Kind, string) (T, error)) ([]T, error) {
	vs := make([]T, len(c.Values))
	for i, s := range c.Values {
		v, err := parse(c.Kind, s)
		if err != nil {
			return nil, fmt.Errorf("check %q: values[%d]: %w", c.Name, i, err)
		}
		vs[i] = v
	}
	return vs, nil
}

func parseInt[T Integer](k Kind, s string) (T, error) {
	bits := k.Bits()
	if k.Signed() {
		max := int64(math.MaxInt64 >> (64 - bits))
		switch s {
		case "max":
			return T(max), nil
		case "min":
			return T(-max - 1), nil
		}
		v, err := strconv.ParseInt(s, 10, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q as %s", ErrInvalidValue, s, k)
		}
		return T(v), nil
	}
	switch s {
	case "max":
		return T(uint64(math.MaxUint64) >> (64 - bits)), nil
	case "min":
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q as %s", ErrInvalidValue, s, k)
	}
	return T(v), nil
}

func parseFloat[F Float](k Kind, s string) (F, error) {
	bits := k.Bits()
	if v, ok := floatLimit(bits, s); ok {
		return F(v), nil
	}
	v, err := strconv.ParseFloat(s, bits)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q as %s", ErrInvalidValue, s, k)
	}
	return F(v), nil
}

// floatLimit resolves the named limits of a float width.
func floatLimit(bits int, name string) (float64, bool) {
	wide := bits == 64
	switch name {
	case "max", "min":
		v := float64(math.MaxFloat32)
		if wide {
			v = math.MaxFloat64
		}
		if name == "min" {
			v = -v
		}
		return v, true
	case "epsilon":
		if wide {
			return 0x1p-52, true
		}
		return 0x1p-23, true
	case "smallest":
		if wide {
			return math.SmallestNonzeroFloat64, true
		}
		return math.SmallestNonzeroFloat32, true
	}
	return 0, false
}

// Plan is a set of checks and the config they run under.
type Plan struct {
	Config Config  `yaml:"config"`
	Checks []Check `yaml:"checks"`
}

// LoadPlan decodes a YAML plan from r and validates every check.
// Config fields missing from the document keep their [DefaultConfig] values.
func LoadPlan(r io.Reader) (Plan, error) {
	p := Plan{Config: DefaultConfig()}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Plan{}, fmt.Errorf("decode plan: %w", err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}
	return p, nil
}

// Validate reports the first invalid config field or check in p.
func (p Plan) Validate() error {
	if err := p.Config.Validate(); err != nil {
		return err
	}
	for _, c := range p.Checks {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Run runs every check in p.
func (p Plan) Run() []Result {
	results := make([]Result, len(p.Checks))
	for i, c := range p.Checks {
		results[i] = c.Run(p.Config)
	}
	return results
}

// BoundaryPlan returns checks for the limits of every supported width and
// for the documented truncation and padding behavior.
func BoundaryPlan() Plan {
	f64Max := "1797693134862315776" + strings.Repeat("0", 290) + ".0"
	f32Max := "34028235612225536" + strings.Repeat("0", 22) + ".0"
	return Plan{
		Config: DefaultConfig(),
		Checks: []Check{
			{Name: "int8 max", Kind: Int8, Value: "max", Want: "127"},
			{Name: "int8 min", Kind: Int8, Value: "min", Want: "-128"},
			{Name: "int16 max", Kind: Int16, Value: "max", Want: "32767"},
			{Name: "int16 min", Kind: Int16, Value: "min", Want: "-32768"},
			{Name: "int32 max", Kind: Int32, Value: "max", Want: "2147483647"},
			{Name: "int32 min", Kind: Int32, Value: "min", Want: "-2147483648"},
			{Name: "int64 max", Kind: Int64, Value: "max", Want: "9223372036854775807"},
			{Name: "int64 min", Kind: Int64, Value: "min", Want: "-9223372036854775808"},
			{Name: "int max", Kind: Int, Value: "max", Want: strconv.Itoa(math.MaxInt)},
			{Name: "int min", Kind: Int, Value: "min", Want: strconv.Itoa(math.MinInt)},
			{Name: "uint8 max", Kind: Uint8, Value: "max", Want: "255"},
			{Name: "uint8 min", Kind: Uint8, Value: "min", Want: "0"},
			{Name: "uint16 max", Kind: Uint16, Value: "max", Want: "65535"},
			{Name: "uint32 max", Kind: Uint32, Value: "max", Want: "4294967295"},
			{Name: "uint64 max", Kind: Uint64, Value: "max", Want: "18446744073709551615"},
			{Name: "uint64 min", Kind: Uint64, Value: "min", Want: "0"},
			{Name: "uint max", Kind: Uint, Value: "max", Want: strconv.FormatUint(math.MaxUint, 10)},
			{Name: "float32 max", Kind: Float32, Value: "max", Precision: 1, Want: f32Max},
			{Name: "float32 min", Kind: Float32, Value: "min", Precision: 1, Want: "-" + f32Max},
			{Name: "float32 epsilon", Kind: Float32, Value: "epsilon", Precision: 7, Want: "0.0000001"},
			{Name: "float64 max", Kind: Float64, Value: "max", Precision: 1, Want: f64Max},
			{Name: "float64 min", Kind: Float64, Value: "min", Precision: 1, Want: "-" + f64Max},
			{Name: "float64 epsilon", Kind: Float64, Value: "epsilon", Precision: 15, Want: "0.000000000000000"},
			{Name: "truncate", Kind: Float32, Value: "12.345", Precision: 2, Want: "12.34"},
			{Name: "pad", Kind: Float32, Value: "12.345", Precision: 4, Want: "12.3450"},
			{Name: "clamp", Kind: Float64, Value: "0.25", Precision: 30, Want: "0.250000000000000"},
			{Name: "exp", Kind: Float64, Notation: Exponential, Value: "12.345", Precision: 2, Want: " 1.23e001"},
			{Name: "exp negative", Kind: Float64, Notation: Exponential, Value: "-0.5", Precision: 1, Want: "-5.0e-001"},
			{
				Name: "exp slice", Kind: Float64, Notation: Exponential,
				Values: []string{"1.23", "-2.34", "3.45"}, Precision: 1,
				Want: "[  1.2e000, -2.3e000,  3.4e000, ]",
			},
			{Name: "line", Kind: Int8, Values: []string{"1", "-2"}, Line: true, Want: "[ 1, -2, ]\r\n"},
		},
	}
}

// WriteTranscript streams every check of p through w, one line each:
//
//	int8 max: 127 (3 bytes).
//
// A check whose value fails to write is noted as "(error; n bytes)." and the
// transcript continues; only a failure to write the transcript's own text
// stops it. Checks are validated before anything is written.
func WriteTranscript(w *Writer, p Plan) (int, error) {
	writes := make([]func(*Writer) (int, error), len(p.Checks))
	for i, c := range p.Checks {
		write, err := c.formatter()
		if err != nil {
			return 0, err
		}
		writes[i] = write
	}
	var t tally
	for i, c := range p.Checks {
		if !t.add(w.WriteString(c.Name)) || !t.add(w.WriteString(": ")) {
			return t.result()
		}
		n, err := writes[i](w)
		t.n += n
		note := " ("
		if err != nil {
			note = " (error; "
		}
		if !t.add(w.WriteString(note)) ||
			!t.add(WriteInt(w, n)) ||
			!t.add(w.WritelnString(" bytes).")) {
			return t.result()
		}
	}
	return t.result()
}
