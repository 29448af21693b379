package serialwrite

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config controls the literal text a Writer emits around numbers.
type Config struct {
	// LineEnding terminates lines written by the Writeln family.
	LineEnding string `yaml:"line_ending" json:"line_ending"`
	// ExpMarker separates mantissa and exponent. Exactly one byte.
	ExpMarker  string `yaml:"exp_marker" json:"exp_marker"`
	SliceOpen  string `yaml:"slice_open" json:"slice_open"`
	SliceSep   string `yaml:"slice_sep" json:"slice_sep"`
	SliceClose string `yaml:"slice_close" json:"slice_close"`
}

// DefaultConfig returns the config used by [New]: CRLF line endings, 'e'
// exponent marker and "[ ", ", ", "]" slice framing.
func DefaultConfig() Config {
	return Config{
		LineEnding: "\r\n",
		ExpMarker:  "e",
		SliceOpen:  "[ ",
		SliceSep:   ", ",
		SliceClose: "]",
	}
}

// Validate reports whether c can be used by a Writer.
func (c Config) Validate() error {
	if c.LineEnding == "" {
		return fmt.Errorf("%w: line_ending is empty", ErrInvalidConfig)
	}
	if len(c.ExpMarker) != 1 {
		return fmt.Errorf("%w: exp_marker %q must be a single byte", ErrInvalidConfig, c.ExpMarker)
	}
	fields := []struct {
		name, value string
	}{
		{"line_ending", c.LineEnding},
		{"exp_marker", c.ExpMarker},
		{"slice_open", c.SliceOpen},
		{"slice_sep", c.SliceSep},
		{"slice_close", c.SliceClose},
	}
	for _, f := range fields {
		if !isASCII(f.value) {
			return fmt.Errorf("%w: %s %q is not ASCII", ErrInvalidConfig, f.name, f.value)
		}
	}
	return nil
}

// LoadConfig decodes a YAML config from r. Fields missing from the document
// keep their [DefaultConfig] values; unknown fields are rejected.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
