package serialwrite

import (
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Notation selects how a float is written.
type Notation string

const (
	Fixed       Notation = "fixed"
	Exponential Notation = "exp"
)

// String returns the notation name.
func (n Notation) String() string { return string(n) }

// ParseNotation parses a notation name. The empty string means [Fixed].
func ParseNotation(s string) (Notation, error) {
	switch Notation(s) {
	case "", Fixed:
		return Fixed, nil
	case Exponential:
		return Exponential, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownNotation, s)
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (n *Notation) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseNotation(node.Value)
	if err != nil {
		return err
	}
	*n = v
	return nil
}

// Kind names a Go numeric type a check formats its values as.
type Kind string

const (
	Int     Kind = "int"
	Int8    Kind = "int8"
	Int16   Kind = "int16"
	Int32   Kind = "int32"
	Int64   Kind = "int64"
	Uint    Kind = "uint"
	Uint8   Kind = "uint8"
	Uint16  Kind = "uint16"
	Uint32  Kind = "uint32"
	Uint64  Kind = "uint64"
	Float32 Kind = "float32"
	Float64 Kind = "float64"
)

var kinds = []Kind{
	Int, Int8, Int16, Int32, Int64,
	Uint, Uint8, Uint16, Uint32, Uint64,
	Float32, Float64,
}

// String returns the kind name.
func (k Kind) String() string { return string(k) }

// Kinds returns all supported kinds.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind parses a kind name.
func ParseKind(s string) (Kind, error) {
	for _, k := range kinds {
		if string(k) == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	v, err := ParseKind(node.Value)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// IsFloat reports whether k is a floating-point kind.
func (k Kind) IsFloat() bool { return k == Float32 || k == Float64 }

// Bits returns the bit width of k.
func (k Kind) Bits() int {
	switch k {
	case Int8, Uint8:
		return 8
	case Int16, Uint16:
		return 16
	case Int32, Uint32, Float32:
		return 32
	case Int, Uint:
		return strconv.IntSize
	default:
		return 64
	}
}

// Signed reports whether k holds negative values.
func (k Kind) Signed() bool {
	switch k {
	case Uint, Uint8, Uint16, Uint32, Uint64:
		return false
	}
	return true
}
