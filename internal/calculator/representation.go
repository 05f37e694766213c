package calculator

import (
	"fmt"
	"strings"
)

// Representation identifies one of the numeric types the universal
// dispatcher supports.
type Representation int

const (
	Int32 Representation = iota
	Float32
	Float64
	Decimal64
	Int64
)

var representationNames = map[Representation]string{
	Int32:     "int",
	Float32:   "float",
	Float64:   "double",
	Decimal64: "decimal",
	Int64:     "long",
}

// Symbol tables per representation, in display order.
var (
	basicSymbols   = []string{"+", "-", "*", "/"}
	floatSymbols   = []string{"+", "-", "*", "/", "%"}
	integerSymbols = []string{"+", "-", "*", "/", "%", "^"}
)

// String returns the representation's canonical name.
func (r Representation) String() string {
	if name, ok := representationNames[r]; ok {
		return name
	}
	return "unknown"
}

// Operations returns the symbols supported by the representation.
func (r Representation) Operations() []string {
	return SupportedOperations(r.String())
}

// ParseRepresentation resolves a type name case-insensitively. Both the
// canonical names (int, float, double, decimal, long) and Go names
// (int32, float32, float64, int64) are accepted.
func ParseRepresentation(name string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "int", "int32":
		return Int32, nil
	case "float", "float32":
		return Float32, nil
	case "double", "float64":
		return Float64, nil
	case "decimal", "decimal64":
		return Decimal64, nil
	case "long", "int64":
		return Int64, nil
	default:
		return 0, fmt.Errorf("%w: unknown representation: %q", ErrInvalidArgument, name)
	}
}

// SupportedOperations returns the symbol list for a named representation.
// Unrecognized names get the basic four operations.
func SupportedOperations(typeName string) []string {
	var symbols []string
	switch strings.ToLower(typeName) {
	case "decimal":
		symbols = basicSymbols
	case "float":
		symbols = floatSymbols
	case "int", "long", "double":
		symbols = integerSymbols
	default:
		symbols = basicSymbols
	}
	return append([]string(nil), symbols...)
}
