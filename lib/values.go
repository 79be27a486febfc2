package lib

import (
	"math"
	"strconv"
	"strings"
)

type ValueType string

const (
	ValueTypeNumber ValueType = "number"
	ValueTypeNull   ValueType = "null"
)

// RuntimeValue is the result of evaluating a node. Values are never mutated
// after construction.
type RuntimeValue interface {
	Type() ValueType
	String() string
}

type NumberValue struct {
	Value float64
}

type NullValue struct{}

func (n NumberValue) Type() ValueType { return ValueTypeNumber }
func (n NullValue) Type() ValueType   { return ValueTypeNull }

func (n NullValue) String() string { return "null" }

// String formats the number the way the language has always printed it:
// integral values without a fraction, exponent form from 1e21 up and below
// 1e-6.
func (n NumberValue) String() string {
	v := n.Value
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case math.Abs(v) >= 1e21, v != 0 && math.Abs(v) < 1e-6:
		return trimExponent(strconv.FormatFloat(v, 'g', -1, 64))
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// trimExponent turns Go's two digit exponents ("1e-07") into "1e-7".
func trimExponent(s string) string {
	s = strings.Replace(s, "e-0", "e-", 1)
	return strings.Replace(s, "e+0", "e+", 1)
}
