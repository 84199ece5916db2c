// Package value holds the runtime representation of Lox values.
package value

import (
	"math"
	"strconv"
)

// Kind enumerates the runtime value categories.
type Kind int

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}
	return "unknown"
}

// Value is a tagged union over nil, booleans, numbers and strings.
// The zero Value is nil.
type Value struct {
	Kind Kind

	b bool
	n float64
	s string
}

// Nil is the nil value.
var Nil = Value{Kind: KindNil}

// True and False are the two boolean values.
var (
	True  = Bool(true)
	False = Bool(false)
)

// Bool constructs a boolean Value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, b: b}
}

// Number constructs a numeric Value.
func Number(n float64) Value {
	return Value{Kind: KindNumber, n: n}
}

// String constructs a text Value.
func String(s string) Value {
	return Value{Kind: KindString, s: s}
}

func (v Value) IsNil() bool { return v.Kind == KindNil }

// AsBool returns the boolean payload and whether v is a boolean.
func (v Value) AsBool() (bool, bool) { return v.b, v.Kind == KindBool }

// AsNumber returns the numeric payload and whether v is a number.
func (v Value) AsNumber() (float64, bool) { return v.n, v.Kind == KindNumber }

// AsString returns the text payload and whether v is a string.
func (v Value) AsString() (string, bool) { return v.s, v.Kind == KindString }

// Truthy reports whether v counts as true in a condition: only nil and false are falsy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.b
	}
	return true
}

// Equal reports whether v and o are the same kind and hold the same payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNil:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.n == o.n
	case KindString:
		return v.s == o.s
	}
	return false
}

// String returns the canonical text rendering, used by print and by
// string concatenation.
func (v Value) String() string {
	switch v.Kind {
	case KindNil:
		return "nil"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.n)
	case KindString:
		return v.s
	}
	return "<invalid>"
}

// formatNumber renders integral values without a fractional part.
func formatNumber(n float64) string {
	switch {
	case math.IsInf(n, 1):
		return "Infinity"
	case math.IsInf(n, -1):
		return "-Infinity"
	case math.IsNaN(n):
		return "NaN"
	}
	return strconv.FormatFloat(n, 'f', -1, 64)
}
