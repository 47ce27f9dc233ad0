// Package json implements the JSON value model, parser and streaming
// writer used to decode request bodies and encode response bodies. It is
// deliberately not a full RFC 8259 implementation: numbers are
// integer-only (no fractions or exponents on parse, though values store a
// float64) and strings are not escape-processed on read or write.
package json

import "github.com/yourusername/emberd/pkg/emberd/byteview"

// Kind tags the variant a Value holds.
type Kind int

const (
	Null Kind = iota
	True
	False
	Number
	String
	Array
	Object
)

// Value is a tagged union over the JSON value kinds this package
// understands. Only one of Num, Str, Arr, Obj is meaningful, selected by
// Kind.
type Value struct {
	Kind Kind
	Num  float64
	Str  []byte
	Arr  []Value
	Obj  *ObjectMap
}

// Bool returns the boolean this value holds and whether Kind is True or
// False at all.
func (v Value) Bool() (bool, bool) {
	switch v.Kind {
	case True:
		return true, true
	case False:
		return false, true
	default:
		return false, false
	}
}

// String returns v.Str and whether Kind == String.
func (v Value) String() ([]byte, bool) {
	if v.Kind != String {
		return nil, false
	}
	return v.Str, true
}

// Float64 returns v.Num and whether Kind == Number.
func (v Value) Float64() (float64, bool) {
	if v.Kind != Number {
		return 0, false
	}
	return v.Num, true
}

// Array returns v.Arr and whether Kind == Array.
func (v Value) Array() ([]Value, bool) {
	if v.Kind != Array {
		return nil, false
	}
	return v.Arr, true
}

// Object returns v.Obj and whether Kind == Object.
func (v Value) Object() (*ObjectMap, bool) {
	if v.Kind != Object {
		return nil, false
	}
	return v.Obj, true
}

// EqualString reports whether v's string value equals s — a small helper
// for handlers that compare against literals without allocating.
func (v Value) EqualString(s string) bool {
	return v.Kind == String && byteview.EqualString(v.Str, s)
}
