// Package document defines an order-preserving in-memory model for
// decoded JSON values. Objects keep their members in document order,
// and numbers keep their source text, so a decode/encode round trip
// reproduces the input exactly (modulo whitespace).
package document

import "encoding/json"

// Kind identifies the JSON type of a Value.
type Kind int

// The six JSON value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase JSON type name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is one node of a decoded JSON document.
type Value interface {
	Kind() Kind
}

// Null is the JSON null literal.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number, holding the exact source text.
type Number string

// String is a JSON string.
type String string

// Array is an ordered sequence of values.
type Array []Value

// Member is a single key/value entry of an object.
type Member struct {
	Key   string
	Value Value
}

// Object is an ordered sequence of members. Key order matches the
// document; duplicate keys are preserved as-is.
type Object []Member

// Kind implementations.

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

// JSONNumber converts n to a json.Number for numeric interpretation.
func (n Number) JSONNumber() json.Number { return json.Number(n) }

// Get returns the value of the first member with the given key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}
