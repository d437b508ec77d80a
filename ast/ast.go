// Copyright (C) 2024 Alex Hofstead. All Rights Reserved.

// Package ast defines the tree representation of a JSON value, and a parser
// that constructs value trees from JSON source.
package ast

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies the variant of a Value.
type Kind byte

// Constants defining the six Value variants.
const (
	ObjectKind Kind = 1 + iota
	ArrayKind
	StringKind
	BoolKind
	NumberKind
	NullKind
)

var kindStr = [...]string{
	ObjectKind: "object",
	ArrayKind:  "array",
	StringKind: "string",
	BoolKind:   "boolean",
	NumberKind: "number",
	NullKind:   "null",
}

func (k Kind) String() string {
	v := int(k)
	if v == 0 || v >= len(kindStr) {
		return "invalid"
	}
	return kindStr[v]
}

// A Value is an arbitrary JSON value. A Value is one of Object, Array,
// String, Bool, Number, or Null.
type Value interface {
	Kind() Kind
	String() string
}

// An Object is an ordered collection of key-value members. Keys are not
// required to be unique; duplicate keys are preserved in order of
// appearance, and lookup by key resolves to the first match.
type Object []*Member

// Kind satisfies the Value interface.
func (Object) Kind() Kind { return ObjectKind }

// Find returns the first member of o with the given key, or nil.
func (o Object) Find(key string) *Member {
	if i := o.IndexKey(key); i >= 0 {
		return o[i]
	}
	return nil
}

// IndexKey returns the index of the first member of o with the given key,
// or -1.
func (o Object) IndexKey(key string) int {
	for i, m := range o {
		if m.Key == key {
			return i
		}
	}
	return -1
}

func (o Object) Len() int { return len(o) }

func (o Object) String() string { return fmt.Sprintf("Object(len=%d)", len(o)) }

// Sort sorts the members of o in ascending order by key.
func (o Object) Sort() {
	sort.SliceStable(o, func(i, j int) bool { return o[i].Key < o[j].Key })
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

func (m *Member) String() string { return fmt.Sprintf("Member(key=%q)", m.Key) }

// Field constructs an object member with the given key and value.
// The value must be a string, int, int64, float64, bool, nil, or Value.
func Field(key string, value any) *Member {
	return &Member{Key: key, Value: ToValue(value)}
}

// An Array is an ordered sequence of values.
type Array []Value

// Kind satisfies the Value interface.
func (Array) Kind() Kind { return ArrayKind }

func (a Array) Len() int { return len(a) }

func (a Array) String() string { return fmt.Sprintf("Array(len=%d)", len(a)) }

// A String is a string value. Its content is fully decoded: escape
// sequences and \uXXXX forms from the source are already resolved.
type String string

// Kind satisfies the Value interface.
func (String) Kind() Kind { return StringKind }

func (s String) String() string { return strconv.Quote(string(s)) }

// A Bool is a Boolean constant, true or false.
type Bool bool

// Kind satisfies the Value interface.
func (Bool) Kind() Kind { return BoolKind }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

// A Number is a numeric value. All numbers are IEEE-754 doubles; the
// grammar cannot produce NaN or an infinity.
type Number float64

// Kind satisfies the Value interface.
func (Number) Kind() Kind { return NumberKind }

func (n Number) String() string { return strconv.FormatFloat(float64(n), 'g', -1, 64) }

// Float64 returns n as a plain float64.
func (n Number) Float64() float64 { return float64(n) }

// Null represents the null constant.
type Null struct{}

// Kind satisfies the Value interface.
func (Null) Kind() Kind { return NullKind }

func (Null) String() string { return "null" }

// AsObject returns the Object in v, or false if v is not an object.
func AsObject(v Value) (Object, bool) { o, ok := v.(Object); return o, ok }

// AsArray returns the Array in v, or false if v is not an array.
func AsArray(v Value) (Array, bool) { a, ok := v.(Array); return a, ok }

// AsString returns the text of v, or false if v is not a string.
func AsString(v Value) (string, bool) {
	s, ok := v.(String)
	return string(s), ok
}

// AsBool returns the truth value of v, or false if v is not a Boolean.
func AsBool(v Value) (bool, bool) {
	b, ok := v.(Bool)
	return bool(b), ok
}

// AsNumber returns the value of v as a float64, or false if v is not a
// number.
func AsNumber(v Value) (float64, bool) {
	n, ok := v.(Number)
	return float64(n), ok
}

// IsNull reports whether v is the null constant.
func IsNull(v Value) bool { _, ok := v.(Null); return ok }

// Equal reports whether a and b are structurally equal: the same variant
// with equal contents. Objects and arrays compare element-wise in order;
// duplicate object keys are significant.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch t := a.(type) {
	case Object:
		u, ok := b.(Object)
		if !ok || len(t) != len(u) {
			return false
		}
		for i, m := range t {
			if m.Key != u[i].Key || !Equal(m.Value, u[i].Value) {
				return false
			}
		}
		return true
	case Array:
		u, ok := b.(Array)
		if !ok || len(t) != len(u) {
			return false
		}
		for i, v := range t {
			if !Equal(v, u[i]) {
				return false
			}
		}
		return true
	case String:
		u, ok := b.(String)
		return ok && t == u
	case Bool:
		u, ok := b.(Bool)
		return ok && t == u
	case Number:
		u, ok := b.(Number)
		return ok && t == u
	case Null:
		return IsNull(b)
	default:
		return false
	}
}

// ToValue converts a string, int, int64, float64, bool, or nil into a
// Value. A Value is returned unchanged. It panics if v does not have one of
// those types.
func ToValue(v any) Value {
	switch t := v.(type) {
	case Value:
		return t
	case string:
		return String(t)
	case int:
		return Number(t)
	case int64:
		return Number(t)
	case float64:
		return Number(t)
	case bool:
		return Bool(t)
	case nil:
		return Null{}
	default:
		panic(fmt.Sprintf("invalid value %T", v))
	}
}
