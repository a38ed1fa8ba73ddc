// Package value implements the tagged Value union that expression
// evaluation produces, grounded on the teacher repo's NodeType enum
// (internal/core/types.go) generalized from "JSON node kind" to "computed
// expression result".
package value

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Kind enumerates the possible shapes of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindDateTime
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "bool"
	case KindDateTime:
		return "datetime"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is the result of evaluating an expression node. Only the field(s)
// matching Kind are meaningful.
type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	t    time.Time
	arr  []Value
	obj  map[string]Value
}

// Null is the single canonical null value.
var Null = Value{kind: KindNull}

// String constructs a Value holding UTF-8 text.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number constructs a Value holding an IEEE-754 binary64.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Bool constructs a Value holding a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// DateTime constructs a Value holding an absolute instant. It is always
// normalized to UTC since the expression language does not preserve the
// original time-zone of a parsed timestamp.
func DateTime(t time.Time) Value { return Value{kind: KindDateTime, t: t.UTC()} }

// Array constructs a Value holding an ordered sequence of elements. A nil
// slice is treated the same as an empty one.
func Array(elems []Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// Object constructs a Value holding a key/value mapping. A nil map is
// treated the same as an empty one.
func Object(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{kind: KindObject, obj: fields}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }

// AsString returns the underlying text and whether v is a String.
func (v Value) AsString() (string, bool) { return v.str, v.kind == KindString }

// AsNumber returns the underlying float and whether v is a Number.
func (v Value) AsNumber() (float64, bool) { return v.num, v.kind == KindNumber }

// AsBool returns the underlying bool and whether v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsDateTime returns the underlying instant and whether v is a DateTime.
func (v Value) AsDateTime() (time.Time, bool) { return v.t, v.kind == KindDateTime }

// AsArray returns the underlying elements and whether v is an Array.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns the underlying fields and whether v is an Object.
func (v Value) AsObject() (map[string]Value, bool) { return v.obj, v.kind == KindObject }

// Equal implements the structural equality used throughout the evaluator
// (==, IN, CONTAINS, CONTAINS_ANY/CONTAINS_ALL on arrays): reflexive, symmetric,
// transitive, and false across mismatched kinds — including Null compared
// to any non-Null value.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindString:
		return v.str == other.str
	case KindNumber:
		return v.num == other.num
	case KindBool:
		return v.b == other.b
	case KindDateTime:
		return v.t.Equal(other.t)
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for k, ov := range v.obj {
			vv, ok := other.obj[k]
			if !ok || !vv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String renders a Value for error messages and the Display-style formatting
// the evaluator's error details use.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindString:
		return v.str
	case KindNumber:
		return formatNumber(v.num)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindDateTime:
		return v.t.Format(time.RFC3339)
	case KindArray:
		b, _ := json.Marshal(v)
		return string(b)
	case KindObject:
		b, _ := json.Marshal(v)
		return string(b)
	default:
		return "<invalid>"
	}
}

func formatNumber(n float64) string {
	return fmt.Sprintf("%v", n)
}

// MarshalJSON implements json.Marshaler. DateTime renders as an RFC-3339
// UTC string, matching the embedder-facing serialization the specification
// requires (§6.1).
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNull:
		return []byte("null"), nil
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindDateTime:
		return json.Marshal(v.t.UTC().Format(time.RFC3339))
	case KindArray:
		return json.Marshal(v.arr)
	case KindObject:
		// Sorted keys make the rendering deterministic, matching the
		// by-key comparison-determinism invariant from the spec (§3.2)
		// without forcing callers to rely on map iteration order.
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf := []byte{'{'}
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			kb, _ := json.Marshal(k)
			buf = append(buf, kb...)
			buf = append(buf, ':')
			vb, err := json.Marshal(v.obj[k])
			if err != nil {
				return nil, err
			}
			buf = append(buf, vb...)
		}
		buf = append(buf, '}')
		return buf, nil
	default:
		return nil, fmt.Errorf("value: cannot marshal kind %v", v.kind)
	}
}

// UnmarshalJSON implements json.Unmarshaler using the obvious JSON mapping:
// object, array, string, float64, bool and null. It never produces a
// DateTime — round-tripping a DateTime value re-parses as a String, which
// is the documented boundary of the "obvious mapping" in spec §6.1.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = FromInterface(raw)
	return nil
}

// FromInterface converts a generic decoded JSON value (as produced by
// encoding/json, with UseNumber not set) into a Value.
func FromInterface(raw interface{}) Value {
	switch x := raw.(type) {
	case nil:
		return Null
	case string:
		return String(x)
	case float64:
		return Number(x)
	case bool:
		return Bool(x)
	case []interface{}:
		elems := make([]Value, len(x))
		for i, e := range x {
			elems[i] = FromInterface(e)
		}
		return Array(elems)
	case map[string]interface{}:
		fields := make(map[string]Value, len(x))
		for k, e := range x {
			fields[k] = FromInterface(e)
		}
		return Object(fields)
	default:
		return Null
	}
}
