package valfmt

import (
	"fmt"
	"sort"
	"strconv"
)

// Kind identifies the active variant of a [Value].
type Kind int

const (
	KindNull Kind = iota
	KindObject
	KindArray
	KindDouble
	KindInt
	KindString
)

// String returns the kind name as it appears in error messages and tree
// labels.
func (k Kind) String() string {
	switch k {
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindDouble:
		return "double"
	case KindInt:
		return "int"
	case KindString:
		return "string"
	default:
		return "null"
	}
}

// Value is an immutable JSON-like value: an object, array, double, int,
// string, or null. The zero Value is Null. Accessors fail loudly when the
// active kind does not support the operation; a missing object field is a
// distinct failure from an explicit null.
type Value struct {
	kind Kind
	obj  map[string]Value
	arr  []Value
	num  float64
	i64  int64
	str  string
}

// Null is the absence-of-value marker. Distinct from a missing object field,
// which [Value.Field] reports as [ErrMissingKey].
var Null = Value{}

// Object constructs an object Value. The fields map is copied.
func Object(fields map[string]Value) Value {
	m := make(map[string]Value, len(fields))
	for k, v := range fields {
		m[k] = v
	}
	return Value{kind: KindObject, obj: m}
}

// Array constructs an array Value. The items slice is copied.
func Array(items []Value) Value {
	a := make([]Value, len(items))
	copy(a, items)
	return Value{kind: KindArray, arr: a}
}

// Double constructs a double Value.
func Double(d float64) Value { return Value{kind: KindDouble, num: d} }

// Int constructs an int Value.
func Int(i int64) Value { return Value{kind: KindInt, i64: i} }

// String constructs a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the Null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

func (v Value) mismatch(op string, want Kind) error {
	return fmt.Errorf("%w: %s requires %s, got %s", ErrTypeMismatch, op, want, v.kind)
}

// Field returns the named object field. It fails with [ErrTypeMismatch] on a
// non-object and [ErrMissingKey] when the field is absent.
func (v Value) Field(name string) (Value, error) {
	if v.kind != KindObject {
		return Value{}, v.mismatch(fmt.Sprintf("field %q", name), KindObject)
	}
	f, ok := v.obj[name]
	if !ok {
		return Value{}, fmt.Errorf("%w: %q", ErrMissingKey, name)
	}
	return f, nil
}

// Lookup returns the named object field and whether it was present. Unlike
// [Value.Field], an absent field is not an error; a non-object still fails
// with [ErrTypeMismatch].
func (v Value) Lookup(name string) (Value, bool, error) {
	if v.kind != KindObject {
		return Value{}, false, v.mismatch(fmt.Sprintf("lookup %q", name), KindObject)
	}
	f, ok := v.obj[name]
	return f, ok, nil
}

// Index returns the i-th array element. It fails with [ErrTypeMismatch] on a
// non-array and [ErrIndexOutOfRange] when i is outside [0, Len).
func (v Value) Index(i int) (Value, error) {
	if v.kind != KindArray {
		return Value{}, v.mismatch(fmt.Sprintf("index %d", i), KindArray)
	}
	if i < 0 || i >= len(v.arr) {
		return Value{}, fmt.Errorf("%w: index %d on array of length %d", ErrIndexOutOfRange, i, len(v.arr))
	}
	return v.arr[i], nil
}

// Len returns the number of array elements or object fields, and 0 for
// scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Keys returns the object's field names in sorted order, giving renderers a
// stable iteration order. Non-objects return nil.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	keys := make([]string, 0, len(v.obj))
	for k := range v.obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// AsObject returns the object's fields as a fresh map.
func (v Value) AsObject() (map[string]Value, error) {
	if v.kind != KindObject {
		return nil, v.mismatch("asObject", KindObject)
	}
	m := make(map[string]Value, len(v.obj))
	for k, f := range v.obj {
		m[k] = f
	}
	return m, nil
}

// AsArray returns the array's elements as a fresh slice.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, v.mismatch("asArray", KindArray)
	}
	a := make([]Value, len(v.arr))
	copy(a, v.arr)
	return a, nil
}

// AsDouble returns the float64 payload. There is no implicit widening: an
// int Value fails with [ErrTypeMismatch]; convert explicitly if needed.
func (v Value) AsDouble() (float64, error) {
	if v.kind != KindDouble {
		return 0, v.mismatch("asDouble", KindDouble)
	}
	return v.num, nil
}

// AsInt returns the int64 payload.
func (v Value) AsInt() (int64, error) {
	if v.kind != KindInt {
		return 0, v.mismatch("asInt", KindInt)
	}
	return v.i64, nil
}

// AsString returns the string payload.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch("asString", KindString)
	}
	return v.str, nil
}

// String implements [fmt.Stringer]: scalars stringify to their payload,
// containers to their kind name.
func (v Value) String() string {
	switch v.kind {
	case KindDouble:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindInt:
		return strconv.FormatInt(v.i64, 10)
	case KindString:
		return v.str
	default:
		return v.kind.String()
	}
}

// native lowers v to plain Go values for encoders that work on any.
func (v Value) native() any {
	switch v.kind {
	case KindObject:
		m := make(map[string]any, len(v.obj))
		for k, f := range v.obj {
			m[k] = f.native()
		}
		return m
	case KindArray:
		a := make([]any, len(v.arr))
		for i, e := range v.arr {
			a[i] = e.native()
		}
		return a
	case KindDouble:
		return v.num
	case KindInt:
		return v.i64
	case KindString:
		return v.str
	default:
		return nil
	}
}
