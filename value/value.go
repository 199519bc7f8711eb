// Package value defines the structured value type constructed by expanded
// JSON literals.
//
// A Value is a tagged variant over:
//   - null
//   - boolean
//   - 64-bit signed integer
//   - 64-bit float
//   - string
//   - list (ordered)
//   - object (insertion-ordered string map)
//
// Objects preserve the order keys were first inserted in; inserting an
// existing key overwrites its value but keeps its original position.
package value

import (
	"fmt"
	"reflect"
	"sort"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is one structured value. The zero Value is null.
type Value struct {
	kind     Kind
	boolVal  bool
	intVal   int64
	floatVal float64
	strVal   string
	listVal  []Value
	objVal   *Map
}

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, boolVal: b}
}

// Int returns an integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, intVal: i}
}

// Float returns a float value.
func Float(f float64) Value {
	return Value{kind: KindFloat, floatVal: f}
}

// String returns a string value.
func String(s string) Value {
	return Value{kind: KindString, strVal: s}
}

// List returns a list value holding elems in the given order.
func List(elems ...Value) Value {
	list := make([]Value, len(elems))
	copy(list, elems)
	return Value{kind: KindList, listVal: list}
}

// Field is one key/value entry of an object literal.
type Field struct {
	Key   string
	Value Value
}

// Pair builds a Field; it exists so generated object expressions read as
// value.Object(value.Pair("k", ...), ...).
func Pair(key string, v Value) Field {
	return Field{Key: key, Value: v}
}

// Object returns an object value built by inserting each field, in order,
// into a fresh insertion-ordered map. Duplicate keys follow map-insert
// semantics: the last write wins.
func Object(fields ...Field) Value {
	m := NewMap()
	for _, f := range fields {
		m.Set(f.Key, f.Value)
	}
	return Value{kind: KindObject, objVal: m}
}

// Kind returns the variant tag of the value.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether the value is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Bool returns the boolean payload; ok is false for non-boolean values.
func (v Value) Bool() (b bool, ok bool) {
	return v.boolVal, v.kind == KindBool
}

// Int returns the integer payload; ok is false for non-integer values.
func (v Value) Int() (i int64, ok bool) {
	return v.intVal, v.kind == KindInt
}

// Float returns the float payload; ok is false for non-float values.
func (v Value) Float() (f float64, ok bool) {
	return v.floatVal, v.kind == KindFloat
}

// Str returns the string payload; ok is false for non-string values.
func (v Value) Str() (s string, ok bool) {
	return v.strVal, v.kind == KindString
}

// Len returns the number of elements of a list or entries of an object,
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.listVal)
	case KindObject:
		return v.objVal.Len()
	}
	return 0
}

// Index returns the i-th element of a list value.
// It panics if the value is not a list or the index is out of range.
func (v Value) Index(i int) Value {
	if v.kind != KindList {
		panic(fmt.Sprintf("value: Index on %s value", v.kind))
	}
	return v.listVal[i]
}

// Get looks up a key in an object value; ok is false for missing keys and
// for non-object values.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	return v.objVal.Get(key)
}

// Keys returns an object's keys in insertion order, or nil for other kinds.
func (v Value) Keys() []string {
	if v.kind != KindObject {
		return nil
	}
	return v.objVal.Keys()
}

// Equal reports deep structural equality. Objects compare equal only when
// their keys are in the same insertion order.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == o.boolVal
	case KindInt:
		return v.intVal == o.intVal
	case KindFloat:
		return v.floatVal == o.floatVal
	case KindString:
		return v.strVal == o.strVal
	case KindList:
		if len(v.listVal) != len(o.listVal) {
			return false
		}
		for i := range v.listVal {
			if !v.listVal[i].Equal(o.listVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		vKeys, oKeys := v.objVal.Keys(), o.objVal.Keys()
		if len(vKeys) != len(oKeys) {
			return false
		}
		for i, key := range vKeys {
			if key != oKeys[i] {
				return false
			}
			ve, _ := v.objVal.Get(key)
			oe, _ := o.objVal.Get(key)
			if !ve.Equal(oe) {
				return false
			}
		}
		return true
	}
	return false
}

// Map is an insertion-ordered mapping from string keys to Values.
type Map struct {
	keys    []string
	entries map[string]Value
}

// NewMap creates an empty ordered map.
func NewMap() *Map {
	return &Map{entries: make(map[string]Value)}
}

// Set inserts or overwrites a key. A key keeps the position of its first
// insertion.
func (m *Map) Set(key string, v Value) {
	if _, exists := m.entries[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// Get looks up a key.
func (m *Map) Get(key string) (Value, bool) {
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// From converts an arbitrary Go value into a Value. It is the conversion
// applied to escaped (parenthesized) expressions inside a literal.
//
// Supported inputs: nil, Value, Field-free scalars (bool, string, all
// integer and float types), slices and arrays of supported inputs, and maps
// with string keys. Map entries are inserted in sorted key order so the
// result is deterministic. From panics on unsupported types; escaped
// expressions are expected to produce convertible values.
func From(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case Value:
		return x
	case bool:
		return Bool(x)
	case string:
		return String(x)
	case int:
		return Int(int64(x))
	case int8:
		return Int(int64(x))
	case int16:
		return Int(int64(x))
	case int32:
		return Int(int64(x))
	case int64:
		return Int(x)
	case uint:
		return Int(int64(x))
	case uint8:
		return Int(int64(x))
	case uint16:
		return Int(int64(x))
	case uint32:
		return Int(int64(x))
	case uint64:
		if x > 1<<63-1 {
			panic(fmt.Sprintf("value: uint64 %d overflows int64", x))
		}
		return Int(int64(x))
	case float32:
		return Float(float64(x))
	case float64:
		return Float(x)
	case []any:
		elems := make([]Value, len(x))
		for i, e := range x {
			elems[i] = From(e)
		}
		return List(elems...)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			m.Set(k, From(x[k]))
		}
		return Value{kind: KindObject, objVal: m}
	}
	return fromReflect(reflect.ValueOf(v))
}

// fromReflect handles slice, array, map and pointer shapes the type switch
// in From does not name, e.g. []string or map[string]int.
func fromReflect(rv reflect.Value) Value {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null()
		}
		return From(rv.Elem().Interface())
	case reflect.Slice, reflect.Array:
		elems := make([]Value, rv.Len())
		for i := range elems {
			elems[i] = From(rv.Index(i).Interface())
		}
		return List(elems...)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			panic(fmt.Sprintf("value: cannot convert map with %s keys", rv.Type().Key()))
		}
		keys := make([]string, 0, rv.Len())
		for _, k := range rv.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			m.Set(k, From(rv.MapIndex(reflect.ValueOf(k)).Interface()))
		}
		return Value{kind: KindObject, objVal: m}
	}
	panic(fmt.Sprintf("value: cannot convert %s to a structured value", rv.Type()))
}
