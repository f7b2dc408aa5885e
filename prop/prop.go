// Package prop implements OpenFX property sets: named collections of typed,
// multi-component properties addressed by name and component index.
package prop

import (
	"fmt"

	"github.com/nweston/openfx-runner/suite"
)

// ValueKind identifies the type of a property component
type ValueKind int

const (
	KindUnset ValueKind = iota
	KindPointer
	KindString
	KindDouble
	KindInt
)

// String returns the kind name
func (k ValueKind) String() string {
	switch k {
	case KindUnset:
		return "unset"
	case KindPointer:
		return "pointer"
	case KindString:
		return "string"
	case KindDouble:
		return "double"
	case KindInt:
		return "int"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(k))
	}
}

// Value is one property component. Exactly the field matching Kind is
// meaningful.
type Value struct {
	Kind ValueKind
	Ptr  interface{}
	Str  string
	Num  float64
	Int  int
}

// Pointer wraps a pointer component
func Pointer(p interface{}) Value { return Value{Kind: KindPointer, Ptr: p} }

// String wraps a string component
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Double wraps a double component
func Double(d float64) Value { return Value{Kind: KindDouble, Num: d} }

// Int wraps an int component
func Int(i int) Value { return Value{Kind: KindInt, Int: i} }

// Set is a named property set. The name only serves diagnostics.
type Set struct {
	Name   string
	values map[string][]Value
}

// NewSet creates a property set seeded with the given properties
func NewSet(name string, seed map[string][]Value) *Set {
	values := make(map[string][]Value, len(seed))
	for k, v := range seed {
		values[k] = append([]Value(nil), v...)
	}
	return &Set{Name: name, values: values}
}

// Has returns true if the property exists at any dimension
func (s *Set) Has(name string) bool {
	_, ok := s.values[name]
	return ok
}

// Dimension returns the component count of a property, or StatusErrUnknown
// if the property does not exist.
func (s *Set) Dimension(name string) (int, suite.Status) {
	values, ok := s.values[name]
	if !ok {
		return 0, suite.StatusErrUnknown
	}
	return len(values), suite.StatusOK
}

// SetValue stores v at the given component index, growing the property with
// unset components as needed. Negative indices report StatusErrBadIndex.
func (s *Set) SetValue(name string, index int, v Value) suite.Status {
	if index < 0 {
		return suite.StatusErrBadIndex
	}
	values := s.values[name]
	for len(values) <= index {
		values = append(values, Value{Kind: KindUnset})
	}
	values[index] = v
	s.values[name] = values
	return suite.StatusOK
}

// Get returns the component at index. Missing properties report
// StatusErrUnknown, out-of-range indices StatusErrBadIndex.
func (s *Set) Get(name string, index int) (Value, suite.Status) {
	values, ok := s.values[name]
	if !ok {
		return Value{}, suite.StatusErrUnknown
	}
	if index < 0 || index >= len(values) {
		return Value{}, suite.StatusErrBadIndex
	}
	return values[index], suite.StatusOK
}

// GetString returns the string component at index. A component of another
// kind, or an unset one, reports StatusErrUnknown.
func (s *Set) GetString(name string, index int) (string, suite.Status) {
	v, stat := s.Get(name, index)
	if stat != suite.StatusOK {
		return "", stat
	}
	if v.Kind != KindString {
		return "", suite.StatusErrUnknown
	}
	return v.Str, suite.StatusOK
}

// GetDouble returns the double component at index
func (s *Set) GetDouble(name string, index int) (float64, suite.Status) {
	v, stat := s.Get(name, index)
	if stat != suite.StatusOK {
		return 0, stat
	}
	if v.Kind != KindDouble {
		return 0, suite.StatusErrUnknown
	}
	return v.Num, suite.StatusOK
}

// GetInt returns the int component at index
func (s *Set) GetInt(name string, index int) (int, suite.Status) {
	v, stat := s.Get(name, index)
	if stat != suite.StatusOK {
		return 0, stat
	}
	if v.Kind != KindInt {
		return 0, suite.StatusErrUnknown
	}
	return v.Int, suite.StatusOK
}

// GetPointer returns the pointer component at index
func (s *Set) GetPointer(name string, index int) (interface{}, suite.Status) {
	v, stat := s.Get(name, index)
	if stat != suite.StatusOK {
		return nil, stat
	}
	if v.Kind != KindPointer {
		return nil, suite.StatusErrUnknown
	}
	return v.Ptr, suite.StatusOK
}
