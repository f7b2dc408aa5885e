// Package param implements the host-side parameter store: typed parameter
// values created from descriptors, addressed through opaque handles, and
// exposed to the dispatch layer through fixed-arity accessors.
package param

import (
	"fmt"

	"github.com/nweston/openfx-runner/suite"
)

// Kind identifies a parameter's value type
type Kind int

const (
	KindBoolean Kind = iota
	KindChoice
	KindCustom
	KindDouble
	KindDouble2D
	KindDouble3D
	KindGroup
	KindInteger
	KindInteger2D
	KindInteger3D
	KindPage
	KindParametric
	KindPushButton
	KindRGB
	KindRGBA
	KindString
)

var kindTags = map[Kind]string{
	KindBoolean:    suite.ParamTypeBoolean,
	KindChoice:     suite.ParamTypeChoice,
	KindCustom:     suite.ParamTypeCustom,
	KindDouble:     suite.ParamTypeDouble,
	KindDouble2D:   suite.ParamTypeDouble2D,
	KindDouble3D:   suite.ParamTypeDouble3D,
	KindGroup:      suite.ParamTypeGroup,
	KindInteger:    suite.ParamTypeInteger,
	KindInteger2D:  suite.ParamTypeInteger2D,
	KindInteger3D:  suite.ParamTypeInteger3D,
	KindPage:       suite.ParamTypePage,
	KindParametric: suite.ParamTypeParametric,
	KindPushButton: suite.ParamTypePushButton,
	KindRGB:        suite.ParamTypeRGB,
	KindRGBA:       suite.ParamTypeRGBA,
	KindString:     suite.ParamTypeString,
}

// TypeTag returns the OpenFX type tag for the kind
func (k Kind) TypeTag() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// Components returns the number of value components the kind carries
func (k Kind) Components() int {
	return suite.ComponentCount(k.TypeTag())
}

// KindForType returns the Kind for an OpenFX type tag
func KindForType(tag string) (Kind, bool) {
	for k, t := range kindTags {
		if t == tag {
			return k, true
		}
	}
	return 0, false
}

// Value is a parameter value. Exactly the payload fields the Kind calls for
// are meaningful: Bool for boolean, Index for choice, Ints for the integer
// kinds, Doubles for the double and color kinds, Str for string and custom.
// Structural kinds (group, page, push button, parametric) carry no payload.
type Value struct {
	Kind    Kind
	Bool    bool
	Index   int
	Ints    []int
	Doubles []float64
	Str     string
}

// Boolean creates a boolean value
func Boolean(v bool) Value { return Value{Kind: KindBoolean, Bool: v} }

// Choice creates a choice value holding the selected option index
func Choice(index int) Value { return Value{Kind: KindChoice, Index: index} }

// Custom creates a custom (opaque text) value
func Custom(v string) Value { return Value{Kind: KindCustom, Str: v} }

// Double creates a 1D double value
func Double(v float64) Value { return Value{Kind: KindDouble, Doubles: []float64{v}} }

// Double2D creates a 2D double value
func Double2D(x, y float64) Value { return Value{Kind: KindDouble2D, Doubles: []float64{x, y}} }

// Double3D creates a 3D double value
func Double3D(x, y, z float64) Value {
	return Value{Kind: KindDouble3D, Doubles: []float64{x, y, z}}
}

// Group creates a group value
func Group() Value { return Value{Kind: KindGroup} }

// Integer creates a 1D integer value
func Integer(v int) Value { return Value{Kind: KindInteger, Ints: []int{v}} }

// Integer2D creates a 2D integer value
func Integer2D(x, y int) Value { return Value{Kind: KindInteger2D, Ints: []int{x, y}} }

// Integer3D creates a 3D integer value
func Integer3D(x, y, z int) Value { return Value{Kind: KindInteger3D, Ints: []int{x, y, z}} }

// Page creates a page value
func Page() Value { return Value{Kind: KindPage} }

// Parametric creates a parametric value
func Parametric() Value { return Value{Kind: KindParametric} }

// PushButton creates a push-button value
func PushButton() Value { return Value{Kind: KindPushButton} }

// RGB creates an RGB color value
func RGB(r, g, b float64) Value { return Value{Kind: KindRGB, Doubles: []float64{r, g, b}} }

// RGBA creates an RGBA color value
func RGBA(r, g, b, a float64) Value {
	return Value{Kind: KindRGBA, Doubles: []float64{r, g, b, a}}
}

// String creates a string value
func String(v string) Value { return Value{Kind: KindString, Str: v} }

// Components returns the value's component count
func (v Value) Components() int {
	return v.Kind.Components()
}
