// Package suite adapts the variadic OpenFX parameter and message calling
// convention to a backend that only exposes fixed-arity entry points. The
// suite discovers per call how many slots (get path) or which machine type
// (set path) a parameter requires and forwards to the matching backend
// function; it never inspects handles or slot contents itself.
package suite

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/nweston/openfx-runner/handle"
)

// ParamBackend is the fixed-signature parameter store the dispatcher forwards
// to. Implementations own storage and handle resolution; the dispatcher owns
// only arity and type selection.
type ParamBackend interface {
	// ValueCount returns the number of value components behind p
	ValueCount(p handle.Handle) int

	// Fixed-arity getters, one per supported component count. Slots are
	// caller-supplied typed pointers the getter writes through, in
	// component order.
	GetValue1(p handle.Handle, v0 interface{}) Status
	GetValue2(p handle.Handle, v0, v1 interface{}) Status
	GetValue3(p handle.Handle, v0, v1, v2 interface{}) Status
	GetValue4(p handle.Handle, v0, v1, v2, v3 interface{}) Status

	// ParamType returns the type tag behind p
	ParamType(p handle.Handle) string

	// Fixed-type setters, one per settable type tag
	SetBoolean(p handle.Handle, value int)
	SetInteger(p handle.Handle, value int)
	SetChoice(p handle.Handle, value int)
	SetDouble(p handle.Handle, value float64)
	SetString(p handle.Handle, value string)
}

// ParamSuite is the arity- and type-resolving call forwarder. It holds no
// state between calls; concurrent use on distinct handles is as safe as the
// backend makes it.
type ParamSuite struct {
	backend ParamBackend
}

// NewParamSuite creates a ParamSuite over the given backend
func NewParamSuite(backend ParamBackend) *ParamSuite {
	return &ParamSuite{backend: backend}
}

// ParamGetValue queries the component count behind p and forwards p plus the
// first count slots, positionally, to the backend getter of that arity. Slot
// order corresponds to component index (X, Y, Z, W or R, G, B, A). A count
// with no matching getter (structural parameters report 0) returns
// StatusFailed without touching the backend. A count above MaxComponents, or
// a call supplying fewer slots than the count, is a host contract violation
// and panics.
func (s *ParamSuite) ParamGetValue(p handle.Handle, slots ...interface{}) Status {
	count := s.backend.ValueCount(p)
	if count > MaxComponents {
		panic(fmt.Sprintf("paramGetValue: component count %d exceeds maximum %d", count, MaxComponents))
	}

	var vals [MaxComponents]interface{}
	for i := 0; i < count; i++ {
		vals[i] = slots[i]
	}

	switch count {
	case 1:
		return s.backend.GetValue1(p, vals[0])
	case 2:
		return s.backend.GetValue2(p, vals[0], vals[1])
	case 3:
		return s.backend.GetValue3(p, vals[0], vals[1], vals[2])
	case 4:
		return s.backend.GetValue4(p, vals[0], vals[1], vals[2], vals[3])
	default:
		Logger().Warn("paramGetValue: no getter for component count",
			zap.Int("count", count), zap.Stringer("param", p))
		return StatusFailed
	}
}

// ParamGetValueAtTime behaves like ParamGetValue. The backend holds a single
// unanimated value per parameter, so time is accepted for ABI compatibility
// and discarded before the backend call.
func (s *ParamSuite) ParamGetValueAtTime(p handle.Handle, time float64, slots ...interface{}) Status {
	count := s.backend.ValueCount(p)
	if count > MaxComponents {
		panic(fmt.Sprintf("paramGetValueAtTime: component count %d exceeds maximum %d", count, MaxComponents))
	}

	var vals [MaxComponents]interface{}
	for i := 0; i < count; i++ {
		vals[i] = slots[i]
	}

	switch count {
	case 1:
		return s.backend.GetValue1(p, vals[0])
	case 2:
		return s.backend.GetValue2(p, vals[0], vals[1])
	case 3:
		return s.backend.GetValue3(p, vals[0], vals[1], vals[2])
	case 4:
		return s.backend.GetValue4(p, vals[0], vals[1], vals[2], vals[3])
	default:
		Logger().Warn("paramGetValueAtTime: no getter for component count",
			zap.Int("count", count), zap.Stringer("param", p))
		return StatusFailed
	}
}

// ParamSetValue queries the type tag behind p, extracts exactly one value in
// the machine type that tag dictates (int for boolean, integer and choice;
// float64 for double; string for string) and forwards it to the matching
// typed setter. An unrecognized tag returns StatusFailed without reading the
// argument list. A value of the wrong machine type is a host contract
// violation and panics.
func (s *ParamSuite) ParamSetValue(p handle.Handle, value ...interface{}) Status {
	paramType := s.backend.ParamType(p)
	switch paramType {
	case ParamTypeBoolean:
		s.backend.SetBoolean(p, value[0].(int))
	case ParamTypeInteger:
		s.backend.SetInteger(p, value[0].(int))
	case ParamTypeDouble:
		s.backend.SetDouble(p, value[0].(float64))
	case ParamTypeString:
		s.backend.SetString(p, value[0].(string))
	case ParamTypeChoice:
		s.backend.SetChoice(p, value[0].(int))
	default:
		Logger().Warn("paramSetValue: no setter for type",
			zap.String("type", paramType), zap.Stringer("param", p))
		return StatusFailed
	}

	return StatusOK
}

// ParamSetValueAtTime behaves like ParamSetValue; time is accepted for ABI
// compatibility and discarded before the backend call.
func (s *ParamSuite) ParamSetValueAtTime(p handle.Handle, time float64, value ...interface{}) Status {
	paramType := s.backend.ParamType(p)
	switch paramType {
	case ParamTypeBoolean:
		s.backend.SetBoolean(p, value[0].(int))
	case ParamTypeInteger:
		s.backend.SetInteger(p, value[0].(int))
	case ParamTypeDouble:
		s.backend.SetDouble(p, value[0].(float64))
	case ParamTypeString:
		s.backend.SetString(p, value[0].(string))
	case ParamTypeChoice:
		s.backend.SetChoice(p, value[0].(int))
	default:
		Logger().Warn("paramSetValueAtTime: no setter for type",
			zap.String("type", paramType), zap.Stringer("param", p))
		return StatusFailed
	}

	return StatusOK
}
