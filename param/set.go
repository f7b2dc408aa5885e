package param

import (
	"fmt"
	"sync"

	"github.com/nweston/openfx-runner/handle"
	"github.com/nweston/openfx-runner/prop"
	"github.com/nweston/openfx-runner/suite"
)

// Set is a parameter set: descriptors, the live parameters built from them,
// and the handle registry that lets parameters cross the API boundary as
// opaque references. Set implements suite.ParamBackend.
type Set struct {
	mu          sync.RWMutex
	descriptors []*prop.Set
	params      map[string]*Param
	handles     map[string]handle.Handle
	registry    *handle.Registry
}

// NewSet creates an empty parameter set
func NewSet() *Set {
	return &Set{
		params:   make(map[string]*Param),
		handles:  make(map[string]handle.Handle),
		registry: handle.NewRegistry(),
	}
}

// Define adds a descriptor for a parameter of the given type and name and
// returns its property set for further configuration. The type tag must be
// one of the known parameter types; names must be unique within the set.
func (s *Set) Define(paramType, name string) (*prop.Set, error) {
	if _, ok := KindForType(paramType); !ok {
		return nil, fmt.Errorf("unknown param type %q", paramType)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, d := range s.descriptors {
		if existing, stat := d.GetString(PropName, 0); stat.IsOK() && existing == name {
			return nil, fmt.Errorf("param %q already defined", name)
		}
	}

	props := NewDescriptor(paramType, name)
	s.descriptors = append(s.descriptors, props)
	return props, nil
}

// Instantiate builds live parameters from every descriptor, defaulting their
// values, and mints a handle per parameter. Descriptors added after a
// previous Instantiate produce new parameters; existing parameters keep
// their current values.
func (s *Set) Instantiate() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, props := range s.descriptors {
		name, stat := props.GetString(PropName, 0)
		if !stat.IsOK() {
			return fmt.Errorf("descriptor %s has no %s property", props.Name, PropName)
		}
		if _, ok := s.params[name]; ok {
			continue
		}
		p, err := FromDescriptor(props)
		if err != nil {
			return err
		}
		s.params[name] = p
		s.handles[name] = s.registry.Register(p)
	}
	return nil
}

// GetHandle returns the handle for a named parameter
func (s *Set) GetHandle(name string) (handle.Handle, suite.Status) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.handles[name]
	if !ok {
		return handle.Nil, suite.StatusErrUnknown
	}
	return h, suite.StatusOK
}

// Names returns the names of all live parameters
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.params))
	for name := range s.params {
		names = append(names, name)
	}
	return names
}

// Value returns the current value of a named parameter
func (s *Set) Value(name string) (Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.params[name]
	if !ok {
		return Value{}, false
	}
	return p.value, true
}

// SetValue replaces the value of a named parameter. The new value's kind
// must match the parameter's declared kind.
func (s *Set) SetValue(name string, v Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.params[name]
	if !ok {
		return fmt.Errorf("no param %q", name)
	}
	if p.value.Kind != v.Kind {
		return fmt.Errorf("param %q is %s, not %s", name, p.value.Kind.TypeTag(), v.Kind.TypeTag())
	}
	p.value = v
	return nil
}

func (s *Set) resolve(h handle.Handle) (*Param, bool) {
	obj, ok := s.registry.Resolve(h)
	if !ok {
		return nil, false
	}
	p, ok := obj.(*Param)
	return p, ok
}

// ========= suite.ParamBackend =========

// ValueCount reports the component count behind h. An unknown handle reports
// 0, which the dispatch layer turns into a failed status.
func (s *Set) ValueCount(h handle.Handle) int {
	p, ok := s.resolve(h)
	if !ok {
		return 0
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return p.value.Components()
}

// ParamType reports the type tag behind h, or "" for an unknown handle
func (s *Set) ParamType(h handle.Handle) string {
	p, ok := s.resolve(h)
	if !ok {
		return ""
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return p.value.Kind.TypeTag()
}

// writeComponent writes component i of v through the caller-supplied slot.
// Slots are typed pointers: *bool for boolean, *int for the integer and
// choice kinds, *float64 for the double and color kinds, *string for string
// and custom.
func writeComponent(v Value, i int, slot interface{}) suite.Status {
	switch v.Kind {
	case KindBoolean:
		out, ok := slot.(*bool)
		if !ok {
			return suite.StatusErrValue
		}
		*out = v.Bool
	case KindChoice:
		out, ok := slot.(*int)
		if !ok {
			return suite.StatusErrValue
		}
		*out = v.Index
	case KindInteger, KindInteger2D, KindInteger3D:
		out, ok := slot.(*int)
		if !ok {
			return suite.StatusErrValue
		}
		*out = v.Ints[i]
	case KindDouble, KindDouble2D, KindDouble3D, KindRGB, KindRGBA:
		out, ok := slot.(*float64)
		if !ok {
			return suite.StatusErrValue
		}
		*out = v.Doubles[i]
	case KindString, KindCustom:
		out, ok := slot.(*string)
		if !ok {
			return suite.StatusErrValue
		}
		*out = v.Str
	default:
		return suite.StatusErrValue
	}
	return suite.StatusOK
}

func (s *Set) getValue(h handle.Handle, slots ...interface{}) suite.Status {
	p, ok := s.resolve(h)
	if !ok {
		return suite.StatusErrBadHandle
	}
	s.mu.RLock()
	v := p.value
	s.mu.RUnlock()

	if v.Components() != len(slots) {
		return suite.StatusErrValue
	}
	for i, slot := range slots {
		if stat := writeComponent(v, i, slot); !stat.IsOK() {
			return stat
		}
	}
	return suite.StatusOK
}

// GetValue1 writes a one-component value through v0
func (s *Set) GetValue1(h handle.Handle, v0 interface{}) suite.Status {
	return s.getValue(h, v0)
}

// GetValue2 writes a two-component value through v0, v1 in component order
func (s *Set) GetValue2(h handle.Handle, v0, v1 interface{}) suite.Status {
	return s.getValue(h, v0, v1)
}

// GetValue3 writes a three-component value through v0..v2 in component order
func (s *Set) GetValue3(h handle.Handle, v0, v1, v2 interface{}) suite.Status {
	return s.getValue(h, v0, v1, v2)
}

// GetValue4 writes a four-component value through v0..v3 in component order
func (s *Set) GetValue4(h handle.Handle, v0, v1, v2, v3 interface{}) suite.Status {
	return s.getValue(h, v0, v1, v2, v3)
}

func (s *Set) setValue(h handle.Handle, kind Kind, v Value) {
	p, ok := s.resolve(h)
	if !ok {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.value.Kind != kind {
		return
	}
	p.value = v
}

// SetBoolean replaces a boolean parameter's value; nonzero means true
func (s *Set) SetBoolean(h handle.Handle, value int) {
	s.setValue(h, KindBoolean, Boolean(value != 0))
}

// SetInteger replaces an integer parameter's value
func (s *Set) SetInteger(h handle.Handle, value int) {
	s.setValue(h, KindInteger, Integer(value))
}

// SetChoice replaces a choice parameter's selected option index
func (s *Set) SetChoice(h handle.Handle, value int) {
	s.setValue(h, KindChoice, Choice(value))
}

// SetDouble replaces a double parameter's value
func (s *Set) SetDouble(h handle.Handle, value float64) {
	s.setValue(h, KindDouble, Double(value))
}

// SetString replaces a string parameter's value
func (s *Set) SetString(h handle.Handle, value string) {
	s.setValue(h, KindString, String(value))
}
