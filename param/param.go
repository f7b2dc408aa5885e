package param

import (
	"fmt"

	"github.com/nweston/openfx-runner/prop"
)

// Param is one live parameter: a value plus the descriptor properties it was
// created from. Value access goes through the owning Set, which guards it.
type Param struct {
	name       string
	value      Value
	properties *prop.Set
}

// FromDescriptor creates a Param with its value defaulted from the
// descriptor's type and default properties.
func FromDescriptor(props *prop.Set) (*Param, error) {
	name, stat := props.GetString(PropName, 0)
	if !stat.IsOK() {
		return nil, fmt.Errorf("descriptor %s has no %s property", props.Name, PropName)
	}
	value, err := ValueFromDescriptor(props)
	if err != nil {
		return nil, err
	}
	return &Param{name: name, value: value, properties: props}, nil
}

// Name returns the parameter name
func (p *Param) Name() string { return p.name }

// Kind returns the parameter's value kind
func (p *Param) Kind() Kind { return p.value.Kind }

// Properties returns the descriptor property set
func (p *Param) Properties() *prop.Set { return p.properties }
