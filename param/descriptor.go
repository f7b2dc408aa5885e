package param

import (
	"fmt"

	"github.com/nweston/openfx-runner/prop"
	"github.com/nweston/openfx-runner/suite"
)

// Property names used on parameter descriptors
const (
	PropName         = "OfxPropName"
	PropLabel        = "OfxPropLabel"
	ParamPropType    = "OfxParamPropType"
	ParamPropDefault = "OfxParamPropDefault"
)

// NewDescriptor creates a descriptor property set for a parameter of the
// given type and name. Further properties (label, defaults) are set directly
// on the returned set.
func NewDescriptor(paramType, name string) *prop.Set {
	return prop.NewSet("param_"+name, map[string][]prop.Value{
		PropName:      {prop.String(name)},
		ParamPropType: {prop.String(paramType)},
	})
}

func defaultDouble(props *prop.Set, index int) float64 {
	if v, stat := props.GetDouble(ParamPropDefault, index); stat == suite.StatusOK {
		return v
	}
	return 0
}

func defaultInt(props *prop.Set, index int) int {
	if v, stat := props.GetInt(ParamPropDefault, index); stat == suite.StatusOK {
		return v
	}
	return 0
}

func defaultString(props *prop.Set) string {
	if v, stat := props.GetString(ParamPropDefault, 0); stat == suite.StatusOK {
		return v
	}
	return ""
}

// ValueFromDescriptor derives a parameter's initial value from its
// descriptor: the declared type tag selects the kind, defaults come from
// the ParamPropDefault components with per-type zero fallbacks.
func ValueFromDescriptor(props *prop.Set) (Value, error) {
	tag, stat := props.GetString(ParamPropType, 0)
	if stat != suite.StatusOK {
		return Value{}, fmt.Errorf("descriptor %s has no %s property", props.Name, ParamPropType)
	}

	switch tag {
	case suite.ParamTypeBoolean:
		return Boolean(defaultInt(props, 0) != 0), nil
	case suite.ParamTypeChoice:
		return Choice(defaultInt(props, 0)), nil
	case suite.ParamTypeCustom:
		return Custom(defaultString(props)), nil
	case suite.ParamTypeDouble:
		return Double(defaultDouble(props, 0)), nil
	case suite.ParamTypeDouble2D:
		return Double2D(defaultDouble(props, 0), defaultDouble(props, 1)), nil
	case suite.ParamTypeDouble3D:
		return Double3D(defaultDouble(props, 0), defaultDouble(props, 1), defaultDouble(props, 2)), nil
	case suite.ParamTypeGroup:
		return Group(), nil
	case suite.ParamTypeInteger:
		return Integer(defaultInt(props, 0)), nil
	case suite.ParamTypeInteger2D:
		return Integer2D(defaultInt(props, 0), defaultInt(props, 1)), nil
	case suite.ParamTypeInteger3D:
		return Integer3D(defaultInt(props, 0), defaultInt(props, 1), defaultInt(props, 2)), nil
	case suite.ParamTypePage:
		return Page(), nil
	case suite.ParamTypeParametric:
		return Parametric(), nil
	case suite.ParamTypePushButton:
		return PushButton(), nil
	case suite.ParamTypeRGB:
		return RGB(defaultDouble(props, 0), defaultDouble(props, 1), defaultDouble(props, 2)), nil
	case suite.ParamTypeRGBA:
		return RGBA(defaultDouble(props, 0), defaultDouble(props, 1),
			defaultDouble(props, 2), defaultDouble(props, 3)), nil
	case suite.ParamTypeString:
		return String(defaultString(props)), nil
	default:
		return Value{}, fmt.Errorf("unknown param type %q on descriptor %s", tag, props.Name)
	}
}
