package param

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/nweston/openfx-runner/prop"
	"github.com/nweston/openfx-runner/suite"
)

// ManifestError represents a failure to validate or apply a parameter
// manifest.
type ManifestError struct {
	Param   string `json:"param,omitempty"`
	Details string `json:"details"`
}

func (e *ManifestError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("manifest param %q: %s", e.Param, e.Details)
	}
	return fmt.Sprintf("manifest: %s", e.Details)
}

// ManifestParam declares one parameter in a manifest document
type ManifestParam struct {
	Name    string        `json:"name"`
	Type    string        `json:"type"`
	Label   string        `json:"label,omitempty"`
	Default []interface{} `json:"default,omitempty"`
}

// Manifest is a parameter manifest: a JSON document declaring the parameters
// a Set should carry.
type Manifest struct {
	Params []ManifestParam `json:"params"`
}

// manifestSchema is the Draft-7 schema every manifest must satisfy before it
// is applied.
const manifestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["params"],
  "additionalProperties": false,
  "properties": {
    "params": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "type"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "type": {
            "type": "string",
            "enum": [
              "OfxParamTypeBoolean", "OfxParamTypeChoice", "OfxParamTypeCustom",
              "OfxParamTypeDouble", "OfxParamTypeDouble2D", "OfxParamTypeDouble3D",
              "OfxParamTypeGroup", "OfxParamTypeInteger", "OfxParamTypeInteger2D",
              "OfxParamTypeInteger3D", "OfxParamTypePage", "OfxParamTypeParametric",
              "OfxParamTypePushButton", "OfxParamTypeRGB", "OfxParamTypeRGBA",
              "OfxParamTypeString"
            ]
          },
          "label": {"type": "string"},
          "default": {
            "type": "array",
            "items": {"type": ["boolean", "number", "string"]}
          }
        }
      }
    }
  }
}`

// LoadManifest validates data against the manifest schema and parses it
func LoadManifest(data []byte) (*Manifest, error) {
	schemaLoader := gojsonschema.NewStringLoader(manifestSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, &ManifestError{Details: fmt.Sprintf("failed to validate: %v", err)}
	}
	if !result.Valid() {
		var details []string
		for _, desc := range result.Errors() {
			details = append(details, fmt.Sprintf("  - %s", desc))
		}
		return nil, &ManifestError{Details: strings.Join(details, "\n")}
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, &ManifestError{Details: fmt.Sprintf("failed to parse: %v", err)}
	}
	return &manifest, nil
}

// applyDefault stores one JSON default component on a descriptor, converted
// to the property kind the parameter type expects: doubles for the double and
// color kinds, ints for the integer-like kinds (booleans as 0/1), strings
// for the text kinds.
func applyDefault(props *prop.Set, paramType string, index int, raw interface{}) error {
	switch paramType {
	case suite.ParamTypeDouble, suite.ParamTypeDouble2D, suite.ParamTypeDouble3D,
		suite.ParamTypeRGB, suite.ParamTypeRGBA:
		n, ok := raw.(float64)
		if !ok {
			return fmt.Errorf("default[%d] must be a number, got %T", index, raw)
		}
		props.SetValue(ParamPropDefault, index, prop.Double(n))
	case suite.ParamTypeInteger, suite.ParamTypeInteger2D, suite.ParamTypeInteger3D,
		suite.ParamTypeChoice:
		n, ok := raw.(float64)
		if !ok {
			return fmt.Errorf("default[%d] must be a number, got %T", index, raw)
		}
		props.SetValue(ParamPropDefault, index, prop.Int(int(n)))
	case suite.ParamTypeBoolean:
		b, ok := raw.(bool)
		if !ok {
			return fmt.Errorf("default[%d] must be a boolean, got %T", index, raw)
		}
		value := 0
		if b {
			value = 1
		}
		props.SetValue(ParamPropDefault, index, prop.Int(value))
	case suite.ParamTypeString, suite.ParamTypeCustom:
		str, ok := raw.(string)
		if !ok {
			return fmt.Errorf("default[%d] must be a string, got %T", index, raw)
		}
		props.SetValue(ParamPropDefault, index, prop.String(str))
	default:
		return fmt.Errorf("param type %s takes no default", paramType)
	}
	return nil
}

// Apply defines every manifest parameter on set and instantiates them
func (m *Manifest) Apply(set *Set) error {
	for _, mp := range m.Params {
		props, err := set.Define(mp.Type, mp.Name)
		if err != nil {
			return &ManifestError{Param: mp.Name, Details: err.Error()}
		}
		if mp.Label != "" {
			props.SetValue(PropLabel, 0, prop.String(mp.Label))
		}
		for i, raw := range mp.Default {
			if err := applyDefault(props, mp.Type, i, raw); err != nil {
				return &ManifestError{Param: mp.Name, Details: err.Error()}
			}
		}
	}
	return set.Instantiate()
}

// BuildSet loads a manifest document and returns the instantiated Set
func BuildSet(data []byte) (*Set, error) {
	manifest, err := LoadManifest(data)
	if err != nil {
		return nil, err
	}
	set := NewSet()
	if err := manifest.Apply(set); err != nil {
		return nil, err
	}
	return set, nil
}
