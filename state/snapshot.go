// Package state serializes a parameter set's current values. Snapshots use
// CBOR with an adjacently tagged layout per value: a "type" field naming the
// variant and a "v" field holding the components ("v" is omitted for the
// structural kinds, which carry none).
package state

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/nweston/openfx-runner/param"
)

var variantNames = map[param.Kind]string{
	param.KindBoolean:    "Boolean",
	param.KindChoice:     "Choice",
	param.KindCustom:     "Custom",
	param.KindDouble:     "Double",
	param.KindDouble2D:   "Double2D",
	param.KindDouble3D:   "Double3D",
	param.KindGroup:      "Group",
	param.KindInteger:    "Integer",
	param.KindInteger2D:  "Integer2D",
	param.KindInteger3D:  "Integer3D",
	param.KindPage:       "Page",
	param.KindParametric: "Parametric",
	param.KindPushButton: "PushButton",
	param.KindRGB:        "RGB",
	param.KindRGBA:       "RGBA",
	param.KindString:     "String",
}

func kindForVariant(name string) (param.Kind, bool) {
	for k, n := range variantNames {
		if n == name {
			return k, true
		}
	}
	return 0, false
}

func encodeValue(v param.Value) (map[string]interface{}, error) {
	name, ok := variantNames[v.Kind]
	if !ok {
		return nil, fmt.Errorf("unknown value kind %d", int(v.Kind))
	}
	m := map[string]interface{}{"type": name}

	switch v.Kind {
	case param.KindBoolean:
		m["v"] = v.Bool
	case param.KindChoice:
		m["v"] = v.Index
	case param.KindCustom, param.KindString:
		m["v"] = v.Str
	case param.KindDouble:
		m["v"] = v.Doubles[0]
	case param.KindDouble2D, param.KindDouble3D, param.KindRGB, param.KindRGBA:
		m["v"] = v.Doubles
	case param.KindInteger:
		m["v"] = v.Ints[0]
	case param.KindInteger2D, param.KindInteger3D:
		m["v"] = v.Ints
	case param.KindGroup, param.KindPage, param.KindParametric, param.KindPushButton:
		// Unit variants carry no content
	}
	return m, nil
}

// Snapshot encodes the current value of every parameter in set
func Snapshot(set *param.Set) ([]byte, error) {
	values := make(map[string]interface{})
	for _, name := range set.Names() {
		v, ok := set.Value(name)
		if !ok {
			continue
		}
		encoded, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("snapshot %q: %w", name, err)
		}
		values[name] = encoded
	}
	return cbor.Marshal(values)
}

func asFloat(raw interface{}) (float64, error) {
	switch n := raw.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("expected number, got %T", raw)
	}
}

func asInt(raw interface{}) (int, error) {
	switch n := raw.(type) {
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("expected integer, got %T", raw)
	}
}

func asFloats(raw interface{}, count int) ([]float64, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", raw)
	}
	if len(items) != count {
		return nil, fmt.Errorf("expected %d components, got %d", count, len(items))
	}
	out := make([]float64, count)
	for i, item := range items {
		n, err := asFloat(item)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func asInts(raw interface{}, count int) ([]int, error) {
	items, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected array, got %T", raw)
	}
	if len(items) != count {
		return nil, fmt.Errorf("expected %d components, got %d", count, len(items))
	}
	out := make([]int, count)
	for i, item := range items {
		n, err := asInt(item)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

func decodeValue(m map[string]interface{}) (param.Value, error) {
	name, ok := m["type"].(string)
	if !ok {
		return param.Value{}, errors.New("missing type tag")
	}
	kind, ok := kindForVariant(name)
	if !ok {
		return param.Value{}, fmt.Errorf("unknown variant %q", name)
	}
	content := m["v"]

	switch kind {
	case param.KindBoolean:
		b, ok := content.(bool)
		if !ok {
			return param.Value{}, fmt.Errorf("Boolean: expected bool, got %T", content)
		}
		return param.Boolean(b), nil
	case param.KindChoice:
		n, err := asInt(content)
		if err != nil {
			return param.Value{}, fmt.Errorf("Choice: %w", err)
		}
		return param.Choice(n), nil
	case param.KindCustom:
		s, ok := content.(string)
		if !ok {
			return param.Value{}, fmt.Errorf("Custom: expected string, got %T", content)
		}
		return param.Custom(s), nil
	case param.KindString:
		s, ok := content.(string)
		if !ok {
			return param.Value{}, fmt.Errorf("String: expected string, got %T", content)
		}
		return param.String(s), nil
	case param.KindDouble:
		n, err := asFloat(content)
		if err != nil {
			return param.Value{}, fmt.Errorf("Double: %w", err)
		}
		return param.Double(n), nil
	case param.KindDouble2D:
		d, err := asFloats(content, 2)
		if err != nil {
			return param.Value{}, fmt.Errorf("Double2D: %w", err)
		}
		return param.Double2D(d[0], d[1]), nil
	case param.KindDouble3D:
		d, err := asFloats(content, 3)
		if err != nil {
			return param.Value{}, fmt.Errorf("Double3D: %w", err)
		}
		return param.Double3D(d[0], d[1], d[2]), nil
	case param.KindRGB:
		d, err := asFloats(content, 3)
		if err != nil {
			return param.Value{}, fmt.Errorf("RGB: %w", err)
		}
		return param.RGB(d[0], d[1], d[2]), nil
	case param.KindRGBA:
		d, err := asFloats(content, 4)
		if err != nil {
			return param.Value{}, fmt.Errorf("RGBA: %w", err)
		}
		return param.RGBA(d[0], d[1], d[2], d[3]), nil
	case param.KindInteger:
		n, err := asInt(content)
		if err != nil {
			return param.Value{}, fmt.Errorf("Integer: %w", err)
		}
		return param.Integer(n), nil
	case param.KindInteger2D:
		ints, err := asInts(content, 2)
		if err != nil {
			return param.Value{}, fmt.Errorf("Integer2D: %w", err)
		}
		return param.Integer2D(ints[0], ints[1]), nil
	case param.KindInteger3D:
		ints, err := asInts(content, 3)
		if err != nil {
			return param.Value{}, fmt.Errorf("Integer3D: %w", err)
		}
		return param.Integer3D(ints[0], ints[1], ints[2]), nil
	case param.KindGroup:
		return param.Group(), nil
	case param.KindPage:
		return param.Page(), nil
	case param.KindParametric:
		return param.Parametric(), nil
	case param.KindPushButton:
		return param.PushButton(), nil
	}
	return param.Value{}, fmt.Errorf("unhandled variant %q", name)
}

// toStringMap normalizes a decoded CBOR map, whose keys come back as
// interface{} values.
func toStringMap(raw interface{}) (map[string]interface{}, error) {
	switch m := raw.(type) {
	case map[string]interface{}:
		return m, nil
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("expected string key, got %T", k)
			}
			out[key] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", raw)
	}
}

// Restore applies a snapshot to set. Every snapshot entry must name a live
// parameter of the same kind; a mismatch rejects the whole snapshot without
// partially applying it.
func Restore(set *param.Set, data []byte) error {
	var raw interface{}
	if err := cbor.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	top, err := toStringMap(raw)
	if err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}

	decoded := make(map[string]param.Value, len(top))
	for name, entry := range top {
		m, err := toStringMap(entry)
		if err != nil {
			return fmt.Errorf("restore %q: %w", name, err)
		}
		v, err := decodeValue(m)
		if err != nil {
			return fmt.Errorf("restore %q: %w", name, err)
		}
		live, ok := set.Value(name)
		if !ok {
			return fmt.Errorf("restore %q: no such param", name)
		}
		if live.Kind != v.Kind {
			return fmt.Errorf("restore %q: param is %s, snapshot is %s",
				name, live.Kind.TypeTag(), v.Kind.TypeTag())
		}
		decoded[name] = v
	}

	for name, v := range decoded {
		if err := set.SetValue(name, v); err != nil {
			return fmt.Errorf("restore %q: %w", name, err)
		}
	}
	return nil
}
