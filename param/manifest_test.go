package param

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nweston/openfx-runner/suite"
)

const sampleManifest = `{
  "params": [
    {"name": "radius", "type": "OfxParamTypeDouble", "label": "Radius", "default": [1.5]},
    {"name": "center", "type": "OfxParamTypeDouble2D", "default": [0.5, 0.5]},
    {"name": "tint", "type": "OfxParamTypeRGBA", "default": [1, 0, 0, 1]},
    {"name": "enabled", "type": "OfxParamTypeBoolean", "default": [true]},
    {"name": "mode", "type": "OfxParamTypeChoice", "default": [2]},
    {"name": "watermark", "type": "OfxParamTypeString", "default": ["(c) 2026"]},
    {"name": "advanced", "type": "OfxParamTypeGroup"}
  ]
}`

func TestLoadManifest(t *testing.T) {
	m, err := LoadManifest([]byte(sampleManifest))
	require.NoError(t, err)
	assert.Len(t, m.Params, 7)
	assert.Equal(t, "radius", m.Params[0].Name)
	assert.Equal(t, suite.ParamTypeDouble, m.Params[0].Type)
}

func TestBuildSetFromManifest(t *testing.T) {
	s, err := BuildSet([]byte(sampleManifest))
	require.NoError(t, err)

	v, ok := s.Value("radius")
	require.True(t, ok)
	assert.Equal(t, []float64{1.5}, v.Doubles)

	v, _ = s.Value("center")
	assert.Equal(t, []float64{0.5, 0.5}, v.Doubles)

	v, _ = s.Value("tint")
	assert.Equal(t, []float64{1, 0, 0, 1}, v.Doubles)

	v, _ = s.Value("enabled")
	assert.True(t, v.Bool)

	v, _ = s.Value("mode")
	assert.Equal(t, 2, v.Index)

	v, _ = s.Value("watermark")
	assert.Equal(t, "(c) 2026", v.Str)

	v, _ = s.Value("advanced")
	assert.Equal(t, KindGroup, v.Kind)
}

func TestLoadManifestRejectsUnknownType(t *testing.T) {
	_, err := LoadManifest([]byte(`{"params": [{"name": "x", "type": "OfxParamTypeBogus"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "type")
}

func TestLoadManifestRejectsMissingName(t *testing.T) {
	_, err := LoadManifest([]byte(`{"params": [{"type": "OfxParamTypeDouble"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name")
}

func TestLoadManifestRejectsNonArrayDefault(t *testing.T) {
	_, err := LoadManifest([]byte(`{"params": [{"name": "x", "type": "OfxParamTypeDouble", "default": 1.5}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "default")
}

func TestLoadManifestRejectsInvalidJSON(t *testing.T) {
	_, err := LoadManifest([]byte(`{"params": [`))
	assert.Error(t, err)
}

func TestApplyRejectsDefaultKindMismatch(t *testing.T) {
	m, err := LoadManifest([]byte(`{"params": [{"name": "radius", "type": "OfxParamTypeDouble", "default": ["big"]}]}`))
	require.NoError(t, err)

	err = m.Apply(NewSet())
	require.Error(t, err)
	var manifestErr *ManifestError
	require.ErrorAs(t, err, &manifestErr)
	assert.Equal(t, "radius", manifestErr.Param)
}
