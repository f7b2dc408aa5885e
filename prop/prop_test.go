package prop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nweston/openfx-runner/suite"
)

func TestSetAndGetByKind(t *testing.T) {
	s := NewSet("test", nil)

	assert.Equal(t, suite.StatusOK, s.SetValue("OfxPropName", 0, String("blur")))
	assert.Equal(t, suite.StatusOK, s.SetValue("OfxParamPropDefault", 0, Double(1.5)))
	assert.Equal(t, suite.StatusOK, s.SetValue("OfxParamPropAnimates", 0, Int(1)))

	name, stat := s.GetString("OfxPropName", 0)
	assert.Equal(t, suite.StatusOK, stat)
	assert.Equal(t, "blur", name)

	d, stat := s.GetDouble("OfxParamPropDefault", 0)
	assert.Equal(t, suite.StatusOK, stat)
	assert.Equal(t, 1.5, d)

	i, stat := s.GetInt("OfxParamPropAnimates", 0)
	assert.Equal(t, suite.StatusOK, stat)
	assert.Equal(t, 1, i)
}

func TestGetMissingProperty(t *testing.T) {
	s := NewSet("test", nil)

	_, stat := s.GetString("OfxPropName", 0)
	assert.Equal(t, suite.StatusErrUnknown, stat)
}

func TestGetWrongKind(t *testing.T) {
	s := NewSet("test", nil)
	s.SetValue("OfxParamPropDefault", 0, Double(1.5))

	_, stat := s.GetInt("OfxParamPropDefault", 0)
	assert.Equal(t, suite.StatusErrUnknown, stat)
}

func TestGetBadIndex(t *testing.T) {
	s := NewSet("test", nil)
	s.SetValue("OfxParamPropDefault", 0, Double(1.5))

	_, stat := s.GetDouble("OfxParamPropDefault", 3)
	assert.Equal(t, suite.StatusErrBadIndex, stat)

	_, stat = s.GetDouble("OfxParamPropDefault", -1)
	assert.Equal(t, suite.StatusErrBadIndex, stat)
}

func TestSetGrowsWithUnsetComponents(t *testing.T) {
	s := NewSet("test", nil)
	require.Equal(t, suite.StatusOK, s.SetValue("OfxParamPropDefault", 2, Double(0.25)))

	dim, stat := s.Dimension("OfxParamPropDefault")
	assert.Equal(t, suite.StatusOK, stat)
	assert.Equal(t, 3, dim)

	// Filled gap components are unset, not typed zeroes
	_, stat = s.GetDouble("OfxParamPropDefault", 0)
	assert.Equal(t, suite.StatusErrUnknown, stat)
}

func TestSetNegativeIndex(t *testing.T) {
	s := NewSet("test", nil)
	assert.Equal(t, suite.StatusErrBadIndex, s.SetValue("OfxPropName", -1, String("x")))
}

func TestDimensionMissing(t *testing.T) {
	s := NewSet("test", nil)
	_, stat := s.Dimension("OfxPropName")
	assert.Equal(t, suite.StatusErrUnknown, stat)
}

func TestSeededSet(t *testing.T) {
	s := NewSet("param_radius", map[string][]Value{
		"OfxPropName":      {String("radius")},
		"OfxParamPropType": {String("OfxParamTypeDouble")},
	})

	assert.True(t, s.Has("OfxPropName"))
	tag, stat := s.GetString("OfxParamPropType", 0)
	assert.Equal(t, suite.StatusOK, stat)
	assert.Equal(t, "OfxParamTypeDouble", tag)
}

func TestPointerRoundTrip(t *testing.T) {
	target := &struct{ x int }{x: 7}
	s := NewSet("test", nil)
	s.SetValue("OfxPropInstanceData", 0, Pointer(target))

	got, stat := s.GetPointer("OfxPropInstanceData", 0)
	assert.Equal(t, suite.StatusOK, stat)
	assert.Same(t, target, got)
}
