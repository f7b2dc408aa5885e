package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentCount(t *testing.T) {
	assert.Equal(t, 1, ComponentCount(ParamTypeDouble))
	assert.Equal(t, 1, ComponentCount(ParamTypeBoolean))
	assert.Equal(t, 1, ComponentCount(ParamTypeString))
	assert.Equal(t, 2, ComponentCount(ParamTypeDouble2D))
	assert.Equal(t, 2, ComponentCount(ParamTypeInteger2D))
	assert.Equal(t, 3, ComponentCount(ParamTypeRGB))
	assert.Equal(t, 3, ComponentCount(ParamTypeInteger3D))
	assert.Equal(t, 4, ComponentCount(ParamTypeRGBA))
	assert.Equal(t, 0, ComponentCount(ParamTypeGroup))
	assert.Equal(t, 0, ComponentCount(ParamTypePage))
	assert.Equal(t, -1, ComponentCount("OfxParamTypeBogus"))
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "kOfxStatOK", StatusOK.String())
	assert.Equal(t, "kOfxStatFailed", StatusFailed.String())
	assert.Equal(t, "kOfxStatReplyDefault", StatusReplyDefault.String())
	assert.Equal(t, "UNKNOWN(99)", Status(99).String())
}

func TestStatusIsOK(t *testing.T) {
	assert.True(t, StatusOK.IsOK())
	assert.False(t, StatusFailed.IsOK())
}
