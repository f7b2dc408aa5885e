package openfx

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nweston/openfx-runner/handle"
	"github.com/nweston/openfx-runner/message"
	"github.com/nweston/openfx-runner/param"
	"github.com/nweston/openfx-runner/state"
	"github.com/nweston/openfx-runner/suite"
)

const blurManifest = `{
  "params": [
    {"name": "radius", "type": "OfxParamTypeDouble", "label": "Radius", "default": [4]},
    {"name": "center", "type": "OfxParamTypeDouble2D", "default": [0.5, 0.5]},
    {"name": "tint", "type": "OfxParamTypeRGBA", "default": [1, 1, 1, 1]},
    {"name": "quality", "type": "OfxParamTypeChoice", "default": [1]},
    {"name": "enabled", "type": "OfxParamTypeBoolean", "default": [true]},
    {"name": "controls", "type": "OfxParamTypeGroup"}
  ]
}`

type recordingSink struct {
	deliveries []string
}

func (s *recordingSink) Deliver(h handle.Handle, messageType, messageID string, body []byte) suite.Status {
	s.deliveries = append(s.deliveries, fmt.Sprintf("%s/%s: %s", messageType, messageID, body))
	return suite.StatusOK
}

func TestManifestToSuiteRoundTrip(t *testing.T) {
	set, err := BuildParamSet([]byte(blurManifest))
	require.NoError(t, err)
	s := NewParamSuite(set)

	radius, stat := set.GetHandle("radius")
	require.Equal(t, StatusOK, stat)
	center, stat := set.GetHandle("center")
	require.Equal(t, StatusOK, stat)
	tint, stat := set.GetHandle("tint")
	require.Equal(t, StatusOK, stat)
	controls, stat := set.GetHandle("controls")
	require.Equal(t, StatusOK, stat)

	// Defaults flow through the arity-dispatched getters
	var r float64
	require.Equal(t, StatusOK, s.ParamGetValue(radius, &r))
	assert.Equal(t, 4.0, r)

	var cx, cy float64
	require.Equal(t, StatusOK, s.ParamGetValue(center, &cx, &cy))
	assert.Equal(t, []float64{0.5, 0.5}, []float64{cx, cy})

	var tr, tg, tb, ta float64
	require.Equal(t, StatusOK, s.ParamGetValueAtTime(tint, 10, &tr, &tg, &tb, &ta))
	assert.Equal(t, []float64{1, 1, 1, 1}, []float64{tr, tg, tb, ta})

	// Structural params have no value to get
	assert.Equal(t, StatusFailed, s.ParamGetValue(controls))

	// Sets route by declared type
	require.Equal(t, StatusOK, s.ParamSetValue(radius, 7.25))
	require.Equal(t, StatusOK, s.ParamGetValue(radius, &r))
	assert.Equal(t, 7.25, r)

	require.Equal(t, StatusFailed, s.ParamSetValue(controls, 1))
}

func TestSnapshotSurvivesSuiteEdits(t *testing.T) {
	set, err := param.BuildSet([]byte(blurManifest))
	require.NoError(t, err)
	s := suite.NewParamSuite(set)

	radius, _ := set.GetHandle("radius")
	enabled, _ := set.GetHandle("enabled")
	require.Equal(t, StatusOK, s.ParamSetValue(radius, 9.0))
	require.Equal(t, StatusOK, s.ParamSetValue(enabled, 0))

	snap, err := state.Snapshot(set)
	require.NoError(t, err)

	restored, err := param.BuildSet([]byte(blurManifest))
	require.NoError(t, err)
	require.NoError(t, state.Restore(restored, snap))

	v, _ := restored.Value("radius")
	assert.Equal(t, []float64{9}, v.Doubles)
	v, _ = restored.Value("enabled")
	assert.False(t, v.Bool)
}

func TestMessageDeliveryEndToEnd(t *testing.T) {
	sink := &recordingSink{}
	composer := message.NewComposer(sink)
	instance := handle.NewRegistry().Register("blur-instance")

	stat := composer.Message(instance, suite.MessageWarning, "render.slow",
		"frame %d took %.1fs", 101, 2.5)

	assert.Equal(t, StatusOK, stat)
	require.Len(t, sink.deliveries, 1)
	assert.Equal(t, "OfxMessageWarning/render.slow: frame 101 took 2.5s", sink.deliveries[0])
}
