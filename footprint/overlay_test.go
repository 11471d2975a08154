package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathansick-shadow/skymap/skymap"
)

func makeTestSkyMap(t *testing.T) *skymap.SkyMap {
	config := skymap.DefaultConfig()
	config.PixelScale = 100
	config.PatchInnerDimensions = [2]int{500, 500}
	config.PatchBorder = 10
	sm, err := skymap.NewEquatSkyMap(config)
	assert.Nil(t, err)
	return sm
}

func TestDrawPatchOverlay(t *testing.T) {
	sm := makeTestSkyMap(t)
	canvas := &recordingCanvas{}

	// the view covers the whole band: every patch labels
	limits := Limits{XLim: [2]float64{360, 0}, YLim: [2]float64{-90, 90}}
	err := DrawPatchOverlay(canvas, sm, limits)
	assert.Nil(t, err)

	totalPatches := 0
	for _, tract := range sm.Tracts() {
		n := tract.NumPatches()
		totalPatches += n.X * n.Y
	}
	assert.Equal(t, totalPatches, len(canvas.dashes))
	assert.Equal(t, totalPatches, len(canvas.labels))
	assert.Contains(t, canvas.labels, "0,0")

	// each outline has one vertex per bbox corner
	assert.Len(t, canvas.dashes[0][0], 4)
	assert.Len(t, canvas.dashes[0][1], 4)
}

func TestDrawPatchOverlay_LabelsOnlyInView(t *testing.T) {
	sm := makeTestSkyMap(t)
	canvas := &recordingCanvas{}

	// an empty view: outlines still draw, labels do not
	limits := Limits{XLim: [2]float64{-10, -20}, YLim: [2]float64{80, 85}}
	err := DrawPatchOverlay(canvas, sm, limits)
	assert.Nil(t, err)

	assert.NotEmpty(t, canvas.dashes)
	assert.Empty(t, canvas.labels)
}
