package skymap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathansick-shadow/skymap/geom"
)

// a coarse map keeps the patch grids small enough to iterate in tests
func coarseConfig() Config {
	config := DefaultConfig()
	config.PixelScale = 100 // arcsec/pixel
	config.PatchInnerDimensions = [2]int{500, 500}
	config.PatchBorder = 10
	return config
}

func TestNewEquatSkyMap_TractLayout(t *testing.T) {
	sm, err := NewEquatSkyMap(coarseConfig())
	assert.Nil(t, err)
	assert.Equal(t, 4, sm.Len())

	for id, tract := range sm.Tracts() {
		assert.Equal(t, id, tract.ID())
		assert.Equal(t, geom.Point2I{}, tract.BBox().Min, "tract bbox must start at the origin")

		numPatches := tract.NumPatches()
		assert.Equal(t, numPatches.X*500, tract.BBox().Width())
		assert.Equal(t, numPatches.Y*500, tract.BBox().Height())

		// the tract center must land inside the tract bbox
		p, err := tract.Wcs().SkyToPixel(tract.CtrCoord())
		assert.Nil(t, err)
		assert.True(t, p.X >= 0 && p.X <= float64(tract.BBox().Max.X))
		assert.True(t, p.Y >= 0 && p.Y <= float64(tract.BBox().Max.Y))
	}
}

func TestTract_PatchesTileTheTract(t *testing.T) {
	sm, err := NewEquatSkyMap(coarseConfig())
	assert.Nil(t, err)

	tract := sm.Tract(0)
	numPatches := tract.NumPatches()
	patches := tract.Patches()
	assert.Len(t, patches, numPatches.X*numPatches.Y)

	first := patches[0]
	assert.Equal(t, PatchIndex{X: 0, Y: 0}, first.Index())
	assert.Equal(t, geom.Point2I{}, first.InnerBBox().Min)
	assert.Equal(t, 500, first.InnerBBox().Width())
	// the outer border is clipped at the tract edges
	assert.Equal(t, geom.Point2I{}, first.OuterBBox().Min)
	expectedOuterMax := geom.Point2I{X: 509, Y: 509}
	if tract.NumPatches().X == 1 {
		expectedOuterMax.X = tract.BBox().Max.X
	}
	if tract.NumPatches().Y == 1 {
		expectedOuterMax.Y = tract.BBox().Max.Y
	}
	assert.Equal(t, expectedOuterMax, first.OuterBBox().Max)

	last := patches[len(patches)-1]
	assert.Equal(t, PatchIndex{X: numPatches.X - 1, Y: numPatches.Y - 1}, last.Index())
	assert.Equal(t, tract.BBox().Max, last.InnerBBox().Max)
}

func TestTract_PatchIndexOutOfRange(t *testing.T) {
	sm, err := NewEquatSkyMap(coarseConfig())
	assert.Nil(t, err)

	tract := sm.Tract(0)
	_, err = tract.Patch(PatchIndex{X: -1, Y: 0})
	assert.NotNil(t, err)
	_, err = tract.Patch(tract.NumPatches())
	assert.NotNil(t, err)
}

func TestPatchIndex_String(t *testing.T) {
	assert.Equal(t, "3,7", PatchIndex{X: 3, Y: 7}.String())
}

func TestFindTract(t *testing.T) {
	sm, err := NewEquatSkyMap(coarseConfig())
	assert.Nil(t, err)

	// tract 0 spans RA [0, 90) with center at RA 45
	assert.Equal(t, 0, sm.FindTract(geom.NewSpherePointDeg(44, 0)).ID())
	assert.Equal(t, 1, sm.FindTract(geom.NewSpherePointDeg(135, 1)).ID())
	assert.Equal(t, 3, sm.FindTract(geom.NewSpherePointDeg(315, -1)).ID())
}

func TestFindPatches(t *testing.T) {
	sm, err := NewEquatSkyMap(coarseConfig())
	assert.Nil(t, err)

	tract := sm.FindTract(geom.NewSpherePointDeg(45, 0))
	coord := tract.CtrCoord()

	patches := tract.FindPatches([]geom.SpherePoint{coord, coord})
	assert.Len(t, patches, 1, "duplicate coords must not duplicate patches")

	p, err := tract.Wcs().SkyToPixel(coord)
	assert.Nil(t, err)
	index := patches[0].Index()
	assert.Equal(t, int(p.X)/500, index.X)
	assert.Equal(t, int(p.Y)/500, index.Y)

	// a position on the opposite side of the sky projects nowhere
	far := geom.NewSpherePointDeg(225, 0)
	assert.Empty(t, tract.FindPatches([]geom.SpherePoint{far}))
}

func TestParseConfig(t *testing.T) {
	config, err := ParseConfig([]byte(`{"numTracts": 6, "pixelScale": 1.0}`))
	assert.Nil(t, err)
	assert.Equal(t, 6, config.NumTracts)
	assert.Equal(t, 1.0, config.PixelScale)
	// unspecified fields keep their defaults
	assert.Equal(t, [2]int{4000, 4000}, config.PatchInnerDimensions)

	_, err = ParseConfig([]byte(`{"numTracts": 2}`))
	assert.NotNil(t, err)

	_, err = ParseConfig([]byte(`not json`))
	assert.NotNil(t, err)
}

func TestNewEquatSkyMap_RejectsBadProjection(t *testing.T) {
	config := coarseConfig()
	config.Projection = "STG"
	_, err := NewEquatSkyMap(config)
	assert.NotNil(t, err)
}
