package footprint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathansick-shadow/skymap/geom"
)

func makeTestWcs(t *testing.T) *geom.Wcs {
	crval := geom.NewSpherePointDeg(80, -35)
	crpix := geom.Point2D{X: 1023.5, Y: 2047.5}
	scale := 5.55e-5
	wcs, err := geom.NewTanWcs(crval, crpix, [2][2]float64{{-scale, 0}, {0, scale}})
	assert.Nil(t, err)
	return wcs
}

func TestBBoxToRaDec(t *testing.T) {
	wcs := makeTestWcs(t)
	bbox := geom.NewBox2I(geom.Point2I{X: 0, Y: 0}, 2048, 4096)

	ra, dec, err := BBoxToRaDec(bbox, wcs)
	assert.Nil(t, err)
	assert.Len(t, ra, 4)
	assert.Len(t, dec, 4)

	// corner order follows the box: LL, LR, UR, UL
	for i, corner := range bbox.Corners() {
		coord, err := wcs.PixelToSky(corner)
		assert.Nil(t, err)
		assert.InDelta(t, coord.RA.Degrees(), ra[i], 1e-12)
		assert.InDelta(t, coord.Dec.Degrees(), dec[i], 1e-12)
	}
}

func TestBBoxToRaDec_UnprojectableCorner(t *testing.T) {
	wcs := makeTestWcs(t)
	// a corner this far from the reference pixel leaves the tangent plane
	bbox := geom.NewBox2I(geom.Point2I{X: 0, Y: 0}, 100000000, 100000000)

	_, _, err := BBoxToRaDec(bbox, wcs)
	assert.NotNil(t, err)
}

func TestPercent(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5}
	assert.Equal(t, 1.0, Percent(values, 0))
	assert.Equal(t, 5.0, Percent(values, 1))
	assert.Equal(t, 3.0, Percent(values, 0.5))

	assert.Equal(t, 7.0, Percent([]float64{7}, 0.5))
}
