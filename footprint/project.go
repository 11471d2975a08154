// Package footprint computes and draws the on-sky coverage of telescope
// exposures: per-detector corner polygons, the view limits enclosing them,
// and an optional overlay of sky map patch boundaries.
package footprint

import (
	"github.com/jonathansick-shadow/skymap/geom"
)

// BBoxToRaDec gets the corners of a pixel box and converts them to
// parallel slices of RA and Dec in degrees, in corner order (LL, LR, UR,
// UL). It fails if the WCS cannot project a corner.
func BBoxToRaDec(bbox geom.Box2I, wcs *geom.Wcs) (ra []float64, dec []float64, err error) {
	corners := bbox.Corners()
	ra = make([]float64, 0, len(corners))
	dec = make([]float64, 0, len(corners))
	for _, corner := range corners {
		coord, err := wcs.PixelToSky(corner)
		if err != nil {
			return nil, nil, err
		}
		ra = append(ra, coord.RA.Degrees())
		dec = append(dec, coord.Dec.Degrees())
	}
	return ra, dec, nil
}

// Percent returns a value a fraction of the way between the min and max
// values in a slice; p=0 gives the min, p=1 the max, p=0.5 the midpoint
// (not the median). The slice must be non-empty.
func Percent(values []float64, p float64) float64 {
	m := values[0]
	max := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
		if v > max {
			max = v
		}
	}
	return m + p*(max-m)
}
