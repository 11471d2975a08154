package geom

import (
	"fmt"
	"math"
)

// WcsFactory builds the WCS objects for sky map tracts. The CD matrix is
// derived from a pixel scale and an optional rotation relative to cardinal;
// CD1_1 is negated so RA increases to the left, the conventional sky
// orientation.
type WcsFactory struct {
	pixelScaleDeg float64
	projection    string
	cd            [2][2]float64
}

// NewWcsFactory makes a WcsFactory. projection is the FITS-standard
// 3-letter projection code; only "TAN" is supported.
func NewWcsFactory(pixelScale Angle, projection string, rotation Angle) (*WcsFactory, error) {
	if len(projection) != 3 {
		return nil, fmt.Errorf("projection=%q; must have length 3", projection)
	}
	if projection != "TAN" {
		return nil, fmt.Errorf("projection=%q is not supported; only TAN", projection)
	}
	cosTerm := pixelScale.Degrees() * math.Cos(rotation.Radians())
	sinTerm := pixelScale.Degrees() * math.Sin(rotation.Radians())
	return &WcsFactory{
		pixelScaleDeg: pixelScale.Degrees(),
		projection:    projection,
		cd: [2][2]float64{
			{-cosTerm, sinTerm},
			{sinTerm, cosTerm},
		},
	}, nil
}

// MakeWcs makes a Wcs with the factory's CD matrix, centered at the given
// reference pixel (0-based) and sky position
func (f *WcsFactory) MakeWcs(crPixPos Point2D, crValCoord SpherePoint) (*Wcs, error) {
	return NewTanWcs(crValCoord, crPixPos, f.cd)
}
