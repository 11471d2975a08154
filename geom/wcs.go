package geom

import (
	"fmt"
	"math"
	"strings"

	"github.com/jonathansick-shadow/skymap/model"
)

// Wcs maps pixel coordinates to ICRS sky coordinates using a FITS-style
// reference point plus CD matrix, with a gnomonic (TAN) projection. Only
// TAN is supported; it is the projection used for per-detector exposure
// WCS solutions and for the sky map tracts.
type Wcs struct {
	crval SpherePoint
	// crpix uses 0-based pixel indexing; FITS cards are 1-based
	crpix Point2D
	// cd maps pixel offsets to intermediate world coordinates (deg)
	cd [2][2]float64
	// cdInv is the inverse of cd, for SkyToPixel
	cdInv [2][2]float64
}

// NewTanWcs builds a TAN WCS from a reference sky position, the matching
// reference pixel (0-based), and a CD matrix in degrees per pixel
func NewTanWcs(crval SpherePoint, crpix Point2D, cd [2][2]float64) (*Wcs, error) {
	det := cd[0][0]*cd[1][1] - cd[0][1]*cd[1][0]
	if det == 0 {
		return nil, fmt.Errorf("CD matrix %v is singular", cd)
	}
	return &Wcs{
		crval: crval,
		crpix: crpix,
		cd:    cd,
		cdInv: [2][2]float64{
			{cd[1][1] / det, -cd[0][1] / det},
			{-cd[1][0] / det, cd[0][0] / det},
		},
	}, nil
}

// WcsFromMetadata builds a Wcs from FITS-like cards: CTYPE1/2, CRVAL1/2,
// CRPIX1/2 and the CD matrix. CRPIX cards use the FITS 1-based convention.
func WcsFromMetadata(md model.Metadata) (*Wcs, error) {
	for _, key := range []string{"CTYPE1", "CTYPE2"} {
		ctype, err := md.String(key)
		if err != nil {
			return nil, err
		}
		if !strings.HasSuffix(ctype, "TAN") {
			return nil, fmt.Errorf("Unsupported projection in %s: %s (only TAN is supported)", key, ctype)
		}
	}

	cards := map[string]float64{}
	for _, key := range []string{"CRVAL1", "CRVAL2", "CRPIX1", "CRPIX2", "CD1_1", "CD1_2", "CD2_1", "CD2_2"} {
		value, err := md.Float(key)
		if err != nil {
			return nil, err
		}
		cards[key] = value
	}

	return NewTanWcs(
		NewSpherePointDeg(cards["CRVAL1"], cards["CRVAL2"]),
		Point2D{X: cards["CRPIX1"] - 1, Y: cards["CRPIX2"] - 1},
		[2][2]float64{
			{cards["CD1_1"], cards["CD1_2"]},
			{cards["CD2_1"], cards["CD2_2"]},
		},
	)
}

// Crval returns the reference sky position
func (w *Wcs) Crval() SpherePoint {
	return w.crval
}

// Crpix returns the reference pixel, 0-based
func (w *Wcs) Crpix() Point2D {
	return w.crpix
}

// WithCrpix returns a copy of the WCS with a shifted reference pixel;
// the sky position of any given pixel shifts along with it
func (w *Wcs) WithCrpix(crpix Point2D) *Wcs {
	shifted := *w
	shifted.crpix = crpix
	return &shifted
}

// maxTanPlaneRadius bounds the tangent-plane distance of a valid
// deprojection: tan(89 deg). The projection degenerates approaching 90
// degrees from the reference point.
var maxTanPlaneRadius = math.Tan(89 * math.Pi / 180)

// PixelToSky transforms a 0-based pixel position to ICRS sky coordinates;
// it fails for pixels whose deprojection falls 89 degrees or more from
// the reference point
func (w *Wcs) PixelToSky(p Point2D) (SpherePoint, error) {
	dx := p.X - w.crpix.X
	dy := p.Y - w.crpix.Y
	// intermediate world coordinates, radians on the tangent plane
	xi := (w.cd[0][0]*dx + w.cd[0][1]*dy) * math.Pi / 180
	eta := (w.cd[1][0]*dx + w.cd[1][1]*dy) * math.Pi / 180

	if xi*xi+eta*eta >= maxTanPlaneRadius*maxTanPlaneRadius {
		return SpherePoint{}, fmt.Errorf("Pixel (%g, %g) does not project onto the sky", p.X, p.Y)
	}

	ra0 := w.crval.RA.Radians()
	dec0 := w.crval.Dec.Radians()
	sinDec0, cosDec0 := math.Sin(dec0), math.Cos(dec0)

	denom := cosDec0 - eta*sinDec0
	if denom == 0 && xi == 0 {
		return SpherePoint{}, fmt.Errorf("Pixel (%g, %g) does not project onto the sky", p.X, p.Y)
	}
	ra := wrapRA(ra0 + math.Atan2(xi, denom))
	dec := math.Asin((sinDec0 + eta*cosDec0) / math.Sqrt(1+xi*xi+eta*eta))

	return SpherePoint{RA: Angle(ra), Dec: Angle(dec)}, nil
}

// SkyToPixel transforms ICRS sky coordinates to a 0-based pixel position;
// it fails for positions on the far hemisphere from the reference point
func (w *Wcs) SkyToPixel(coord SpherePoint) (Point2D, error) {
	ra0 := w.crval.RA.Radians()
	dec0 := w.crval.Dec.Radians()
	sinDec0, cosDec0 := math.Sin(dec0), math.Cos(dec0)
	sinDec, cosDec := math.Sin(coord.Dec.Radians()), math.Cos(coord.Dec.Radians())
	dRA := coord.RA.Radians() - ra0

	cosC := sinDec0*sinDec + cosDec0*cosDec*math.Cos(dRA)
	if cosC <= 0 {
		return Point2D{}, fmt.Errorf("Sky position (%g, %g) deg is outside the tangent plane",
			coord.RA.Degrees(), coord.Dec.Degrees())
	}

	xi := cosDec * math.Sin(dRA) / cosC * 180 / math.Pi
	eta := (cosDec0*sinDec - sinDec0*cosDec*math.Cos(dRA)) / cosC * 180 / math.Pi

	return Point2D{
		X: w.crpix.X + w.cdInv[0][0]*xi + w.cdInv[0][1]*eta,
		Y: w.crpix.Y + w.cdInv[1][0]*xi + w.cdInv[1][1]*eta,
	}, nil
}
