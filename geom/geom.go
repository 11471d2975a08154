// Package geom provides the small amount of image and sphere geometry the
// coverage tools need: integer pixel boxes, ICRS sphere points, and a
// gnomonic (TAN) world coordinate system.
package geom

import "math"

// Angle is an angle stored in radians
type Angle float64

// AngleFromDegrees builds an Angle from a value in degrees
func AngleFromDegrees(deg float64) Angle {
	return Angle(deg * math.Pi / 180)
}

// AngleFromArcseconds builds an Angle from a value in arcseconds
func AngleFromArcseconds(arcsec float64) Angle {
	return AngleFromDegrees(arcsec / 3600)
}

// Degrees returns the angle in degrees
func (a Angle) Degrees() float64 {
	return float64(a) * 180 / math.Pi
}

// Radians returns the angle in radians
func (a Angle) Radians() float64 {
	return float64(a)
}

// Point2D is a position in floating-point pixel coordinates
type Point2D struct {
	X float64
	Y float64
}

// Point2I is a position in integer pixel coordinates
type Point2I struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Box2I is an axis-aligned integer pixel box; Max is inclusive
type Box2I struct {
	Min Point2I `json:"min"`
	Max Point2I `json:"max"`
}

// NewBox2I builds a box from a minimum point and dimensions
func NewBox2I(min Point2I, width, height int) Box2I {
	return Box2I{Min: min, Max: Point2I{X: min.X + width - 1, Y: min.Y + height - 1}}
}

// Width returns the box width in pixels
func (b Box2I) Width() int {
	return b.Max.X - b.Min.X + 1
}

// Height returns the box height in pixels
func (b Box2I) Height() int {
	return b.Max.Y - b.Min.Y + 1
}

// IsEmpty reports whether the box contains no pixels
func (b Box2I) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Corners returns the four corner positions in counterclockwise order
// starting from the minimum: LL, LR, UR, UL
func (b Box2I) Corners() []Point2D {
	return []Point2D{
		{X: float64(b.Min.X), Y: float64(b.Min.Y)},
		{X: float64(b.Max.X), Y: float64(b.Min.Y)},
		{X: float64(b.Max.X), Y: float64(b.Max.Y)},
		{X: float64(b.Min.X), Y: float64(b.Max.Y)},
	}
}

// Grown returns a copy of the box expanded by n pixels on every side
func (b Box2I) Grown(n int) Box2I {
	return Box2I{
		Min: Point2I{X: b.Min.X - n, Y: b.Min.Y - n},
		Max: Point2I{X: b.Max.X + n, Y: b.Max.Y + n},
	}
}

// Clipped returns the intersection of two boxes; the result may be empty
func (b Box2I) Clipped(other Box2I) Box2I {
	clipped := b
	if other.Min.X > clipped.Min.X {
		clipped.Min.X = other.Min.X
	}
	if other.Min.Y > clipped.Min.Y {
		clipped.Min.Y = other.Min.Y
	}
	if other.Max.X < clipped.Max.X {
		clipped.Max.X = other.Max.X
	}
	if other.Max.Y < clipped.Max.Y {
		clipped.Max.Y = other.Max.Y
	}
	return clipped
}

// SpherePoint is an ICRS sky position
type SpherePoint struct {
	RA  Angle
	Dec Angle
}

// NewSpherePointDeg builds a SpherePoint from RA and Dec in degrees
func NewSpherePointDeg(raDeg, decDeg float64) SpherePoint {
	return SpherePoint{RA: AngleFromDegrees(raDeg), Dec: AngleFromDegrees(decDeg)}
}

// AngularSeparation returns the great-circle distance to another point,
// computed with the haversine formula for stability at small separations
func (p SpherePoint) AngularSeparation(other SpherePoint) Angle {
	dRA := other.RA.Radians() - p.RA.Radians()
	dDec := other.Dec.Radians() - p.Dec.Radians()
	sinDec := math.Sin(dDec / 2)
	sinRA := math.Sin(dRA / 2)
	h := sinDec*sinDec + math.Cos(p.Dec.Radians())*math.Cos(other.Dec.Radians())*sinRA*sinRA
	return Angle(2 * math.Asin(math.Min(1, math.Sqrt(h))))
}

// wrapRA normalizes an RA in radians into [0, 2pi)
func wrapRA(ra float64) float64 {
	twoPi := 2 * math.Pi
	ra = math.Mod(ra, twoPi)
	if ra < 0 {
		ra += twoPi
	}
	return ra
}
