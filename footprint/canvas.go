package footprint

import "image/color"

// Canvas is the drawing surface the coverage pass renders onto. The
// gonum-backed implementation lives in the render package; tests use a
// recording implementation.
type Canvas interface {
	// FillPolygon draws a filled, semi-transparent polygon from parallel
	// RA/Dec corner slices, degrees
	FillPolygon(ra, dec []float64, c color.Color)
	// DashedPolygon draws an unfilled dashed outline
	DashedPolygon(ra, dec []float64)
	// Label draws a small text label centered on x and hanging below y
	Label(ra, dec float64, text string)
}

// Palette is the cyclic per-visit color palette: red, blue, cyan, green,
// magenta, keyed by visit index modulo 5
var Palette = [5]color.Color{
	color.NRGBA{R: 0xFF, A: 0xFF},
	color.NRGBA{B: 0xFF, A: 0xFF},
	color.NRGBA{G: 0xBF, B: 0xBF, A: 0xFF},
	color.NRGBA{G: 0x80, A: 0xFF},
	color.NRGBA{R: 0xBF, B: 0xBF, A: 0xFF},
}

// nullCanvas discards every draw call; used when only the aggregation
// side effects (points, results, failure report) are wanted
type nullCanvas struct{}

func (nullCanvas) FillPolygon(ra, dec []float64, c color.Color) {}
func (nullCanvas) DashedPolygon(ra, dec []float64)              {}
func (nullCanvas) Label(ra, dec float64, text string)           {}
