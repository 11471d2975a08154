// Package render draws coverage figures with gonum/plot. A Figure is an
// explicit, self-contained canvas: the aggregation, overlay, and save
// steps all operate on the same value, with no process-wide plotting
// state.
package render

import (
	"fmt"
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// footprint fills are semi-transparent so overlapping visits remain visible
const fillAlpha = 0x33 // 0.2

var labelFontSize = vg.Points(6)

// Figure is one coverage plot under construction
type Figure struct {
	plot *plot.Plot
	// drawErr holds the first draw failure; reported when the figure is
	// written out
	drawErr error
}

// NewFigure creates an empty coverage figure with sky-plot axis labels
func NewFigure() *Figure {
	p := plot.New()
	p.X.Label.Text = "R.A. (deg)"
	p.Y.Label.Text = "Decl. (deg)"
	return &Figure{plot: p}
}

func polygonXYs(ra, dec []float64) (plotter.XYs, error) {
	if len(ra) != len(dec) {
		return nil, fmt.Errorf("RA/Dec length mismatch: %d != %d", len(ra), len(dec))
	}
	xys := make(plotter.XYs, len(ra))
	for i := range ra {
		xys[i].X = ra[i]
		xys[i].Y = dec[i]
	}
	return xys, nil
}

func (f *Figure) newPolygon(ra, dec []float64) (*plotter.Polygon, error) {
	xys, err := polygonXYs(ra, dec)
	if err != nil {
		return nil, err
	}
	return plotter.NewPolygon(xys)
}

// FillPolygon draws a filled, semi-transparent footprint with a solid
// edge of the same color
func (f *Figure) FillPolygon(ra, dec []float64, c color.Color) {
	poly, err := f.newPolygon(ra, dec)
	if err != nil {
		f.setDrawErr(err)
		return
	}
	base := color.NRGBAModel.Convert(c).(color.NRGBA)
	fill := base
	fill.A = fillAlpha
	poly.Color = fill
	poly.LineStyle.Color = base
	poly.LineStyle.Width = vg.Points(1)
	f.plot.Add(poly)
}

// DashedPolygon draws an unfilled dashed black outline
func (f *Figure) DashedPolygon(ra, dec []float64) {
	poly, err := f.newPolygon(ra, dec)
	if err != nil {
		f.setDrawErr(err)
		return
	}
	poly.Color = nil
	poly.LineStyle.Color = color.Black
	poly.LineStyle.Width = vg.Points(1)
	poly.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	f.plot.Add(poly)
}

// Label draws a small text label centered on ra, hanging below dec
func (f *Figure) Label(ra, dec float64, label string) {
	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: ra, Y: dec}},
		Labels: []string{label},
	})
	if err != nil {
		f.setDrawErr(err)
		return
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].Font.Size = labelFontSize
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YTop
	}
	f.plot.Add(labels)
}

// SetLimits applies view limits. xlim is ordered (max, min): the RA axis
// is inverted so right ascension increases to the left.
func (f *Figure) SetLimits(xlim, ylim [2]float64) {
	f.plot.X.Min = xlim[1]
	f.plot.X.Max = xlim[0]
	f.plot.X.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	f.plot.Y.Min = ylim[0]
	f.plot.Y.Max = ylim[1]
}

// Save writes the figure to a file; the format follows the extension
// (png, svg, pdf, ...). Deferred draw errors surface here.
func (f *Figure) Save(path string) error {
	if f.drawErr != nil {
		return f.drawErr
	}
	return f.plot.Save(15*vg.Centimeter, 12*vg.Centimeter, path)
}

// WritePNG streams the figure as PNG. Deferred draw errors surface here.
func (f *Figure) WritePNG(w io.Writer) error {
	if f.drawErr != nil {
		return f.drawErr
	}
	writerTo, err := f.plot.WriterTo(15*vg.Centimeter, 12*vg.Centimeter, "png")
	if err != nil {
		return err
	}
	_, err = writerTo.WriteTo(w)
	return err
}

func (f *Figure) setDrawErr(err error) {
	if f.drawErr == nil {
		f.drawErr = err
	}
}
