package render

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func drawSampleFigure() *Figure {
	figure := NewFigure()
	figure.FillPolygon(
		[]float64{80.0, 80.1, 80.1, 80.0},
		[]float64{-35.1, -35.1, -35.0, -35.0},
		color.NRGBA{R: 0xFF, A: 0xFF})
	figure.DashedPolygon(
		[]float64{79.9, 80.2, 80.2, 79.9},
		[]float64{-35.2, -35.2, -34.9, -34.9})
	figure.Label(80.05, -34.95, "0,0")
	figure.SetLimits([2]float64{80.3, 79.8}, [2]float64{-35.3, -34.8})
	return figure
}

func TestFigureWritePNG(t *testing.T) {
	var buf bytes.Buffer
	err := drawSampleFigure().WritePNG(&buf)
	assert.Nil(t, err)
	assert.Equal(t, "\x89PNG", buf.String()[:4])
}

func TestFigureSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "coverage.png")
	err := drawSampleFigure().Save(path)
	assert.Nil(t, err)

	data, err := os.ReadFile(path)
	assert.Nil(t, err)
	assert.NotEmpty(t, data)
}

func TestFigure_MismatchedCorners(t *testing.T) {
	figure := NewFigure()
	figure.FillPolygon([]float64{1, 2, 3}, []float64{1, 2}, color.NRGBA{A: 0xFF})

	var buf bytes.Buffer
	err := figure.WritePNG(&buf)
	assert.NotNil(t, err)
}
