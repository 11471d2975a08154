package skymap

import (
	"fmt"
	"math"

	"github.com/jonathansick-shadow/skymap/geom"
)

// TractInfo describes one tract: a region of sky with its own WCS whose
// pixel space is tiled exactly by a grid of patches.
type TractInfo struct {
	id         int
	ctrCoord   geom.SpherePoint
	vertexList []geom.SpherePoint
	wcs        *geom.Wcs
	bbox       geom.Box2I
	numPatches PatchIndex

	patchInnerDimensions [2]int
	patchBorder          int
}

// newTractInfo lays out a tract: it projects the vertex coordinates
// through the initial WCS, pads the resulting pixel box by half the tract
// overlap, shifts the WCS reference pixel so the box starts at (0, 0), and
// sizes the box to a whole number of patches.
func newTractInfo(id int, patchInnerDimensions [2]int, patchBorder int,
	ctrCoord geom.SpherePoint, vertexList []geom.SpherePoint,
	tractOverlap geom.Angle, pixelScale geom.Angle, wcs *geom.Wcs) (*TractInfo, error) {

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, vertex := range vertexList {
		p, err := wcs.SkyToPixel(vertex)
		if err != nil {
			return nil, fmt.Errorf("tract %d vertex (%g, %g) deg does not project: %v",
				id, vertex.RA.Degrees(), vertex.Dec.Degrees(), err)
		}
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	halfOverlapPix := 0.0
	if tractOverlap > 0 {
		halfOverlapPix = tractOverlap.Degrees() / 2 / pixelScale.Degrees()
	}
	pixMin := geom.Point2I{
		X: int(math.Floor(minX - halfOverlapPix)),
		Y: int(math.Floor(minY - halfOverlapPix)),
	}
	pixMax := geom.Point2I{
		X: int(math.Ceil(maxX + halfOverlapPix)),
		Y: int(math.Ceil(maxY + halfOverlapPix)),
	}

	// shift the WCS so the tract's pixel origin is (0, 0)
	crpix := wcs.Crpix()
	wcs = wcs.WithCrpix(geom.Point2D{
		X: crpix.X - float64(pixMin.X),
		Y: crpix.Y - float64(pixMin.Y),
	})

	width := pixMax.X - pixMin.X + 1
	height := pixMax.Y - pixMin.Y + 1
	numPatches := PatchIndex{
		X: (width + patchInnerDimensions[0] - 1) / patchInnerDimensions[0],
		Y: (height + patchInnerDimensions[1] - 1) / patchInnerDimensions[1],
	}

	// size the bbox to a whole number of patches
	bbox := geom.NewBox2I(geom.Point2I{},
		numPatches.X*patchInnerDimensions[0],
		numPatches.Y*patchInnerDimensions[1])

	return &TractInfo{
		id:                   id,
		ctrCoord:             ctrCoord,
		vertexList:           vertexList,
		wcs:                  wcs,
		bbox:                 bbox,
		numPatches:           numPatches,
		patchInnerDimensions: patchInnerDimensions,
		patchBorder:          patchBorder,
	}, nil
}

// ID returns the tract's id within its sky map
func (t *TractInfo) ID() int {
	return t.id
}

// Wcs returns the tract's WCS
func (t *TractInfo) Wcs() *geom.Wcs {
	return t.wcs
}

// BBox returns the tract's full pixel bounding box
func (t *TractInfo) BBox() geom.Box2I {
	return t.bbox
}

// CtrCoord returns the tract's center sky position
func (t *TractInfo) CtrCoord() geom.SpherePoint {
	return t.ctrCoord
}

// VertexList returns the sky positions of the tract's nominal corners
func (t *TractInfo) VertexList() []geom.SpherePoint {
	return t.vertexList
}

// NumPatches returns the patch grid dimensions
func (t *TractInfo) NumPatches() PatchIndex {
	return t.numPatches
}

// Patch returns the patch at the given grid index
func (t *TractInfo) Patch(index PatchIndex) (PatchInfo, error) {
	if index.X < 0 || index.X >= t.numPatches.X || index.Y < 0 || index.Y >= t.numPatches.Y {
		return PatchInfo{}, fmt.Errorf("patch index %v out of range %v", index, t.numPatches)
	}
	inner := geom.NewBox2I(
		geom.Point2I{
			X: index.X * t.patchInnerDimensions[0],
			Y: index.Y * t.patchInnerDimensions[1],
		},
		t.patchInnerDimensions[0],
		t.patchInnerDimensions[1],
	)
	return PatchInfo{
		index:     index,
		innerBBox: inner,
		outerBBox: inner.Grown(t.patchBorder).Clipped(t.bbox),
	}, nil
}

// Patches returns every patch of the tract, row-major
func (t *TractInfo) Patches() []PatchInfo {
	patches := make([]PatchInfo, 0, t.numPatches.X*t.numPatches.Y)
	for y := 0; y < t.numPatches.Y; y++ {
		for x := 0; x < t.numPatches.X; x++ {
			patch, _ := t.Patch(PatchIndex{X: x, Y: y})
			patches = append(patches, patch)
		}
	}
	return patches
}

// FindPatches returns the patches whose inner regions may contain any of
// the given sky positions. Positions that do not project onto the tract
// are ignored.
func (t *TractInfo) FindPatches(coords []geom.SpherePoint) []PatchInfo {
	found := []PatchInfo{}
	seen := map[PatchIndex]bool{}
	for _, coord := range coords {
		p, err := t.wcs.SkyToPixel(coord)
		if err != nil {
			continue
		}
		index := PatchIndex{
			X: int(math.Floor(p.X)) / t.patchInnerDimensions[0],
			Y: int(math.Floor(p.Y)) / t.patchInnerDimensions[1],
		}
		if index.X < 0 || index.X >= t.numPatches.X || index.Y < 0 || index.Y >= t.numPatches.Y {
			continue
		}
		if seen[index] {
			continue
		}
		seen[index] = true
		patch, _ := t.Patch(index)
		found = append(found, patch)
	}
	return found
}
