package skymap

import (
	"fmt"

	"github.com/jonathansick-shadow/skymap/geom"
)

// PatchIndex is the (x, y) position of a patch within its tract's grid
type PatchIndex struct {
	X int
	Y int
}

func (pi PatchIndex) String() string {
	return fmt.Sprintf("%d,%d", pi.X, pi.Y)
}

// PatchInfo describes one patch of a tract. The inner region tiles the
// tract exactly; the outer region adds a border for coadd overlap.
type PatchInfo struct {
	index     PatchIndex
	innerBBox geom.Box2I
	outerBBox geom.Box2I
}

// Index returns the patch's position in the tract grid
func (p PatchInfo) Index() PatchIndex {
	return p.index
}

// InnerBBox returns the patch's inner bounding box (tract pixels)
func (p PatchInfo) InnerBBox() geom.Box2I {
	return p.innerBBox
}

// OuterBBox returns the patch's outer bounding box (tract pixels)
func (p PatchInfo) OuterBBox() geom.Box2I {
	return p.outerBBox
}
