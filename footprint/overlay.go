package footprint

import (
	"github.com/jonathansick-shadow/skymap/skymap"
)

// DrawPatchOverlay draws the sky map's patch boundaries as dashed
// outlines, labeling each patch whose centroid falls inside the view
// limits. Every tract of the map is walked; patches outside the view
// still draw their outlines, matching the plot's pan-and-zoom use.
func DrawPatchOverlay(canvas Canvas, sm *skymap.SkyMap, limits Limits) error {
	for _, tract := range sm.Tracts() {
		for _, patch := range tract.Patches() {
			ra, dec, err := BBoxToRaDec(patch.InnerBBox(), tract.Wcs())
			if err != nil {
				return err
			}
			canvas.DashedPolygon(ra, dec)
			if limits.Contains(Percent(ra, 0.5), Percent(dec, 0.5)) {
				// bias the label toward the top of the patch
				canvas.Label(Percent(ra, 0.5), Percent(dec, 0.9), patch.Index().String())
			}
		}
	}
	return nil
}
