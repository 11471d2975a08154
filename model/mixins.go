package model

import "github.com/venicegeo/geojson-go/geojson"

// FootprintCorners is a mixin containing the projected corner coordinates
// of a detector footprint, in degrees
type FootprintCorners struct {
	RA  []float64
	Dec []float64
}

// Apply implements the GeoJSONFeatureMixin interface
func (fc FootprintCorners) Apply(feature *geojson.Feature) error {
	feature.Properties["cornerRa"] = fc.RA
	feature.Properties["cornerDec"] = fc.Dec
	return nil
}
