package model

import (
	"fmt"
	"time"

	"github.com/venicegeo/geojson-go/geojson"
)

// BasicCoverageResult holds the fields common to all single-footprint results
type BasicCoverageResult struct {
	Visit    int
	CCD      int
	CCDKey   string
	Geometry interface{}
	Filter   string
	ObsDate  time.Time
	ExpTime  float64
}

// ID renders the conventional visit-ccd identifier for this footprint
func (cr BasicCoverageResult) ID() string {
	return fmt.Sprintf("%d-%d", cr.Visit, cr.CCD)
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (cr BasicCoverageResult) GeoJSONFeature() (*geojson.Feature, error) {
	ccdKey := cr.CCDKey
	if ccdKey == "" {
		ccdKey = DefaultCCDKey
	}
	f := geojson.NewFeature(cr.Geometry, cr.ID(), map[string]interface{}{
		"visit":   cr.Visit,
		ccdKey:    cr.CCD,
		"filter":  cr.Filter,
		"obsDate": cr.ObsDate.Format(StandardObsTimeLayout),
		"expTime": cr.ExpTime,
	})
	f.Bbox = f.ForceBbox()
	return f, nil
}

// IndexedExposureResult represents a footprint recovered from the local
// exposure index rather than computed from repository metadata
type IndexedExposureResult struct {
	BasicCoverageResult
	FootprintCorners
}

// GeoJSONFeature implements the GeoJSONFeatureCreator interface
func (result IndexedExposureResult) GeoJSONFeature() (*geojson.Feature, error) {
	feature, err := result.BasicCoverageResult.GeoJSONFeature()
	if err != nil {
		return nil, err
	}

	err = result.FootprintCorners.Apply(feature)
	if err != nil {
		return nil, err
	}

	return feature, nil
}

// MultiCoverageResult is a container type for bundling multiple results
// together, e.g. as the result of a coverage query
type MultiCoverageResult struct {
	FeatureCreators []GeoJSONFeatureCreator
}

// GeoJSONFeatureCollection implements the GeoJSONFeatureCollectionCreator interface
func (result MultiCoverageResult) GeoJSONFeatureCollection() (*geojson.FeatureCollection, error) {
	var err error
	features := make([]*geojson.Feature, len(result.FeatureCreators))
	for i, creator := range result.FeatureCreators {
		features[i], err = creator.GeoJSONFeature()
		if err != nil {
			return nil, err
		}
	}

	return geojson.NewFeatureCollection(features), nil
}

// PolygonFromRaDec builds a closed GeoJSON polygon from parallel RA and Dec
// corner slices (degrees); the slices must be equal length
func PolygonFromRaDec(ra, dec []float64) (*geojson.Polygon, error) {
	if len(ra) != len(dec) {
		return nil, fmt.Errorf("RA/Dec length mismatch: %d != %d", len(ra), len(dec))
	}
	if len(ra) < 3 {
		return nil, fmt.Errorf("Need at least 3 corners for a polygon, got %d", len(ra))
	}
	ring := make([][]float64, 0, len(ra)+1)
	for i := range ra {
		ring = append(ring, []float64{ra[i], dec[i]})
	}
	ring = append(ring, []float64{ra[0], dec[0]})
	return geojson.NewPolygon([][][]float64{ring}), nil
}
