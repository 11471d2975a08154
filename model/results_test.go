package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/venicegeo/geojson-go/geojson"
)

// General test mocks and utils

var mockPolygon = geojson.NewPolygon([][][]float64{[][]float64{
	[]float64{30, 10}, []float64{40, 40}, []float64{20, 40}, []float64{10, 20}, []float64{30, 10},
}})

var mockBasicCoverageResult = BasicCoverageResult{
	Visit:    100,
	CCD:      3,
	Geometry: mockPolygon,
	Filter:   "r",
	ObsDate:  time.Unix(123, 0).UTC(),
	ExpTime:  30,
}

var mockFootprintCorners = FootprintCorners{
	RA:  []float64{30, 40, 20, 10},
	Dec: []float64{10, 40, 40, 20},
}

func assertFeatureContainsBasicCoverageResult(t *testing.T, feature *geojson.Feature, result BasicCoverageResult) {
	assert.Equal(t, result.ID(), feature.IDStr())
	assert.Equal(t, result.Filter, feature.PropertyString("filter"))
	assert.Equal(t, result.ObsDate.Format(StandardObsTimeLayout), feature.PropertyString("obsDate"))
	assert.Equal(t, result.ExpTime, feature.PropertyFloat("expTime"))
	assert.Equal(t, result.Visit, feature.PropertyInt("visit"))
	assert.Equal(t, result.CCD, feature.PropertyInt(DefaultCCDKey))
}

// Actual tests

func TestBasicCoverageResult_GeoJSONFeature(t *testing.T) {
	feature, err := mockBasicCoverageResult.GeoJSONFeature()

	assert.Nil(t, err)
	assert.NotNil(t, feature)
	assertFeatureContainsBasicCoverageResult(t, feature, mockBasicCoverageResult)
	assert.Equal(t, "100-3", feature.IDStr())
	assert.Nil(t, feature.Bbox.Valid())
}

func TestBasicCoverageResult_CustomCCDKey(t *testing.T) {
	result := mockBasicCoverageResult
	result.CCDKey = "sensor"

	feature, err := result.GeoJSONFeature()

	assert.Nil(t, err)
	assert.Equal(t, result.CCD, feature.PropertyInt("sensor"))
}

func TestIndexedExposureResult_GeoJSONFeature(t *testing.T) {
	result := IndexedExposureResult{
		BasicCoverageResult: mockBasicCoverageResult,
		FootprintCorners:    mockFootprintCorners,
	}

	feature, err := result.GeoJSONFeature()

	assert.Nil(t, err)
	assertFeatureContainsBasicCoverageResult(t, feature, mockBasicCoverageResult)
	assert.Equal(t, mockFootprintCorners.RA, feature.Properties["cornerRa"])
	assert.Equal(t, mockFootprintCorners.Dec, feature.Properties["cornerDec"])
}

func TestMultiCoverageResult_GeoJSONFeatureCollection(t *testing.T) {
	multi := MultiCoverageResult{FeatureCreators: []GeoJSONFeatureCreator{
		mockBasicCoverageResult,
		IndexedExposureResult{mockBasicCoverageResult, mockFootprintCorners},
	}}

	collection, err := multi.GeoJSONFeatureCollection()

	assert.Nil(t, err)
	assert.Len(t, collection.Features, 2)
}

func TestPolygonFromRaDec(t *testing.T) {
	polygon, err := PolygonFromRaDec([]float64{0, 1, 1, 0}, []float64{0, 0, 1, 1})
	assert.Nil(t, err)
	assert.Len(t, polygon.Coordinates[0], 5, "ring should be closed")
	assert.Equal(t, polygon.Coordinates[0][0], polygon.Coordinates[0][4])

	_, err = PolygonFromRaDec([]float64{0, 1}, []float64{0})
	assert.NotNil(t, err)
}

func TestParseObsTime(t *testing.T) {
	for _, raw := range []string{
		"2015-02-18T05:12:00.123456789Z",
		"2015-02-18T05:12:00.5",
		"2015-02-18T05:12:00Z",
		"2015-02-18T05:12:00",
		"2015-02-18",
	} {
		parsed, err := ParseObsTime(raw)
		assert.Nil(t, err, "failed to parse %s", raw)
		assert.Equal(t, 2015, parsed.Year())
	}

	_, err := ParseObsTime("18/02/2015")
	assert.NotNil(t, err)
}
