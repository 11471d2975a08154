// Package skymap tiles a band of sky into overlapping tracts, each divided
// into a grid of patches, for coadded-image bookkeeping. The layout is an
// equatorial pixelization: tracts are equal slices of right ascension over
// a fixed declination range.
package skymap

import (
	"os"

	"github.com/jonathansick-shadow/skymap/geom"
)

// SkyMap is a collection of overlapping tracts covering a band of sky
type SkyMap struct {
	config Config
	tracts []*TractInfo
}

// NewEquatSkyMap constructs a sky map from the given configuration
func NewEquatSkyMap(config Config) (*SkyMap, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	factory, err := geom.NewWcsFactory(
		geom.AngleFromArcseconds(config.PixelScale),
		config.Projection,
		geom.AngleFromDegrees(config.Rotation),
	)
	if err != nil {
		return nil, err
	}

	decMin := config.DecRange[0]
	decMax := config.DecRange[1]
	midDec := (decMin + decMax) / 2
	tractWidthRA := 360.0 / float64(config.NumTracts)

	sm := &SkyMap{config: config}
	for id := 0; id < config.NumTracts; id++ {
		begRA := tractWidthRA * float64(id)
		endRA := begRA + tractWidthRA
		vertexList := []geom.SpherePoint{
			geom.NewSpherePointDeg(begRA, decMin),
			geom.NewSpherePointDeg(endRA, decMin),
			geom.NewSpherePointDeg(endRA, decMax),
			geom.NewSpherePointDeg(begRA, decMax),
		}

		midRA := begRA + tractWidthRA/2
		ctrCoord := geom.NewSpherePointDeg(midRA, midDec)

		// crval must have Dec=0 for symmetry about the equator
		crValCoord := geom.NewSpherePointDeg(midRA, 0)
		wcs, err := factory.MakeWcs(geom.Point2D{}, crValCoord)
		if err != nil {
			return nil, err
		}

		tract, err := newTractInfo(
			id,
			config.PatchInnerDimensions,
			config.PatchBorder,
			ctrCoord,
			vertexList,
			geom.AngleFromDegrees(config.TractOverlap),
			geom.AngleFromArcseconds(config.PixelScale),
			wcs,
		)
		if err != nil {
			return nil, err
		}
		sm.tracts = append(sm.tracts, tract)
	}

	return sm, nil
}

// Parse builds a sky map from a JSON configuration
func Parse(data []byte) (*SkyMap, error) {
	config, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}
	return NewEquatSkyMap(config)
}

// Load builds a sky map from a JSON configuration file
func Load(path string) (*SkyMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Config returns the configuration the sky map was built from
func (sm *SkyMap) Config() Config {
	return sm.config
}

// Len returns the number of tracts
func (sm *SkyMap) Len() int {
	return len(sm.tracts)
}

// Tract returns the tract with the given id
func (sm *SkyMap) Tract(id int) *TractInfo {
	return sm.tracts[id]
}

// Tracts returns every tract in id order
func (sm *SkyMap) Tracts() []*TractInfo {
	return sm.tracts
}

// FindTract returns the tract whose center is nearest the specified coord.
// If tracts do not cover the whole sky the returned tract may not actually
// include the coord.
func (sm *SkyMap) FindTract(coord geom.SpherePoint) *TractInfo {
	var nearest *TractInfo
	var nearestSep geom.Angle
	for _, tract := range sm.tracts {
		sep := coord.AngularSeparation(tract.CtrCoord())
		if nearest == nil || sep < nearestSep {
			nearest = tract
			nearestSep = sep
		}
	}
	return nearest
}
