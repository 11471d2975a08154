package skymap

import (
	"encoding/json"
	"fmt"
)

// Config describes an equatorial sky map: a band of sky divided along
// right ascension into overlapping tracts, each tract divided into patches.
type Config struct {
	// NumTracts is the number of tracts around the band
	NumTracts int `json:"numTracts"`
	// DecRange is the declination range of the band, degrees
	DecRange [2]float64 `json:"decRange"`
	// PatchInnerDimensions are the dimensions of the inner region of
	// patches (x, y pixels)
	PatchInnerDimensions [2]int `json:"patchInnerDimensions"`
	// PatchBorder is the border between patch inner and outer bbox (pixels)
	PatchBorder int `json:"patchBorder"`
	// TractOverlap is the minimum overlap between adjacent tracts, degrees
	TractOverlap float64 `json:"tractOverlap"`
	// PixelScale is the nominal pixel scale (arcsec/pixel)
	PixelScale float64 `json:"pixelScale"`
	// Projection is the FITS WCS projection code; only TAN is supported
	Projection string `json:"projection"`
	// Rotation is the WCS rotation relative to cardinal, degrees
	Rotation float64 `json:"rotation"`
}

// DefaultConfig returns the stock configuration
func DefaultConfig() Config {
	return Config{
		NumTracts:            4,
		DecRange:             [2]float64{-1.25, 1.25},
		PatchInnerDimensions: [2]int{4000, 4000},
		PatchBorder:          100,
		TractOverlap:         1.0,
		PixelScale:           0.333,
		Projection:           "TAN",
	}
}

// ParseConfig decodes a JSON sky map configuration over the defaults
func ParseConfig(data []byte) (Config, error) {
	config := DefaultConfig()
	if err := json.Unmarshal(data, &config); err != nil {
		return Config{}, err
	}
	return config, config.Validate()
}

// Validate checks the configuration for values the construction code
// cannot work with
func (c Config) Validate() error {
	if c.NumTracts < 3 {
		return fmt.Errorf("numTracts=%d; the TAN projection requires at least 3", c.NumTracts)
	}
	if c.DecRange[0] >= c.DecRange[1] {
		return fmt.Errorf("decRange %v is not increasing", c.DecRange)
	}
	if c.PatchInnerDimensions[0] < 1 || c.PatchInnerDimensions[1] < 1 {
		return fmt.Errorf("patchInnerDimensions %v must be positive", c.PatchInnerDimensions)
	}
	if c.PatchBorder < 0 {
		return fmt.Errorf("patchBorder=%d must not be negative", c.PatchBorder)
	}
	if c.PixelScale <= 0 {
		return fmt.Errorf("pixelScale=%g must be positive", c.PixelScale)
	}
	return nil
}
