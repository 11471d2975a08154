// Package camera models the focal plane of the instrument: the set of
// detectors, their serial ids, their type tags, and their pixel geometry.
package camera

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathansick-shadow/skymap/geom"
)

// DetectorType classifies a detector's role in the focal plane
type DetectorType string

// Detector types; only SCIENCE detectors contribute to coverage plots
const (
	Science   DetectorType = "SCIENCE"
	Focus     DetectorType = "FOCUS"
	Guider    DetectorType = "GUIDER"
	Wavefront DetectorType = "WAVEFRONT"
)

// Detector is one imaging device in the camera mosaic
type Detector struct {
	Serial int          `json:"serial"`
	Name   string       `json:"name"`
	Type   DetectorType `json:"type"`
	// BBox is the detector's pixel bounding box
	BBox geom.Box2I `json:"bbox"`
}

// Camera is a fixed description of the instrument's detector layout.
// Detector order follows the description file and is not guaranteed sorted.
type Camera struct {
	Name      string     `json:"name"`
	Detectors []Detector `json:"detectors"`
}

// Parse decodes a JSON camera description
func Parse(data []byte) (*Camera, error) {
	cam := Camera{}
	if err := json.Unmarshal(data, &cam); err != nil {
		return nil, err
	}
	if len(cam.Detectors) == 0 {
		return nil, fmt.Errorf("Camera description %q contains no detectors", cam.Name)
	}
	for _, det := range cam.Detectors {
		if det.BBox.IsEmpty() {
			return nil, fmt.Errorf("Detector %d of camera %q has an empty bounding box", det.Serial, cam.Name)
		}
	}
	return &cam, nil
}

// Load reads and parses a camera description file
func Load(path string) (*Camera, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}
