package db

import "time"

// IndexedExposure is one row of the local exposure index: a single
// detector footprint computed at ingest time
type IndexedExposure struct {
	Visit   int
	CCD     int
	CCDKey  string
	Filter  string
	ObsDate time.Time
	ExpTime float64
	// footprint corners in degrees, in LL, LR, UR, UL order
	CornerRA  [4]float64
	CornerDec [4]float64
}
