package model

// Dataset names recognized by the repository access layer
const (
	// CalexpMetadataDataset is the per-(visit, ccd) calibrated exposure metadata
	CalexpMetadataDataset = "calexp_md"
	// DeepCoaddSkyMapDataset is the tiling used for coadd bookkeeping
	DeepCoaddSkyMapDataset = "deepCoadd_skyMap"
)

// DefaultCCDKey is the data ID field name identifying a detector
const DefaultCCDKey = "ccd"
