package exposureindex

import (
	"database/sql"

	"github.com/jonathansick-shadow/skymap/exposureindex/db"
	"github.com/jonathansick-shadow/skymap/model"
)

// coverageResultFromExposure rebuilds a coverage result from an index
// row; the stored corners stand in for a fresh WCS projection
func coverageResultFromExposure(exposure *db.IndexedExposure) (model.IndexedExposureResult, error) {
	geometry, err := model.PolygonFromRaDec(exposure.CornerRA[:], exposure.CornerDec[:])
	if err != nil {
		return model.IndexedExposureResult{}, err
	}

	return model.IndexedExposureResult{
		BasicCoverageResult: model.BasicCoverageResult{
			Visit:    exposure.Visit,
			CCD:      exposure.CCD,
			CCDKey:   exposure.CCDKey,
			Geometry: geometry,
			Filter:   exposure.Filter,
			ObsDate:  exposure.ObsDate,
			ExpTime:  exposure.ExpTime,
		},
		FootprintCorners: model.FootprintCorners{
			RA:  exposure.CornerRA[:],
			Dec: exposure.CornerDec[:],
		},
	}, nil
}

func visitExposures(tx *sql.Tx, visit int) (model.GeoJSONFeatureCollectionCreator, error) {
	exposures, err := db.GetExposuresByVisit(tx, visit)
	if err != nil {
		return nil, err
	}
	if len(exposures) == 0 {
		return nil, sql.ErrNoRows
	}

	multiResult := model.MultiCoverageResult{
		FeatureCreators: make([]model.GeoJSONFeatureCreator, len(exposures)),
	}
	for i, exposure := range exposures {
		if multiResult.FeatureCreators[i], err = coverageResultFromExposure(exposure); err != nil {
			return nil, err
		}
	}

	return multiResult, nil
}
