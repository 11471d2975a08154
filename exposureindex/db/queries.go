package db

import (
	"database/sql"
)

const exposureColumns = `
	visit, ccd, ccd_key, filter, obs_date, exp_time,
	corner_ll_ra, corner_ll_dec,
	corner_lr_ra, corner_lr_dec,
	corner_ur_ra, corner_ur_dec,
	corner_ul_ra, corner_ul_dec`

func scanExposure(rows *sql.Rows) (*IndexedExposure, error) {
	exposure := IndexedExposure{}
	err := rows.Scan(
		&exposure.Visit, &exposure.CCD, &exposure.CCDKey,
		&exposure.Filter, &exposure.ObsDate, &exposure.ExpTime,
		&exposure.CornerRA[0], &exposure.CornerDec[0],
		&exposure.CornerRA[1], &exposure.CornerDec[1],
		&exposure.CornerRA[2], &exposure.CornerDec[2],
		&exposure.CornerRA[3], &exposure.CornerDec[3],
	)
	if err != nil {
		return nil, err
	}
	return &exposure, nil
}

// GetExposure retrieves the index row for one (visit, ccd) pair
func GetExposure(tx *sql.Tx, visit, ccd int) (*IndexedExposure, error) {
	rows, err := tx.Query(`
		SELECT `+exposureColumns+`
		FROM public.exposures
		WHERE visit=$1 AND ccd=$2
		LIMIT 1`,
		visit, ccd,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, sql.ErrNoRows
	}

	return scanExposure(rows)
}

// GetExposuresByVisit retrieves every indexed detector footprint for a
// visit, in detector order
func GetExposuresByVisit(tx *sql.Tx, visit int) ([]*IndexedExposure, error) {
	rows, err := tx.Query(`
		SELECT `+exposureColumns+`
		FROM public.exposures
		WHERE visit=$1
		ORDER BY ccd`,
		visit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	exposures := []*IndexedExposure{}
	for rows.Next() {
		exposure, err := scanExposure(rows)
		if err != nil {
			return nil, err
		}
		exposures = append(exposures, exposure)
	}
	return exposures, rows.Err()
}
