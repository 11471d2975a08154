package db

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jonathansick-shadow/skymap/butler"
	"github.com/jonathansick-shadow/skymap/camera"
	"github.com/jonathansick-shadow/skymap/footprint"
	"github.com/jonathansick-shadow/skymap/model"
	"github.com/jonathansick-shadow/skymap/util"
)

// ConnectionProvider is a function that can provide a database connection.
type ConnectionProvider func(util.LogContext) (*sql.DB, error)

// upsertExposureStatement inserts or refreshes one index row; re-running
// an ingest over the same repository is expected
const upsertExposureStatement = `
	INSERT INTO public.exposures (
		visit, ccd, ccd_key, filter, obs_date, exp_time,
		corner_ll_ra, corner_ll_dec,
		corner_lr_ra, corner_lr_dec,
		corner_ur_ra, corner_ur_dec,
		corner_ul_ra, corner_ul_dec
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	ON CONFLICT (visit, ccd) DO UPDATE SET
		ccd_key = EXCLUDED.ccd_key,
		filter = EXCLUDED.filter,
		obs_date = EXCLUDED.obs_date,
		exp_time = EXCLUDED.exp_time,
		corner_ll_ra = EXCLUDED.corner_ll_ra,
		corner_ll_dec = EXCLUDED.corner_ll_dec,
		corner_lr_ra = EXCLUDED.corner_lr_ra,
		corner_lr_dec = EXCLUDED.corner_lr_dec,
		corner_ur_ra = EXCLUDED.corner_ur_ra,
		corner_ur_dec = EXCLUDED.corner_ur_dec,
		corner_ul_ra = EXCLUDED.corner_ul_ra,
		corner_ul_dec = EXCLUDED.corner_ul_dec`

// Importer manages the state for an ingest job: it walks every exposure
// of a repository, computes the detector footprints, and upserts them
// into the index.
type Importer struct {
	root           string
	ccdKey         string
	numWorkers     int
	dbConnProvider ConnectionProvider
}

// NewImporter initializes a new importer over the repository at root.
func NewImporter(root, ccdKey string, numWorkers int, dbConnProvider ConnectionProvider) *Importer {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Importer{
		root:           root,
		ccdKey:         ccdKey,
		numWorkers:     numWorkers,
		dbConnProvider: dbConnProvider,
	}
}

type jobStats struct {
	NumberAddedOrUpdated int
	NumberError          int
	StartTime            time.Time
	EndTime              time.Time
}

func (stats *jobStats) String() string {
	return fmt.Sprintf(`
		Start:	%v
		End:	%v
		#Added:		%v
		#Error:		%v
		`,
		stats.StartTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.EndTime.Format("Mon Jan _2 15:04:05 2006"),
		stats.NumberAddedOrUpdated,
		stats.NumberError)
}

type footprintResult struct {
	exposure *IndexedExposure
	visit    int
	ccd      int
	err      error
}

// Import performs the actual read and update.
// The database connection is opened right before the ingest and closed
// immediately after.
func (imp *Importer) Import(ctx util.LogContext) (result string, err error) {
	repo, err := butler.Open(imp.root)
	if err != nil {
		return "", util.LogSimpleErr(ctx, "Could not open the repository", err)
	}
	cam, err := repo.Camera()
	if err != nil {
		return "", util.LogSimpleErr(ctx, "Could not load the camera description", err)
	}
	visits, err := repo.Visits(model.CalexpMetadataDataset)
	if err != nil {
		return "", util.LogSimpleErr(ctx, "Could not list repository visits", err)
	}

	database, err := imp.dbConnProvider(ctx)
	if err != nil {
		return "", util.LogSimpleErr(ctx, "Could not open database connection", err)
	}
	defer database.Close()

	return imp.ingest(ctx, repo, cam, visits, database)
}

func (imp *Importer) ingest(ctx util.LogContext, repo *butler.Butler, cam *camera.Camera, visits []int, database *sql.DB) (string, error) {
	stmt, err := database.Prepare(upsertExposureStatement)
	if err != nil {
		return "", util.LogSimpleErr(ctx, "Prepare statement failed", err)
	}
	defer stmt.Close()

	util.LogInfo(ctx, fmt.Sprintf("Ingest starting: %d visits, %d workers", len(visits), imp.numWorkers))

	visitQueue := make(chan int, imp.numWorkers)
	resultQueue := make(chan footprintResult, imp.numWorkers)
	workerCompleteChan := make(chan bool, 1)

	// Start the projection workers.
	for i := 0; i < imp.numWorkers; i++ {
		go imp.projectionWorker(repo, cam, visitQueue, resultQueue, workerCompleteChan)
	}

	// Listen for their exit.
	go func() {
		workersDone := 0
		for workersDone < imp.numWorkers {
			<-workerCompleteChan
			workersDone++
		}
		close(resultQueue)
	}()

	// Feed the visits to the workers.
	go func() {
		for _, visit := range visits {
			visitQueue <- visit
		}
		close(visitQueue)
	}()

	var stats jobStats
	stats.StartTime = time.Now()

	// Read the computed footprints and write them into the database.
	for res := range resultQueue {
		if res.err != nil {
			stats.NumberError++
			util.LogAlert(ctx, fmt.Sprintf("Error computing footprint for visit=%d ccd=%d: %v", res.visit, res.ccd, res.err))
			continue
		}
		if err := upsertExposure(stmt, res.exposure); err != nil {
			stats.NumberError++
			util.LogAlert(ctx, fmt.Sprintf("Error inserting exposure visit=%d ccd=%d: %v", res.visit, res.ccd, err))
			continue
		}
		stats.NumberAddedOrUpdated++
	}

	stats.EndTime = time.Now()
	util.LogInfo(ctx, fmt.Sprintf("Ingest complete: %v", stats.String()))
	util.LogInfo(ctx, fmt.Sprintf("Ingest took %s", stats.EndTime.Sub(stats.StartTime)))

	return stats.String(), nil
}

func (imp *Importer) projectionWorker(repo *butler.Butler, cam *camera.Camera, visitQueue <-chan int, resultQueue chan<- footprintResult, completeChan chan<- bool) {
	for visit := range visitQueue {
		for _, det := range cam.Detectors {
			if det.Type != camera.Science {
				continue
			}

			res := footprintResult{visit: visit, ccd: det.Serial}
			coverage, ra, dec, err := footprint.ProjectFootprint(repo, det, visit, imp.ccdKey)
			if err != nil {
				res.err = err
				resultQueue <- res
				continue
			}

			exposure := &IndexedExposure{
				Visit:   coverage.Visit,
				CCD:     coverage.CCD,
				CCDKey:  coverage.CCDKey,
				Filter:  coverage.Filter,
				ObsDate: coverage.ObsDate,
				ExpTime: coverage.ExpTime,
			}
			copy(exposure.CornerRA[:], ra)
			copy(exposure.CornerDec[:], dec)
			res.exposure = exposure
			resultQueue <- res
		}
	}
	completeChan <- true
}

func upsertExposure(stmt *sql.Stmt, exposure *IndexedExposure) error {
	_, err := stmt.Exec(
		exposure.Visit, exposure.CCD, exposure.CCDKey,
		exposure.Filter, exposure.ObsDate, exposure.ExpTime,
		exposure.CornerRA[0], exposure.CornerDec[0],
		exposure.CornerRA[1], exposure.CornerDec[1],
		exposure.CornerRA[2], exposure.CornerDec[2],
		exposure.CornerRA[3], exposure.CornerDec[3],
	)
	return err
}
