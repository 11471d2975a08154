package footprint

import (
	"fmt"

	"github.com/jonathansick-shadow/skymap/camera"
	"github.com/jonathansick-shadow/skymap/geom"
	"github.com/jonathansick-shadow/skymap/model"
	"github.com/jonathansick-shadow/skymap/util"
)

// MetadataGetter is the slice of the repository interface the coverage
// pass needs
type MetadataGetter interface {
	GetMetadata(dataset string, dataID model.DataID) (model.Metadata, error)
}

// Options selects what a coverage pass draws
type Options struct {
	// Visits to draw, in order; the index drives the color cycle
	Visits []int
	// CCDs restricts drawing to these detector serials; nil means all
	CCDs map[int]bool
	// CCDKey is the data ID field naming the detector; empty means "ccd"
	CCDKey string
}

// FetchFailure records one (visit, ccd) pair whose footprint could not be
// produced, and why
type FetchFailure struct {
	Visit int
	CCD   int
	Err   error
}

// Report is the outcome of a coverage pass. Failed pairs are skipped, not
// fatal; they are counted here so partial coverage is visible instead of
// silently thin.
type Report struct {
	// RA and Dec accumulate every projected corner, for limit computation
	RA  []float64
	Dec []float64
	// Results holds one entry per footprint drawn
	Results []model.BasicCoverageResult
	// Failures holds one entry per skipped (visit, ccd) pair
	Failures []FetchFailure
}

// Plotted returns the number of footprints drawn
func (r *Report) Plotted() int {
	return len(r.Results)
}

// Limits computes the view limits over the accumulated points
func (r *Report) Limits() (Limits, error) {
	return ComputeLimits(r.RA, r.Dec)
}

// FeatureCollection renders the drawn footprints as GeoJSON
func (r *Report) FeatureCollection() (*model.MultiCoverageResult, error) {
	creators := make([]model.GeoJSONFeatureCreator, len(r.Results))
	for i, result := range r.Results {
		creators[i] = result
	}
	return &model.MultiCoverageResult{FeatureCreators: creators}, nil
}

// DrawVisits walks visits x detectors, fetches each exposure's metadata,
// projects the detector bounding box to the sky, and issues one filled
// draw call per footprint. Detectors are skipped unless they are SCIENCE
// type and pass the optional serial allowlist. A failed fetch or
// projection skips that pair and the pass continues.
func DrawVisits(ctx util.LogContext, getter MetadataGetter, cam *camera.Camera, canvas Canvas, opts Options) *Report {
	ccdKey := opts.CCDKey
	if ccdKey == "" {
		ccdKey = model.DefaultCCDKey
	}

	report := &Report{}
	for i, visit := range opts.Visits {
		util.LogInfo(ctx, fmt.Sprintf("%d visit=%d", i, visit))
		for _, det := range cam.Detectors {
			if det.Type != camera.Science {
				continue
			}
			if opts.CCDs != nil && !opts.CCDs[det.Serial] {
				continue
			}

			result, ra, dec, err := projectOne(getter, det, visit, ccdKey)
			if err != nil {
				report.Failures = append(report.Failures, FetchFailure{Visit: visit, CCD: det.Serial, Err: err})
				continue
			}

			report.RA = append(report.RA, ra...)
			report.Dec = append(report.Dec, dec...)
			report.Results = append(report.Results, *result)
			canvas.FillPolygon(ra, dec, Palette[i%len(Palette)])
		}
	}

	util.LogInfo(ctx, fmt.Sprintf("Coverage pass complete: %d footprints drawn, %d skipped",
		report.Plotted(), len(report.Failures)))
	if report.Plotted() == 0 && len(report.Failures) > 0 {
		util.LogAlert(ctx, "Every footprint fetch failed; the coverage plot would be empty")
	}

	return report
}

// ProjectFootprint fetches one (visit, ccd) pair and returns its corner
// coordinates without drawing; the exposure index importer uses this
func ProjectFootprint(getter MetadataGetter, det camera.Detector, visit int, ccdKey string) (*model.BasicCoverageResult, []float64, []float64, error) {
	if ccdKey == "" {
		ccdKey = model.DefaultCCDKey
	}
	return projectOne(getter, det, visit, ccdKey)
}

func projectOne(getter MetadataGetter, det camera.Detector, visit int, ccdKey string) (*model.BasicCoverageResult, []float64, []float64, error) {
	dataID := model.DataID{"visit": visit, ccdKey: det.Serial}
	md, err := getter.GetMetadata(model.CalexpMetadataDataset, dataID)
	if err != nil {
		return nil, nil, nil, err
	}
	wcs, err := geom.WcsFromMetadata(md)
	if err != nil {
		return nil, nil, nil, err
	}
	ra, dec, err := BBoxToRaDec(det.BBox, wcs)
	if err != nil {
		return nil, nil, nil, err
	}

	geometry, err := model.PolygonFromRaDec(ra, dec)
	if err != nil {
		return nil, nil, nil, err
	}
	result := &model.BasicCoverageResult{
		Visit:    visit,
		CCD:      det.Serial,
		CCDKey:   ccdKey,
		Geometry: geometry,
	}
	// descriptive cards are optional; footprints draw without them
	result.Filter, _ = md.String("FILTER")
	result.ExpTime, _ = md.Float("EXPTIME")
	if raw, err := md.String("DATE-OBS"); err == nil {
		result.ObsDate, _ = model.ParseObsTime(raw)
	}

	return result, ra, dec, nil
}
