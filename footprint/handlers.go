package footprint

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/jonathansick-shadow/skymap/butler"
	"github.com/jonathansick-shadow/skymap/render"
	"github.com/jonathansick-shadow/skymap/util"
	"github.com/venicegeo/geojson-go/geojson"
)

// ButlerProvider is a function that can provide an open repository handle
type ButlerProvider func(util.LogContext) (*butler.Butler, error)

// errStatus extracts the HTTP status from an error, defaulting to 400 for
// the request parsing paths that use it
func errStatus(err error) int {
	if herr, ok := err.(util.HTTPErr); ok {
		return herr.Status
	}
	return http.StatusBadRequest
}

// CoverageHandler is a handler for /coverage
// @Title coverageHandler
// @Description computes visit footprints and returns them as GeoJSON
// @Accept  plain
// @Param   visits  query   string  true   "Visits to cover, as V1^V2^V3"
// @Param   ccds    query   string  false  "Restrict to these detector serials, as C1^C2"
// @Param   ccdKey  query   string  false  "Data ID field naming the detector (default ccd)"
// @Success 200 {object}  geojson.FeatureCollection
// @Failure 400 {object}  string
// @Router /coverage [get]
type CoverageHandler struct {
	Context Context
}

// NewCoverageHandler creates a new handler over the given repository
func NewCoverageHandler(provider ButlerProvider) (*CoverageHandler, error) {
	b, err := provider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}
	return &CoverageHandler{Context: Context{Butler: b}}, nil
}

// ServeHTTP implements the http.Handler interface for the CoverageHandler type
func (h CoverageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	opts, err := parseCoverageOptions(r)
	if err != nil {
		util.HTTPError(r, w, &h.Context, err.Error(), errStatus(err))
		return
	}

	cam, err := h.Context.Butler.Camera()
	if err != nil {
		message := fmt.Sprintf("Could not load the camera description: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}

	report := DrawVisits(&h.Context, h.Context.Butler, cam, nullCanvas{}, opts)
	if report.Plotted() == 0 {
		util.HTTPError(r, w, &h.Context, ErrNoFootprints.Error(), http.StatusNotFound)
		return
	}

	multiResult, err := report.FeatureCollection()
	if err == nil {
		var featureCollection *geojson.FeatureCollection
		if featureCollection, err = multiResult.GeoJSONFeatureCollection(); err == nil {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Coverage-Failures", strconv.Itoa(len(report.Failures)))
			w.Write([]byte(featureCollection.String()))
			return
		}
	}
	message := fmt.Sprintf("Error converting to feature collection: %v", err)
	util.LogSimpleErr(&h.Context, message, err)
	util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
}

// PlotHandler is a handler for /coverage/plot.png
// @Title coveragePlotHandler
// @Description renders the coverage plot for a set of visits
// @Accept  plain
// @Param   visits   query   string  true   "Visits to cover, as V1^V2^V3"
// @Param   ccds     query   string  false  "Restrict to these detector serials"
// @Param   ccdKey   query   string  false  "Data ID field naming the detector"
// @Param   patches  query   bool    false  "True: overlay sky map patch boundaries"
// @Success 200 image/png
// @Failure 400 {object}  string
// @Router /coverage/plot.png [get]
type PlotHandler struct {
	Context Context
}

// NewPlotHandler creates a new handler over the given repository
func NewPlotHandler(provider ButlerProvider) (*PlotHandler, error) {
	b, err := provider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}
	return &PlotHandler{Context: Context{Butler: b}}, nil
}

// ServeHTTP implements the http.Handler interface for the PlotHandler type
func (h PlotHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	opts, err := parseCoverageOptions(r)
	if err != nil {
		util.HTTPError(r, w, &h.Context, err.Error(), errStatus(err))
		return
	}
	showPatches, _ := strconv.ParseBool(r.FormValue("patches"))

	cam, err := h.Context.Butler.Camera()
	if err != nil {
		message := fmt.Sprintf("Could not load the camera description: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}

	figure := render.NewFigure()
	report := DrawVisits(&h.Context, h.Context.Butler, cam, figure, opts)

	limits, err := report.Limits()
	if errors.Is(err, ErrNoFootprints) {
		util.HTTPError(r, w, &h.Context, err.Error(), http.StatusNotFound)
		return
	}
	figure.SetLimits(limits.XLim, limits.YLim)

	if showPatches {
		sm, err := h.Context.Butler.SkyMap()
		if err != nil {
			message := fmt.Sprintf("Could not load the sky map: %v", err)
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
			return
		}
		if err = DrawPatchOverlay(figure, sm, limits); err != nil {
			message := fmt.Sprintf("Error drawing the patch overlay: %v", err)
			util.LogSimpleErr(&h.Context, message, err)
			util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Coverage-Failures", strconv.Itoa(len(report.Failures)))
	if err = figure.WritePNG(w); err != nil {
		// headers are already gone; all we can do is log
		util.LogSimpleErr(&h.Context, "Error writing plot PNG", err)
	}
}
