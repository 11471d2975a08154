package exposureindex

import (
	"database/sql"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/jonathansick-shadow/skymap/exposureindex/db"
	"github.com/jonathansick-shadow/skymap/util"
)

// ExposuresHandler is a handler for /localindex/exposures/{visit}
// @Title localIndexExposuresHandler
// @Description returns the indexed detector footprints for one visit
// @Accept  plain
// @Param   visit  path  int  true  "The visit number"
// @Success 200 {object}  geojson.FeatureCollection
// @Failure 404 {object}  string
// @Router /localindex/exposures/{visit} [get]
type ExposuresHandler struct {
	Context Context
}

// NewExposuresHandler creates a new handler using the given DB
func NewExposuresHandler(connectionProvider db.ConnectionProvider) (*ExposuresHandler, error) {
	database, err := connectionProvider(&util.BasicLogContext{})
	if err != nil {
		return nil, err
	}
	return &ExposuresHandler{Context: Context{DB: database}}, nil
}

// ServeHTTP implements the http.Handler interface for the ExposuresHandler type
func (h ExposuresHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	visitStr, ok := mux.Vars(r)["visit"]
	if !ok {
		message := "No visit found in URL"
		util.LogAlert(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		return
	}
	visit, err := strconv.Atoi(visitStr)
	if err != nil {
		message := fmt.Sprintf("The visit value of %v is invalid", visitStr)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusBadRequest)
		return
	}

	tx, err := h.Context.DB.Begin()
	if err != nil {
		message := fmt.Sprintf("Could not begin DB transaction: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	defer tx.Commit()

	multiResult, err := visitExposures(tx, visit)
	if err == sql.ErrNoRows {
		message := fmt.Sprintf("Visit not found: %d", visit)
		util.LogInfo(&h.Context, message)
		util.HTTPError(r, w, &h.Context, message, http.StatusNotFound)
		tx.Rollback()
		return
	}
	if err != nil {
		message := fmt.Sprintf("Server error searching for visit: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		tx.Rollback()
		return
	}

	featureCollection, err := multiResult.GeoJSONFeatureCollection()
	if err != nil {
		message := fmt.Sprintf("Error converting to feature collection: %v", err)
		util.LogSimpleErr(&h.Context, message, err)
		util.HTTPError(r, w, &h.Context, message, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(featureCollection.String()))
}
