package footprint

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/jonathansick-shadow/skymap/util"
)

// IDListSeparator separates identifiers in visit and ccd list arguments,
// e.g. "6866^6867^6868"
const IDListSeparator = "^"

// ParseIDList parses a separator-delimited list of integer identifiers,
// preserving order
func ParseIDList(raw string) ([]int, error) {
	if raw == "" {
		return nil, fmt.Errorf("Empty identifier list")
	}
	parts := strings.Split(raw, IDListSeparator)
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("Invalid identifier %q in list %q", part, raw)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// ParseIDSet parses a separator-delimited list into a membership set
func ParseIDSet(raw string) (map[int]bool, error) {
	ids, err := ParseIDList(raw)
	if err != nil {
		return nil, err
	}
	set := make(map[int]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set, nil
}

// parseCoverageOptions builds aggregation options from request query
// parameters: visits (required), ccds, ccdKey
func parseCoverageOptions(r *http.Request) (Options, error) {
	opts := Options{CCDKey: r.FormValue("ccdKey")}

	visits, err := ParseIDList(r.FormValue("visits"))
	if err != nil {
		return Options{}, util.HTTPErr{Status: http.StatusBadRequest,
			Message: fmt.Sprintf("The visits value %q is invalid: %v", r.FormValue("visits"), err)}
	}
	opts.Visits = visits

	if raw := r.FormValue("ccds"); raw != "" {
		if opts.CCDs, err = ParseIDSet(raw); err != nil {
			return Options{}, util.HTTPErr{Status: http.StatusBadRequest,
				Message: fmt.Sprintf("The ccds value %q is invalid: %v", raw, err)}
		}
	}

	return opts, nil
}
