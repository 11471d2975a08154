package footprint

import "errors"

// limitMargin is the fixed margin added on every side of the view, degrees
const limitMargin = 0.1

// ErrNoFootprints is returned when limits are requested for an empty
// coverage pass: no exposures matched, or every metadata fetch failed
var ErrNoFootprints = errors.New("no valid footprints: no exposures matched or all metadata fetches failed")

// Limits is the view rectangle of a coverage plot. XLim is ordered
// (max, min) so the RA axis reads right to left, the conventional sky
// orientation; YLim is ordered (min, max).
type Limits struct {
	XLim [2]float64
	YLim [2]float64
}

// ComputeLimits reduces the accumulated corner points to view limits with
// a fixed margin. It fails on empty input rather than produce an
// undefined reduction.
func ComputeLimits(ras, decs []float64) (Limits, error) {
	if len(ras) == 0 || len(decs) == 0 {
		return Limits{}, ErrNoFootprints
	}
	return Limits{
		XLim: [2]float64{Percent(ras, 1) + limitMargin, Percent(ras, 0) - limitMargin},
		YLim: [2]float64{Percent(decs, 0) - limitMargin, Percent(decs, 1) + limitMargin},
	}, nil
}

// Contains reports whether a sky position falls strictly inside the view
func (l Limits) Contains(ra, dec float64) bool {
	return l.XLim[1] < ra && ra < l.XLim[0] && l.YLim[0] < dec && dec < l.YLim[1]
}
