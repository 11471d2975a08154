package model

import (
	"fmt"
	"time"
)

// DATE-OBS cards in exposure metadata do not all adhere to one format:
// some carry fractional seconds, some a trailing Z, some only a date.
// Thus we need lenient "multi-format" parsing functionality, implemented here.

// StandardObsTimeLayout is the preferred format when writing observation times
const StandardObsTimeLayout = "2006-01-02T15:04:05.999999999Z"

var obsTimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05Z",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseObsTime is a drop-in replacement for time.Parse, but matching against
// multiple possible DATE-OBS formats
func ParseObsTime(obsTime string) (time.Time, error) {
	for _, layout := range obsTimeLayouts {
		if output, err := time.Parse(layout, obsTime); err == nil {
			return output, nil
		}
	}
	return time.Time{}, fmt.Errorf("Date could not be parsed by any expected time format: `%s`", obsTime)
}
