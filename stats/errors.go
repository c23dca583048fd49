package stats

import "errors"

// ErrNoTrips is returned by every reporter when the table is empty
var ErrNoTrips = errors.New("no trips match the selected filters")
