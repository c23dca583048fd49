package dataset

import "errors"

var (
	ErrUnknownCity        = errors.New("unknown city")
	ErrMissingColumn      = errors.New("missing column")
	ErrInvalidTripData    = errors.New("invalid trip data")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrInvalidDuration    = errors.New("invalid trip duration")
	ErrInvalidBirthYear   = errors.New("invalid birth year")
	ErrInvalidStationData = errors.New("invalid station data")
)
