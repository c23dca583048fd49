package stats

import "bikeshare/domain/entities"

// Report aggregated output of the four reporters. A nil section means it was not computed,
// e.g. because the filtered table had no trips.
type Report struct {
	Metadata entities.Metadata `json:"metadata"`
	Trips    int               `json:"trips"`
	Time     *TimeStats        `json:"time,omitempty"`
	Stations *StationStats     `json:"stations,omitempty"`
	Duration *DurationStats    `json:"duration,omitempty"`
	Users    *UserStats        `json:"users,omitempty"`
}

func NewReport(metadata entities.Metadata, trips int) *Report {
	return &Report{
		Metadata: metadata,
		Trips:    trips,
	}
}
