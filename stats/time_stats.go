package stats

import (
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/trip"
)

// TimeStats most frequent times of travel
type TimeStats struct {
	PopularMonth int    `json:"popular_month"`
	PopularDay   string `json:"popular_day"`
	PopularHour  int    `json:"popular_hour"`
}

// ComputeTimeStats returns the most common month, day of week and start hour of the trips.
// The start hour is derived on the fly, nothing is stored in the table.
func ComputeTimeStats(table *trip.Table) (*TimeStats, error) {
	if table.Len() == 0 {
		return nil, ErrNoTrips
	}

	months := frequency.NewCounter[int]()
	days := frequency.NewCounter[string]()
	hours := frequency.NewCounter[int]()
	for _, tripData := range table.Rows() {
		months.Add(tripData.Month)
		days.Add(tripData.DayOfWeek)
		hours.Add(tripData.Hour())
	}

	popularMonth, _, _ := months.Mode()
	popularDay, _, _ := days.Mode()
	popularHour, _, _ := hours.Mode()

	return &TimeStats{
		PopularMonth: popularMonth,
		PopularDay:   popularDay,
		PopularHour:  popularHour,
	}, nil
}
