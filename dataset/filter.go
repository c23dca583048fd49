package dataset

import (
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/utils"
)

// Filter returns a new table with the trips that match month and day, keeping their order.
// "all" disables the corresponding filter. Filtering a filtered table again with the same
// values returns the same trips.
func Filter(table *trip.Table, month string, day string) *trip.Table {
	monthIdx, filterByMonth := 0, month != filter.All
	if filterByMonth {
		// the month was already validated, unknown names keep no trips
		monthIdx, _ = filter.MonthIndex(month)
	}

	filterByDay := day != filter.All
	dayName := utils.Title(day)

	filtered := make([]*trip.TripData, 0, table.Len())
	for _, tripData := range table.Rows() {
		if filterByMonth && tripData.Month != monthIdx {
			continue
		}
		if filterByDay && tripData.DayOfWeek != dayName {
			continue
		}
		filtered = append(filtered, tripData)
	}

	return table.WithRows(filtered)
}
