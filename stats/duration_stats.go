package stats

import (
	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
)

// DurationStats total and average trip duration, in the unit of the dataset
type DurationStats struct {
	TotalDuration   float64 `json:"total_duration"`
	AverageDuration float64 `json:"average_duration"`
}

func ComputeDurationStats(table *trip.Table) (*DurationStats, error) {
	if table.Len() == 0 {
		return nil, ErrNoTrips
	}

	accumulator := durationaccumulator.NewDurationAccumulator()
	for _, tripData := range table.Rows() {
		accumulator.UpdateAccumulator(tripData.Duration)
	}

	return &DurationStats{
		TotalDuration:   accumulator.TotalDuration,
		AverageDuration: accumulator.GetAverageDuration(),
	}, nil
}
