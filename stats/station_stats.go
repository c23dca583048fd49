package stats

import (
	"fmt"

	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// StationStats most popular stations and trip.
// The distance fields are only set when a station catalog with coordinates is available.
type StationStats struct {
	PopularStartStation   string   `json:"popular_start_station"`
	PopularEndStation     string   `json:"popular_end_station"`
	PopularTrip           string   `json:"popular_trip"`
	PopularTripDistanceKm *float64 `json:"popular_trip_distance_km,omitempty"`
	AverageDistanceKm     *float64 `json:"average_distance_km,omitempty"`
}

type stationPair struct {
	start string
	end   string
}

// TripKey returns the key that identifies a combination of start and end station
func TripKey(startStation string, endStation string) string {
	return fmt.Sprintf("Start Station: %s, End Station: %s", startStation, endStation)
}

// ComputeStationStats returns the most common start station, end station and combination of both.
// catalog can be nil.
func ComputeStationStats(table *trip.Table, catalog map[string]station.StationData) (*StationStats, error) {
	if table.Len() == 0 {
		return nil, ErrNoTrips
	}

	startStations := frequency.NewCounter[string]()
	endStations := frequency.NewCounter[string]()
	trips := frequency.NewCounter[stationPair]()
	distances := distanceaccumulator.NewDistanceAccumulator()

	for _, tripData := range table.Rows() {
		startStations.Add(tripData.StartStation)
		endStations.Add(tripData.EndStation)
		trips.Add(stationPair{start: tripData.StartStation, end: tripData.EndStation})
		if len(catalog) > 0 {
			distances.UpdateAccumulator(catalog, tripData.StartStation, tripData.EndStation)
		}
	}

	popularStart, _, _ := startStations.Mode()
	popularEnd, _, _ := endStations.Mode()
	popularTrip, _, _ := trips.Mode()

	stationStats := &StationStats{
		PopularStartStation: popularStart,
		PopularEndStation:   popularEnd,
		PopularTrip:         TripKey(popularTrip.start, popularTrip.end),
	}

	if km, ok := distanceaccumulator.GetDistance(catalog, popularTrip.start, popularTrip.end); ok {
		stationStats.PopularTripDistanceKm = &km
	}

	if !distances.IsEmpty() {
		average := distances.GetAverageDistance()
		stationStats.AverageDistanceKm = &average
	}

	return stationStats, nil
}
