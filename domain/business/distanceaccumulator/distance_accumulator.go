package distanceaccumulator

import (
	"github.com/umahmood/haversine"

	"bikeshare/domain/entities/station"
)

// DistanceAccumulator struct that collects the straight-line distance traveled in a group of trips
// + Counter: counts the amount of trips whose stations have known coordinates
// + TotalDistance: sum of distances traveled, in kilometers
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

// UpdateAccumulator adds the distance between both stations. Trips with a station that is not in
// the catalog are ignored.
func (da *DistanceAccumulator) UpdateAccumulator(catalog map[string]station.StationData, startStation string, endStation string) {
	km, ok := GetDistance(catalog, startStation, endStation)
	if !ok {
		return
	}
	da.Counter += 1
	da.TotalDistance += km
}

func (da *DistanceAccumulator) IsEmpty() bool {
	return da.Counter == 0
}

func (da *DistanceAccumulator) GetAverageDistance() float64 {
	if da.Counter == 0 {
		panic("[DistanceAccumulator] cannot get average, counter is zero")
	}
	return da.TotalDistance / float64(da.Counter)
}

// GetDistance returns the distance in kilometers between two stations of the catalog using haversine formula
func GetDistance(catalog map[string]station.StationData, startStation string, endStation string) (float64, bool) {
	start, ok := catalog[startStation]
	if !ok {
		return 0, false
	}

	end, ok := catalog[endStation]
	if !ok {
		return 0, false
	}

	station1 := haversine.Coord{Lat: start.Latitude, Lon: start.Longitude}
	station2 := haversine.Coord{Lat: end.Latitude, Lon: end.Longitude}

	_, km := haversine.Distance(station1, station2)
	return km, true
}
