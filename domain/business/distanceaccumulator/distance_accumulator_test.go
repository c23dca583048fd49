package distanceaccumulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/station"
)

func testCatalog() map[string]station.StationData {
	return map[string]station.StationData{
		"Origin":     {Name: "Origin", Latitude: 0, Longitude: 0},
		"One Degree": {Name: "One Degree", Latitude: 1, Longitude: 0},
	}
}

func TestGetDistance(t *testing.T) {
	catalog := testCatalog()

	km, ok := GetDistance(catalog, "Origin", "One Degree")
	require.True(t, ok)
	// one degree of latitude is ~111 km
	assert.InDelta(t, 111.0, km, 1.0)

	km, ok = GetDistance(catalog, "Origin", "Origin")
	require.True(t, ok)
	assert.Equal(t, 0.0, km)

	_, ok = GetDistance(catalog, "Origin", "Nowhere")
	assert.False(t, ok)
}

func TestDistanceAccumulator(t *testing.T) {
	catalog := testCatalog()
	da := NewDistanceAccumulator()
	assert.True(t, da.IsEmpty())

	da.UpdateAccumulator(catalog, "Origin", "One Degree")
	da.UpdateAccumulator(catalog, "Origin", "Origin")
	da.UpdateAccumulator(catalog, "Nowhere", "Origin")

	// the trip from an unknown station is not counted
	assert.Equal(t, 2, da.Counter)
	assert.InDelta(t, 55.5, da.GetAverageDistance(), 0.5)
}

func TestDistanceAccumulator_AverageOfNothingPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewDistanceAccumulator().GetAverageDistance()
	})
}

func TestDistanceAccumulator_UnknownStationsOnly(t *testing.T) {
	da := NewDistanceAccumulator()
	da.UpdateAccumulator(testCatalog(), "Nowhere", "Elsewhere")

	assert.True(t, da.IsEmpty())
	assert.Equal(t, 0.0, da.TotalDistance)
}
