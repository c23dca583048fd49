package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
)

const chicagoCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type,Gender,Birth Year
1423854,2017-06-23 15:09:32,2017-06-23 15:14:53,321,Wood St & Hubbard St,Damen Ave & Chicago Ave,Subscriber,Male,1992.0
955915,2017-05-25 18:19:03,2017-05-25 18:45:53,1610,Theater on the Lake,Sheffield Ave & Waveland Ave,Subscriber,Female,1992.0
9031,2017-01-04 08:27:49,2017-01-04 08:34:45,416,May St & Taylor St,Wood St & Taylor St,Subscriber,Male,1981.0
304487,2017-03-06 13:49:38,2017-03-06 13:55:28,350,Christiana Ave & Lawrence Ave,St. Louis Ave & Balmoral Ave,Subscriber,Male,1986.0
45207,2017-01-17 14:53:07,2017-01-17 15:02:01,534,Clark St & Randolph St,Desplaines St & Jackson Blvd,Subscriber,Male,1975.0
1473887,2017-06-26 09:01:20,2017-06-26 09:11:06,586,Clinton St & Washington Blvd,Canal St & Taylor St,Subscriber,Male,1990.0
961916,2017-05-26 16:47:35,2017-05-26 16:53:14,339,Wood St & Hubbard St,Damen Ave & Chicago Ave,Customer,,
`

const washingtonCSV = `,Start Time,End Time,Trip Duration,Start Station,End Station,User Type
1621326,2017-06-21 08:36:34,2017-06-21 08:44:43,489.066,14th & Belmont St NW,15th & K St NW,Subscriber
482740,2017-03-11 10:40:00,2017-03-11 10:46:00,402.549,Yuma St & Tenley Circle NW,Connecticut Ave & Yuma St NW,Subscriber
`

const chicagoStationsCSV = `name,latitude,longitude
Wood St & Hubbard St,41.889899,-87.671473
Damen Ave & Chicago Ave,41.895769,-87.67722
`

func testConfig(dataDir string) Config {
	return Config{
		DataDir:         dataDir,
		TimestampLayout: "2006-01-02 15:04:05",
		Cities: map[string]CityConfig{
			"chicago":       {File: "chicago.csv", HasDemographics: true, StationsFile: "chicago_stations.csv"},
			"new york city": {File: "new_york_city.csv", HasDemographics: true},
			"washington":    {File: "washington.csv"},
		},
		Columns: ColumnsConfig{
			StartTime:    "Start Time",
			EndTime:      "End Time",
			TripDuration: "Trip Duration",
			StartStation: "Start Station",
			EndStation:   "End Station",
			UserType:     "User Type",
			Gender:       "Gender",
			BirthYear:    "Birth Year",
		},
	}
}

func writeDataset(t *testing.T, files map[string]string) string {
	t.Helper()
	dataDir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0600))
	}
	return dataDir
}

func newTestLoader(t *testing.T) *Loader {
	t.Helper()
	dataDir := writeDataset(t, map[string]string{
		"chicago.csv":          chicagoCSV,
		"washington.csv":       washingtonCSV,
		"chicago_stations.csv": chicagoStationsCSV,
	})
	return NewLoader(testConfig(dataDir))
}

func mustCriteria(t *testing.T, city string, month string, day string) filter.Criteria {
	t.Helper()
	criteria, err := filter.NewCriteria(city, month, day)
	require.NoError(t, err)
	return criteria
}

func startTimes(table *trip.Table) []string {
	var result []string
	for _, tripData := range table.Rows() {
		result = append(result, tripData.StartTime.Format("2006-01-02 15:04:05"))
	}
	return result
}

func TestLoad_AllMonthsAllDays(t *testing.T) {
	loader := newTestLoader(t)

	table, err := loader.Load(mustCriteria(t, "chicago", "all", "all"))
	require.NoError(t, err)

	expected, err := ReadTrips(strings.NewReader(chicagoCSV), loader.config.Columns, loader.config.TimestampLayout, true)
	require.NoError(t, err)

	assert.Equal(t, "chicago", table.City())
	assert.True(t, table.HasDemographics())
	if diff := cmp.Diff(expected, table.Rows()); diff != "" {
		t.Errorf("unfiltered table mismatch (-want +got):\n%s", diff)
	}

	first := table.Rows()[0]
	assert.Equal(t, 321.0, first.Duration)
	assert.Equal(t, "Wood St & Hubbard St", first.StartStation)
	assert.Equal(t, "Damen Ave & Chicago Ave", first.EndStation)
	assert.Equal(t, "Subscriber", first.UserType)
	assert.Equal(t, 6, first.Month)
	assert.Equal(t, "Friday", first.DayOfWeek)
	assert.Equal(t, time.Date(2017, time.June, 23, 15, 14, 53, 0, time.UTC), first.EndTime)
	require.NotNil(t, first.Demographics)
	assert.Equal(t, "Male", first.Demographics.Gender)
	assert.Equal(t, 1992, *first.Demographics.BirthYear)

	last := table.Rows()[6]
	require.NotNil(t, last.Demographics)
	assert.Empty(t, last.Demographics.Gender)
	assert.Nil(t, last.Demographics.BirthYear)
}

func TestLoad_Filters(t *testing.T) {
	loader := newTestLoader(t)

	testCases := []struct {
		name     string
		month    string
		day      string
		expected []string
	}{
		{
			name:     "june",
			month:    "june",
			day:      "all",
			expected: []string{"2017-06-23 15:09:32", "2017-06-26 09:01:20"},
		},
		{
			name:     "monday",
			month:    "all",
			day:      "monday",
			expected: []string{"2017-03-06 13:49:38", "2017-06-26 09:01:20"},
		},
		{
			name:     "june mondays",
			month:    "june",
			day:      "Monday",
			expected: []string{"2017-06-26 09:01:20"},
		},
		{
			name:     "no matches",
			month:    "february",
			day:      "all",
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			criteria := mustCriteria(t, "chicago", tc.month, tc.day)
			table, err := loader.Load(criteria)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, startTimes(table))

			monthIdx, filterByMonth := filter.MonthIndex(criteria.Month())
			for _, tripData := range table.Rows() {
				if filterByMonth {
					assert.Equal(t, monthIdx, tripData.Month)
				}
				if criteria.Day() != filter.All {
					assert.Equal(t, strings.ToLower(tripData.DayOfWeek), criteria.Day())
				}
			}
		})
	}
}

func TestFilter_Idempotent(t *testing.T) {
	loader := newTestLoader(t)

	table, err := loader.Load(mustCriteria(t, "chicago", "all", "all"))
	require.NoError(t, err)

	once := Filter(table, "may", "friday")
	twice := Filter(once, "may", "friday")

	assert.Equal(t, []string{"2017-05-26 16:47:35"}, startTimes(once))
	assert.Equal(t, once.Rows(), twice.Rows())
	assert.Equal(t, 7, table.Len())
}

func TestLoad_Washington(t *testing.T) {
	loader := newTestLoader(t)

	table, err := loader.Load(mustCriteria(t, "washington", "all", "all"))
	require.NoError(t, err)

	assert.False(t, table.HasDemographics())
	require.Equal(t, 2, table.Len())
	assert.Equal(t, 489.066, table.Rows()[0].Duration)
	for _, tripData := range table.Rows() {
		_, err := tripData.GetDemographics()
		assert.ErrorIs(t, err, trip.ErrMissingDemographics)
	}
	assert.ErrorIs(t, table.CheckDemographics(), trip.ErrMissingDemographics)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		loader := NewLoader(testConfig(t.TempDir()))
		_, err := loader.Load(mustCriteria(t, "chicago", "all", "all"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unknown city", func(t *testing.T) {
		datasetConfig := testConfig(t.TempDir())
		delete(datasetConfig.Cities, "new york city")
		loader := NewLoader(datasetConfig)

		_, err := loader.Load(mustCriteria(t, "new york city", "all", "all"))
		assert.ErrorIs(t, err, ErrUnknownCity)
	})

	t.Run("malformed timestamp aborts the load", func(t *testing.T) {
		content := chicagoCSV + "1,yesterday,2017-05-26 16:53:14,339,A,B,Customer,,\n"
		loader := NewLoader(testConfig(writeDataset(t, map[string]string{"chicago.csv": content})))

		table, err := loader.Load(mustCriteria(t, "chicago", "all", "all"))
		assert.ErrorIs(t, err, ErrInvalidTimestamp)
		assert.ErrorContains(t, err, "line 9")
		assert.Nil(t, table)
	})

	t.Run("malformed duration", func(t *testing.T) {
		content := chicagoCSV + "1,2017-05-26 16:47:35,2017-05-26 16:53:14,long,A,B,Customer,,\n"
		loader := NewLoader(testConfig(writeDataset(t, map[string]string{"chicago.csv": content})))

		_, err := loader.Load(mustCriteria(t, "chicago", "all", "all"))
		assert.ErrorIs(t, err, ErrInvalidDuration)
	})

	t.Run("malformed birth year", func(t *testing.T) {
		content := chicagoCSV + "1,2017-05-26 16:47:35,2017-05-26 16:53:14,339,A,B,Customer,Male,nineties\n"
		loader := NewLoader(testConfig(writeDataset(t, map[string]string{"chicago.csv": content})))

		_, err := loader.Load(mustCriteria(t, "chicago", "all", "all"))
		assert.ErrorIs(t, err, ErrInvalidBirthYear)
	})

	t.Run("city with demographics lacking the columns", func(t *testing.T) {
		loader := NewLoader(testConfig(writeDataset(t, map[string]string{"chicago.csv": washingtonCSV})))

		_, err := loader.Load(mustCriteria(t, "chicago", "all", "all"))
		assert.ErrorIs(t, err, ErrMissingColumn)
		assert.ErrorContains(t, err, "Gender")
	})

	t.Run("missing required column", func(t *testing.T) {
		content := "Start Time,Trip Duration,Start Station,End Station\n2017-06-21 08:36:34,489,A,B\n"
		loader := NewLoader(testConfig(writeDataset(t, map[string]string{"washington.csv": content})))

		_, err := loader.Load(mustCriteria(t, "washington", "all", "all"))
		assert.ErrorIs(t, err, ErrMissingColumn)
		assert.ErrorContains(t, err, "User Type")
	})

	t.Run("empty file", func(t *testing.T) {
		loader := NewLoader(testConfig(writeDataset(t, map[string]string{"washington.csv": ""})))

		_, err := loader.Load(mustCriteria(t, "washington", "all", "all"))
		assert.ErrorIs(t, err, ErrMissingColumn)
	})
}

func TestReadTrips_ByteOrderMarkAndMissingEndTime(t *testing.T) {
	content := "\ufeffStart Time,Trip Duration,Start Station,End Station,User Type\n2017-06-21 08:36:34,489,A,B,Subscriber\n"
	columns := testConfig("").Columns

	trips, err := ReadTrips(strings.NewReader(content), columns, "2006-01-02 15:04:05", false)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.True(t, trips[0].EndTime.IsZero())
	assert.Equal(t, "Wednesday", trips[0].DayOfWeek)
}

func TestLoadStations(t *testing.T) {
	loader := newTestLoader(t)

	stations, err := loader.LoadStations("chicago")
	require.NoError(t, err)
	require.Len(t, stations, 2)
	assert.Equal(t, 41.889899, stations["Wood St & Hubbard St"].Latitude)
	assert.Equal(t, -87.67722, stations["Damen Ave & Chicago Ave"].Longitude)

	stations, err = loader.LoadStations("washington")
	require.NoError(t, err)
	assert.Nil(t, stations)

	_, err = loader.LoadStations("springfield")
	assert.ErrorIs(t, err, ErrUnknownCity)
}

func TestReadStations_Invalid(t *testing.T) {
	_, err := ReadStations(strings.NewReader("name,latitude,longitude\nA,north,1\n"))
	assert.ErrorIs(t, err, ErrInvalidStationData)

	_, err = ReadStations(strings.NewReader("name,latitude,longitude\nA,1\n"))
	assert.ErrorIs(t, err, ErrInvalidStationData)

	stations, err := ReadStations(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, stations)
}

func TestConfig_Filepaths(t *testing.T) {
	datasetConfig := testConfig("/datasets")

	chicago, ok := datasetConfig.GetCityConfig("chicago")
	require.True(t, ok)
	assert.Equal(t, filepath.Join("/datasets", "chicago.csv"), datasetConfig.GetTripsFilepath(chicago))
	assert.Equal(t, filepath.Join("/datasets", "chicago_stations.csv"), datasetConfig.GetStationsFilepath(chicago))

	washington, ok := datasetConfig.GetCityConfig("washington")
	require.True(t, ok)
	assert.Empty(t, datasetConfig.GetStationsFilepath(washington))

	_, ok = datasetConfig.GetCityConfig("boston")
	assert.False(t, ok)
}
