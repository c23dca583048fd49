package dataset

import "path/filepath"

// ColumnsConfig contains the name of each column to analyze in the csv files
type ColumnsConfig struct {
	StartTime    string `yaml:"start_time" validate:"required"`
	EndTime      string `yaml:"end_time"`
	TripDuration string `yaml:"trip_duration" validate:"required"`
	StartStation string `yaml:"start_station" validate:"required"`
	EndStation   string `yaml:"end_station" validate:"required"`
	UserType     string `yaml:"user_type" validate:"required"`
	Gender       string `yaml:"gender" validate:"required"`
	BirthYear    string `yaml:"birth_year" validate:"required"`
}

// CityConfig data source of a city
// + File: csv file with the trips, relative to the data directory
// + HasDemographics: true if the file has gender and birth year columns
// + StationsFile: optional csv file with the coordinates of the stations (name,latitude,longitude)
type CityConfig struct {
	File            string `yaml:"file" validate:"required"`
	HasDemographics bool   `yaml:"has_demographics"`
	StationsFile    string `yaml:"stations_file"`
}

// Config where and how the Loader reads the data of each city
type Config struct {
	DataDir         string
	TimestampLayout string
	Cities          map[string]CityConfig
	Columns         ColumnsConfig
}

// GetCityConfig returns the data source of the city
func (c Config) GetCityConfig(city string) (CityConfig, bool) {
	cityConfig, ok := c.Cities[city]
	return cityConfig, ok
}

// GetTripsFilepath returns the path to the trips .csv file of the city
func (c Config) GetTripsFilepath(cityConfig CityConfig) string {
	return filepath.Join(c.DataDir, cityConfig.File)
}

// GetStationsFilepath returns the path to the stations .csv file of the city, empty if it has none
func (c Config) GetStationsFilepath(cityConfig CityConfig) string {
	if cityConfig.StationsFile == "" {
		return ""
	}
	return filepath.Join(c.DataDir, cityConfig.StationsFile)
}
