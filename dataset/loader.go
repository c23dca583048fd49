package dataset

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
)

// Loader reads the trips of a city from its csv file and applies the month and day filters
type Loader struct {
	config Config
}

func NewLoader(config Config) *Loader {
	return &Loader{
		config: config,
	}
}

// Load returns the trips of the criteria city that match its month and day. The load is all or
// nothing: a missing column or a malformed row returns an error and no table.
func (l *Loader) Load(criteria filter.Criteria) (*trip.Table, error) {
	city := criteria.City()
	cityConfig, ok := l.config.GetCityConfig(city)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}

	tripsFilepath := l.config.GetTripsFilepath(cityConfig)
	dataFile, err := os.Open(tripsFilepath)
	if err != nil {
		log.Errorf("[city: %s][method: Load][status: ERROR] error opening %s: %s", city, tripsFilepath, err.Error())
		return nil, fmt.Errorf("error opening %s: %w", tripsFilepath, err)
	}

	defer func(dataFile *os.File) {
		err := dataFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", tripsFilepath, err.Error())
		}
	}(dataFile)

	trips, err := ReadTrips(dataFile, l.config.Columns, l.config.TimestampLayout, cityConfig.HasDemographics)
	if err != nil {
		log.Errorf("[city: %s][method: Load][status: ERROR] error reading %s: %s", city, tripsFilepath, err.Error())
		return nil, fmt.Errorf("[city: %s] error reading %s: %w", city, tripsFilepath, err)
	}
	log.Debugf("[city: %s][method: Load][status: OK] %v trips read from %s", city, len(trips), tripsFilepath)

	table := Filter(trip.NewTable(city, cityConfig.HasDemographics, trips), criteria.Month(), criteria.Day())
	log.Infof("[city: %s][method: Load][status: OK] %v trips match %s", city, table.Len(), criteria)

	return table, nil
}

// LoadStations returns the station catalog of the city. If the city has no catalog configured
// a nil map is returned.
func (l *Loader) LoadStations(city string) (map[string]station.StationData, error) {
	cityConfig, ok := l.config.GetCityConfig(city)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCity, city)
	}

	stationsFilepath := l.config.GetStationsFilepath(cityConfig)
	if stationsFilepath == "" {
		return nil, nil
	}

	stationsFile, err := os.Open(stationsFilepath)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", stationsFilepath, err)
	}

	defer func(stationsFile *os.File) {
		err := stationsFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", stationsFilepath, err.Error())
		}
	}(stationsFile)

	stations, err := ReadStations(stationsFile)
	if err != nil {
		return nil, fmt.Errorf("[city: %s] error reading %s: %w", city, stationsFilepath, err)
	}
	log.Debugf("[city: %s][method: LoadStations][status: OK] %v stations read", city, len(stations))

	return stations, nil
}
