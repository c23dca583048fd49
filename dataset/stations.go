package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bikeshare/domain/entities/station"
)

const (
	stationNameIdx = iota
	stationLatitudeIdx
	stationLongitudeIdx
)

// ReadStations parses a csv with the columns name,latitude,longitude. The first line is the header.
func ReadStations(reader io.Reader) (map[string]station.StationData, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = 3

	if _, err := csvReader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]station.StationData{}, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidStationData, err)
	}

	stations := make(map[string]station.StationData)
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidStationData, err)
		}

		latitude, err := strconv.ParseFloat(strings.TrimSpace(record[stationLatitudeIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: latitude %q", ErrInvalidStationData, record[stationLatitudeIdx])
		}

		longitude, err := strconv.ParseFloat(strings.TrimSpace(record[stationLongitudeIdx]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: longitude %q", ErrInvalidStationData, record[stationLongitudeIdx])
		}

		name := record[stationNameIdx]
		stations[name] = station.StationData{
			Name:      name,
			Latitude:  latitude,
			Longitude: longitude,
		}
	}

	return stations, nil
}
