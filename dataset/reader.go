package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/trip"
)

const byteOrderMark = "\ufeff"

// tripColumns contains the index of each field to analyze, -1 if the column is not present
type tripColumns struct {
	startTime    int
	endTime      int
	tripDuration int
	startStation int
	endStation   int
	userType     int
	gender       int
	birthYear    int
}

// ReadTrips parses every row of the csv in reader. The first line must be the header.
// If demographics is true the gender and birth year columns are mandatory and every trip
// carries its Demographics. Any malformed row aborts the whole read.
func ReadTrips(reader io.Reader, columns ColumnsConfig, timestampLayout string, demographics bool) ([]*trip.TripData, error) {
	csvReader := csv.NewReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMissingColumn)
		}
		return nil, fmt.Errorf("%w: error reading header: %s", ErrInvalidTripData, err)
	}

	indexes, err := getTripColumns(header, columns, demographics)
	if err != nil {
		return nil, err
	}

	var trips []*trip.TripData
	line := 1
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line += 1
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrInvalidTripData, err)
		}

		tripData, err := getTripData(record, indexes, timestampLayout)
		if err != nil {
			return nil, fmt.Errorf("line %v: %w", line, err)
		}
		trips = append(trips, tripData)
	}

	return trips, nil
}

func getTripColumns(header []string, columns ColumnsConfig, demographics bool) (tripColumns, error) {
	positions := make(map[string]int, len(header))
	for idx, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, byteOrderMark))
		positions[name] = idx
	}

	indexOf := func(name string, required bool) (int, error) {
		idx, ok := positions[name]
		if ok && name != "" {
			return idx, nil
		}
		if required {
			return -1, fmt.Errorf("%w: %q", ErrMissingColumn, name)
		}
		return -1, nil
	}

	var indexes tripColumns
	var err error
	required := []struct {
		name   string
		target *int
	}{
		{columns.StartTime, &indexes.startTime},
		{columns.TripDuration, &indexes.tripDuration},
		{columns.StartStation, &indexes.startStation},
		{columns.EndStation, &indexes.endStation},
		{columns.UserType, &indexes.userType},
	}
	for _, column := range required {
		if *column.target, err = indexOf(column.name, true); err != nil {
			return tripColumns{}, err
		}
	}

	if indexes.endTime, err = indexOf(columns.EndTime, false); err != nil {
		return tripColumns{}, err
	}

	indexes.gender, indexes.birthYear = -1, -1
	if demographics {
		if indexes.gender, err = indexOf(columns.Gender, true); err != nil {
			return tripColumns{}, err
		}
		if indexes.birthYear, err = indexOf(columns.BirthYear, true); err != nil {
			return tripColumns{}, err
		}
	}

	return indexes, nil
}

func getTripData(record []string, indexes tripColumns, timestampLayout string) (*trip.TripData, error) {
	startTimeStr := strings.TrimSpace(record[indexes.startTime])
	startTime, err := time.Parse(timestampLayout, startTimeStr)
	if err != nil {
		log.Debugf("Invalid start time: %v", startTimeStr)
		return nil, fmt.Errorf("%w: start time %q", ErrInvalidTimestamp, startTimeStr)
	}

	durationStr := strings.TrimSpace(record[indexes.tripDuration])
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil {
		log.Debugf("Invalid duration type: %v", durationStr)
		return nil, fmt.Errorf("%w: %q", ErrInvalidDuration, durationStr)
	}

	tripData := trip.NewTripData(
		startTime,
		duration,
		record[indexes.startStation],
		record[indexes.endStation],
		strings.TrimSpace(record[indexes.userType]),
	)

	if indexes.endTime >= 0 {
		endTimeStr := strings.TrimSpace(record[indexes.endTime])
		if endTimeStr != "" {
			tripData.EndTime, err = time.Parse(timestampLayout, endTimeStr)
			if err != nil {
				log.Debugf("Invalid end time: %v", endTimeStr)
				return nil, fmt.Errorf("%w: end time %q", ErrInvalidTimestamp, endTimeStr)
			}
		}
	}

	if indexes.gender >= 0 {
		birthYear, err := parseBirthYear(record[indexes.birthYear])
		if err != nil {
			return nil, err
		}
		tripData.Demographics = &trip.Demographics{
			Gender:    strings.TrimSpace(record[indexes.gender]),
			BirthYear: birthYear,
		}
	}

	return tripData, nil
}

// parseBirthYear accepts integers and floats without decimals (e.g. 1992.0). Empty values are nil.
func parseBirthYear(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	birthYear, err := strconv.ParseFloat(value, 64)
	if err != nil || birthYear != math.Trunc(birthYear) {
		log.Debugf("Invalid birth year: %v", value)
		return nil, fmt.Errorf("%w: %q", ErrInvalidBirthYear, value)
	}

	year := int(birthYear)
	return &year, nil
}
