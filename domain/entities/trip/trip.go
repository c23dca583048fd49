package trip

import (
	"errors"
	"time"
)

// ErrMissingDemographics is returned when demographic data is requested for a city whose
// dataset does not carry gender and birth year columns
var ErrMissingDemographics = errors.New("dataset does not contain demographic data")

// Demographics extension present only in cities that record gender and birth year
// + Gender: gender of the user, empty if it was not informed
// + BirthYear: birth year of the user, nil if it was not informed
type Demographics struct {
	Gender    string `json:"gender,omitempty"`
	BirthYear *int   `json:"birth_year,omitempty"`
}

// TripData struct that contains the trip data
// + StartTime: timestamp in which the trip begins
// + EndTime: timestamp in which the trip ends, zero if the dataset does not have it
// + Duration: duration of the trip, in the unit used by the dataset
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: type of user, e.g. Subscriber or Customer
// + Month: month of the StartTime (1-12)
// + DayOfWeek: weekday name of the StartTime, e.g. Monday
// + Demographics: gender and birth year. Nil for cities without that data
type TripData struct {
	StartTime    time.Time     `json:"start_time"`
	EndTime      time.Time     `json:"end_time"`
	Duration     float64       `json:"duration"`
	StartStation string        `json:"start_station"`
	EndStation   string        `json:"end_station"`
	UserType     string        `json:"user_type"`
	Month        int           `json:"month"`
	DayOfWeek    string        `json:"day_of_week"`
	Demographics *Demographics `json:"demographics,omitempty"`
}

// NewTripData returns a TripData with its derived fields (month and day of week) already set
func NewTripData(startTime time.Time, duration float64, startStation string, endStation string, userType string) *TripData {
	td := &TripData{
		StartTime:    startTime,
		Duration:     duration,
		StartStation: startStation,
		EndStation:   endStation,
		UserType:     userType,
	}
	td.DeriveCalendarFields()
	return td
}

// DeriveCalendarFields sets Month and DayOfWeek from StartTime
func (td *TripData) DeriveCalendarFields() {
	td.Month = int(td.StartTime.Month())
	td.DayOfWeek = td.StartTime.Weekday().String()
}

// Hour returns the hour (0-23) in which the trip begins
func (td *TripData) Hour() int {
	return td.StartTime.Hour()
}

func (td *TripData) GetDemographics() (*Demographics, error) {
	if td.Demographics == nil {
		return nil, ErrMissingDemographics
	}
	return td.Demographics, nil
}
