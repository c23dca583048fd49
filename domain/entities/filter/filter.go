package filter

import (
	"errors"
	"fmt"
	"strings"

	"bikeshare/utils"
)

const (
	// All is the value that disables the month or day filter
	All = "all"

	cityField  = "city"
	monthField = "month"
	dayField   = "day"
)

var ErrInvalidInput = errors.New("invalid input")

var (
	cities = []string{"chicago", "new york city", "washington"}
	months = []string{"january", "february", "march", "april", "may", "june"}
	days   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// Cities returns the cities with available data
func Cities() []string {
	return append([]string(nil), cities...)
}

// Months returns the valid month options, "all" included
func Months() []string {
	return append([]string{All}, months...)
}

// Days returns the valid day options, "all" included
func Days() []string {
	return append([]string{All}, days...)
}

// MonthIndex returns the 1-based index of the month name. Only january to june have data.
func MonthIndex(month string) (int, bool) {
	idx := utils.IndexOfString(month, months)
	if idx < 0 {
		return 0, false
	}
	return idx + 1, true
}

// Normalize trims the input and converts it to lower case
func Normalize(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Validate returns the normalized input if it belongs to options. Otherwise, an error
// wrapping ErrInvalidInput that names the rejected value is returned.
func Validate(field string, input string, options []string) (string, error) {
	value := Normalize(input)
	if !utils.ContainsString(value, options) {
		return "", fmt.Errorf("%s is not a valid %s: %w", value, field, ErrInvalidInput)
	}
	return value, nil
}

func ValidateCity(input string) (string, error) {
	return Validate(cityField, input, cities)
}

func ValidateMonth(input string) (string, error) {
	return Validate(monthField, input, Months())
}

func ValidateDay(input string) (string, error) {
	return Validate(dayField, input, Days())
}

// Criteria the filters chosen by the user. Once created it cannot change.
type Criteria struct {
	city  string
	month string
	day   string
}

// NewCriteria validates the three fields and returns the resulting Criteria
func NewCriteria(city string, month string, day string) (Criteria, error) {
	validCity, err := ValidateCity(city)
	if err != nil {
		return Criteria{}, err
	}

	validMonth, err := ValidateMonth(month)
	if err != nil {
		return Criteria{}, err
	}

	validDay, err := ValidateDay(day)
	if err != nil {
		return Criteria{}, err
	}

	return Criteria{city: validCity, month: validMonth, day: validDay}, nil
}

func (c Criteria) City() string {
	return c.city
}

func (c Criteria) Month() string {
	return c.month
}

func (c Criteria) Day() string {
	return c.day
}

func (c Criteria) String() string {
	return fmt.Sprintf("city: %s, month: %s, day: %s", c.city, c.month, c.day)
}
