package trip

import "fmt"

// Table ordered collection of trips of a city. All the trips share the same schema:
// if the city has demographic data every trip carries it.
type Table struct {
	city         string
	demographics bool
	rows         []*TripData
}

func NewTable(city string, demographics bool, rows []*TripData) *Table {
	return &Table{
		city:         city,
		demographics: demographics,
		rows:         rows,
	}
}

func (t *Table) City() string {
	return t.city
}

// HasDemographics returns true if the trips of the table carry gender and birth year
func (t *Table) HasDemographics() bool {
	return t.demographics
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the trips of the table in their original order
func (t *Table) Rows() []*TripData {
	return t.rows
}

// WithRows returns a new table with the same schema and the given rows
func (t *Table) WithRows(rows []*TripData) *Table {
	return NewTable(t.city, t.demographics, rows)
}

// Slice returns the trips in [from, from+size). Out of range requests return an empty slice.
func (t *Table) Slice(from int, size int) []*TripData {
	if from < 0 {
		from = 0
	}
	if from >= len(t.rows) || size <= 0 {
		return []*TripData{}
	}

	to := from + size
	if to > len(t.rows) {
		to = len(t.rows)
	}
	return t.rows[from:to]
}

// CheckDemographics returns ErrMissingDemographics if the table schema lacks demographic data
func (t *Table) CheckDemographics() error {
	if !t.demographics {
		return fmt.Errorf("[city: %s] %w", t.city, ErrMissingDemographics)
	}
	return nil
}
