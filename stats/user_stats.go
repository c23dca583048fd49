package stats

import (
	"bikeshare/domain/business/frequency"
	"bikeshare/domain/entities/trip"
)

// UserStats counts of user types and, for cities that record them, demographic stats
type UserStats struct {
	UserTypes    []frequency.Entry[string] `json:"user_types"`
	Demographics *DemographicStats         `json:"demographics,omitempty"`
}

// DemographicStats counts of genders and birth year stats. Empty genders and birth years are
// ignored; the birth year fields are nil if no trip informed it.
type DemographicStats struct {
	Genders             []frequency.Entry[string] `json:"genders"`
	EarliestBirthYear   *int                      `json:"earliest_birth_year,omitempty"`
	MostRecentBirthYear *int                      `json:"most_recent_birth_year,omitempty"`
	MostCommonBirthYear *int                      `json:"most_common_birth_year,omitempty"`
}

// ComputeUserStats returns the counts of each user type. Demographic stats are included only
// if the city of the table records gender and birth year.
func ComputeUserStats(table *trip.Table) (*UserStats, error) {
	if table.Len() == 0 {
		return nil, ErrNoTrips
	}

	userTypes := frequency.NewCounter[string]()
	for _, tripData := range table.Rows() {
		userTypes.Add(tripData.UserType)
	}

	userStats := &UserStats{
		UserTypes: userTypes.ValueCounts(),
	}

	if !table.HasDemographics() {
		return userStats, nil
	}

	demographicStats, err := ComputeDemographicStats(table)
	if err != nil {
		return nil, err
	}
	userStats.Demographics = demographicStats

	return userStats, nil
}

// ComputeDemographicStats returns gender counts and birth year stats. It fails with
// trip.ErrMissingDemographics if the table schema does not have those columns.
func ComputeDemographicStats(table *trip.Table) (*DemographicStats, error) {
	if err := table.CheckDemographics(); err != nil {
		return nil, err
	}

	if table.Len() == 0 {
		return nil, ErrNoTrips
	}

	genders := frequency.NewCounter[string]()
	birthYears := frequency.NewCounter[int]()
	var earliest, mostRecent *int

	for _, tripData := range table.Rows() {
		demographics, err := tripData.GetDemographics()
		if err != nil {
			return nil, err
		}

		if demographics.Gender != "" {
			genders.Add(demographics.Gender)
		}

		if demographics.BirthYear == nil {
			continue
		}

		year := *demographics.BirthYear
		birthYears.Add(year)
		if earliest == nil || year < *earliest {
			earliest = &year
		}
		if mostRecent == nil || year > *mostRecent {
			mostRecent = &year
		}
	}

	demographicStats := &DemographicStats{
		Genders:             genders.ValueCounts(),
		EarliestBirthYear:   earliest,
		MostRecentBirthYear: mostRecent,
	}

	if mostCommon, _, ok := birthYears.Mode(); ok {
		demographicStats.MostCommonBirthYear = &mostCommon
	}

	return demographicStats, nil
}
