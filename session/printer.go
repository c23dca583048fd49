package session

import (
	"strings"
	"time"

	"bikeshare/domain/business/frequency"
	"bikeshare/stats"
)

const noTripsMessage = "No trips match the selected filters."

var separator = strings.Repeat("-", 40)

func (s *Session) printTimeStats(timeStats *stats.TimeStats) {
	s.console.Println("\nCalculating The Most Frequent Times of Travel...")
	if timeStats == nil {
		s.console.Println(noTripsMessage)
		return
	}

	s.console.Printf("\nThe most common month is %s.\n", time.Month(timeStats.PopularMonth))
	s.console.Printf("\nThe most common day of week is %s.\n", timeStats.PopularDay)
	s.console.Printf("\nThe most common start hour is %v.\n", timeStats.PopularHour)
}

func (s *Session) printStationStats(stationStats *stats.StationStats) {
	s.console.Println("\nCalculating The Most Popular Stations and Trip...")
	if stationStats == nil {
		s.console.Println(noTripsMessage)
		return
	}

	s.console.Printf("\nThe most common start station is %s.\n", stationStats.PopularStartStation)
	s.console.Printf("\nThe most common end station is %s.\n", stationStats.PopularEndStation)
	s.console.Printf("\nThe most common station combination is %s.\n", stationStats.PopularTrip)

	if stationStats.PopularTripDistanceKm != nil {
		s.console.Printf("\nThe straight-line distance of the most common trip is %.2f km.\n", *stationStats.PopularTripDistanceKm)
	}
	if stationStats.AverageDistanceKm != nil {
		s.console.Printf("\nThe average straight-line distance of a trip is %.2f km.\n", *stationStats.AverageDistanceKm)
	}
}

func (s *Session) printDurationStats(durationStats *stats.DurationStats) {
	s.console.Println("\nCalculating Trip Duration...")
	if durationStats == nil {
		s.console.Println(noTripsMessage)
		return
	}

	s.console.Printf("\nThe total travel time is %.2f.\n", durationStats.TotalDuration)
	s.console.Printf("\nThe average travel time is %.2f.\n", durationStats.AverageDuration)
}

func (s *Session) printUserStats(userStats *stats.UserStats) {
	s.console.Println("\nCalculating User Stats...")
	if userStats == nil {
		s.console.Println(noTripsMessage)
		return
	}

	s.console.Println("\nCounts of user types:")
	s.printValueCounts(userStats.UserTypes)

	demographics := userStats.Demographics
	if demographics == nil {
		return
	}

	s.console.Println("\nCounts of gender types:")
	s.printValueCounts(demographics.Genders)

	if demographics.EarliestBirthYear == nil {
		s.console.Println("\nNo birth year data available.")
		return
	}
	s.console.Printf("\nThe earliest birth year is %v.\n", *demographics.EarliestBirthYear)
	s.console.Printf("\nThe most recent birth year is %v.\n", *demographics.MostRecentBirthYear)
	s.console.Printf("\nThe most common birth year is %v.\n", *demographics.MostCommonBirthYear)
}

func (s *Session) printValueCounts(entries []frequency.Entry[string]) {
	if len(entries) == 0 {
		s.console.Println("  (none)")
		return
	}
	for _, entry := range entries {
		s.console.Printf("  %-12s %v\n", entry.Value, entry.Count)
	}
}

func (s *Session) printElapsed(start time.Time) {
	s.console.Printf("\nThis took %v seconds.\n", time.Since(start).Seconds())
	s.console.Println(separator)
}
