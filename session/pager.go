package session

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"bikeshare/domain/entities/trip"
)

const timestampFormat = "2006-01-02 15:04:05"

// Page returns the trips in [cursor, cursor+size). Pages past the end of the table are empty.
func Page(table *trip.Table, cursor int, size int) []*trip.TripData {
	return table.Slice(cursor, size)
}

// printPage writes the trips as a table. The first column is the position of the trip in the filtered table.
func printPage(writer io.Writer, table *trip.Table, cursor int, page []*trip.TripData) error {
	if len(page) == 0 {
		_, err := fmt.Fprintln(writer, "No more raw data to display.")
		return err
	}

	header := []string{"", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if table.HasDemographics() {
		header = append(header, "Gender", "Birth Year")
	}
	header = append(header, "month", "day_of_week")

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))

	for idx, tripData := range page {
		endTime := ""
		if !tripData.EndTime.IsZero() {
			endTime = tripData.EndTime.Format(timestampFormat)
		}

		row := []string{
			strconv.Itoa(cursor + idx),
			tripData.StartTime.Format(timestampFormat),
			endTime,
			strconv.FormatFloat(tripData.Duration, 'f', -1, 64),
			tripData.StartStation,
			tripData.EndStation,
			tripData.UserType,
		}

		if table.HasDemographics() {
			demographics, err := tripData.GetDemographics()
			if err != nil {
				return err
			}
			birthYear := ""
			if demographics.BirthYear != nil {
				birthYear = strconv.Itoa(*demographics.BirthYear)
			}
			row = append(row, demographics.Gender, birthYear)
		}

		row = append(row, strconv.Itoa(tripData.Month), tripData.DayOfWeek)
		_, _ = fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	return tw.Flush()
}
