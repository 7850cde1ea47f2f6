// Package tripdate handles calendar dates for trips. Dates are civil dates with no
// time zone, so "2024-01-15" always means the same calendar day wherever the
// process runs.
package tripdate

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"

	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

// Parse reads a YYYY-MM-DD string as a calendar date.
func Parse(s string) (civil.Date, error) {
	d, err := civil.ParseDate(strings.TrimSpace(s))
	if err != nil {
		return civil.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d, nil
}

// Format renders d as YYYY-MM-DD.
func Format(d civil.Date) string {
	return d.String()
}

// Today returns the current calendar day in the process's local time zone.
func Today(now time.Time) civil.Date {
	return civil.DateOf(now.In(time.Local))
}

// DayCount is the inclusive number of calendar days between two dates.
// The order of the arguments does not matter.
func DayCount(start, end civil.Date) int {
	diff := end.DaysSince(start)
	if diff < 0 {
		diff = -diff
	}
	return diff + 1
}

// Duration parses both dates and returns their inclusive day count.
func Duration(startDate, endDate string) (int, error) {
	start, err := Parse(startDate)
	if err != nil {
		return 0, err
	}
	end, err := Parse(endDate)
	if err != nil {
		return 0, err
	}
	return DayCount(start, end), nil
}

// DayDate resolves the calendar date of a plan day. An explicit date wins when it
// parses; otherwise the date is derived as startDate + dayNumber - 1.
func DayDate(explicit, startDate string, dayNumber int) (civil.Date, bool) {
	if explicit != "" {
		if d, err := Parse(explicit); err == nil {
			return d, true
		}
	}
	if startDate == "" {
		return civil.Date{}, false
	}
	start, err := Parse(startDate)
	if err != nil {
		return civil.Date{}, false
	}
	return start.AddDays(dayNumber - 1), true
}

// Weekday returns the day of the week of d.
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// ShortLabel renders d as M/D, the form shown in the date inputs.
func ShortLabel(d civil.Date) string {
	return fmt.Sprintf("%d/%d", int(d.Month), d.Day)
}

// MonthYearLabel renders the month and year of d for the given language.
func MonthYearLabel(d civil.Date, lang types.Language) string {
	if lang.IsEnglish() {
		return fmt.Sprintf("%s %d", d.Month.String()[:3], d.Year)
	}
	return fmt.Sprintf("%d年%d月", d.Year, int(d.Month))
}
