package itinerary

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

// Limits the prompt asks the model to respect.
const (
	MinRestaurants          = 4
	MaxRestaurants          = 5
	MinRestaurantRating     = 4.0
	MinAccommodations       = 3
	MaxAccommodations       = 4
	ReviewsPerAccommodation = 3
	MaxSummaryChars         = 10
	MaxSummaryWords         = 5
	TravelTimeStep          = 10
)

var (
	hoursPattern   = regexp.MustCompile(`(\d+)\s*(?:hours?|hrs?|h(?:\b|\d)|小時|小时)`)
	minutesPattern = regexp.MustCompile(`(\d+)\s*(?:minutes?|mins?|m\b|分鐘|分钟|分)`)
)

// ParseTravelMinutes reads strings like "1 hr 40 mins", "30 mins walk", "1h30m" or
// "1小時20分鐘". ok is false when no duration is found.
func ParseTravelMinutes(s string) (minutes int, ok bool) {
	s = strings.ToLower(s)
	if m := hoursPattern.FindStringSubmatch(s); m != nil {
		h, _ := strconv.Atoi(m[1])
		minutes += h * 60
		ok = true
	}
	if m := minutesPattern.FindStringSubmatch(s); m != nil {
		n, _ := strconv.Atoi(m[1])
		minutes += n
		ok = true
	}
	return minutes, ok
}

// CheckCompliance compares a plan against the rules given in the prompt and
// returns one human-readable warning per violation. The plan is never modified.
func CheckCompliance(plan *types.TripPlan, lang types.Language, expectedDays int) []string {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	if lang.IsEnglish() {
		if n := len(strings.Fields(plan.Summary)); n > MaxSummaryWords {
			warn("summary has %d words, limit is %d", n, MaxSummaryWords)
		}
	} else if n := utf8.RuneCountInString(strings.TrimSpace(plan.Summary)); n > MaxSummaryChars {
		warn("summary has %d characters, limit is %d", n, MaxSummaryChars)
	}

	if n := len(plan.Accommodations); n < MinAccommodations || n > MaxAccommodations {
		warn("%d accommodation options, expected %d-%d", n, MinAccommodations, MaxAccommodations)
	}
	for i, a := range plan.Accommodations {
		if len(a.Reviews) != ReviewsPerAccommodation {
			warn("accommodation %d (%s) has %d reviews, expected %d", i+1, a.Name, len(a.Reviews), ReviewsPerAccommodation)
		}
	}

	if expectedDays > 0 && len(plan.Days) != expectedDays {
		warn("plan has %d days, trip is %d days", len(plan.Days), expectedDays)
	}

	for i, day := range plan.Days {
		if day.DayNumber != i+1 {
			warn("day at position %d is numbered %d", i+1, day.DayNumber)
		}
		for j, act := range day.Activities {
			where := fmt.Sprintf("day %d activity %d", i+1, j+1)
			if !act.Type.Valid() {
				warn("%s has unknown type %q", where, act.Type)
			}
			checkRounded(warn, where+" travel time", act.TravelTimeFromPrevious)

			if n := len(act.RestaurantOptions); n > 0 && (n < MinRestaurants || n > MaxRestaurants) {
				warn("%s has %d restaurant options, expected %d-%d", where, n, MinRestaurants, MaxRestaurants)
			}
			for k, r := range act.RestaurantOptions {
				rwhere := fmt.Sprintf("%s restaurant %d", where, k+1)
				if rating, err := strconv.ParseFloat(strings.TrimSpace(r.Rating), 64); err == nil && rating <= MinRestaurantRating {
					warn("%s (%s) is rated %s, expected above %.1f", rwhere, r.Name, r.Rating, MinRestaurantRating)
				}
				checkRounded(warn, rwhere+" travel time", r.TravelTime)
			}
		}
	}

	return warnings
}

func checkRounded(warn func(string, ...any), where, raw string) {
	if raw == "" {
		return
	}
	if minutes, ok := ParseTravelMinutes(raw); ok && minutes%TravelTimeStep != 0 {
		warn("%s %q is not rounded to %d minutes", where, raw, TravelTimeStep)
	}
}
