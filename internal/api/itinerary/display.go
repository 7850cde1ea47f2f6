package itinerary

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/FACorreiaa/go-trip-itinerary/internal/tripdate"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

const (
	mapsSearchURL     = "https://www.google.com/maps/search/?api=1&query="
	mapsDirectionsURL = "https://www.google.com/maps/dir/?api=1&destination="
)

var driveKeywords = []string{"car", "drive", "taxi", "uber", "motor", "scooter"}

// IsDriving reports whether a transport mode means travelling by road vehicle.
func IsDriving(mode string) bool {
	m := strings.ToLower(mode)
	for _, k := range driveKeywords {
		if strings.Contains(m, k) {
			return true
		}
	}
	return false
}

func SearchLink(query string) string {
	if strings.TrimSpace(query) == "" {
		return ""
	}
	return mapsSearchURL + url.QueryEscape(query)
}

func DirectionsLink(destination, mode string) string {
	travelMode := "transit"
	if IsDriving(mode) {
		travelMode = "driving"
	}
	return mapsDirectionsURL + url.QueryEscape(destination) + "&travelmode=" + travelMode
}

// Headline is the title shown above a plan.
func Headline(plan *types.TripPlan) string {
	if plan.Language.IsEnglish() {
		return fmt.Sprintf("%s Days in %s", plan.Duration, plan.Destination)
	}
	return fmt.Sprintf("%s %s 日遊", plan.Destination, plan.Duration)
}

type RestaurantView struct {
	types.Restaurant
	MapsURL string `json:"mapsUrl,omitempty"`
}

type ActivityView struct {
	types.Activity
	Kind              types.ActivityKind `json:"kind"`
	KindLabel         string             `json:"kindLabel"`
	MapsURL           string             `json:"mapsUrl,omitempty"`
	DirectionsURL     string             `json:"directionsUrl,omitempty"`
	TravelIcon        string             `json:"travelIcon,omitempty"`
	RestaurantOptions []RestaurantView   `json:"restaurantOptions,omitempty"`
}

type DayView struct {
	DayNumber  int            `json:"dayNumber"`
	Date       string         `json:"date,omitempty"`
	ShortDate  string         `json:"shortDate,omitempty"`
	Weekday    string         `json:"weekday,omitempty"`
	MonthYear  string         `json:"monthYear,omitempty"`
	Title      string         `json:"title"`
	Theme      string         `json:"theme"`
	Activities []ActivityView `json:"activities"`
}

type AccommodationView struct {
	types.Accommodation
	MapsURL string `json:"mapsUrl,omitempty"`
}

// PlanView is a plan with everything a client needs to render it precomputed.
type PlanView struct {
	Plan           *types.TripPlan     `json:"plan"`
	Headline       string              `json:"headline"`
	Days           []DayView           `json:"days"`
	Accommodations []AccommodationView `json:"accommodations"`
}

// BuildView derives per-day dates, activity kinds and map links. Missing optional
// data yields empty fields, never an error.
func BuildView(plan *types.TripPlan) PlanView {
	lang := plan.Language
	view := PlanView{
		Plan:           plan,
		Headline:       Headline(plan),
		Days:           make([]DayView, 0, len(plan.Days)),
		Accommodations: make([]AccommodationView, 0, len(plan.Accommodations)),
	}

	for _, day := range plan.Days {
		dv := DayView{
			DayNumber:  day.DayNumber,
			Title:      day.Title,
			Theme:      day.Theme,
			Activities: make([]ActivityView, 0, len(day.Activities)),
		}
		if d, ok := tripdate.DayDate(day.Date, plan.StartDate, day.DayNumber); ok {
			dv.Date = tripdate.Format(d)
			dv.ShortDate = tripdate.ShortLabel(d)
			dv.Weekday = tripdate.Weekday(d).String()[:3]
			dv.MonthYear = tripdate.MonthYearLabel(d, lang)
		}
		for _, act := range day.Activities {
			dv.Activities = append(dv.Activities, activityView(act, plan.TransportMode, lang))
		}
		view.Days = append(view.Days, dv)
	}

	for _, a := range plan.Accommodations {
		view.Accommodations = append(view.Accommodations, AccommodationView{
			Accommodation: a,
			MapsURL:       SearchLink(a.GoogleMapsQuery),
		})
	}
	return view
}

func activityView(act types.Activity, mode string, lang types.Language) ActivityView {
	kind := types.KindOf(act)
	query := act.GoogleMapsQuery
	if query == "" {
		query = act.Location
	}
	av := ActivityView{
		Activity:  act,
		Kind:      kind,
		KindLabel: kind.Label(lang),
		MapsURL:   SearchLink(query),
	}
	if act.TravelTimeFromPrevious != "" && act.Location != "" {
		av.DirectionsURL = DirectionsLink(act.Location, mode)
		av.TravelIcon = "bus"
		if IsDriving(mode) {
			av.TravelIcon = "car"
		}
	}
	if len(act.RestaurantOptions) > 0 {
		av.RestaurantOptions = make([]RestaurantView, 0, len(act.RestaurantOptions))
		for _, r := range act.RestaurantOptions {
			av.RestaurantOptions = append(av.RestaurantOptions, RestaurantView{Restaurant: r, MapsURL: SearchLink(r.GoogleMapsQuery)})
		}
	}
	return av
}
