package itinerary

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

func TestParseTravelMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"30 mins", 30, true},
		{"27 mins", 27, true},
		{"1 hr 40 mins", 100, true},
		{"1 hour", 60, true},
		{"2 hrs", 120, true},
		{"10 mins walk", 10, true},
		{"1小時20分鐘", 80, true},
		{"約 15 分鐘", 15, true},
		{"1h30m", 90, true},
		{"1h 25m", 85, true},
		{"1hr30min", 90, true},
		{"2h", 120, true},
		{"45m", 45, true},
		{"5 miles", 0, false},
		{"3 hotels nearby", 0, false},
		{"short walk", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseTravelMinutes(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func compliantPlan() *types.TripPlan {
	reviews := []string{"Clean", "Quiet", "Great breakfast"}
	restaurants := make([]types.Restaurant, 4)
	for i := range restaurants {
		restaurants[i] = types.Restaurant{Name: "R", Rating: "4.5", TravelTime: "10 mins walk"}
	}
	return &types.TripPlan{
		Destination: "Kyoto",
		Summary:     "京都美食巡禮",
		Accommodations: []types.Accommodation{
			{Name: "A", Reviews: reviews},
			{Name: "B", Reviews: reviews},
			{Name: "C", Reviews: reviews},
		},
		Days: []types.DayPlan{
			{DayNumber: 1, Activities: []types.Activity{
				{Activity: "Fushimi Inari", Type: types.ActivitySightseeing},
				{Activity: "Lunch", Type: types.ActivityFood, TravelTimeFromPrevious: "1 hr 40 mins", RestaurantOptions: restaurants},
			}},
			{DayNumber: 2, Activities: []types.Activity{{Activity: "Market", Type: types.ActivityShopping}}},
		},
	}
}

func TestCheckComplianceClean(t *testing.T) {
	assert.Empty(t, CheckCompliance(compliantPlan(), types.LanguageZhTW, 2))
}

func TestCheckComplianceViolations(t *testing.T) {
	tests := []struct {
		name   string
		lang   types.Language
		mutate func(p *types.TripPlan)
		want   string
	}{
		{"long chinese summary", types.LanguageZhTW, func(p *types.TripPlan) { p.Summary = "京都五日美食與文化深度之旅" }, "characters"},
		{"long english summary", types.LanguageEN, func(p *types.TripPlan) { p.Summary = "A very long Kyoto food trip" }, "words"},
		{"too few accommodations", types.LanguageZhTW, func(p *types.TripPlan) { p.Accommodations = p.Accommodations[:2] }, "accommodation options"},
		{"wrong review count", types.LanguageZhTW, func(p *types.TripPlan) { p.Accommodations[0].Reviews = []string{"ok"} }, "reviews"},
		{"unrounded travel time", types.LanguageZhTW, func(p *types.TripPlan) { p.Days[0].Activities[1].TravelTimeFromPrevious = "27 mins" }, "not rounded"},
		{"unrounded compact travel time", types.LanguageZhTW, func(p *types.TripPlan) { p.Days[0].Activities[1].TravelTimeFromPrevious = "1h25m" }, "not rounded"},
		{"unrounded restaurant time", types.LanguageZhTW, func(p *types.TripPlan) { p.Days[0].Activities[1].RestaurantOptions[0].TravelTime = "1小時5分鐘" }, "restaurant 1 travel time"},
		{"low rating", types.LanguageZhTW, func(p *types.TripPlan) { p.Days[0].Activities[1].RestaurantOptions[2].Rating = "3.9" }, "rated 3.9"},
		{"too few restaurants", types.LanguageZhTW, func(p *types.TripPlan) {
			p.Days[0].Activities[1].RestaurantOptions = p.Days[0].Activities[1].RestaurantOptions[:2]
		}, "restaurant options"},
		{"day numbering gap", types.LanguageZhTW, func(p *types.TripPlan) { p.Days[1].DayNumber = 3 }, "numbered 3"},
		{"unknown type", types.LanguageZhTW, func(p *types.TripPlan) { p.Days[1].Activities[0].Type = "nightlife" }, "unknown type"},
		{"missing day", types.LanguageZhTW, func(p *types.TripPlan) { p.Days = p.Days[:1] }, "trip is 2 days"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := compliantPlan()
			tt.mutate(p)
			warnings := CheckCompliance(p, tt.lang, 2)
			if assert.Len(t, warnings, 1) {
				assert.Contains(t, warnings[0], tt.want)
			}
		})
	}
}

func TestCheckComplianceToleratesEmptyPlan(t *testing.T) {
	assert.NotPanics(t, func() {
		CheckCompliance(&types.TripPlan{}, types.LanguageEN, 0)
	})
}
