package itinerary

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (string, error) {
	args := m.Called(ctx, contents, config)
	return args.String(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const kyotoReply = `{
  "destination": "Kyoto",
  "duration": "99",
  "startDate": "1999-01-01",
  "language": "en",
  "style": "foodie",
  "transportMode": "Public Transport",
  "summary": "京都吃貨之旅",
  "totalBudgetEstimate": "NT$30,000",
  "accommodations": [],
  "days": [
    {"dayNumber": 1, "title": "Arrival", "activities": [
      {"time": "10:00 AM", "activity": "Nishiki Market", "description": "Food street.", "location": "Nakagyo", "type": "food", "googleMapsQuery": "Nishiki Market Kyoto", "imagePrompt": "Nishiki Market Kyoto"}
    ]}
  ]
}`

func TestGenerateItinerarySuccess(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything,
		mock.MatchedBy(func(c []*genai.Content) bool {
			return len(c) == 1 && c[0].Role == "user" && len(c[0].Parts) == 1
		}),
		mock.MatchedBy(func(cfg *genai.GenerateContentConfig) bool {
			return cfg.ResponseMIMEType == "application/json" && cfg.ResponseSchema != nil && *cfg.Temperature == 0.5
		}),
	).Return(kyotoReply, nil).Once()

	svc := NewServiceImpl(discardLogger(), gen, nil, 0.5)
	plan, err := svc.GenerateItinerary(context.Background(), kyotoRequest())
	require.NoError(t, err)

	assert.Equal(t, "Kyoto", plan.Destination)
	assert.Equal(t, "5", plan.Duration, "duration is always computed locally")
	assert.Equal(t, "2024-11-01", plan.StartDate)
	assert.Equal(t, "2024-11-05", plan.EndDate)
	assert.Equal(t, types.LanguageZhTW, plan.Language)
	require.Len(t, plan.Days, 1)
	assert.Empty(t, plan.Days[0].Activities[0].RestaurantOptions)
	assert.NotEmpty(t, plan.Warnings, "one day and no hotels for a five day trip breaks the prompt rules")
	gen.AssertExpectations(t)
}

func TestGenerateItineraryRejectsInvalidInputBeforeCallingModel(t *testing.T) {
	gen := new(MockGenerator)
	svc := NewServiceImpl(discardLogger(), gen, nil, 0.5)

	req := kyotoRequest()
	req.EndDate = "2024-10-01"
	_, err := svc.GenerateItinerary(context.Background(), req)

	assert.ErrorIs(t, err, types.ErrInvalidInput)
	gen.AssertNotCalled(t, "GenerateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestGenerateItineraryFailures(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
	}{
		{"transport error", "", errors.New("connection refused")},
		{"empty reply", "", nil},
		{"blank reply", "  \n ", nil},
		{"null reply", "null", nil},
		{"invalid json", "Here is your trip: day 1...", nil},
		{"truncated json", `{"destination": "Kyoto", "days": [`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := new(MockGenerator)
			gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).Return(tt.reply, tt.err)

			svc := NewServiceImpl(discardLogger(), gen, nil, 0.5)
			plan, err := svc.GenerateItinerary(context.Background(), kyotoRequest())

			assert.Nil(t, plan)
			assert.ErrorIs(t, err, types.ErrGeneration)
		})
	}
}

func TestParsePlanEmptyDaysIsNotAnError(t *testing.T) {
	plan, err := ParsePlan(`{"destination": "Kyoto", "summary": "x", "days": [], "accommodations": []}`)
	require.NoError(t, err)
	assert.Empty(t, plan.Days)

	_, err = ParsePlan("")
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestParsePlanStripsCodeFences(t *testing.T) {
	plan, err := ParsePlan("```json\n{\"destination\": \"Kyoto\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "Kyoto", plan.Destination)
}

func TestStampOverwritesModelFields(t *testing.T) {
	plan := &types.TripPlan{Duration: "2", StartDate: "2000-01-01", Language: types.LanguageEN}
	Stamp(plan, kyotoRequest(), 5)
	assert.Equal(t, "5", plan.Duration)
	assert.Equal(t, "2024-11-01", plan.StartDate)
	assert.Equal(t, "2024-11-05", plan.EndDate)
	assert.Equal(t, types.LanguageZhTW, plan.Language)
}

func TestParsePlanAcceptsOffTypeScalars(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		check func(t *testing.T, plan *types.TripPlan)
	}{
		{
			name:  "numeric duration",
			reply: `{"destination": "Kyoto", "duration": 5, "days": []}`,
			check: func(t *testing.T, plan *types.TripPlan) { assert.Equal(t, "5", plan.Duration) },
		},
		{
			name: "numeric restaurant rating",
			reply: `{"destination": "Kyoto", "days": [{"dayNumber": 1, "title": "a", "activities": [
				{"time": "12:00", "activity": "Lunch", "type": "food", "restaurantOptions": [{"name": "Izuju", "rating": 4.6, "price": 1500}]}
			]}]}`,
			check: func(t *testing.T, plan *types.TripPlan) {
				r := plan.Days[0].Activities[0].RestaurantOptions[0]
				assert.Equal(t, "4.6", r.Rating)
				assert.Equal(t, "1500", r.Price)
			},
		},
		{
			name:  "numeric accommodation rating",
			reply: `{"destination": "Kyoto", "days": [], "accommodations": [{"name": "Hotel Kanra", "rating": 4.5, "pricePerNight": null}]}`,
			check: func(t *testing.T, plan *types.TripPlan) {
				assert.Equal(t, "4.5", plan.Accommodations[0].Rating)
				assert.Empty(t, plan.Accommodations[0].PricePerNight)
			},
		},
		{
			name:  "string day number",
			reply: `{"destination": "Kyoto", "days": [{"dayNumber": "1", "title": "a", "activities": []}, {"dayNumber": "two", "title": "b", "activities": []}]}`,
			check: func(t *testing.T, plan *types.TripPlan) {
				assert.Equal(t, 1, plan.Days[0].DayNumber)
				assert.Equal(t, 0, plan.Days[1].DayNumber, "unreadable numbers are left for the compliance report")
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan, err := ParsePlan(tt.reply)
			require.NoError(t, err)
			tt.check(t, plan)
		})
	}
}

func TestGenerateItineraryOverwritesNumericDuration(t *testing.T) {
	gen := new(MockGenerator)
	gen.On("GenerateContent", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"destination": "Kyoto", "duration": 9, "days": [{"dayNumber": "1", "title": "a", "activities": []}]}`, nil).Once()

	plan, err := NewServiceImpl(discardLogger(), gen, nil, 0.5).GenerateItinerary(context.Background(), kyotoRequest())
	require.NoError(t, err)
	assert.Equal(t, "5", plan.Duration)
	assert.Equal(t, 1, plan.Days[0].DayNumber)
}

func TestParsePlanRejectsObjectForScalar(t *testing.T) {
	_, err := ParsePlan(`{"destination": "Kyoto", "duration": {"days": 5}}`)
	assert.ErrorIs(t, err, types.ErrGeneration)
}
