package itinerary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "want *ValidationError, got %v", err)
	out := make(map[string]string, len(verr.Fields))
	for _, f := range verr.Fields {
		out[f.Field] = f.Message
	}
	return out
}

func TestValidateAcceptsCompleteRequest(t *testing.T) {
	assert.NoError(t, Validate(kyotoRequest()))

	oneDay := kyotoRequest()
	oneDay.EndDate = oneDay.StartDate
	assert.NoError(t, Validate(oneDay))
}

func TestValidateEndBeforeStart(t *testing.T) {
	req := kyotoRequest()
	req.StartDate, req.EndDate = "2024-11-05", "2024-11-01"

	err := Validate(req)
	assert.ErrorIs(t, err, types.ErrInvalidInput)
	assert.Equal(t, "結束日期必須晚於或等於開始日期", fieldsOf(t, err)["endDate"])

	req.Language = types.LanguageEN
	assert.Equal(t, "End date must be after start date", fieldsOf(t, Validate(req))["endDate"])
}

func TestValidateMissingFields(t *testing.T) {
	req := Normalize(types.TripRequest{Origin: "   ", Language: types.LanguageEN})

	fields := fieldsOf(t, Validate(req))
	assert.Equal(t, "Origin is required", fields["origin"])
	assert.Equal(t, "Destination is required", fields["destination"])
	assert.Contains(t, fields, "startDate")
	assert.Contains(t, fields, "endDate")
	assert.Contains(t, fields, "style")
	assert.Contains(t, fields, "transportMode")
}

func TestValidateChineseMessages(t *testing.T) {
	req := kyotoRequest()
	req.Destination = ""
	assert.Equal(t, "請填寫目的地", fieldsOf(t, Validate(req))["destination"])
}

func TestValidateFormats(t *testing.T) {
	req := kyotoRequest()
	req.StartDate = "11/01/2024"
	req.Style = "party"
	req.Language = "fr"

	fields := fieldsOf(t, Validate(req))
	assert.Contains(t, fields, "startDate")
	assert.Contains(t, fields, "style")
	assert.Contains(t, fields, "language")
	assert.NotContains(t, fields, "endDate", "range check needs both dates to parse")
}

func TestNormalizeDefaultsLanguage(t *testing.T) {
	req := Normalize(types.TripRequest{Destination: " Kyoto "})
	assert.Equal(t, types.LanguageZhTW, req.Language)
	assert.Equal(t, "Kyoto", req.Destination)
}
