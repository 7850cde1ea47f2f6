package itinerary

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/FACorreiaa/go-trip-itinerary/internal/tripdate"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// FieldError is one rejected input field, with a message in the request's language.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every problem found in a TripRequest. It unwraps to
// types.ErrInvalidInput.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Unwrap() error { return types.ErrInvalidInput }

var fieldLabels = map[string][2]string{
	"Origin":        {"出發地", "Origin"},
	"Destination":   {"目的地", "Destination"},
	"StartDate":     {"出發日期", "Start date"},
	"EndDate":       {"回程日期", "End date"},
	"Style":         {"旅遊風格", "Travel style"},
	"TransportMode": {"交通方式", "Transport mode"},
	"Language":      {"語言", "Language"},
}

var jsonNames = map[string]string{
	"Origin":        "origin",
	"Destination":   "destination",
	"StartDate":     "startDate",
	"EndDate":       "endDate",
	"Style":         "style",
	"TransportMode": "transportMode",
	"Language":      "language",
}

func label(field string, lang types.Language) string {
	l, ok := fieldLabels[field]
	if !ok {
		return field
	}
	if lang.IsEnglish() {
		return l[1]
	}
	return l[0]
}

func fieldMessage(fe validator.FieldError, lang types.Language) string {
	name := label(fe.StructField(), lang)
	en := lang.IsEnglish()
	switch fe.Tag() {
	case "required":
		if en {
			return name + " is required"
		}
		return "請填寫" + name
	case "datetime":
		if en {
			return name + " must be a date in YYYY-MM-DD format"
		}
		return name + "格式必須為 YYYY-MM-DD"
	case "oneof":
		if en {
			return fmt.Sprintf("%s must be one of: %s", name, fe.Param())
		}
		return fmt.Sprintf("%s必須是以下其中之一：%s", name, fe.Param())
	default:
		if en {
			return name + " is invalid"
		}
		return name + "無效"
	}
}

// endBeforeStartMessage is shown when the range is inverted.
func endBeforeStartMessage(lang types.Language) string {
	if lang.IsEnglish() {
		return "End date must be after start date"
	}
	return "結束日期必須晚於或等於開始日期"
}

// Normalize trims free-text fields and fills in the default language.
func Normalize(req types.TripRequest) types.TripRequest {
	req.Origin = strings.TrimSpace(req.Origin)
	req.Destination = strings.TrimSpace(req.Destination)
	req.StartDate = strings.TrimSpace(req.StartDate)
	req.EndDate = strings.TrimSpace(req.EndDate)
	req.TransportMode = strings.TrimSpace(req.TransportMode)
	req.CustomPreferences = strings.TrimSpace(req.CustomPreferences)
	if req.Language == "" {
		req.Language = types.LanguageZhTW
	}
	return req
}

// Validate checks required fields, formats and that the end date is not before
// the start date. It returns a *ValidationError or nil.
func Validate(req types.TripRequest) error {
	lang := req.Language
	verr := &ValidationError{}

	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %s", types.ErrInvalidInput, err.Error())
		}
		for _, fe := range fieldErrs {
			verr.Fields = append(verr.Fields, FieldError{
				Field:   jsonNames[fe.StructField()],
				Message: fieldMessage(fe, lang),
			})
		}
	}

	start, serr := tripdate.Parse(req.StartDate)
	end, eerr := tripdate.Parse(req.EndDate)
	if serr == nil && eerr == nil && end.Before(start) {
		verr.Fields = append(verr.Fields, FieldError{Field: "endDate", Message: endBeforeStartMessage(lang)})
	}

	if len(verr.Fields) == 0 {
		return nil
	}
	return verr
}
