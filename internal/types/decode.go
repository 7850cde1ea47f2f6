package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// The model does not always honour the scalar types in the response schema: ratings
// come back as 4.6, day numbers as "1". The decoders below accept either form for
// the affected fields and keep the plan's Go types unchanged.

// looseString decodes a JSON string, number or boolean into its text.
type looseString string

func (s *looseString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*s = ""
	case len(b) > 0 && b[0] == '"':
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = looseString(v)
	case len(b) > 0 && (b[0] == '-' || b[0] >= '0' && b[0] <= '9' || b[0] == 't' || b[0] == 'f'):
		*s = looseString(b)
	default:
		return fmt.Errorf("expected a string or number, got %s", b)
	}
	return nil
}

// looseInt decodes a JSON number or numeric string. Text that is not a number
// decodes as 0.
type looseInt int

func (n *looseInt) UnmarshalJSON(b []byte) error {
	var s looseString
	if err := s.UnmarshalJSON(b); err != nil {
		return err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(string(s)), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		*n = 0
		return nil
	}
	*n = looseInt(math.Round(f))
	return nil
}

func (r *Restaurant) UnmarshalJSON(b []byte) error {
	type alias Restaurant
	aux := struct {
		*alias
		Price  looseString `json:"price"`
		Rating looseString `json:"rating"`
	}{alias: (*alias)(r)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	r.Price, r.Rating = string(aux.Price), string(aux.Rating)
	return nil
}

func (a *Activity) UnmarshalJSON(b []byte) error {
	type alias Activity
	aux := struct {
		*alias
		EstimatedCost looseString `json:"estimatedCost"`
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	a.EstimatedCost = string(aux.EstimatedCost)
	return nil
}

func (d *DayPlan) UnmarshalJSON(b []byte) error {
	type alias DayPlan
	aux := struct {
		*alias
		DayNumber looseInt `json:"dayNumber"`
	}{alias: (*alias)(d)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	d.DayNumber = int(aux.DayNumber)
	return nil
}

func (a *Accommodation) UnmarshalJSON(b []byte) error {
	type alias Accommodation
	aux := struct {
		*alias
		PricePerNight looseString `json:"pricePerNight"`
		Rating        looseString `json:"rating"`
	}{alias: (*alias)(a)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	a.PricePerNight, a.Rating = string(aux.PricePerNight), string(aux.Rating)
	return nil
}

func (p *TripPlan) UnmarshalJSON(b []byte) error {
	type alias TripPlan
	aux := struct {
		*alias
		Duration            looseString `json:"duration"`
		TotalBudgetEstimate looseString `json:"totalBudgetEstimate"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	p.Duration, p.TotalBudgetEstimate = string(aux.Duration), string(aux.TotalBudgetEstimate)
	return nil
}
