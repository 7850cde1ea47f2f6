package itinerary

import (
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

func str(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

func activityTypeEnum() []string {
	enum := make([]string, 0, len(types.ActivityTypes))
	for _, t := range types.ActivityTypes {
		enum = append(enum, string(t))
	}
	return enum
}

func restaurantSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":            str(""),
			"hours":           str("e.g. 11:00-21:00"),
			"price":           str("e.g. $10-20 USD"),
			"rating":          str("e.g. 4.5"),
			"travelTime":      str("e.g. '10 mins walk' - Round to nearest 10 mins."),
			"googleMapsQuery": str(""),
			"mustTry":         str("One signature dish or item recommended by bloggers/influencers. e.g. 'Truffle Risotto', 'Matcha Latte'"),
		},
		Required: []string{"name", "hours", "price", "rating", "travelTime", "googleMapsQuery", "mustTry"},
	}
}

func activitySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"time":        str("Activity Start time, e.g. 10:00 AM"),
			"activity":    str("Name of the activity"),
			"description": str("2-3 sentences. If this is a special event, mention it here."),
			"location":    str(""),
			"type": {
				Type: genai.TypeString,
				Enum: activityTypeEnum(),
			},
			"isSpecialEvent": {
				Type:        genai.TypeBoolean,
				Description: "True if this is a time-specific local festival, concert, or holiday event.",
			},
			"estimatedCost":          str("e.g. $20 USD / Free"),
			"travelTimeFromPrevious": str("Round to nearest 10 mins. e.g. '30 mins' (not 27), '1 hr 40 mins' (not 1 hr 35)."),
			"travelAdvice":           str("Specific details like Bus numbers or Highway names."),
			"googleMapsQuery":        str("Query string to find this location"),
			"imagePrompt":            str("Exact name of the location + city, real photo"),
			"restaurantOptions": {
				Type:        genai.TypeArray,
				Description: "Provide 4-5 specific restaurant options suitable for Instagram/Social Media/Foodies.",
				Items:       restaurantSchema(),
			},
		},
		Required: []string{"time", "activity", "description", "location", "type", "googleMapsQuery", "imagePrompt"},
	}
}

func daySchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"dayNumber": {Type: genai.TypeInteger},
			"date":      str("The specific date for this day, e.g. '2023-10-25'"),
			"title":     str("Theme title for the day"),
			"theme":     str(""),
			"activities": {
				Type:  genai.TypeArray,
				Items: activitySchema(),
			},
		},
		Required: []string{"dayNumber", "title", "activities"},
	}
}

func accommodationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"name":            str(""),
			"location":        str("Area or address"),
			"description":     str("Brief description of the hotel/hostel"),
			"pricePerNight":   str("Estimated cost per night with currency"),
			"reason":          str("Why this is a good choice"),
			"googleMapsQuery": str("Query string to search this hotel on maps"),
			"rating":          str("Google Maps Star Rating, e.g. 4.6"),
			"reviews": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "3 short summaries of positive reviews, e.g. 'Great breakfast', 'Clean rooms'",
			},
		},
		Required: []string{"name", "location", "description", "reason", "googleMapsQuery", "pricePerNight", "rating", "reviews"},
	}
}

// TripPlanSchema is the response shape the model is constrained to. A fresh tree is
// built on every call so callers may not share mutations.
func TripPlanSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"destination":         str(""),
			"duration":            str(""),
			"style":               str(""),
			"transportMode":       str(""),
			"summary":             str("Strictly MAX 10 characters (Chinese) or 5 words. Very concise trip vibe."),
			"totalBudgetEstimate": str("Estimated budget range excluding flights."),
			"accommodations": {
				Type:        genai.TypeArray,
				Description: "Provide 3-4 different accommodation options ranging from budget to luxury or style-fit.",
				Items:       accommodationSchema(),
			},
			"days": {
				Type:  genai.TypeArray,
				Items: daySchema(),
			},
		},
		Required: []string{"destination", "summary", "days", "accommodations"},
	}
}

// GenerationConfig is the request configuration for an itinerary call.
func GenerationConfig(temperature float32) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](temperature),
		ResponseMIMEType: "application/json",
		ResponseSchema:   TripPlanSchema(),
	}
}
