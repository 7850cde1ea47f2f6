package types

type TravelStyle string

const (
	StyleStandard TravelStyle = "standard"
	StyleDeep     TravelStyle = "deep"
	StyleBudget   TravelStyle = "budget"
	StyleLuxury   TravelStyle = "luxury"
	StyleFoodie   TravelStyle = "foodie"
)

// Transport presets offered by the form. TripRequest.TransportMode stays free-form.
const (
	TransportPublic  = "public_transport"
	TransportCar     = "rental_car"
	TransportScooter = "rental_scooter"
)

type Language string

const (
	LanguageZhTW Language = "zh-TW"
	LanguageEN   Language = "en"
)

// IsEnglish reports whether output should be English. Anything else means Traditional Chinese.
func (l Language) IsEnglish() bool {
	return l == LanguageEN
}

// TripRequest holds the trip parameters collected by the form.
type TripRequest struct {
	Origin            string      `json:"origin" validate:"required"`
	Destination       string      `json:"destination" validate:"required"`
	StartDate         string      `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate           string      `json:"endDate" validate:"required,datetime=2006-01-02"`
	Style             TravelStyle `json:"style" validate:"required,oneof=standard deep budget luxury foodie"`
	TransportMode     string      `json:"transportMode" validate:"required"`
	CustomPreferences string      `json:"customPreferences,omitempty"`
	Language          Language    `json:"language" validate:"omitempty,oneof=zh-TW en"`
}

type Restaurant struct {
	Name            string `json:"name"`
	Hours           string `json:"hours"`
	Price           string `json:"price"`
	Rating          string `json:"rating"`
	TravelTime      string `json:"travelTime"`
	GoogleMapsQuery string `json:"googleMapsQuery"`
	MustTry         string `json:"mustTry,omitempty"`
}

type Activity struct {
	Time                   string       `json:"time"`
	Activity               string       `json:"activity"`
	Description            string       `json:"description"`
	Location               string       `json:"location"`
	Type                   ActivityType `json:"type"`
	IsSpecialEvent         bool         `json:"isSpecialEvent,omitempty"`
	EstimatedCost          string       `json:"estimatedCost,omitempty"`
	TravelTimeFromPrevious string       `json:"travelTimeFromPrevious,omitempty"`
	TravelAdvice           string       `json:"travelAdvice,omitempty"`
	GoogleMapsQuery        string       `json:"googleMapsQuery"`
	ImagePrompt            string       `json:"imagePrompt"`
	RestaurantOptions      []Restaurant `json:"restaurantOptions,omitempty"`
}

// Special reports whether the activity should render as a time-bound local event.
func (a Activity) Special() bool {
	return a.IsSpecialEvent || a.Type == ActivitySpecialEvent
}

type DayPlan struct {
	DayNumber  int        `json:"dayNumber"`
	Date       string     `json:"date,omitempty"`
	Title      string     `json:"title"`
	Theme      string     `json:"theme"`
	Activities []Activity `json:"activities"`
}

type Accommodation struct {
	Name            string   `json:"name"`
	Location        string   `json:"location"`
	Description     string   `json:"description"`
	PricePerNight   string   `json:"pricePerNight"`
	Reason          string   `json:"reason"`
	GoogleMapsQuery string   `json:"googleMapsQuery"`
	Rating          string   `json:"rating"`
	Reviews         []string `json:"reviews"`
}

// TripPlan is the structured itinerary returned by the model, plus the fields the
// service always sets itself (Language, StartDate, EndDate, Duration).
type TripPlan struct {
	Destination         string          `json:"destination"`
	StartDate           string          `json:"startDate,omitempty"`
	EndDate             string          `json:"endDate,omitempty"`
	Duration            string          `json:"duration"`
	Style               string          `json:"style"`
	TransportMode       string          `json:"transportMode"`
	Summary             string          `json:"summary"`
	TotalBudgetEstimate string          `json:"totalBudgetEstimate"`
	Accommodations      []Accommodation `json:"accommodations"`
	Days                []DayPlan       `json:"days"`
	Language            Language        `json:"language,omitempty"`
	Warnings            []string        `json:"warnings,omitempty"`
}

// AccommodationNames lists accommodation names in plan order.
func (p *TripPlan) AccommodationNames() []string {
	names := make([]string, 0, len(p.Accommodations))
	for _, a := range p.Accommodations {
		names = append(names, a.Name)
	}
	return names
}

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}
