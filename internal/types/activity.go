package types

import "strings"

type ActivityType string

const (
	ActivitySightseeing  ActivityType = "sightseeing"
	ActivityFood         ActivityType = "food"
	ActivityTransport    ActivityType = "transport"
	ActivityRest         ActivityType = "rest"
	ActivityShopping     ActivityType = "shopping"
	ActivitySpecialEvent ActivityType = "special_event"
)

// ActivityTypes is the closed set accepted by the response schema, in schema order.
var ActivityTypes = []ActivityType{
	ActivitySightseeing,
	ActivityFood,
	ActivityTransport,
	ActivityRest,
	ActivityShopping,
	ActivitySpecialEvent,
}

// ActivityKind is the display metadata for one activity type.
type ActivityKind struct {
	Type    ActivityType `json:"type"`
	Icon    string       `json:"icon"`
	Color   string       `json:"color"`
	LabelZh string       `json:"labelZh"`
	LabelEn string       `json:"labelEn"`
}

// Label returns the label for the given output language.
func (k ActivityKind) Label(lang Language) string {
	if lang.IsEnglish() {
		return k.LabelEn
	}
	return k.LabelZh
}

var activityKinds = map[ActivityType]ActivityKind{
	ActivitySightseeing:  {Type: ActivitySightseeing, Icon: "camera", Color: "purple", LabelZh: "景點", LabelEn: "Sightseeing"},
	ActivityFood:         {Type: ActivityFood, Icon: "utensils", Color: "orange", LabelZh: "美食", LabelEn: "Food"},
	ActivityTransport:    {Type: ActivityTransport, Icon: "bus", Color: "blue", LabelZh: "交通", LabelEn: "Transport"},
	ActivityRest:         {Type: ActivityRest, Icon: "map-pin", Color: "gray", LabelZh: "休息", LabelEn: "Rest"},
	ActivityShopping:     {Type: ActivityShopping, Icon: "shopping-bag", Color: "pink", LabelZh: "購物", LabelEn: "Shopping"},
	ActivitySpecialEvent: {Type: ActivitySpecialEvent, Icon: "sparkles", Color: "yellow", LabelZh: "特別活動", LabelEn: "Special Event"},
}

// Valid reports whether t is one of the six known activity types.
func (t ActivityType) Valid() bool {
	_, ok := activityKinds[t]
	return ok
}

// KindOf resolves the display kind of an activity. The special-event flag wins over
// the type tag; unknown tags render like rest stops.
func KindOf(a Activity) ActivityKind {
	if a.Special() {
		return activityKinds[ActivitySpecialEvent]
	}
	if k, ok := activityKinds[ActivityType(strings.ToLower(string(a.Type)))]; ok {
		return k
	}
	return activityKinds[ActivityRest]
}
