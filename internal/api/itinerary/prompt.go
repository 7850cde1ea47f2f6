package itinerary

import (
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-trip-itinerary/internal/tripdate"
	"github.com/FACorreiaa/go-trip-itinerary/internal/types"
)

const (
	englishDirective = "Output Language: English (US)."
	chineseDirective = "Output Language: Traditional Chinese (繁體中文). All generated text (including titles, descriptions, advice, reasons) MUST be in Traditional Chinese."
)

// LanguageDirective is the output-language line for lang. Anything but "en" gets
// the Traditional Chinese directive.
func LanguageDirective(lang types.Language) string {
	if lang.IsEnglish() {
		return englishDirective
	}
	return chineseDirective
}

// BuildPrompt turns a trip request into the planning instruction sent to the model.
// It returns the inclusive trip length alongside the prompt so callers stamp the
// same number on the plan.
func BuildPrompt(req types.TripRequest) (string, int, error) {
	days, err := tripdate.Duration(req.StartDate, req.EndDate)
	if err != nil {
		return "", 0, fmt.Errorf("%w: %s", types.ErrInvalidInput, err.Error())
	}

	var b strings.Builder
	fmt.Fprintf(&b, `
    Act as a professional Travel Planner & Social Media Expert.
    Plan a **%d-day** trip starting from **%s** to **%s**.
    **Dates: %s to %s**.
    Travel Style: %s.
    Transport Mode: %s.
    %s
`, days, req.Origin, req.Destination, req.StartDate, req.EndDate, req.Style, req.TransportMode, LanguageDirective(req.Language))

	if prefs := strings.TrimSpace(req.CustomPreferences); prefs != "" {
		fmt.Fprintf(&b, `
    **USER SPECIAL REQUESTS (PRIORITY):** %s
`, prefs)
	}

	fmt.Fprintf(&b, `
    CRITICAL INSTRUCTIONS:
    1. **CHECK FOR SPECIAL EVENTS (CRITICAL)**:
       - Search for ANY local festivals, concerts, public holidays, markets, or special exhibitions happening specifically between **%[1]s and %[2]s** in %[3]s.
       - If a relevant event matches the user's style and fits the logistics, **YOU MUST INCLUDE IT**.
       - Mark these activities with type="special_event" and isSpecialEvent=true.

    2. **Transport Time Rounding (MANDATORY)**:
       - You MUST estimate travel times using Google Maps logic but **ROUND to the nearest 10 minutes**.
       - Examples: 12 mins -> 10 mins. 27 mins -> 30 mins. 43 mins -> 40 mins. 1 hr 35 mins -> 1 hr 40 mins.
       - Apply this logic to 'travelTimeFromPrevious' and restaurant 'travelTime'.

    3. **Food (Interactive Cards)**:
       - For lunch/dinner, provide **%[4]d-%[5]d specific restaurant options**.
       - Focus on **"Insta-worthy"**, **"Local Hidden Gems"**, or **"Blogger Recommended"** spots.
       - Include a specific **"Must Try"** dish for each.
       - High ratings (>%.1[6]f).

    4. **Accommodation (Data Focused)**:
       - Provide **%[7]d-%[8]d options**.
       - MUST include "rating" (e.g. 4.7), "reviews" (Array of %[9]d short phrases), and realistic "pricePerNight".
       - NO IMAGE PROMPTS NEEDED for accommodation.

    5. **Summary**:
       - STRICT LIMIT: **MAX %[10]d characters** (if Chinese) or %[11]d words (if English).
       - Must be catchy and short.
`, req.StartDate, req.EndDate, req.Destination,
		MinRestaurants, MaxRestaurants, MinRestaurantRating,
		MinAccommodations, MaxAccommodations, ReviewsPerAccommodation,
		MaxSummaryChars, MaxSummaryWords)

	return b.String(), days, nil
}
