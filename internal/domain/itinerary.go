package domain

// ActivityType is the category of an itinerary event.
type ActivityType string

const (
	ActivityFlight        ActivityType = "flight"
	ActivityAccommodation ActivityType = "accommodation"
	ActivityTransport     ActivityType = "transport"
	ActivitySightseeing   ActivityType = "sightseeing"
	ActivityFood          ActivityType = "food"
	ActivityShopping      ActivityType = "shopping"
	ActivityActivity      ActivityType = "activity"
	ActivityCustom        ActivityType = "custom"
)

// Valid reports whether t is one of the known activity types.
func (t ActivityType) Valid() bool {
	switch t {
	case ActivityFlight, ActivityAccommodation, ActivityTransport, ActivitySightseeing,
		ActivityFood, ActivityShopping, ActivityActivity, ActivityCustom:
		return true
	}
	return false
}

// DayKind is the calendar emphasis of an itinerary day.
type DayKind string

const (
	// DayBaseMove marks a change of base city or hotel.
	DayBaseMove DayKind = "base_move"
	// DayTrip marks a round trip out of the current base.
	DayTrip DayKind = "day_trip"
	// DayPlain is every other day.
	DayPlain DayKind = "plain"
)

// Valid reports whether k is one of the known kinds.
func (k DayKind) Valid() bool {
	switch k {
	case DayBaseMove, DayTrip, DayPlain:
		return true
	}
	return false
}

// ItineraryEvent is one scheduled activity of a day.
// Suggestion is curated text authored with the itinerary; AI tips are cached
// separately (see Suggestion).
type ItineraryEvent struct {
	ID          int          `json:"id" yaml:"id"`
	Time        string       `json:"time" yaml:"time"`
	Title       string       `json:"title" yaml:"title"`
	Description string       `json:"description" yaml:"description"`
	Location    string       `json:"location" yaml:"location"`
	Type        ActivityType `json:"type" yaml:"type"`
	Point       GeoPoint     `json:"coordinates" yaml:"coordinates"`
	Suggestion  string       `json:"suggestion,omitempty" yaml:"suggestion"`
}

// ItineraryDay is one calendar day of the trip.
// Date is always in YYYY-MM-DD form. Kind is the authored classification;
// an empty Kind falls back to text heuristics.
type ItineraryDay struct {
	ID        int              `json:"id" yaml:"id"`
	Date      string           `json:"date" yaml:"date"`
	DayOfWeek string           `json:"day_of_week" yaml:"day_of_week"`
	Title     string           `json:"title" yaml:"title"`
	Kind      DayKind          `json:"kind,omitempty" yaml:"kind"`
	Events    []ItineraryEvent `json:"events" yaml:"events"`
}
