package domain

import "time"

// Theme is the UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is light or dark.
func (t Theme) Valid() bool {
	return t == ThemeLight || t == ThemeDark
}

// Tab is the active top-level view.
type Tab string

const (
	TabItinerary Tab = "itinerary"
	TabChecklist Tab = "checklist"
	TabMap       Tab = "map"
	TabHotels    Tab = "hotels"
	TabCalendar  Tab = "calendar"
)

// Valid reports whether t names one of the views.
func (t Tab) Valid() bool {
	switch t {
	case TabItinerary, TabChecklist, TabMap, TabHotels, TabCalendar:
		return true
	}
	return false
}

// StayDraft is the half-filled hotel entry form, saved so it survives reloads.
type StayDraft struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}

// Preferences is the single row of per-user view state.
type Preferences struct {
	Theme     Theme     `json:"theme"`
	ActiveTab Tab       `json:"active_tab"`
	Draft     StayDraft `json:"hotel_draft"`
	UpdatedAt time.Time `json:"updated_at,omitzero"`
}

// DefaultPreferences is returned before anything has been saved.
func DefaultPreferences() Preferences {
	return Preferences{Theme: ThemeLight, ActiveTab: TabItinerary}
}
