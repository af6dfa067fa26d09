package domain

import "time"

// Suggestion is an AI-generated tip text cached for one itinerary event.
type Suggestion struct {
	EventID   int       `json:"event_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
