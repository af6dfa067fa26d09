package domain

import (
	"time"

	"github.com/google/uuid"
)

// HotelStay is a lodging reservation covering the half-open date range
// [CheckIn, CheckOut). Both dates are in YYYY-MM-DD form.
type HotelStay struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address,omitempty"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StayOverlap reports two stored stays that share at least one night.
// First precedes Second in list order, so First is the stay ActiveStay picks.
type StayOverlap struct {
	First  HotelStay `json:"first"`
	Second HotelStay `json:"second"`
	// From and Until bound the shared nights as a half-open range.
	From  string `json:"from"`
	Until string `json:"until"`
}
