package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

// PreferencesRequest is the body of PUT /preferences.
type PreferencesRequest struct {
	Theme     domain.Theme     `json:"theme" validate:"required,oneof=light dark"`
	ActiveTab domain.Tab       `json:"active_tab" validate:"required,oneof=itinerary checklist map hotels calendar"`
	Draft     domain.StayDraft `json:"hotel_draft"`
}

// GetPreferences handles GET /preferences.
func (s *Server) GetPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := s.Preferences.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// PutPreferences handles PUT /preferences.
func (s *Server) PutPreferences(w http.ResponseWriter, r *http.Request) {
	var body PreferencesRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	saved, err := s.Preferences.Put(r.Context(), domain.Preferences{
		Theme:     body.Theme,
		ActiveTab: body.ActiveTab,
		Draft:     body.Draft,
	})
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, saved)
}
