package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const itemNotFound = "checklist item not found"

// ChecklistItemRequest is the body of POST /checklist/items.
type ChecklistItemRequest struct {
	Category string `json:"category" validate:"required"`
	Label    string `json:"label" validate:"required,max=200"`
}

// CheckRequest is the body of PUT /checklist/items/{itemId}/check.
// Checked is a pointer so an omitted field is rejected rather than read as false.
type CheckRequest struct {
	Checked *bool `json:"checked" validate:"required"`
}

// CheckResponse reports an item's check state after a change.
type CheckResponse struct {
	ItemID  string `json:"item_id"`
	Checked bool   `json:"checked"`
}

// GetChecklist handles GET /checklist.
func (s *Server) GetChecklist(w http.ResponseWriter, r *http.Request) {
	list, err := s.Checklist.Get(r.Context())
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// AddChecklistItem handles POST /checklist/items.
func (s *Server) AddChecklistItem(w http.ResponseWriter, r *http.Request) {
	var body ChecklistItemRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	item, err := s.Checklist.AddItem(r.Context(), body.Category, body.Label)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// DeleteChecklistItem handles DELETE /checklist/items/{itemId}.
// Only custom items can be deleted; default items answer 422.
func (s *Server) DeleteChecklistItem(w http.ResponseWriter, r *http.Request) {
	if err := s.Checklist.DeleteItem(r.Context(), chi.URLParam(r, "itemId")); err != nil {
		s.writeError(w, r, err, itemNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SetChecklistCheck handles PUT /checklist/items/{itemId}/check.
func (s *Server) SetChecklistCheck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemId")
	var body CheckRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	if err := s.Checklist.SetCheck(r.Context(), id, *body.Checked); err != nil {
		s.writeError(w, r, err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, CheckResponse{ItemID: id, Checked: *body.Checked})
}

// ToggleChecklistCheck handles POST /checklist/items/{itemId}/toggle.
func (s *Server) ToggleChecklistCheck(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "itemId")
	checked, err := s.Checklist.Toggle(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, itemNotFound)
		return
	}
	writeJSON(w, http.StatusOK, CheckResponse{ItemID: id, Checked: checked})
}
