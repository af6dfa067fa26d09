package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/internal/domain"
)

const suggestionNotFound = "suggestion not found"

// EnhanceResponse is the body of POST /events/{eventId}/suggestion.
type EnhanceResponse struct {
	domain.Suggestion
	Cached bool `json:"cached"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// PagedResponse is a page of results with its pagination block.
type PagedResponse[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// GetSuggestion handles GET /events/{eventId}/suggestion.
func (s *Server) GetSuggestion(w http.ResponseWriter, r *http.Request) {
	var id int
	if err := pathParam(r, "eventId", &id); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	sug, err := s.Suggestions.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, suggestionNotFound)
		return
	}
	writeJSON(w, http.StatusOK, sug)
}

// EnhanceSuggestion handles POST /events/{eventId}/suggestion.
// A cached suggestion answers 200; a freshly generated one 201.
func (s *Server) EnhanceSuggestion(w http.ResponseWriter, r *http.Request) {
	var id int
	if err := pathParam(r, "eventId", &id); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	sug, cached, err := s.Suggestions.Enhance(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, "event not found")
		return
	}
	status := http.StatusCreated
	if cached {
		status = http.StatusOK
	}
	writeJSON(w, status, EnhanceResponse{Suggestion: sug, Cached: cached})
}

// DeleteSuggestion handles DELETE /events/{eventId}/suggestion.
func (s *Server) DeleteSuggestion(w http.ResponseWriter, r *http.Request) {
	var id int
	if err := pathParam(r, "eventId", &id); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	if err := s.Suggestions.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err, suggestionNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSuggestions handles GET /suggestions.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListSuggestions(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := queryParam(r, "page", false, &page); err != nil {
		s.writeError(w, r, err, "")
		return
	}
	if err := queryParam(r, "limit", false, &limit); err != nil {
		s.writeError(w, r, err, "")
		return
	}
	params := domain.NewPaginationParams(page, limit)

	result, err := s.Suggestions.List(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, PagedResponse[domain.Suggestion]{
		Data: result.Items,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(result.Total),
		},
	})
}
