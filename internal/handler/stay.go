package handler

import (
	"net/http"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
)

const stayNotFound = "stay not found"

// StayRequest is the body of POST /stays and PUT /stays/{stayId}.
// Date format and ordering are checked by the service.
type StayRequest struct {
	Name     string `json:"name" validate:"required,max=200"`
	Address  string `json:"address" validate:"max=500"`
	CheckIn  string `json:"check_in" validate:"required"`
	CheckOut string `json:"check_out" validate:"required"`
}

func (req StayRequest) toDomain(id openapi_types.UUID) domain.HotelStay {
	return domain.HotelStay{
		ID:       id,
		Name:     req.Name,
		Address:  req.Address,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	}
}

// ListResponse wraps unpaged collections.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

// CreateStay handles POST /stays.
func (s *Server) CreateStay(w http.ResponseWriter, r *http.Request) {
	var body StayRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	created, err := s.Stays.Create(r.Context(), body.toDomain(openapi_types.UUID{}))
	if err != nil {
		s.writeError(w, r, err, stayNotFound)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// ListStays handles GET /stays. Stays come back ordered by check-in.
func (s *Server) ListStays(w http.ResponseWriter, r *http.Request) {
	stays, err := s.Stays.List(r.Context())
	if err != nil {
		s.writeError(w, r, err, stayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[domain.HotelStay]{Data: stays})
}

// ListStayOverlaps handles GET /stays/overlaps.
func (s *Server) ListStayOverlaps(w http.ResponseWriter, r *http.Request) {
	overlaps, err := s.Stays.Overlaps(r.Context())
	if err != nil {
		s.writeError(w, r, err, stayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, ListResponse[domain.StayOverlap]{Data: overlaps})
}

// GetStay handles GET /stays/{stayId}.
func (s *Server) GetStay(w http.ResponseWriter, r *http.Request) {
	var id openapi_types.UUID
	if err := pathParam(r, "stayId", &id); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	stay, err := s.Stays.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err, stayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, stay)
}

// UpdateStay handles PUT /stays/{stayId}.
func (s *Server) UpdateStay(w http.ResponseWriter, r *http.Request) {
	var id openapi_types.UUID
	if err := pathParam(r, "stayId", &id); err != nil {
		s.writeError(w, r, err, "")
		return
	}
	var body StayRequest
	if err := decodeBody(r, &body); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	updated, err := s.Stays.Update(r.Context(), body.toDomain(id))
	if err != nil {
		s.writeError(w, r, err, stayNotFound)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteStay handles DELETE /stays/{stayId}.
func (s *Server) DeleteStay(w http.ResponseWriter, r *http.Request) {
	var id openapi_types.UUID
	if err := pathParam(r, "stayId", &id); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	if err := s.Stays.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err, stayNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
