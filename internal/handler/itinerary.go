package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pkordes/trip-planner/internal/catalog"
	"github.com/pkordes/trip-planner/internal/domain"
)

// ListDays handles GET /itinerary/days.
func (s *Server) ListDays(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ListResponse[domain.ItineraryDay]{Data: s.Itinerary.Days()})
}

// GetDay handles GET /itinerary/days/{dayId}.
func (s *Server) GetDay(w http.ResponseWriter, r *http.Request) {
	var id int
	if err := pathParam(r, "dayId", &id); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	day, err := s.Itinerary.Day(id)
	if err != nil {
		s.writeError(w, r, err, "day not found")
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// GetEvent handles GET /itinerary/events/{eventId}.
func (s *Server) GetEvent(w http.ResponseWriter, r *http.Request) {
	var id int
	if err := pathParam(r, "eventId", &id); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	ev, err := s.Itinerary.Event(id)
	if err != nil {
		s.writeError(w, r, err, "event not found")
		return
	}
	writeJSON(w, http.StatusOK, ev)
}

// GetRoute handles GET /map/route.
// Without ?day= the route covers every event of the trip.
func (s *Server) GetRoute(w http.ResponseWriter, r *http.Request) {
	var day *int
	if err := queryParam(r, "day", false, &day); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	route, err := s.Itinerary.Route(day)
	if err != nil {
		s.writeError(w, r, err, "day not found")
		return
	}
	writeJSON(w, http.StatusOK, route)
}

// GetProjection handles GET /map/project?lat=&lng=.
func (s *Server) GetProjection(w http.ResponseWriter, r *http.Request) {
	var p domain.GeoPoint
	if err := queryParam(r, "lat", true, &p.Latitude); err != nil {
		s.writeError(w, r, err, "")
		return
	}
	if err := queryParam(r, "lng", true, &p.Longitude); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	proj, err := s.Itinerary.Project(p)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

// AreaResponse is an area with every edge's endpoints resolved.
type AreaResponse struct {
	domain.Area
	ResolvedEdges []domain.ResolvedEdge `json:"resolved_edges"`
}

// ListAreas handles GET /areas.
func (s *Server) ListAreas(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, ListResponse[domain.Area]{Data: s.Areas.ListAreas()})
}

// GetArea handles GET /areas/{areaId}.
func (s *Server) GetArea(w http.ResponseWriter, r *http.Request) {
	area, err := s.Areas.GetArea(chi.URLParam(r, "areaId"))
	if err != nil {
		s.writeError(w, r, err, "area not found")
		return
	}
	edges, err := catalog.ResolveEdges(area)
	if err != nil {
		s.writeError(w, r, err, "edge endpoint not found")
		return
	}
	writeJSON(w, http.StatusOK, AreaResponse{Area: area, ResolvedEdges: edges})
}

// GetNode handles GET /areas/{areaId}/nodes/{nodeId}.
func (s *Server) GetNode(w http.ResponseWriter, r *http.Request) {
	node, err := s.Areas.Node(chi.URLParam(r, "areaId"), chi.URLParam(r, "nodeId"))
	if err != nil {
		s.writeError(w, r, err, "area or node not found")
		return
	}
	writeJSON(w, http.StatusOK, node)
}

// GetMonth handles GET /calendar/{year}/{month}.
func (s *Server) GetMonth(w http.ResponseWriter, r *http.Request) {
	var year, month int
	if err := pathParam(r, "year", &year); err != nil {
		s.writeError(w, r, err, "")
		return
	}
	if err := pathParam(r, "month", &month); err != nil {
		s.writeError(w, r, err, "")
		return
	}

	grid, err := s.Calendar.Month(r.Context(), year, month)
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, grid)
}

// GetDate handles GET /calendar/dates/{date}.
// A date outside the trip still answers 200 with only the active stay, if any.
func (s *Server) GetDate(w http.ResponseWriter, r *http.Request) {
	detail, err := s.Calendar.Date(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		s.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, detail)
}
