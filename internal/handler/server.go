// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (health.go, stay.go, etc.) but share the same Server struct so they
// can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/ai"
	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/geo"
	"github.com/pkordes/trip-planner/internal/service"
)

// StayServicer defines the hotel stay operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without touching the database or service layer.
type StayServicer interface {
	Create(ctx context.Context, stay domain.HotelStay) (domain.HotelStay, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.HotelStay, error)
	List(ctx context.Context) ([]domain.HotelStay, error)
	Update(ctx context.Context, stay domain.HotelStay) (domain.HotelStay, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Overlaps(ctx context.Context) ([]domain.StayOverlap, error)
}

// ItineraryServicer serves the authored days and the country map overlay.
type ItineraryServicer interface {
	Days() []domain.ItineraryDay
	Day(id int) (domain.ItineraryDay, error)
	Event(id int) (domain.ItineraryEvent, error)
	Route(dayID *int) (geo.Route, error)
	Project(p domain.GeoPoint) (service.Projection, error)
}

// AreaCatalog serves the neighborhood graphs. *catalog.Catalog satisfies it.
type AreaCatalog interface {
	ListAreas() []domain.Area
	GetArea(id string) (domain.Area, error)
	Node(areaID, nodeID string) (domain.AreaNode, error)
}

// CalendarServicer joins days and stays per date.
type CalendarServicer interface {
	Date(ctx context.Context, date string) (service.DateDetail, error)
	Month(ctx context.Context, year, month int) (calendar.Grid, error)
}

// ChecklistServicer manages the packing list.
type ChecklistServicer interface {
	Get(ctx context.Context) (domain.Checklist, error)
	AddItem(ctx context.Context, category, label string) (domain.ChecklistItem, error)
	DeleteItem(ctx context.Context, id string) error
	SetCheck(ctx context.Context, id string, checked bool) error
	Toggle(ctx context.Context, id string) (bool, error)
}

// SuggestionServicer manages cached AI tips.
type SuggestionServicer interface {
	Get(ctx context.Context, eventID int) (domain.Suggestion, error)
	Enhance(ctx context.Context, eventID int) (domain.Suggestion, bool, error)
	Delete(ctx context.Context, eventID int) error
	List(ctx context.Context, p domain.PaginationParams) (domain.Page[domain.Suggestion], error)
}

// PreferenceServicer reads and writes the saved view state.
type PreferenceServicer interface {
	Get(ctx context.Context) (domain.Preferences, error)
	Put(ctx context.Context, p domain.Preferences) (domain.Preferences, error)
}

// BackupServicer exports and restores user state.
type BackupServicer interface {
	Export(ctx context.Context) (domain.Backup, error)
	Import(ctx context.Context, raw []byte) (domain.RestoreSummary, error)
}

// AIStatuser reports whether the text generator has a credential.
type AIStatuser interface {
	Status() ai.Status
}

// Deps lists everything the Server needs. Nil services leave their routes
// unregistered, so a health-only server is Deps{}.
type Deps struct {
	Stays       StayServicer
	Itinerary   ItineraryServicer
	Areas       AreaCatalog
	Calendar    CalendarServicer
	Checklist   ChecklistServicer
	Suggestions SuggestionServicer
	Preferences PreferenceServicer
	Backup      BackupServicer
	AI          AIStatuser

	// Metrics serves /metrics when set.
	Metrics http.Handler
	Logger  *slog.Logger
}

// Server holds the HTTP handlers for all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	Deps
	log *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(d Deps) *Server {
	log := d.Logger
	if log == nil {
		log = slog.Default()
	}
	return &Server{Deps: d, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(Deps{})
}

// Handler builds the chi router for every configured endpoint.
// Wire it in main.go with r.Mount("/", server.Handler()).
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}

	if s.Itinerary != nil {
		r.Get("/itinerary/days", s.ListDays)
		r.Get("/itinerary/days/{dayId}", s.GetDay)
		r.Get("/itinerary/events/{eventId}", s.GetEvent)
		r.Get("/map/route", s.GetRoute)
		r.Get("/map/project", s.GetProjection)
	}
	if s.Areas != nil {
		r.Get("/areas", s.ListAreas)
		r.Get("/areas/{areaId}", s.GetArea)
		r.Get("/areas/{areaId}/nodes/{nodeId}", s.GetNode)
	}
	if s.Calendar != nil {
		r.Get("/calendar/{year}/{month}", s.GetMonth)
		r.Get("/calendar/dates/{date}", s.GetDate)
	}
	if s.Stays != nil {
		r.Route("/stays", func(r chi.Router) {
			r.Get("/", s.ListStays)
			r.Post("/", s.CreateStay)
			r.Get("/overlaps", s.ListStayOverlaps)
			r.Get("/{stayId}", s.GetStay)
			r.Put("/{stayId}", s.UpdateStay)
			r.Delete("/{stayId}", s.DeleteStay)
		})
	}
	if s.Checklist != nil {
		r.Get("/checklist", s.GetChecklist)
		r.Post("/checklist/items", s.AddChecklistItem)
		r.Delete("/checklist/items/{itemId}", s.DeleteChecklistItem)
		r.Put("/checklist/items/{itemId}/check", s.SetChecklistCheck)
		r.Post("/checklist/items/{itemId}/toggle", s.ToggleChecklistCheck)
	}
	if s.Suggestions != nil {
		r.Get("/events/{eventId}/suggestion", s.GetSuggestion)
		r.Post("/events/{eventId}/suggestion", s.EnhanceSuggestion)
		r.Delete("/events/{eventId}/suggestion", s.DeleteSuggestion)
		r.Get("/suggestions", s.ListSuggestions)
	}
	if s.AI != nil {
		r.Get("/ai/status", s.GetAIStatus)
	}
	if s.Preferences != nil {
		r.Get("/preferences", s.GetPreferences)
		r.Put("/preferences", s.PutPreferences)
	}
	if s.Backup != nil {
		r.Get("/backup", s.ExportBackup)
		r.Post("/backup", s.ImportBackup)
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody("not_found", "route not found"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
	})
	return r
}
