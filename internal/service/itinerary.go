package service

import (
	"context"
	"fmt"

	"github.com/pkordes/trip-planner/internal/calendar"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/geo"
)

// ItineraryCatalog is the read-only itinerary data. *catalog.Catalog satisfies it.
type ItineraryCatalog interface {
	Days() []domain.ItineraryDay
	Day(id int) (domain.ItineraryDay, error)
	DayByDate(date string) (domain.ItineraryDay, bool)
	Event(id int) (domain.ItineraryEvent, error)
	Events() []domain.ItineraryEvent
}

// ItineraryService serves itinerary days with their calendar kind and lays
// events out on the country map.
type ItineraryService struct {
	catalog ItineraryCatalog
	bounds  domain.MapBounds
}

// NewItineraryService projects onto geo.JapanBounds.
func NewItineraryService(c ItineraryCatalog) *ItineraryService {
	return &ItineraryService{catalog: c, bounds: geo.JapanBounds}
}

// Days returns every day in date order with Kind resolved.
func (s *ItineraryService) Days() []domain.ItineraryDay {
	days := s.catalog.Days()
	for i := range days {
		days[i].Kind = calendar.ClassifyDay(days[i])
	}
	return days
}

// Day returns domain.ErrNotFound for an unknown id.
func (s *ItineraryService) Day(id int) (domain.ItineraryDay, error) {
	d, err := s.catalog.Day(id)
	if err != nil {
		return domain.ItineraryDay{}, fmt.Errorf("service.ItineraryService.Day: %w", err)
	}
	d.Kind = calendar.ClassifyDay(d)
	return d, nil
}

// Event returns domain.ErrNotFound for an unknown id.
func (s *ItineraryService) Event(id int) (domain.ItineraryEvent, error) {
	ev, err := s.catalog.Event(id)
	if err != nil {
		return domain.ItineraryEvent{}, fmt.Errorf("service.ItineraryService.Event: %w", err)
	}
	return ev, nil
}

// Route builds map pins and the route line for one day, or for the whole
// trip when dayID is nil.
func (s *ItineraryService) Route(dayID *int) (geo.Route, error) {
	events := s.catalog.Events()
	if dayID != nil {
		d, err := s.catalog.Day(*dayID)
		if err != nil {
			return geo.Route{}, fmt.Errorf("service.ItineraryService.Route: %w", err)
		}
		events = d.Events
	}
	return geo.BuildRoute(events, s.bounds), nil
}

// Projection is one projected coordinate.
type Projection struct {
	Point    domain.GeoPoint          `json:"point"`
	Position domain.ProjectedPosition `json:"position"`
	Visible  bool                     `json:"visible"`
}

// Project maps a coordinate onto the map.
// Returns domain.ErrValidation for coordinates that are not on Earth.
func (s *ItineraryService) Project(p domain.GeoPoint) (Projection, error) {
	if !geo.ValidPoint(p) {
		return Projection{}, fmt.Errorf("%w: lat must be within [-90, 90] and lng within [-180, 180]", domain.ErrValidation)
	}
	pos := geo.Project(p, s.bounds)
	return Projection{Point: p, Position: pos, Visible: geo.Visible(pos)}, nil
}

// CalendarService joins the itinerary with stored stays per date.
type CalendarService struct {
	catalog ItineraryCatalog
	stays   stayLister
}

type stayLister interface {
	List(ctx context.Context) ([]domain.HotelStay, error)
}

// NewCalendarService constructs a CalendarService. stays is usually the
// StayRepo.
func NewCalendarService(c ItineraryCatalog, stays stayLister) *CalendarService {
	return &CalendarService{catalog: c, stays: stays}
}

// DateDetail is what the calendar shows for one date.
type DateDetail struct {
	Date string               `json:"date"`
	Day  *domain.ItineraryDay `json:"day,omitempty"`
	Kind domain.DayKind       `json:"kind,omitempty"`
	Stay *domain.HotelStay    `json:"stay,omitempty"`
}

// Date returns the itinerary day and active stay for date.
// Returns domain.ErrDateParse for a malformed date.
func (s *CalendarService) Date(ctx context.Context, date string) (DateDetail, error) {
	if _, err := domain.ParseDate(date); err != nil {
		return DateDetail{}, fmt.Errorf("service.CalendarService.Date: %w", err)
	}
	stays, err := s.stays.List(ctx)
	if err != nil {
		return DateDetail{}, fmt.Errorf("service.CalendarService.Date: %w", err)
	}

	out := DateDetail{Date: date}
	if d, ok := s.catalog.DayByDate(date); ok {
		out.Day = &d
		out.Kind = calendar.ClassifyDay(d)
	}
	stay, ok, err := calendar.ActiveStay(date, stays)
	if err != nil {
		return DateDetail{}, fmt.Errorf("service.CalendarService.Date: %w", err)
	}
	if ok {
		out.Stay = &stay
	}
	return out, nil
}

// Month returns the grid for year/month.
func (s *CalendarService) Month(ctx context.Context, year, month int) (calendar.Grid, error) {
	stays, err := s.stays.List(ctx)
	if err != nil {
		return calendar.Grid{}, fmt.Errorf("service.CalendarService.Month: %w", err)
	}
	g, err := calendar.Month(year, month, s.catalog.Days(), stays)
	if err != nil {
		return calendar.Grid{}, fmt.Errorf("service.CalendarService.Month: %w", err)
	}
	return g, nil
}
