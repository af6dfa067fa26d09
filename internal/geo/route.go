package geo

import (
	"github.com/golang/geo/s2"

	"github.com/pkordes/trip-planner/internal/domain"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0088

// Pin is one event placed on the map.
type Pin struct {
	EventID  int                      `json:"event_id"`
	Title    string                   `json:"title"`
	Type     domain.ActivityType      `json:"type"`
	Position domain.ProjectedPosition `json:"position"`
	Visible  bool                     `json:"visible"`
}

// Leg is the hop between two consecutive events.
type Leg struct {
	FromEventID int     `json:"from_event_id"`
	ToEventID   int     `json:"to_event_id"`
	DistanceKm  float64 `json:"distance_km"`
}

// Route is the overlay for an ordered list of events.
// Polyline holds only the visible positions, in event order.
type Route struct {
	Pins     []Pin                      `json:"pins"`
	Polyline []domain.ProjectedPosition `json:"polyline"`
	Legs     []Leg                      `json:"legs"`
	TotalKm  float64                    `json:"total_km"`
}

// BuildRoute projects every event and measures the legs between them.
// Legs are measured even when an endpoint is off the image; only drawing is
// clipped. A polyline needs at least two points, so it is empty otherwise.
func BuildRoute(events []domain.ItineraryEvent, b domain.MapBounds) Route {
	r := Route{
		Pins:     make([]Pin, 0, len(events)),
		Polyline: []domain.ProjectedPosition{},
		Legs:     []Leg{},
	}
	for i, ev := range events {
		pos := Project(ev.Point, b)
		vis := Visible(pos)
		r.Pins = append(r.Pins, Pin{
			EventID:  ev.ID,
			Title:    ev.Title,
			Type:     ev.Type,
			Position: pos,
			Visible:  vis,
		})
		if vis {
			r.Polyline = append(r.Polyline, pos)
		}
		if i > 0 {
			d := DistanceKm(events[i-1].Point, ev.Point)
			r.Legs = append(r.Legs, Leg{FromEventID: events[i-1].ID, ToEventID: ev.ID, DistanceKm: d})
			r.TotalKm += d
		}
	}
	if len(r.Polyline) < 2 {
		r.Polyline = []domain.ProjectedPosition{}
	}
	return r
}

// DistanceKm returns the great-circle distance between a and b.
func DistanceKm(a, b domain.GeoPoint) float64 {
	p1 := s2.LatLngFromDegrees(a.Latitude, a.Longitude)
	p2 := s2.LatLngFromDegrees(b.Latitude, b.Longitude)
	return p1.Distance(p2).Radians() * EarthRadiusKm
}

// ValidPoint reports whether p is a real latitude/longitude pair.
func ValidPoint(p domain.GeoPoint) bool {
	return s2.LatLngFromDegrees(p.Latitude, p.Longitude).IsValid()
}
