package geo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/geo"
)

func event(id int, lat, lng float64) domain.ItineraryEvent {
	return domain.ItineraryEvent{
		ID:    id,
		Title: "event",
		Type:  domain.ActivitySightseeing,
		Point: domain.GeoPoint{Latitude: lat, Longitude: lng},
	}
}

func TestBuildRoute_SkipsInvisibleInPolyline(t *testing.T) {
	events := []domain.ItineraryEvent{
		event(101, -23.4356, -46.4731), // Guarulhos, off the map
		event(301, 35.5494, 139.7798),  // Haneda
		event(302, 35.6895, 139.6917),  // Shinjuku
	}

	r := geo.BuildRoute(events, geo.JapanBounds)

	require.Len(t, r.Pins, 3)
	assert.False(t, r.Pins[0].Visible)
	assert.True(t, r.Pins[1].Visible)
	assert.True(t, r.Pins[2].Visible)
	assert.Len(t, r.Polyline, 2)
	assert.Equal(t, r.Pins[1].Position, r.Polyline[0])
	require.Len(t, r.Legs, 2)
	assert.Equal(t, 101, r.Legs[0].FromEventID)
	assert.Equal(t, 301, r.Legs[0].ToEventID)
}

func TestBuildRoute_SingleVisiblePointHasNoPolyline(t *testing.T) {
	r := geo.BuildRoute([]domain.ItineraryEvent{event(1, 35.68, 139.76)}, geo.JapanBounds)

	assert.Len(t, r.Pins, 1)
	assert.Empty(t, r.Polyline)
	assert.Empty(t, r.Legs)
	assert.Zero(t, r.TotalKm)
}

func TestBuildRoute_EmptyInput(t *testing.T) {
	r := geo.BuildRoute(nil, geo.JapanBounds)

	assert.NotNil(t, r.Pins)
	assert.NotNil(t, r.Polyline)
	assert.NotNil(t, r.Legs)
}

func TestDistanceKm_TokyoKyoto(t *testing.T) {
	tokyo := domain.GeoPoint{Latitude: 35.6812, Longitude: 139.7671}
	kyoto := domain.GeoPoint{Latitude: 34.9859, Longitude: 135.7588}

	// Straight-line Tokyo Station to Kyoto Station is roughly 370 km.
	assert.InDelta(t, 370, geo.DistanceKm(tokyo, kyoto), 15)
	assert.InDelta(t, 0, geo.DistanceKm(tokyo, tokyo), 1e-9)
}

func TestBuildRoute_TotalIsSumOfLegs(t *testing.T) {
	events := []domain.ItineraryEvent{
		event(1, 35.6812, 139.7671),
		event(2, 34.9859, 135.7588),
		event(3, 34.6687, 135.5013),
	}
	r := geo.BuildRoute(events, geo.JapanBounds)

	var sum float64
	for _, l := range r.Legs {
		sum += l.DistanceKm
	}
	assert.InDelta(t, sum, r.TotalKm, 1e-9)
}

func TestValidPoint(t *testing.T) {
	assert.True(t, geo.ValidPoint(domain.GeoPoint{Latitude: 35, Longitude: 139}))
	assert.False(t, geo.ValidPoint(domain.GeoPoint{Latitude: 95, Longitude: 139}))
}
