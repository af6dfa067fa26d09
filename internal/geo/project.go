// Package geo projects geographic coordinates onto the fixed-bounds
// reference map and builds the route overlay drawn on top of it.
// Everything here is pure and safe for concurrent use.
package geo

import "github.com/pkordes/trip-planner/internal/domain"

// JapanBounds is calibrated to the Wikimedia "Japan location map" image the
// client renders. Changing the image means recalibrating these numbers.
var JapanBounds = domain.MapBounds{
	Top:    45.8,
	Bottom: 29.8,
	Left:   128.0,
	Right:  149.0,
}

// Project maps p into percentage space of the image described by b.
// Latitude grows northward while screen Y grows downward, hence the
// inverted subtraction for Y. Results outside [0,100] are returned as is;
// use Visible to decide whether to draw them.
func Project(p domain.GeoPoint, b domain.MapBounds) domain.ProjectedPosition {
	return domain.ProjectedPosition{
		X: (p.Longitude - b.Left) / (b.Right - b.Left) * 100,
		Y: (b.Top - p.Latitude) / (b.Top - b.Bottom) * 100,
	}
}

// Unproject is the inverse of Project.
func Unproject(pos domain.ProjectedPosition, b domain.MapBounds) domain.GeoPoint {
	return domain.GeoPoint{
		Latitude:  b.Top - pos.Y/100*(b.Top-b.Bottom),
		Longitude: b.Left + pos.X/100*(b.Right-b.Left),
	}
}

// Visible reports whether pos falls on the image.
func Visible(pos domain.ProjectedPosition) bool {
	return pos.X >= 0 && pos.X <= 100 && pos.Y >= 0 && pos.Y <= 100
}
