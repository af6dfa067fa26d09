package domain

import "fmt"

// GeoPoint is a real-world position in degrees.
type GeoPoint struct {
	Latitude  float64 `json:"lat" yaml:"lat"`
	Longitude float64 `json:"lng" yaml:"lng"`
}

// MapBounds is the real-world rectangle a static reference image depicts.
// Top and Bottom are latitudes, Left and Right longitudes.
type MapBounds struct {
	Top    float64 `json:"top"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
}

// Validate checks top > bottom and right > left.
func (b MapBounds) Validate() error {
	if b.Top <= b.Bottom {
		return fmt.Errorf("%w: bounds top %.4f must be greater than bottom %.4f", ErrValidation, b.Top, b.Bottom)
	}
	if b.Right <= b.Left {
		return fmt.Errorf("%w: bounds right %.4f must be greater than left %.4f", ErrValidation, b.Right, b.Left)
	}
	return nil
}

// ProjectedPosition is a location expressed as percentages of the reference
// image width (X) and height (Y). Values outside [0,100] fall off the image.
type ProjectedPosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
