package field

import "github.com/golang/geo/r2"

// RectangularRegion is an axis-aligned rectangle expressed as a canonical
// corner pair: MinCorner's coordinates are each at most MaxCorner's.
type RectangularRegion struct {
	MinCorner r2.Point
	MaxCorner r2.Point
}

// Contains reports whether the point lies inside the rectangle, boundary
// included.
func (r RectangularRegion) Contains(p r2.Point) bool {
	return p.X >= r.MinCorner.X && p.X <= r.MaxCorner.X &&
		p.Y >= r.MinCorner.Y && p.Y <= r.MaxCorner.Y
}

// CircularRegion is a circle on the field.
type CircularRegion struct {
	Center r2.Point
	Radius float64
}

// Contains reports whether the point lies inside the circle, boundary
// included.
func (c CircularRegion) Contains(p r2.Point) bool {
	return p.Sub(c.Center).Norm() <= c.Radius
}
