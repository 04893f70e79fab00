// Package radial places equally weighted items evenly around a circle.
//
// Item 0 sits at 12 o'clock and the rest follow clockwise in screen
// coordinates (y grows downward). The package never sizes the items it
// places: callers draw each item centered on its point using its own size.
package radial

import "math"

// Point is a position in screen coordinates.
type Point struct {
	X, Y float64
}

// Rect is a bounding rectangle. Its center is the circle's center and half
// of its smaller side is the circle's radius.
type Rect struct {
	X, Y, W, H float64
}

// Square returns the rectangle circumscribing a circle of radius r at c.
func Square(c Point, r float64) Rect {
	return Rect{X: c.X - r, Y: c.Y - r, W: 2 * r, H: 2 * r}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Radius returns half of the smaller dimension.
func (r Rect) Radius() float64 {
	return math.Min(r.W, r.H) / 2
}

// Placement is one placed item.
type Placement struct {
	Index int
	Point Point
	// Angle is the item's clockwise angle from 12 o'clock in degrees. Shapes
	// rotated by it point along the radius.
	Angle float64
}

// Step returns the angular distance between neighbours in degrees, or 0
// when there is nothing to place.
func Step(n int) float64 {
	if n <= 0 {
		return 0
	}
	return 360 / float64(n)
}

// Place returns the placement point of each of n items around the circle
// inscribed in bounds. n <= 0 yields nil.
func Place(bounds Rect, n int) []Point {
	if n <= 0 {
		return nil
	}
	out := make([]Point, n)
	for i, p := range Layout(bounds, n) {
		out[i] = p.Point
	}
	return out
}

// Layout is Place with each item's index and angle attached.
func Layout(bounds Rect, n int) []Placement {
	if n <= 0 {
		return nil
	}

	c := bounds.Center()
	radius := bounds.Radius()
	step := Step(n)

	out := make([]Placement, n)
	for i := range out {
		deg := step * float64(i)
		rad := (deg - 90) * math.Pi / 180
		out[i] = Placement{
			Index: i,
			Point: Point{
				X: c.X + math.Cos(rad)*radius,
				Y: c.Y + math.Sin(rad)*radius,
			},
			Angle: deg,
		}
	}
	return out
}

// Rotate turns p about c by deg degrees, clockwise on screen.
func Rotate(p, c Point, deg float64) Point {
	if deg == 0 {
		return p
	}
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(rad)
	dx, dy := p.X-c.X, p.Y-c.Y
	return Point{
		X: c.X + dx*cos - dy*sin,
		Y: c.Y + dx*sin + dy*cos,
	}
}
