// Package scene turns the dial state into an ordered list of draw
// primitives.
//
// Each layer is a pure function of a Frame. Render runs every layer in
// order in a single pass and keeps nothing between calls, so backends can
// call it once per frame.
package scene

import (
	"image/color"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/dial"
	"github.com/iburimskiy/weightdial/internal/radial"
)

// Kind is the shape of a primitive.
type Kind int

const (
	Rect   Kind = iota // filled rectangle from P0 to P1
	Circle             // filled circle at P0 with Radius
	Line               // stroked segment P0-P1 with Width
	Text               // Text centered on P0, rotated by Angle
)

// Primitive is one drawable element in surface coordinates.
type Primitive struct {
	Kind   Kind
	Layer  string
	P0, P1 radial.Point
	Radius float64
	Width  float64
	Text   string
	Size   float64
	Bold   bool
	Angle  float64 // degrees, clockwise
	Color  color.RGBA
}

// Frame is everything a layer may look at.
type Frame struct {
	Dial   dial.Snapshot
	Layout config.Layout
}

// Layer draws one part of the dial.
type Layer struct {
	Name string
	Draw func(Frame) []Primitive
}

var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray      = color.RGBA{R: 142, G: 142, B: 147, A: 255}
	Indicator = color.RGBA{R: 255, G: 59, B: 48, A: 255}
)

// Layers is the draw order, bottom first.
var Layers = []Layer{
	{Name: "background", Draw: background},
	{Name: "face", Draw: face},
	{Name: "minor", Draw: minorTicks},
	{Name: "dots", Draw: dots},
	{Name: "major", Draw: majorTicks},
	{Name: "labels", Draw: labels},
	{Name: "indicator", Draw: indicator},
	{Name: "readout", Draw: readout},
}

// Render composes all layers. Primitives that fall entirely outside the
// surface are dropped.
func Render(f Frame) []Primitive {
	var out []Primitive
	for _, l := range Layers {
		for _, p := range l.Draw(f) {
			if !visible(p, f.Layout) {
				continue
			}
			p.Layer = l.Name
			out = append(out, p)
		}
	}
	return out
}

// Count returns how many primitives each layer produced, before culling.
func Count(f Frame) map[string]int {
	counts := make(map[string]int, len(Layers))
	for _, l := range Layers {
		counts[l.Name] = len(l.Draw(f))
	}
	return counts
}

func visible(p Primitive, l config.Layout) bool {
	var minX, minY, maxX, maxY float64
	switch p.Kind {
	case Circle:
		minX, minY = p.P0.X-p.Radius, p.P0.Y-p.Radius
		maxX, maxY = p.P0.X+p.Radius, p.P0.Y+p.Radius
	case Text:
		// Rough box, rotated text stays within its own size times the length.
		half := p.Size * float64(len(p.Text))
		minX, minY = p.P0.X-half, p.P0.Y-half
		maxX, maxY = p.P0.X+half, p.P0.Y+half
	default:
		pad := p.Width / 2
		minX, maxX = min(p.P0.X, p.P1.X)-pad, max(p.P0.X, p.P1.X)+pad
		minY, maxY = min(p.P0.Y, p.P1.Y)-pad, max(p.P0.Y, p.P1.Y)+pad
	}
	return maxX >= 0 && maxY >= 0 && minX <= l.Width && minY <= l.Height
}
