package config

import (
	"image/color"

	"github.com/iburimskiy/weightdial/internal/radial"
)

// Layout is the resolved geometry of one drawing surface. It is computed
// from a Config and handed to the scene and the backends so that nothing
// reads screen size from global state.
type Layout struct {
	Width  float64
	Height float64

	Center radial.Point
	Radius float64

	// Ring radii
	Face  float64
	Minor float64
	Dot   float64
	Major float64
	Label float64

	// Indicator mark, centered on X at Center.X
	IndicatorY float64

	// Readout baseline centers
	ReadoutX float64
	CaptionY float64
	ValueY   float64

	Fill       color.RGBA
	Background color.RGBA
	Line       color.RGBA
}

// Layout resolves c against its own window size.
func (c Config) Layout() Layout {
	return c.LayoutFor(float64(c.Window.Width), float64(c.Window.Height))
}

// LayoutFor resolves c for a surface of w x h pixels. The dial center sits
// below the surface so that only the top arc of the dial is visible.
func (c Config) LayoutFor(w, h float64) Layout {
	r := c.Radius
	center := radial.Point{X: w / 2, Y: h + r/4}

	readoutY := h/2 - ReadoutOffsetY
	return Layout{
		Width:  w,
		Height: h,
		Center: center,
		Radius: r,

		Face:  r - FaceInset,
		Minor: r - MinorInset,
		Dot:   r - DotInset,
		Major: r - MajorInset,
		Label: r - LabelInset,

		IndicatorY: center.Y - r + MajorInset,

		ReadoutX: w / 2,
		CaptionY: readoutY - (ValueSize+ReadoutSpacing)/2,
		ValueY:   readoutY + (CaptionSize+ReadoutSpacing)/2,

		Fill:       c.Colors.Fill.Color(),
		Background: c.Colors.Background.Color(),
		Line:       c.Colors.Line.Color(),
	}
}

// Bounds returns the square holding a ring of the given radius.
func (l Layout) Bounds(radius float64) radial.Rect {
	return radial.Square(l.Center, radius)
}

// Contains reports whether (x, y) lies on the dial.
func (l Layout) Contains(x, y float64) bool {
	dx, dy := x-l.Center.X, y-l.Center.Y
	return dx*dx+dy*dy <= l.Radius*l.Radius
}
