package scene

import (
	"math"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/dial"
	"github.com/iburimskiy/weightdial/internal/radial"
)

func background(f Frame) []Primitive {
	return []Primitive{{
		Kind:  Rect,
		P1:    radial.Point{X: f.Layout.Width, Y: f.Layout.Height},
		Color: f.Layout.Background,
	}}
}

var spokeAngles = [...]float64{0, 45, -45, 90}

func face(f Frame) []Primitive {
	l := f.Layout
	out := make([]Primitive, 0, 1+len(spokeAngles))
	out = append(out, Primitive{
		Kind:   Circle,
		P0:     l.Center,
		Radius: l.Face,
		Color:  l.Fill,
	})
	for _, a := range spokeAngles {
		p0, p1 := radialSegment(l.Center, a+f.Dial.Rotation, -l.Face, l.Face)
		out = append(out, Primitive{Kind: Line, P0: p0, P1: p1, Width: 1, Color: l.Line})
	}
	return out
}

func minorTicks(f Frame) []Primitive {
	n := f.Dial.Range.RulerLines() * config.FineDensity
	return ticks(f, f.Layout.Minor, n, config.MinorTickWidth, config.MinorTickLength)
}

func majorTicks(f Frame) []Primitive {
	n := f.Dial.Range.RulerLines()
	return ticks(f, f.Layout.Major, n, config.MajorTickWidth, config.MajorTickLength)
}

// ticks draws n radial segments centered on the ring of the given radius.
func ticks(f Frame, radius float64, n int, width, length float64) []Primitive {
	l := f.Layout
	placed := radial.Layout(l.Bounds(radius), n)
	out := make([]Primitive, 0, len(placed))
	for _, pl := range placed {
		p0, p1 := radialSegment(l.Center, pl.Angle+f.Dial.Rotation, radius-length/2, radius+length/2)
		out = append(out, Primitive{Kind: Line, P0: p0, P1: p1, Width: width, Color: l.Line})
	}
	return out
}

func dots(f Frame) []Primitive {
	l := f.Layout
	n := f.Dial.Range.RulerLines() * config.FineDensity
	placed := radial.Layout(l.Bounds(l.Dot), n)
	out := make([]Primitive, 0, len(placed))
	for _, pl := range placed {
		out = append(out, Primitive{
			Kind:   Circle,
			P0:     radial.Rotate(pl.Point, l.Center, f.Dial.Rotation),
			Radius: config.DotDiameter / 2,
			Color:  l.Line,
		})
	}
	return out
}

// centerSlack absorbs rounding in the rotated x of the label under the
// indicator, which would otherwise land a hair left of center.
const centerSlack = 1e-6

// labels puts a number on every other coarse tick, starting at Min. Labels
// at or right of the surface center are highlighted.
func labels(f Frame) []Primitive {
	l := f.Layout
	rng := f.Dial.Range
	placed := radial.Layout(l.Bounds(l.Label), rng.RulerLines())
	out := make([]Primitive, 0, len(placed)/2+1)
	for _, pl := range placed {
		if pl.Index%2 != 0 {
			continue
		}
		p := radial.Rotate(pl.Point, l.Center, f.Dial.Rotation)
		c := Gray
		if Highlighted(p.X, l.Width) {
			c = White
		}
		out = append(out, Primitive{
			Kind:  Text,
			P0:    p,
			Text:  dial.FormatLabel(pl.Index/2 + rng.Min),
			Size:  config.LabelSize,
			Bold:  true,
			Angle: pl.Angle + f.Dial.Rotation,
			Color: c,
		})
	}
	return out
}

func indicator(f Frame) []Primitive {
	l := f.Layout
	half := float64(config.IndicatorLength) / 2
	return []Primitive{{
		Kind:  Line,
		P0:    radial.Point{X: l.Center.X, Y: l.IndicatorY - half},
		P1:    radial.Point{X: l.Center.X, Y: l.IndicatorY + half},
		Width: config.IndicatorWidth,
		Color: Indicator,
	}}
}

func readout(f Frame) []Primitive {
	l := f.Layout
	return []Primitive{
		{
			Kind:  Text,
			P0:    radial.Point{X: l.ReadoutX, Y: l.CaptionY},
			Text:  config.Caption,
			Size:  config.CaptionSize,
			Bold:  true,
			Color: White,
		},
		{
			Kind:  Text,
			P0:    radial.Point{X: l.ReadoutX, Y: l.ValueY},
			Text:  dial.FormatValue(f.Dial.Value()),
			Size:  config.ValueSize,
			Bold:  true,
			Color: White,
		},
	}
}

// radialSegment returns the points at distances from and to along the ray
// from c at deg degrees clockwise from 12 o'clock.
func radialSegment(c radial.Point, deg, from, to float64) (radial.Point, radial.Point) {
	sin, cos := math.Sincos(deg * math.Pi / 180)
	return radial.Point{X: c.X + sin*from, Y: c.Y - cos*from},
		radial.Point{X: c.X + sin*to, Y: c.Y - cos*to}
}

// Highlighted reports whether a label at x on a surface w wide is drawn white.
func Highlighted(x, w float64) bool {
	return x >= w/2-centerSlack
}
