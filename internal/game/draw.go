package game

import (
	"bytes"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/weightdial/internal/scene"
)

// fonts holds the Go font sources and one face per size in use.
type fonts struct {
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace
}

type faceKey struct {
	size float64
	bold bool
}

func loadFonts() (*fonts, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}
	return &fonts{regular: regular, bold: bold, faces: map[faceKey]*text.GoTextFace{}}, nil
}

func (f *fonts) face(size float64, bold bool) *text.GoTextFace {
	k := faceKey{size: size, bold: bold}
	if face, ok := f.faces[k]; ok {
		return face
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face := &text.GoTextFace{Source: src, Size: size}
	f.faces[k] = face
	return face
}

func (g *Game) drawPrimitive(screen *ebiten.Image, p scene.Primitive) {
	switch p.Kind {
	case scene.Rect:
		vector.DrawFilledRect(screen, f32(p.P0.X), f32(p.P0.Y), f32(p.P1.X-p.P0.X), f32(p.P1.Y-p.P0.Y), p.Color, false)
	case scene.Circle:
		vector.DrawFilledCircle(screen, f32(p.P0.X), f32(p.P0.Y), f32(p.Radius), p.Color, true)
	case scene.Line:
		vector.StrokeLine(screen, f32(p.P0.X), f32(p.P0.Y), f32(p.P1.X), f32(p.P1.Y), f32(p.Width), p.Color, true)
	case scene.Text:
		if p.Text == "" {
			return
		}
		op := &text.DrawOptions{}
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		op.GeoM.Rotate(p.Angle * math.Pi / 180)
		op.GeoM.Translate(p.P0.X, p.P0.Y)
		op.ColorScale.ScaleWithColor(p.Color)
		text.Draw(screen, p.Text, g.fonts.face(p.Size, p.Bold), op)
	}
}
