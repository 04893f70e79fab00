// Package snapshot renders the dial to an image without opening a window.
//
// It draws the same scene primitives as the interactive window, using the
// gg software rasterizer, so the output matches what the window would show
// for the same rotation.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/dial"
	"github.com/iburimskiy/weightdial/internal/scene"
)

// Renderer draws frames into gg contexts. Font sources are loaded once and
// shared by every frame.
type Renderer struct {
	regular *text.FontSource
	bold    *text.FontSource
}

// NewRenderer loads the embedded Go fonts.
func NewRenderer() (*Renderer, error) {
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("snapshot: load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("snapshot: load bold font: %w", err)
	}
	return &Renderer{regular: regular, bold: bold}, nil
}

// Close releases the font sources.
func (r *Renderer) Close() error {
	return errors.Join(r.regular.Close(), r.bold.Close())
}

// Encode renders one frame as PNG to w.
func (r *Renderer) Encode(w io.Writer, l config.Layout, s dial.Snapshot) error {
	dc, err := r.draw(l, s)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode: %w", err)
	}
	return nil
}

// Save renders one frame to a PNG file.
func (r *Renderer) Save(path string, l config.Layout, s dial.Snapshot) error {
	dc, err := r.draw(l, s)
	if err != nil {
		return err
	}
	defer dc.Close()
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

func (r *Renderer) draw(l config.Layout, s dial.Snapshot) (*gg.Context, error) {
	dc := gg.NewContext(int(math.Ceil(l.Width)), int(math.Ceil(l.Height)))
	frame := scene.Frame{Dial: s, Layout: l}
	for _, p := range scene.Render(frame) {
		if err := r.drawPrimitive(dc, p); err != nil {
			_ = dc.Close()
			return nil, fmt.Errorf("snapshot: draw %s: %w", p.Layer, err)
		}
	}
	// Queued accelerator shapes must reach the pixmap before it is read.
	if err := dc.FlushGPU(); err != nil {
		_ = dc.Close()
		return nil, fmt.Errorf("snapshot: flush: %w", err)
	}
	return dc, nil
}

func (r *Renderer) drawPrimitive(dc *gg.Context, p scene.Primitive) error {
	dc.SetColor(p.Color)
	switch p.Kind {
	case scene.Rect:
		dc.DrawRectangle(p.P0.X, p.P0.Y, p.P1.X-p.P0.X, p.P1.Y-p.P0.Y)
		return dc.Fill()
	case scene.Circle:
		dc.DrawCircle(p.P0.X, p.P0.Y, p.Radius)
		return dc.Fill()
	case scene.Line:
		dc.SetLineWidth(p.Width)
		dc.DrawLine(p.P0.X, p.P0.Y, p.P1.X, p.P1.Y)
		return dc.Stroke()
	case scene.Text:
		if p.Text == "" {
			return nil
		}
		src := r.regular
		if p.Bold {
			src = r.bold
		}
		dc.Push()
		dc.RotateAbout(p.Angle*math.Pi/180, p.P0.X, p.P0.Y)
		dc.SetFont(src.Face(p.Size))
		dc.DrawStringAnchored(p.Text, p.P0.X, p.P0.Y, 0.5, 0.5)
		dc.Pop()
	}
	return nil
}
