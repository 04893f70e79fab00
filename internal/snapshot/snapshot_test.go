package snapshot_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/dial"
	"github.com/iburimskiy/weightdial/internal/snapshot"
)

func setup(t *testing.T) (*snapshot.Renderer, config.Layout, dial.Snapshot) {
	t.Helper()
	cfg := config.Default()
	cfg.Window = config.Window{Width: 320, Height: 240}
	cfg.Radius = 200

	rng, err := cfg.Range()
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	l := cfg.Layout()
	c := dial.New(rng, l.Center, cfg.InitialValue)

	r, err := snapshot.NewRenderer()
	if err != nil {
		t.Fatalf("renderer: %v", err)
	}
	t.Cleanup(func() { _ = r.Close() })
	return r, l, c.Snapshot()
}

func render(t *testing.T, r *snapshot.Renderer, l config.Layout, s dial.Snapshot) image.Image {
	t.Helper()
	var buf bytes.Buffer
	if err := r.Encode(&buf, l, s); err != nil {
		t.Fatalf("encode: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	return img
}

func TestEncode_SizeAndBackground(t *testing.T) {
	r, l, s := setup(t)

	img := render(t, r, l, s)
	b := img.Bounds()
	if b.Dx() != 320 || b.Dy() != 240 {
		t.Fatalf("size: got %dx%d, want 320x240", b.Dx(), b.Dy())
	}

	got := color.RGBAModel.Convert(img.At(1, 1)).(color.RGBA)
	if got != l.Background {
		t.Fatalf("corner pixel: got %v, want %v", got, l.Background)
	}
}

func TestEncode_IndicatorIsRed(t *testing.T) {
	r, l, s := setup(t)

	img := render(t, r, l, s)
	got := color.RGBAModel.Convert(img.At(int(l.Center.X), int(l.IndicatorY))).(color.RGBA)
	if got.R < 180 || got.G > 120 || got.B > 120 {
		t.Fatalf("indicator pixel: got %v, want red", got)
	}
}

func TestSave_WritesPNG(t *testing.T) {
	r, l, s := setup(t)
	path := filepath.Join(t.TempDir(), "dial.png")

	if err := r.Save(path, l, s); err != nil {
		t.Fatalf("save: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Fatalf("png size: got %dx%d", cfg.Width, cfg.Height)
	}
}
