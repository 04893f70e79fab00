package config_test

import (
	"errors"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/dial"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.MinValue != 25 || cfg.MaxValue != 200 || cfg.InitialValue != 65 || cfg.Radius != 600 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Clamp {
		t.Fatal("clamp should be off by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"equal range", func(c *config.Config) { c.MaxValue = c.MinValue }, dial.ErrInvalidRange},
		{"inverted range", func(c *config.Config) { c.MinValue, c.MaxValue = 10, 5 }, dial.ErrInvalidRange},
		{"tiny radius", func(c *config.Config) { c.Radius = config.FaceInset }, config.ErrInvalidRadius},
		{"zero width", func(c *config.Config) { c.Window.Width = 0 }, config.ErrInvalidWindow},
		{"span over cap", func(c *config.Config) { c.MinValue, c.MaxValue = 0, 1 << 60 }, dial.ErrInvalidRange},
		{"overflowing span", func(c *config.Config) { c.MinValue, c.MaxValue = math.MinInt/2 - 10, math.MaxInt/2 + 10 }, dial.ErrInvalidRange},
		{"nan radius", func(c *config.Config) { c.Radius = math.NaN() }, config.ErrInvalidRadius},
		{"inf radius", func(c *config.Config) { c.Radius = math.Inf(1) }, config.ErrInvalidRadius},
		{"nan initial", func(c *config.Config) { c.InitialValue = math.NaN() }, config.ErrInvalidValue},
		{"inf initial", func(c *config.Config) { c.InitialValue = math.Inf(-1) }, config.ErrInvalidValue},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dial.toml")
	data := `
min_value = 40
max_value = 140
initial_value = 72.5
clamp = true

[colors]
line = "#ff000080"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.MinValue != 40 || cfg.MaxValue != 140 || cfg.InitialValue != 72.5 || !cfg.Clamp {
		t.Fatalf("values not loaded: %+v", cfg)
	}
	if cfg.Radius != config.Radius || cfg.Window.Width != config.WindowWidth {
		t.Fatalf("defaults lost: %+v", cfg)
	}
	if got := cfg.Colors.Line.Color(); got != (color.RGBA{R: 255, A: 128}) {
		t.Fatalf("line color: got %v", got)
	}
	if got := cfg.Colors.Fill; got != config.Default().Colors.Fill {
		t.Fatalf("fill color changed: got %v", got)
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	if _, err := config.Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}

	unknown := filepath.Join(dir, "unknown.toml")
	if err := os.WriteFile(unknown, []byte("speed = 3\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := config.Load(unknown); err == nil {
		t.Fatal("expected error for unknown key")
	}

	badColor := filepath.Join(dir, "color.toml")
	if err := os.WriteFile(badColor, []byte("[colors]\nfill = \"#12\"\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := config.Load(badColor); err == nil {
		t.Fatal("expected error for malformed color")
	}
}

func TestHex(t *testing.T) {
	h, err := config.ParseHex("#2e2d37")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if h != (config.Hex{R: 46, G: 45, B: 55, A: 255}) {
		t.Fatalf("got %+v", h)
	}
	if got := h.String(); got != "#2e2d37" {
		t.Fatalf("String: got %q", got)
	}

	var flag config.Hex
	if err := flag.Set("0a0b0c0d"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if flag.String() != "#0a0b0c0d" || flag.Type() != "color" {
		t.Fatalf("flag: %v %v", flag.String(), flag.Type())
	}
	if _, err := config.ParseHex("#zzzzzz"); !errors.Is(err, config.ErrInvalidColor) {
		t.Fatalf("invalid hex: got %v", err)
	}
}
