package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/iburimskiy/weightdial/internal/dial"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Value range
	MinValue     = 25
	MaxValue     = 200
	InitialValue = 65

	// Dial geometry
	Radius = 600

	// Ring insets measured inward from the dial's outer radius
	LabelInset = 0
	MajorInset = 40
	DotInset   = 60
	MinorInset = 70
	FaceInset  = 77

	// Minor ticks and dots are drawn at this multiple of the ruler lines
	FineDensity = 5

	// Tick shapes
	MinorTickWidth  = 2
	MinorTickLength = 10
	MajorTickWidth  = 2
	MajorTickLength = 25
	DotDiameter     = 2
	LabelSize       = 14

	IndicatorWidth  = 2
	IndicatorLength = 25

	// Readout
	ReadoutOffsetY = 200 // above the surface center
	CaptionSize    = 20
	ValueSize      = 40
	ReadoutSpacing = 10
	Caption        = "YOUR WEIGHT"
)

var (
	ErrInvalidRadius = errors.New("config: radius must be larger than the dial face inset")
	ErrInvalidWindow = errors.New("config: window size must be positive")
	ErrInvalidColor  = errors.New("config: invalid color")
	ErrInvalidValue  = errors.New("config: initial value must be a finite number")
)

// Config is the dial configuration, fixed at construction.
type Config struct {
	MinValue     int     `toml:"min_value"`
	MaxValue     int     `toml:"max_value"`
	InitialValue float64 `toml:"initial_value"`
	Radius       float64 `toml:"radius"`
	// Clamp keeps the selected value inside [MinValue, MaxValue].
	Clamp  bool   `toml:"clamp"`
	Window Window `toml:"window"`
	Colors Colors `toml:"colors"`
}

// Window is the drawing surface size in pixels.
type Window struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Colors is the dial palette.
type Colors struct {
	Fill       Hex `toml:"fill"`
	Background Hex `toml:"background"`
	Line       Hex `toml:"line"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MinValue:     MinValue,
		MaxValue:     MaxValue,
		InitialValue: InitialValue,
		Radius:       Radius,
		Window:       Window{Width: WindowWidth, Height: WindowHeight},
		Colors: Colors{
			Fill:       Hex{R: 46, G: 45, B: 55, A: 255},
			Background: Hex{R: 34, G: 34, B: 44, A: 255},
			Line:       Hex{R: 63, G: 62, B: 72, A: 255},
		},
	}
}

// Load reads a TOML file over the defaults. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: load %s: unknown keys %v", path, undecoded)
	}
	return cfg, nil
}

// Validate reports the first problem with c.
func (c Config) Validate() error {
	if _, err := c.Range(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if !finite(c.Radius) || c.Radius <= FaceInset {
		return fmt.Errorf("%w (radius=%v, inset=%d)", ErrInvalidRadius, c.Radius, FaceInset)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w (%dx%d)", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if !finite(c.InitialValue) {
		return fmt.Errorf("%w (initial_value=%v)", ErrInvalidValue, c.InitialValue)
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Range returns the value range described by c.
func (c Config) Range() (dial.Range, error) {
	return dial.NewRange(c.MinValue, c.MaxValue)
}

// Hex is a color written as "#rrggbb" or "#rrggbbaa".
type Hex color.RGBA

// ParseHex parses s into a color.
func ParseHex(s string) (Hex, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 && len(s) != 8 {
		return Hex{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Hex{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return Hex{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Color returns h as a color.RGBA.
func (h Hex) Color() color.RGBA { return color.RGBA(h) }

func (h Hex) String() string {
	if h.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", h.R, h.G, h.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", h.R, h.G, h.B, h.A)
}

func (h Hex) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *Hex) UnmarshalText(b []byte) error {
	v, err := ParseHex(string(b))
	if err != nil {
		return err
	}
	*h = v
	return nil
}

// Set and Type let a Hex be used as a command line flag.
func (h *Hex) Set(s string) error { return h.UnmarshalText([]byte(s)) }

func (h *Hex) Type() string { return "color" }
