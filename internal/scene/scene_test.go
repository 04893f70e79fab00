package scene_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/iburimskiy/weightdial/internal/config"
	"github.com/iburimskiy/weightdial/internal/dial"
	"github.com/iburimskiy/weightdial/internal/scene"
)

func frame(t *testing.T, cfg config.Config, value float64) scene.Frame {
	t.Helper()
	rng, err := cfg.Range()
	if err != nil {
		t.Fatalf("range: %v", err)
	}
	l := cfg.Layout()
	c := dial.New(rng, l.Center, value)
	return scene.Frame{Dial: c.Snapshot(), Layout: l}
}

func byLayer(ps []scene.Primitive, name string) []scene.Primitive {
	var out []scene.Primitive
	for _, p := range ps {
		if p.Layer == name {
			out = append(out, p)
		}
	}
	return out
}

func TestCount_RingDensities(t *testing.T) {
	f := frame(t, config.Default(), 65)
	counts := scene.Count(f)

	want := map[string]int{
		"background": 1,
		"face":       5,
		"minor":      175 * 5,
		"dots":       175 * 5,
		"major":      175,
		"labels":     88,
		"indicator":  1,
		"readout":    2,
	}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("counts: got %v, want %v", counts, want)
	}
}

func TestRender_LayerOrder(t *testing.T) {
	ps := scene.Render(frame(t, config.Default(), 65))
	if len(ps) == 0 {
		t.Fatal("no primitives")
	}
	if ps[0].Layer != "background" {
		t.Fatalf("first layer: got %q", ps[0].Layer)
	}
	last := ps[len(ps)-1]
	if last.Layer != "readout" || last.Text != "65.0" {
		t.Fatalf("last primitive: got %+v", last)
	}

	order := map[string]int{}
	for i, l := range scene.Layers {
		order[l.Name] = i
	}
	for i := 1; i < len(ps); i++ {
		if order[ps[i].Layer] < order[ps[i-1].Layer] {
			t.Fatalf("primitive %d (%s) drawn after %s", i, ps[i].Layer, ps[i-1].Layer)
		}
	}
}

func TestRender_IsPure(t *testing.T) {
	f := frame(t, config.Default(), 80)
	a := scene.Render(f)
	b := scene.Render(f)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("render is not deterministic")
	}
}

func TestRender_CullsOffscreen(t *testing.T) {
	f := frame(t, config.Default(), 65)
	counts := scene.Count(f)
	minor := byLayer(scene.Render(f), "minor")
	if len(minor) == 0 || len(minor) >= counts["minor"] {
		t.Fatalf("minor ticks: got %d of %d, want a visible subset", len(minor), counts["minor"])
	}
}

func TestLabels_TopShowsSelectedValue(t *testing.T) {
	cfg := config.Default()
	f := frame(t, cfg, 65)
	l := f.Layout

	var top *scene.Primitive
	for _, p := range byLayer(scene.Render(f), "labels") {
		if math.Abs(p.P0.X-l.Center.X) < 1e-6 && p.P0.Y < l.Center.Y {
			top = &p
			break
		}
	}
	if top == nil {
		t.Fatal("no label at the top of the dial")
	}
	if top.Text != "65" {
		t.Fatalf("top label: got %q, want 65", top.Text)
	}
	if top.Color != scene.White {
		t.Fatalf("label at center should be highlighted, got %v", top.Color)
	}
}

func TestLabels_ColorBySide(t *testing.T) {
	f := frame(t, config.Default(), 65)
	for _, p := range byLayer(scene.Render(f), "labels") {
		want := scene.Gray
		if scene.Highlighted(p.P0.X, f.Layout.Width) {
			want = scene.White
		}
		if p.Color != want {
			t.Errorf("label %s at x=%v: got %v, want %v", p.Text, p.P0.X, p.Color, want)
		}
	}
}

func TestTicks_FollowRotation(t *testing.T) {
	cfg := config.Default()
	rng, _ := cfg.Range()
	l := cfg.Layout()

	c := dial.New(rng, l.Center, float64(rng.Min))
	f := scene.Frame{Dial: c.Snapshot(), Layout: l}
	major := byLayer(scene.Render(f), "major")

	// With no rotation the first major tick stands upright at the top.
	first := major[0]
	if math.Abs(first.P0.X-l.Center.X) > 1e-6 || math.Abs(first.P1.X-l.Center.X) > 1e-6 {
		t.Fatalf("first tick not vertical: %+v", first)
	}
	mid := (first.P0.Y + first.P1.Y) / 2
	if math.Abs(mid-(l.Center.Y-l.Major)) > 1e-6 {
		t.Fatalf("first tick center y: got %v, want %v", mid, l.Center.Y-l.Major)
	}

	// One unit of value later the tick has moved counter-clockwise.
	c.SetValue(float64(rng.Min) + 1)
	f = scene.Frame{Dial: c.Snapshot(), Layout: l}
	moved := byLayer(scene.Render(f), "major")[0]
	if moved.P0.X >= first.P0.X {
		t.Fatalf("tick should move left: before %v after %v", first.P0.X, moved.P0.X)
	}
}

func TestIndicator_FixedAtTop(t *testing.T) {
	cfg := config.Default()
	for _, v := range []float64{25, 65, 199} {
		f := frame(t, cfg, v)
		ind := byLayer(scene.Render(f), "indicator")
		if len(ind) != 1 {
			t.Fatalf("indicator count: %d", len(ind))
		}
		p := ind[0]
		if p.P0.X != f.Layout.Center.X || p.Color != scene.Indicator {
			t.Fatalf("indicator moved: %+v", p)
		}
	}
}

func TestReadout_EmptyForNaN(t *testing.T) {
	cfg := config.Default()
	l := cfg.Layout()
	f := scene.Frame{
		Dial: dial.Snapshot{
			Range:    dial.Range{Min: 25, Max: 200},
			Center:   l.Center,
			Rotation: math.NaN(),
		},
		Layout: l,
	}
	out := byLayer(scene.Render(f), "readout")
	if len(out) != 2 {
		t.Fatalf("readout primitives: got %d, want 2", len(out))
	}
	var value scene.Primitive
	for _, p := range out {
		if p.Text != config.Caption {
			value = p
		}
	}
	if value.Text != "" {
		t.Fatalf("readout: got %q, want empty", value.Text)
	}
}

func TestRender_SmallRangeDial(t *testing.T) {
	cfg := config.Default()
	cfg.MinValue, cfg.MaxValue = 0, 1
	cfg.Window = config.Window{Width: 300, Height: 300}
	cfg.Radius = 100

	f := frame(t, cfg, 0)
	counts := scene.Count(f)
	if counts["major"] != 1 || counts["labels"] != 1 || counts["minor"] != 5 {
		t.Fatalf("counts: %v", counts)
	}
}

func TestHighlighted_ToleratesRounding(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{512, true},
		{512 - 1e-9, true},
		{600, true},
		{511.9, false},
		{0, false},
	}
	for _, tc := range tests {
		if got := scene.Highlighted(tc.x, 1024); got != tc.want {
			t.Errorf("Highlighted(%v): got %v, want %v", tc.x, got, tc.want)
		}
	}
}

func TestLabels_SelectedValueHighlightedAcrossValues(t *testing.T) {
	cfg := config.Default()
	for _, v := range []float64{25, 40, 65, 90, 112} {
		f := frame(t, cfg, v)
		want := dial.FormatLabel(int(v))
		found := false
		for _, p := range byLayer(scene.Render(f), "labels") {
			if p.Text != want || math.Abs(p.P0.X-f.Layout.Center.X) > 1e-3 || p.P0.Y > f.Layout.Center.Y {
				continue
			}
			found = true
			if p.Color != scene.White {
				t.Errorf("value %v: label under indicator got %v, want white", v, p.Color)
			}
		}
		if !found {
			t.Errorf("value %v: no label %q under the indicator", v, want)
		}
	}
}
