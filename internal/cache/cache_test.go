package cache

import (
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gg"

	graphics "github.com/gogpu/gg-graphics"
)

func TestSolidReturnsSameBrush(t *testing.T) {
	c := New()

	b1 := c.Solid(graphics.Red)
	b2 := c.Solid(graphics.Red)
	if b1 != b2 {
		t.Error("Solid returned different brushes for the same color")
	}
	if b3 := c.Solid(graphics.Blue); b3 == b1 {
		t.Error("Solid shared a brush between different colors")
	}

	sb, ok := b1.Native().(gg.SolidBrush)
	if !ok {
		t.Fatalf("Native() = %T, want gg.SolidBrush", b1.Native())
	}
	if sb.Color != (gg.RGBA{R: 1, G: 0, B: 0, A: 1}) {
		t.Errorf("brush color = %+v, want opaque red", sb.Color)
	}
}

func TestPenWidthTolerance(t *testing.T) {
	tests := []struct {
		name   string
		w1, w2 float64
		same   bool
	}{
		{"equal", 2, 2, true},
		{"within 5%", 2, 2.1, true},
		{"smaller within tolerance", 10, 9.2, true},
		{"just under 10%", 10, 10.9, true},
		{"exactly 10% of larger", 9, 10, false},
		{"20% apart", 1, 1.25, false},
		{"double", 1, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			p1, err := c.Pen(graphics.Black, tt.w1)
			if err != nil {
				t.Fatalf("Pen(%v) error = %v", tt.w1, err)
			}
			p2, err := c.Pen(graphics.Black, tt.w2)
			if err != nil {
				t.Fatalf("Pen(%v) error = %v", tt.w2, err)
			}
			if (p1 == p2) != tt.same {
				t.Errorf("Pen(%v) == Pen(%v) is %v, want %v", tt.w1, tt.w2, p1 == p2, tt.same)
			}
		})
	}
}

func TestPenKeepsFirstWidth(t *testing.T) {
	c := New()
	p1, _ := c.Pen(graphics.Black, 4)
	p2, _ := c.Pen(graphics.Black, 4.2)
	if p1 != p2 {
		t.Fatal("expected pen reuse within tolerance")
	}
	if p2.Width() != 4 {
		t.Errorf("reused pen width = %v, want 4", p2.Width())
	}
}

func TestPenPerColor(t *testing.T) {
	c := New()
	p1, _ := c.Pen(graphics.Red, 3)
	p2, _ := c.Pen(graphics.Blue, 3)
	if p1 == p2 {
		t.Error("pens of different colors are shared")
	}
	if p2.Color() != (gg.RGBA{R: 0, G: 0, B: 1, A: 1}) {
		t.Errorf("pen color = %+v, want blue", p2.Color())
	}
	if got := c.Stats().Pens; got != 2 {
		t.Errorf("Stats().Pens = %d, want 2", got)
	}
}

func TestPenInvalidWidth(t *testing.T) {
	for _, w := range []float64{0, -1, math.Inf(-1), math.NaN()} {
		c := New()
		p, err := c.Pen(graphics.Green, w)
		if !errors.Is(err, graphics.ErrInvalidArgument) {
			t.Errorf("Pen(%v) error = %v, want ErrInvalidArgument", w, err)
		}
		if p != nil {
			t.Errorf("Pen(%v) returned a pen", w)
		}
		if s := c.Stats(); s != (Stats{}) {
			t.Errorf("Pen(%v) left resources behind: %+v", w, s)
		}
	}
}

func TestGradientCached(t *testing.T) {
	c := New()
	g := graphics.NewGradient(graphics.Pt(0, 0), graphics.Pt(100, 0)).
		AddStop(graphics.Red, 0).
		AddStop(graphics.Blue, 1)

	b1, err := c.Gradient(g)
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	b2, err := c.Gradient(g)
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	if b1 != b2 {
		t.Error("Gradient returned a new brush for the same gradient")
	}

	// Identity, not value: an equal copy gets its own brush.
	dup := *g
	b3, _ := c.Gradient(&dup)
	if b3 == b1 {
		t.Error("Gradient shared a brush between distinct gradient objects")
	}
	if got := c.Stats().Gradients; got != 2 {
		t.Errorf("Stats().Gradients = %d, want 2", got)
	}
}

func TestGradientStopsPinned(t *testing.T) {
	g := &graphics.Gradient{
		Colors:    []graphics.Color{graphics.Red, graphics.Green, graphics.Blue},
		Locations: []float64{0.2, 0.5, 0.7},
		Start:     graphics.Pt(1, 2),
		End:       graphics.Pt(3, 4),
	}

	b, err := New().Gradient(g)
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	lg, ok := b.Native().(*gg.LinearGradientBrush)
	if !ok {
		t.Fatalf("Native() = %T, want *gg.LinearGradientBrush", b.Native())
	}

	if lg.Start != (gg.Point{X: 1, Y: 2}) || lg.End != (gg.Point{X: 3, Y: 4}) {
		t.Errorf("endpoints = %v -> %v, want (1,2) -> (3,4)", lg.Start, lg.End)
	}
	wantOffsets := []float64{0, 0.5, 1}
	if len(lg.Stops) != len(wantOffsets) {
		t.Fatalf("got %d stops, want %d", len(lg.Stops), len(wantOffsets))
	}
	for i, want := range wantOffsets {
		if lg.Stops[i].Offset != want {
			t.Errorf("stop %d offset = %v, want %v", i, lg.Stops[i].Offset, want)
		}
	}
	if lg.Stops[2].Color != (gg.RGBA{R: 0, G: 0, B: 1, A: 1}) {
		t.Errorf("last stop color = %+v, want blue", lg.Stops[2].Color)
	}
}

func TestGradientSingleColor(t *testing.T) {
	g := graphics.NewGradient(graphics.Pt(0, 0), graphics.Pt(0, 1)).AddStop(graphics.Yellow, 0.3)
	b, err := New().Gradient(g)
	if err != nil {
		t.Fatalf("Gradient() error = %v", err)
	}
	lg := b.Native().(*gg.LinearGradientBrush)
	if len(lg.Stops) != 2 || lg.Stops[0].Offset != 0 || lg.Stops[1].Offset != 1 {
		t.Errorf("stops = %+v, want yellow at 0 and 1", lg.Stops)
	}
}

func TestGradientInvalid(t *testing.T) {
	c := New()
	if _, err := c.Gradient(nil); !errors.Is(err, graphics.ErrInvalidGradient) {
		t.Errorf("Gradient(nil) error = %v, want ErrInvalidGradient", err)
	}
	empty := graphics.NewGradient(graphics.Pt(0, 0), graphics.Pt(1, 1))
	if _, err := c.Gradient(empty); !errors.Is(err, graphics.ErrInvalidGradient) {
		t.Errorf("Gradient(empty) error = %v, want ErrInvalidGradient", err)
	}
	if got := c.Stats().Gradients; got != 0 {
		t.Errorf("invalid gradients were cached: %d", got)
	}
}

func TestToRGBA(t *testing.T) {
	got := ToRGBA(graphics.RGBA(255, 0, 51, 0))
	want := gg.RGBA{R: 1, G: 0, B: 0.2, A: 0}
	if got != want {
		t.Errorf("ToRGBA() = %+v, want %+v", got, want)
	}
}
