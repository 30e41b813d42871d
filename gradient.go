package graphics

import "fmt"

// Gradient is a linear color ramp from Start to End.
//
// Locations holds one position in [0, 1] per color. Backends pin the first
// stop to 0 and the last to 1 regardless of their recorded locations.
//
// Backends cache the native brush built from a gradient under its pointer,
// so a gradient must not be modified once it has been drawn with.
//
// Example:
//
//	g := graphics.NewGradient(graphics.Pt(0, 0), graphics.Pt(0, 100)).
//	    AddStop(graphics.White, 0).
//	    AddStop(graphics.Gray, 1)
type Gradient struct {
	Colors    []Color
	Locations []float64
	Start     Point
	End       Point
}

// NewGradient creates an empty gradient from start to end.
func NewGradient(start, end Point) *Gradient {
	return &Gradient{Start: start, End: end}
}

// AddStop appends a color at the given location and returns the gradient
// for chaining.
func (g *Gradient) AddStop(c Color, location float64) *Gradient {
	g.Colors = append(g.Colors, c)
	g.Locations = append(g.Locations, location)
	return g
}

// Validate reports whether backends can draw with g.
func (g *Gradient) Validate() error {
	if g == nil {
		return fmt.Errorf("%w: nil gradient", ErrInvalidGradient)
	}
	if len(g.Colors) == 0 {
		return fmt.Errorf("%w: no colors", ErrInvalidGradient)
	}
	if len(g.Locations) != len(g.Colors) {
		return fmt.Errorf("%w: %d locations for %d colors",
			ErrInvalidGradient, len(g.Locations), len(g.Colors))
	}
	return nil
}

// FillStyle is what a backend fills shapes with: a [Solid] color or a
// [GradientFill]. Only types in this package implement it.
type FillStyle interface {
	// Color is the representative solid color. Strokes and text use it.
	Color() Color

	fillStyle()
}

// Solid fills with a single color.
type Solid struct {
	C Color
}

// Color implements FillStyle.
func (s Solid) Color() Color { return s.C }

func (Solid) fillStyle() {}

// GradientFill fills with a linear gradient.
type GradientFill struct {
	Gradient *Gradient
}

// Color implements FillStyle. It returns the first color of the gradient,
// or Black for an empty one.
func (f GradientFill) Color() Color {
	if f.Gradient == nil || len(f.Gradient.Colors) == 0 {
		return Black
	}
	return f.Gradient.Colors[0]
}

func (GradientFill) fillStyle() {}
