package cache

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"

	graphics "github.com/gogpu/gg-graphics"
)

// WidthTolerance is the relative width difference below which two pen
// widths share one pen.
const WidthTolerance = 0.1

// Brush is a cached fill resource.
type Brush struct {
	native gg.Brush
}

// Native returns the gg brush to fill with.
func (b *Brush) Native() gg.Brush {
	return b.native
}

// Pen is a cached stroke resource: a solid color and a line width.
type Pen struct {
	brush gg.SolidBrush
	width float64
}

// Brush returns the gg brush to stroke with.
func (p *Pen) Brush() gg.Brush {
	return p.brush
}

// Color returns the pen color.
func (p *Pen) Color() gg.RGBA {
	return p.brush.Color
}

// Width returns the line width the pen was created with.
func (p *Pen) Width() float64 {
	return p.width
}

// colorEntry holds everything derived from one Color.
type colorEntry struct {
	rgba gg.RGBA
	fill *Brush
	pens []*Pen
}

// Stats reports how many resources a Cache holds.
type Stats struct {
	Colors    int
	Pens      int
	Gradients int
}

// Cache holds the resources of one backend.
type Cache struct {
	colors    map[graphics.Color]*colorEntry
	gradients map[*graphics.Gradient]*Brush
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		colors:    make(map[graphics.Color]*colorEntry),
		gradients: make(map[*graphics.Gradient]*Brush),
	}
}

// ToRGBA converts an 8-bit color to gg's straight-alpha float color.
func ToRGBA(c graphics.Color) gg.RGBA {
	return gg.RGBA{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

func (c *Cache) entry(col graphics.Color) *colorEntry {
	e, ok := c.colors[col]
	if !ok {
		e = &colorEntry{rgba: ToRGBA(col)}
		c.colors[col] = e
	}
	return e
}

// Solid returns the fill brush for col, creating it on first use.
func (c *Cache) Solid(col graphics.Color) *Brush {
	e := c.entry(col)
	if e.fill == nil {
		e.fill = &Brush{native: gg.Solid(e.rgba)}
	}
	return e.fill
}

// Pen returns a pen for col whose width is within WidthTolerance of width,
// creating one if none is cached. A width <= 0 (or NaN) is rejected and
// nothing is cached.
func (c *Cache) Pen(col graphics.Color, width float64) (*Pen, error) {
	if !(width > 0) {
		return nil, fmt.Errorf("%w: stroke width %v must be positive", graphics.ErrInvalidArgument, width)
	}

	e := c.entry(col)
	for _, p := range e.pens {
		if math.Abs(width-p.width)/math.Max(width, p.width) < WidthTolerance {
			return p, nil
		}
	}

	p := &Pen{brush: gg.Solid(e.rgba), width: width}
	e.pens = append(e.pens, p)
	graphics.Logger().Debug("cache: pen created",
		"color", col.String(), "width", width, "pens", len(e.pens))
	return p, nil
}

// Gradient returns the brush for g, building it on first use. A cached
// brush is returned unchanged for as long as g lives.
func (c *Cache) Gradient(g *graphics.Gradient) (*Brush, error) {
	if b, ok := c.gradients[g]; ok {
		return b, nil
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}

	b := &Brush{native: linearGradient(g)}
	c.gradients[g] = b
	graphics.Logger().Debug("cache: gradient brush created",
		"stops", len(g.Colors), "start", g.Start, "end", g.End)
	return b, nil
}

// linearGradient builds a gg gradient with the first stop pinned to 0, the
// last pinned to 1 and interior stops at their recorded locations.
func linearGradient(g *graphics.Gradient) *gg.LinearGradientBrush {
	n := len(g.Colors)
	lg := gg.NewLinearGradientBrush(g.Start.X, g.Start.Y, g.End.X, g.End.Y)
	lg.AddColorStop(0, ToRGBA(g.Colors[0]))
	for i := 1; i < n-1; i++ {
		lg.AddColorStop(g.Locations[i], ToRGBA(g.Colors[i]))
	}
	lg.AddColorStop(1, ToRGBA(g.Colors[n-1]))
	return lg
}

// Stats returns the current resource counts.
func (c *Cache) Stats() Stats {
	s := Stats{Colors: len(c.colors), Gradients: len(c.gradients)}
	for _, e := range c.colors {
		s.Pens += len(e.pens)
	}
	return s
}
