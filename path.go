package graphics

import "math"

// PathElement is a single element of a Path.
type PathElement interface {
	isPathElement()
}

// Arc is a circular arc. Angles are in degrees and a positive sweep turns
// clockwise on screen (y down), so 270 is straight up from Center.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	SweepAngle float64
}

func (Arc) isPathElement() {}

// Start returns the point where the arc begins.
func (a Arc) Start() Point {
	return a.pointAt(a.StartAngle)
}

// End returns the point where the arc ends.
func (a Arc) End() Point {
	return a.pointAt(a.StartAngle + a.SweepAngle)
}

func (a Arc) pointAt(deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: a.Center.X + a.Radius*math.Cos(rad),
		Y: a.Center.Y + a.Radius*math.Sin(rad),
	}
}

// Line is a straight segment.
type Line struct {
	From, To Point
}

func (Line) isPathElement() {}

// Close closes the figure back to its first point.
type Close struct{}

func (Close) isPathElement() {}

// Path is a single figure built from arcs and lines.
type Path struct {
	elements []PathElement
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 9)}
}

// AddArc appends an arc around (cx, cy).
func (p *Path) AddArc(cx, cy, r, startAngle, sweepAngle float64) {
	p.elements = append(p.elements, Arc{
		Center:     Point{X: cx, Y: cy},
		Radius:     r,
		StartAngle: startAngle,
		SweepAngle: sweepAngle,
	})
}

// AddLine appends a segment from (x1, y1) to (x2, y2).
func (p *Path) AddLine(x1, y1, x2, y2 float64) {
	p.elements = append(p.elements, Line{From: Point{X: x1, Y: y1}, To: Point{X: x2, Y: y2}})
}

// Close closes the figure.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path elements in order.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Closed reports whether the path ends with Close.
func (p *Path) Closed() bool {
	if len(p.elements) == 0 {
		return false
	}
	_, ok := p.elements[len(p.elements)-1].(Close)
	return ok
}

// RoundedRectPath builds a closed rounded rectangle clockwise from the
// top-left corner: each corner is a quarter arc of radius r, followed by the
// straight edge to the next corner. The radius is not clamped.
func RoundedRectPath(x, y, width, height, r float64) *Path {
	xw := x + width
	yh := y + height
	xr := x + r
	yr := y + r
	xwr := xw - r
	yhr := yh - r

	p := NewPath()
	p.AddArc(xr, yr, r, 180, 90)
	p.AddLine(xr, y, xwr, y)
	p.AddArc(xwr, yr, r, 270, 90)
	p.AddLine(xw, yr, xw, yhr)
	p.AddArc(xwr, yhr, r, 0, 90)
	p.AddLine(xwr, yh, xr, yh)
	p.AddArc(xr, yhr, r, 90, 90)
	p.AddLine(x, yhr, x, yr)
	p.Close()
	return p
}
