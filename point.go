package graphics

import "math"

// Point is a position in user space.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Polygon is a closed shape through its points, in order.
type Polygon struct {
	Points []Point
}

// NewPolygon creates a polygon from points.
func NewPolygon(points ...Point) Polygon {
	return Polygon{Points: points}
}

// AddPoint appends a vertex.
func (p *Polygon) AddPoint(x, y float64) {
	p.Points = append(p.Points, Point{X: x, Y: y})
}

// Bounds returns the axis-aligned bounding box of the vertices.
// An empty polygon has zero bounds.
func (p Polygon) Bounds() Rect {
	if len(p.Points) == 0 {
		return Rect{}
	}
	minX, minY := math.MaxFloat64, math.MaxFloat64
	maxX, maxY := -math.MaxFloat64, -math.MaxFloat64
	for _, pt := range p.Points {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
