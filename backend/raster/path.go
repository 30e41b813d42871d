package raster

import (
	"math"

	graphics "github.com/gogpu/gg-graphics"
)

// pathBuilder is the subset of gg.Context used to emit paths.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// joinEpsilon is the distance under which two points are treated as one
// when joining elements.
const joinEpsilon = 1e-9

// appendPath adds p to the current path of pb. Each element is joined to
// the previous one with a line when their endpoints differ.
func appendPath(pb pathBuilder, p *graphics.Path) {
	var cur graphics.Point
	started := false

	join := func(pt graphics.Point) {
		switch {
		case !started:
			pb.MoveTo(pt.X, pt.Y)
			started = true
		case pt.Distance(cur) > joinEpsilon:
			pb.LineTo(pt.X, pt.Y)
		}
		cur = pt
	}

	for _, e := range p.Elements() {
		switch v := e.(type) {
		case graphics.Arc:
			join(v.Start())
			appendArc(pb, v)
			cur = v.End()
		case graphics.Line:
			join(v.From)
			pb.LineTo(v.To.X, v.To.Y)
			cur = v.To
		case graphics.Close:
			pb.ClosePath()
			started = false
		}
	}
}

// appendArc emits a as cubic Bezier segments spanning at most 90 degrees.
func appendArc(pb pathBuilder, a graphics.Arc) {
	n := int(math.Ceil(math.Abs(a.SweepAngle) / 90))
	if n < 1 {
		n = 1
	}

	cx, cy, r := a.Center.X, a.Center.Y, a.Radius
	a1 := a.StartAngle * math.Pi / 180
	step := a.SweepAngle * math.Pi / 180 / float64(n)

	for i := 0; i < n; i++ {
		a2 := a1 + step
		k := 4.0 / 3.0 * math.Tan((a2-a1)/4)

		cos1, sin1 := math.Cos(a1), math.Sin(a1)
		cos2, sin2 := math.Cos(a2), math.Sin(a2)

		pb.CubicTo(
			cx+r*(cos1-k*sin1), cy+r*(sin1+k*cos1),
			cx+r*(cos2+k*sin2), cy+r*(sin2-k*cos2),
			cx+r*cos2, cy+r*sin2,
		)
		a1 = a2
	}
}

// appendPolygon adds the closed outline of p.
func appendPolygon(pb pathBuilder, p graphics.Polygon) {
	for i, pt := range p.Points {
		if i == 0 {
			pb.MoveTo(pt.X, pt.Y)
		} else {
			pb.LineTo(pt.X, pt.Y)
		}
	}
	pb.ClosePath()
}
