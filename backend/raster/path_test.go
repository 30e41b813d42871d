package raster

import (
	"math"
	"testing"

	graphics "github.com/gogpu/gg-graphics"
)

type pathOp struct {
	kind string
	pts  []float64
}

// recorder is a pathBuilder that records every call.
type recorder struct {
	ops []pathOp
}

func (r *recorder) MoveTo(x, y float64) {
	r.ops = append(r.ops, pathOp{"move", []float64{x, y}})
}

func (r *recorder) LineTo(x, y float64) {
	r.ops = append(r.ops, pathOp{"line", []float64{x, y}})
}

func (r *recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.ops = append(r.ops, pathOp{"cubic", []float64{c1x, c1y, c2x, c2y, x, y}})
}

func (r *recorder) ClosePath() {
	r.ops = append(r.ops, pathOp{kind: "close"})
}

func (r *recorder) kinds() []string {
	out := make([]string, len(r.ops))
	for i, op := range r.ops {
		out[i] = op.kind
	}
	return out
}

// end returns the point an op ends at.
func (op pathOp) end() (float64, float64) {
	n := len(op.pts)
	return op.pts[n-2], op.pts[n-1]
}

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAppendPathRoundedRect(t *testing.T) {
	var r recorder
	appendPath(&r, graphics.RoundedRectPath(0, 0, 100, 50, 10))

	want := []string{"move", "cubic", "line", "cubic", "line", "cubic", "line", "cubic", "line", "close"}
	got := r.kinds()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ops = %v, want %v", got, want)
		}
	}

	if x, y := r.ops[0].end(); !near(x, 0) || !near(y, 10) {
		t.Errorf("MoveTo(%v, %v), want (0, 10)", x, y)
	}

	ends := [][2]float64{
		{10, 0}, {90, 0}, // top-left arc, top edge
		{100, 10}, {100, 40}, // top-right arc, right edge
		{90, 50}, {10, 50}, // bottom-right arc, bottom edge
		{0, 40}, {0, 10}, // bottom-left arc, left edge
	}
	for i, e := range ends {
		x, y := r.ops[i+1].end()
		if !near(x, e[0]) || !near(y, e[1]) {
			t.Errorf("op %d (%s) ends at (%v, %v), want (%v, %v)", i+1, r.ops[i+1].kind, x, y, e[0], e[1])
		}
	}
}

func TestAppendPathZeroRadius(t *testing.T) {
	var r recorder
	appendPath(&r, graphics.RoundedRectPath(5, 5, 20, 10, 0))

	// Degenerate arcs still emit, and no extra join lines appear.
	lines := 0
	for _, op := range r.ops {
		if op.kind == "line" {
			lines++
		}
	}
	if lines != 4 {
		t.Errorf("got %d lines, want 4", lines)
	}
}

func TestAppendPathJoinsGaps(t *testing.T) {
	p := graphics.NewPath()
	p.AddLine(0, 0, 10, 0)
	p.AddLine(20, 0, 30, 0)

	var r recorder
	appendPath(&r, p)

	want := []string{"move", "line", "line", "line"}
	got := r.kinds()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	if x, y := r.ops[2].end(); !near(x, 20) || !near(y, 0) {
		t.Errorf("join ends at (%v, %v), want (20, 0)", x, y)
	}
}

func TestAppendArcSegments(t *testing.T) {
	tests := []struct {
		sweep    float64
		segments int
	}{
		{45, 1},
		{90, 1},
		{91, 2},
		{180, 2},
		{360, 4},
		{-90, 1},
		{-270, 3},
	}

	for _, tt := range tests {
		var r recorder
		a := graphics.Arc{Center: graphics.Pt(50, 50), Radius: 20, StartAngle: 30, SweepAngle: tt.sweep}
		appendArc(&r, a)

		if len(r.ops) != tt.segments {
			t.Errorf("sweep %v: %d segments, want %d", tt.sweep, len(r.ops), tt.segments)
			continue
		}
		end := a.End()
		if x, y := r.ops[len(r.ops)-1].end(); !near(x, end.X) || !near(y, end.Y) {
			t.Errorf("sweep %v: ends at (%v, %v), want (%v, %v)", tt.sweep, x, y, end.X, end.Y)
		}
	}
}

func TestAppendArcStaysOnCircle(t *testing.T) {
	var r recorder
	appendArc(&r, graphics.Arc{Center: graphics.Pt(0, 0), Radius: 100, StartAngle: 0, SweepAngle: 90})

	op := r.ops[0]
	// Midpoint of the cubic at t=0.5 deviates from the circle by well under 0.1%.
	p0x, p0y := 100.0, 0.0
	mx := 0.125*p0x + 0.375*op.pts[0] + 0.375*op.pts[2] + 0.125*op.pts[4]
	my := 0.125*p0y + 0.375*op.pts[1] + 0.375*op.pts[3] + 0.125*op.pts[5]
	if d := math.Hypot(mx, my); math.Abs(d-100) > 0.1 {
		t.Errorf("midpoint radius = %v, want ~100", d)
	}
	if my <= 0 {
		t.Errorf("midpoint y = %v, want positive (clockwise on screen)", my)
	}
}

func TestAppendPolygon(t *testing.T) {
	var r recorder
	appendPolygon(&r, graphics.NewPolygon(graphics.Pt(0, 0), graphics.Pt(10, 0), graphics.Pt(5, 8)))

	want := []string{"move", "line", "line", "close"}
	got := r.kinds()
	if len(got) != len(want) {
		t.Fatalf("ops = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("op %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestEllipseBounds(t *testing.T) {
	var r recorder
	ellipse(&r, 10, 20, 40, 20)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, op := range r.ops {
		if op.kind == "close" {
			continue
		}
		x, y := op.end()
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	if !near(minX, 10) || !near(maxX, 50) || !near(minY, 20) || !near(maxY, 40) {
		t.Errorf("ellipse extent = (%v,%v)-(%v,%v), want (10,20)-(50,40)", minX, minY, maxX, maxY)
	}
	if last := r.ops[len(r.ops)-1]; last.kind != "close" {
		t.Errorf("last op = %s, want close", last.kind)
	}
}
