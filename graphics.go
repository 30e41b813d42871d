package graphics

// LineBreakMode selects how text that does not fit a box is broken.
type LineBreakMode uint8

const (
	LineBreakNone LineBreakMode = iota
	LineBreakClip
	LineBreakWordWrap
)

// TextAlignment selects horizontal text placement inside a box.
type TextAlignment uint8

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
	AlignJustified
)

// FontMetrics reports measurements of the font a Graphics is drawing with.
type FontMetrics interface {
	// Height is the line height in pixels.
	Height() int
	// Ascent is the distance from the top of a line to its baseline.
	Ascent() int
	// Descent is the distance from the baseline to the bottom of a line.
	Descent() int
	// StringWidth measures length runes of s starting at rune index start,
	// rounded up to a whole pixel.
	StringWidth(s string, start, length int) int
}

// Image is a bitmap a backend can draw.
type Image interface {
	Width() int
	Height() int
}

// Graphics is the drawing surface applications program against.
//
// Operations that can fail return an error. Strokes take their width as the
// last argument; a width <= 0 is rejected with [ErrInvalidArgument]. Text
// operations before SetFont fail with [ErrNoFont]. Operations a backend does
// not implement return [ErrUnsupported] and draw nothing.
type Graphics interface {
	// State

	SetFont(f Font)
	SetColor(c Color)
	SetGradient(g *Gradient) error
	SaveState()
	RestoreState()
	SetClippingRect(x, y, width, height float64)
	Translate(dx, dy float64)
	Scale(sx, sy float64)

	// Shapes

	Clear(c Color)
	FillPolygon(p Polygon) error
	DrawPolygon(p Polygon, w float64) error
	FillRect(x, y, width, height float64) error
	DrawRect(x, y, width, height, w float64) error
	FillRoundedRect(x, y, width, height, radius float64) error
	DrawRoundedRect(x, y, width, height, radius, w float64) error
	FillOval(x, y, width, height float64) error
	DrawOval(x, y, width, height, w float64) error
	FillArc(cx, cy, radius, startAngle, endAngle float64) error
	DrawArc(cx, cy, radius, startAngle, endAngle, w float64) error

	// Lines. BeginLines and EndLines frame a run of DrawLine calls.

	BeginLines(rounded bool)
	DrawLine(sx, sy, ex, ey, w float64) error
	EndLines()

	// Text

	DrawString(s string, x, y float64) error
	DrawStringInRect(s string, x, y, width, height float64, lineBreak LineBreakMode, align TextAlignment) error
	FontMetrics() (FontMetrics, error)

	// Images

	DrawImage(img Image, x, y, width, height float64) error
	ImageFromFile(path string) (Image, error)

	// BeginEntity marks the start of drawing for an application object.
	BeginEntity(entity any)
}
