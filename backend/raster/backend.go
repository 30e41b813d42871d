package raster

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"

	graphics "github.com/gogpu/gg-graphics"
	"github.com/gogpu/gg-graphics/backend"
	"github.com/gogpu/gg-graphics/internal/cache"
)

func init() {
	backend.Register("raster", func(width, height int) graphics.Graphics {
		return NewBackend(width, height)
	})
}

// Backend draws graphics calls onto a gg.Context.
//
// A Backend is not safe for concurrent use; it and the resources it caches
// belong to one goroutine at a time.
type Backend struct {
	dc    *gg.Context
	cache *cache.Cache
	style graphics.FillStyle

	fonts   fontRegistry
	dpi     float64
	font    *FontMetrics
	fontErr error
}

// Ensure Backend implements the required interfaces.
var (
	_ graphics.Graphics   = (*Backend)(nil)
	_ backend.FileBackend = (*Backend)(nil)
)

// New creates a Backend drawing onto dc. The initial fill style is solid
// black and no font is set.
func New(dc *gg.Context, opts ...Option) *Backend {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Backend{
		dc:    dc,
		cache: cache.New(),
		style: graphics.Solid{C: graphics.Black},
		fonts: fontRegistry{
			families:      o.families,
			defaultFamily: o.defaultFamily,
		},
		dpi: o.dpi,
	}
}

// NewBackend creates a Backend with its own width x height context.
func NewBackend(width, height int, opts ...Option) *Backend {
	return New(gg.NewContext(width, height), opts...)
}

// Context returns the gg context the backend draws onto.
func (b *Backend) Context() *gg.Context {
	return b.dc
}

// Image returns the rendered surface.
func (b *Backend) Image() image.Image {
	return b.dc.Image()
}

// SaveToFile writes the surface to path as PNG.
func (b *Backend) SaveToFile(path string) error {
	return b.dc.SavePNG(path)
}

// CacheStats reports the resources cached so far.
func (b *Backend) CacheStats() cache.Stats {
	return b.cache.Stats()
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// SetFont resolves f and recomputes the font metrics. If f cannot be
// resolved, text operations fail with graphics.ErrNoFont until the next
// successful SetFont.
func (b *Backend) SetFont(f graphics.Font) {
	fm, err := b.fonts.metrics(f, b.dpi)
	if err != nil {
		graphics.Logger().Debug("raster: font not set", "family", f.Family, "size", f.Size, "err", err)
		b.font, b.fontErr = nil, err
		return
	}
	b.font, b.fontErr = fm, nil
}

// SetColor fills with a solid color from now on.
func (b *Backend) SetColor(c graphics.Color) {
	b.style = graphics.Solid{C: c}
}

// SetGradient fills with g from now on. Strokes and text use the first
// color of g.
func (b *Backend) SetGradient(g *graphics.Gradient) error {
	if err := g.Validate(); err != nil {
		return err
	}
	b.style = graphics.GradientFill{Gradient: g}
	return nil
}

// Color returns the current color: the solid color, or the first color of
// the active gradient.
func (b *Backend) Color() graphics.Color {
	return b.style.Color()
}

// FillStyle returns the current fill style.
func (b *Backend) FillStyle() graphics.FillStyle {
	return b.style
}

// SaveState pushes the transform and clip.
func (b *Backend) SaveState() {
	b.dc.Push()
}

// RestoreState pops the transform and clip. Without a saved state it does
// nothing.
func (b *Backend) RestoreState() {
	b.dc.Pop()
}

// SetClippingRect intersects the clip with a rectangle.
func (b *Backend) SetClippingRect(x, y, width, height float64) {
	b.dc.ClipRect(x, y, width, height)
}

// Translate moves the origin.
func (b *Backend) Translate(dx, dy float64) {
	b.dc.Translate(dx, dy)
}

// Scale scales user space.
func (b *Backend) Scale(sx, sy float64) {
	b.dc.Scale(sx, sy)
}

// BeginEntity does nothing.
func (b *Backend) BeginEntity(any) {}

// --------------------------------------------------------------------------
// Resources
// --------------------------------------------------------------------------

// Brush returns the fill brush for a shape with the given bounds. With a
// gradient active it is the gradient's brush, built from the gradient's own
// endpoints the first time and returned unchanged afterwards whatever the
// bounds. Otherwise it is the brush of the current color.
func (b *Backend) Brush(bounds graphics.Rect) (*cache.Brush, error) {
	if gf, ok := b.style.(graphics.GradientFill); ok {
		return b.cache.Gradient(gf.Gradient)
	}
	return b.cache.Solid(b.style.Color()), nil
}

// Pen returns the stroke pen of the current color for width.
func (b *Backend) Pen(width float64) (*cache.Pen, error) {
	return b.cache.Pen(b.style.Color(), width)
}

// fill resolves the fill brush, builds a path with build and fills it.
func (b *Backend) fill(bounds graphics.Rect, build func(pb pathBuilder)) error {
	brush, err := b.Brush(bounds)
	if err != nil {
		return err
	}
	b.dc.ClearPath()
	build(b.dc)
	b.dc.SetFillBrush(brush.Native())
	return b.dc.Fill()
}

// stroke resolves the pen, builds a path with build and strokes it.
func (b *Backend) stroke(width float64, build func(pb pathBuilder)) error {
	pen, err := b.Pen(width)
	if err != nil {
		return err
	}
	b.dc.ClearPath()
	build(b.dc)
	b.dc.SetStrokeBrush(pen.Brush())
	b.dc.SetLineWidth(pen.Width())
	return b.dc.Stroke()
}

// --------------------------------------------------------------------------
// Shapes
// --------------------------------------------------------------------------

// Clear fills the whole surface with c, ignoring transform and clip.
func (b *Backend) Clear(c graphics.Color) {
	b.dc.ClearWithColor(cache.ToRGBA(c))
}

// FillPolygon fills p. A polygon without points draws nothing.
func (b *Backend) FillPolygon(p graphics.Polygon) error {
	if len(p.Points) == 0 {
		return nil
	}
	return b.fill(p.Bounds(), func(pb pathBuilder) {
		appendPolygon(pb, p)
	})
}

// DrawPolygon strokes the closed outline of p.
func (b *Backend) DrawPolygon(p graphics.Polygon, w float64) error {
	if len(p.Points) == 0 {
		_, err := b.Pen(w)
		return err
	}
	return b.stroke(w, func(pb pathBuilder) {
		appendPolygon(pb, p)
	})
}

// FillRect fills a rectangle.
func (b *Backend) FillRect(x, y, width, height float64) error {
	return b.fill(graphics.Rect{X: x, Y: y, Width: width, Height: height}, func(pb pathBuilder) {
		rectangle(pb, x, y, width, height)
	})
}

// DrawRect strokes a rectangle.
func (b *Backend) DrawRect(x, y, width, height, w float64) error {
	return b.stroke(w, func(pb pathBuilder) {
		rectangle(pb, x, y, width, height)
	})
}

func rectangle(pb pathBuilder, x, y, w, h float64) {
	pb.MoveTo(x, y)
	pb.LineTo(x+w, y)
	pb.LineTo(x+w, y+h)
	pb.LineTo(x, y+h)
	pb.ClosePath()
}

// FillRoundedRect fills a rectangle whose corners are quarter circles of
// the given radius.
func (b *Backend) FillRoundedRect(x, y, width, height, radius float64) error {
	if radius < 0 {
		return fmt.Errorf("%w: corner radius %v is negative", graphics.ErrInvalidArgument, radius)
	}
	path := graphics.RoundedRectPath(x, y, width, height, radius)
	return b.fill(graphics.Rect{X: x, Y: y, Width: width, Height: height}, func(pb pathBuilder) {
		appendPath(pb, path)
	})
}

// DrawRoundedRect strokes a rounded rectangle.
func (b *Backend) DrawRoundedRect(x, y, width, height, radius, w float64) error {
	if radius < 0 {
		return fmt.Errorf("%w: corner radius %v is negative", graphics.ErrInvalidArgument, radius)
	}
	path := graphics.RoundedRectPath(x, y, width, height, radius)
	return b.stroke(w, func(pb pathBuilder) {
		appendPath(pb, path)
	})
}

// FillOval fills the ellipse inscribed in the rectangle.
func (b *Backend) FillOval(x, y, width, height float64) error {
	return b.fill(graphics.Rect{X: x, Y: y, Width: width, Height: height}, func(pb pathBuilder) {
		ellipse(pb, x, y, width, height)
	})
}

// DrawOval strokes the ellipse inscribed in the rectangle.
func (b *Backend) DrawOval(x, y, width, height, w float64) error {
	return b.stroke(w, func(pb pathBuilder) {
		ellipse(pb, x, y, width, height)
	})
}

func ellipse(pb pathBuilder, x, y, w, h float64) {
	rx, ry := w/2, h/2
	p := graphics.NewPath()
	for i := range 4 {
		p.AddArc(x+rx, y+ry, 1, float64(i)*90, 90)
	}
	p.Close()
	appendPath(scaledBuilder{pb: pb, cx: x + rx, cy: y + ry, sx: rx, sy: ry}, p)
}

// scaledBuilder stretches a path built around a unit circle at (cx, cy).
type scaledBuilder struct {
	pb             pathBuilder
	cx, cy, sx, sy float64
}

func (s scaledBuilder) tx(x float64) float64 { return s.cx + (x-s.cx)*s.sx }
func (s scaledBuilder) ty(y float64) float64 { return s.cy + (y-s.cy)*s.sy }

func (s scaledBuilder) MoveTo(x, y float64) { s.pb.MoveTo(s.tx(x), s.ty(y)) }
func (s scaledBuilder) LineTo(x, y float64) { s.pb.LineTo(s.tx(x), s.ty(y)) }
func (s scaledBuilder) ClosePath()          { s.pb.ClosePath() }
func (s scaledBuilder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.pb.CubicTo(s.tx(c1x), s.ty(c1y), s.tx(c2x), s.ty(c2y), s.tx(x), s.ty(y))
}

// FillArc is not supported.
func (b *Backend) FillArc(cx, cy, radius, startAngle, endAngle float64) error {
	return fmt.Errorf("%w: FillArc", graphics.ErrUnsupported)
}

// DrawArc is not supported.
func (b *Backend) DrawArc(cx, cy, radius, startAngle, endAngle, w float64) error {
	return fmt.Errorf("%w: DrawArc", graphics.ErrUnsupported)
}

// BeginLines does nothing; lines are drawn as they arrive.
func (b *Backend) BeginLines(rounded bool) {}

// DrawLine strokes one segment with the current color.
func (b *Backend) DrawLine(sx, sy, ex, ey, w float64) error {
	return b.stroke(w, func(pb pathBuilder) {
		pb.MoveTo(sx, sy)
		pb.LineTo(ex, ey)
	})
}

// EndLines does nothing.
func (b *Backend) EndLines() {}

// --------------------------------------------------------------------------
// Text
// --------------------------------------------------------------------------

// FontMetrics returns the metrics of the current font.
func (b *Backend) FontMetrics() (graphics.FontMetrics, error) {
	fm, err := b.currentFont()
	if err != nil {
		return nil, err
	}
	return fm, nil
}

func (b *Backend) currentFont() (*FontMetrics, error) {
	if b.font != nil {
		return b.font, nil
	}
	if b.fontErr != nil {
		return nil, fmt.Errorf("%w: %w", graphics.ErrNoFont, b.fontErr)
	}
	return nil, graphics.ErrNoFont
}

// DrawString draws s in the current color with the top of the text box at
// y - 0.175*Height.
func (b *Backend) DrawString(s string, x, y float64) error {
	fm, err := b.currentFont()
	if err != nil {
		return err
	}
	b.drawText(fm, s, x, y, cache.ToRGBA(b.style.Color()))
	return nil
}

// DrawStringInRect draws s like DrawString, with the fill resolved against
// the rectangle. An active gradient is sampled at the rectangle center.
// lineBreak and align are not honored.
func (b *Backend) DrawStringInRect(s string, x, y, width, height float64,
	lineBreak graphics.LineBreakMode, align graphics.TextAlignment,
) error {
	fm, err := b.currentFont()
	if err != nil {
		return err
	}
	bounds := graphics.Rect{X: x, Y: y, Width: width, Height: height}
	brush, err := b.Brush(bounds)
	if err != nil {
		return err
	}
	c := bounds.Center()
	b.drawText(fm, s, x, y, brush.Native().ColorAt(c.X, c.Y))
	return nil
}

func (b *Backend) drawText(fm *FontMetrics, s string, x, y float64, c gg.RGBA) {
	if s == "" {
		return
	}
	b.dc.SetFont(fm.Face())
	b.dc.SetFillBrush(gg.Solid(c))
	b.dc.DrawString(s, x, fm.baseline(y))
}

// --------------------------------------------------------------------------
// Images
// --------------------------------------------------------------------------

// DrawImage draws img scaled into the rectangle. img must be an *Image from
// this package or implement image.Image. A rectangle with zero width or
// height draws nothing.
func (b *Backend) DrawImage(img graphics.Image, x, y, width, height float64) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("%w: image size %vx%v is negative", graphics.ErrInvalidArgument, width, height)
	}
	buf, err := imageBuf(img)
	if err != nil {
		return err
	}
	if width == 0 || height == 0 {
		return nil
	}
	b.dc.DrawImageEx(buf, gg.DrawImageOptions{
		X:             x,
		Y:             y,
		DstWidth:      width,
		DstHeight:     height,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// ImageFromFile loads a PNG, JPEG or WebP image.
func (b *Backend) ImageFromFile(path string) (graphics.Image, error) {
	buf, err := gg.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("raster: load image %s: %w", path, err)
	}
	return &Image{buf: buf}, nil
}

