// Package graphics defines a platform-agnostic 2D drawing contract.
//
// # Overview
//
// Applications draw through the [Graphics] interface: polygons, rectangles,
// rounded rectangles, ovals, lines, text and linear gradients. Backends
// translate those calls onto a native rendering API. The raster backend in
// backend/raster draws onto a gogpu/gg Context.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg-graphics"
//	    "github.com/gogpu/gg-graphics/backend/raster"
//	)
//
//	g := raster.NewBackend(400, 300)
//	g.Clear(graphics.White)
//	g.SetColor(graphics.Blue)
//	_ = g.FillRoundedRect(20, 20, 200, 100, 12)
//	g.SetFont(graphics.SystemFontOfSize(16))
//	_ = g.DrawString("hello", 30, 60)
//	_ = g.Context().SavePNG("out.png")
//
// # Fill Styles
//
// A backend fills with either a solid [Color] or a [Gradient], never both.
// [FillStyle] models that choice; the last SetColor or SetGradient wins.
// Strokes always use a solid color: the current color, or the first color of
// the active gradient.
//
// # Values and Identity
//
// Colors and gradients are plain data. Backends memoize the native resources
// derived from them (brushes, pens, gradient brushes) in a cache they own.
// Colors are keyed by value and gradients by pointer, so a gradient must not
// be modified after it has been drawn with.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Arc angles in degrees, increasing clockwise on screen
//
// # Thread Safety
//
// A Graphics implementation and its cached resources belong to one goroutine
// at a time. Only [SetLogger] and [Logger] are safe for concurrent use.
package graphics
