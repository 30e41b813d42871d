// Package raster implements graphics.Graphics on a gogpu/gg Context.
//
// The backend translates each drawing call into gg path, brush and text
// operations and rasterizes it immediately. It is registered as "raster"
// with the backend registry:
//
//	import _ "github.com/gogpu/gg-graphics/backend/raster"
//
//	g, _ := backend.New("raster", 800, 600)
//
// or created directly, optionally around an existing context:
//
//	dc := gg.NewContext(800, 600)
//	g := raster.New(dc, raster.WithDPI(144))
//
// # Resources
//
// Brushes, pens and gradient brushes are memoized per backend. Pens are
// shared between widths less than 10% apart, and a gradient keeps the brush
// built the first time it was drawn with.
//
// # Text
//
// gg places text by baseline. The backend keeps the contract's top-based
// placement: the top of the text box is y - 0.175*Height, and the baseline
// handed to gg sits one ascent below it. Fonts are resolved by family name
// (case-insensitively) among families registered with [WithFontFamily] and
// the built-in Go fonts; unknown families fall back to the default family.
//
// # Unsupported Operations
//
// FillArc and DrawArc return graphics.ErrUnsupported. DrawStringInRect
// accepts but does not honor line-break and alignment modes.
package raster
