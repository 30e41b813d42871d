package raster

import "github.com/gogpu/gg/text"

// Option configures a Backend during creation.
//
// Example:
//
//	g := raster.NewBackend(800, 600,
//	    raster.WithDPI(192),
//	    raster.WithFontFamily("Inter", regular, bold),
//	    raster.WithDefaultFamily("Inter"),
//	)
type Option func(*options)

// options holds optional configuration for Backend creation.
type options struct {
	dpi           float64
	families      map[string]fontFamily
	defaultFamily string
}

// defaultOptions returns the default backend options.
func defaultOptions() options {
	return options{
		dpi:           baseDPI,
		families:      make(map[string]fontFamily),
		defaultFamily: FamilyGo,
	}
}

// WithDPI sets the vertical resolution of the target surface. Font sizes
// are divided by 1.1*dpi/96. Values <= 0 are ignored.
func WithDPI(dpi float64) Option {
	return func(o *options) {
		if dpi > 0 {
			o.dpi = dpi
		}
	}
}

// WithFontFamily registers a font family under name. Lookups fold case, so
// "Inter" and "INTER" name the same family. bold may be nil, in which case
// bold text uses the regular source. A nil regular source is ignored.
func WithFontFamily(name string, regular, bold *text.FontSource) Option {
	return func(o *options) {
		if regular == nil {
			return
		}
		o.families[foldName(name)] = fontFamily{regular: regular, bold: bold}
	}
}

// WithDefaultFamily selects the family used when a requested family is not
// available. The default is [FamilyGo].
func WithDefaultFamily(name string) Option {
	return func(o *options) {
		o.defaultFamily = name
	}
}
