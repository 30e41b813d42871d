package raster

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"

	graphics "github.com/gogpu/gg-graphics"
)

// Built-in font families, backed by the Go fonts.
const (
	FamilyGo     = "Go"
	FamilyGoMono = "Go Mono"
)

const (
	// baseDPI is the resolution font sizes are specified at.
	baseDPI = 96.0

	// sizeDivisor shrinks requested sizes to match the em size other
	// backends render at.
	sizeDivisor = 1.1
)

// builtinAliases maps common family names onto the built-in families.
var builtinAliases = map[string]string{
	graphics.FamilySystem:    FamilyGo,
	"Arial":                  FamilyGo,
	"Helvetica":              FamilyGo,
	"sans-serif":             FamilyGo,
	graphics.FamilyMonospace: FamilyGoMono,
	"Courier":                FamilyGoMono,
	"Courier New":            FamilyGoMono,
}

// fontFamily is a regular and optional bold source.
type fontFamily struct {
	regular *text.FontSource
	bold    *text.FontSource
}

func (f fontFamily) source(bold bool) *text.FontSource {
	if bold && f.bold != nil {
		return f.bold
	}
	return f.regular
}

// builtinFamilies parses the embedded Go fonts once per process.
var builtinFamilies = sync.OnceValues(func() (map[string]fontFamily, error) {
	load := func(name string, data []byte) (*text.FontSource, error) {
		src, err := text.NewFontSource(data)
		if err != nil {
			return nil, fmt.Errorf("raster: parse built-in font %s: %w", name, err)
		}
		return src, nil
	}

	regular, err := load("Go Regular", goregular.TTF)
	if err != nil {
		return nil, err
	}
	bold, err := load("Go Bold", gobold.TTF)
	if err != nil {
		return nil, err
	}
	mono, err := load("Go Mono", gomono.TTF)
	if err != nil {
		return nil, err
	}
	monoBold, err := load("Go Mono Bold", gomonobold.TTF)
	if err != nil {
		return nil, err
	}

	families := map[string]fontFamily{
		foldName(FamilyGo):     {regular: regular, bold: bold},
		foldName(FamilyGoMono): {regular: mono, bold: monoBold},
	}
	for alias, target := range builtinAliases {
		families[foldName(alias)] = families[foldName(target)]
	}
	return families, nil
})

// foldName normalizes a family name for lookup.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// fontRegistry resolves font descriptors to font sources.
type fontRegistry struct {
	families      map[string]fontFamily
	defaultFamily string
}

func (r *fontRegistry) lookup(name string) (fontFamily, bool) {
	key := foldName(name)
	if fam, ok := r.families[key]; ok {
		return fam, true
	}
	builtin, err := builtinFamilies()
	if err != nil {
		graphics.Logger().Warn("raster: built-in fonts unavailable", "err", err)
		return fontFamily{}, false
	}
	fam, ok := builtin[key]
	return fam, ok
}

// resolve returns the source for f, substituting the default family when
// f.Family is not available.
func (r *fontRegistry) resolve(f graphics.Font) (*text.FontSource, error) {
	if fam, ok := r.lookup(f.Family); ok {
		return fam.source(f.Bold), nil
	}
	fam, ok := r.lookup(r.defaultFamily)
	if !ok {
		return nil, fmt.Errorf("raster: font family %q and default family %q not available",
			f.Family, r.defaultFamily)
	}
	graphics.Logger().Debug("raster: substituting font family",
		"requested", f.Family, "using", r.defaultFamily)
	return fam.source(f.Bold), nil
}

// metrics creates FontMetrics for f on a surface with the given DPI.
func (r *fontRegistry) metrics(f graphics.Font, dpi float64) (*FontMetrics, error) {
	if !(f.Size > 0) {
		return nil, fmt.Errorf("%w: font size %v must be positive", graphics.ErrInvalidArgument, f.Size)
	}
	src, err := r.resolve(f)
	if err != nil {
		return nil, err
	}
	face := src.Face(f.Size / (sizeDivisor * dpi / baseDPI))
	return &FontMetrics{
		font:   f,
		face:   face,
		height: int(math.Ceil(face.Metrics().LineHeight())),
	}, nil
}

// FontMetrics measures text in the font most recently set on a Backend.
// Ascent equals Height and Descent is zero: lines are treated as lying
// entirely above the baseline.
type FontMetrics struct {
	font   graphics.Font
	face   text.Face
	height int
}

var _ graphics.FontMetrics = (*FontMetrics)(nil)

// Font returns the descriptor the metrics were derived from.
func (m *FontMetrics) Font() graphics.Font {
	return m.font
}

// Face returns the gg face text is drawn with.
func (m *FontMetrics) Face() text.Face {
	return m.face
}

// Height returns the line height, rounded up to a whole pixel.
func (m *FontMetrics) Height() int {
	return m.height
}

// Ascent returns Height.
func (m *FontMetrics) Ascent() int {
	return m.height
}

// Descent returns 0.
func (m *FontMetrics) Descent() int {
	return 0
}

// StringWidth returns the advance of length runes of s starting at rune
// index start, rounded up. Indices are clamped to the string.
func (m *FontMetrics) StringWidth(s string, start, length int) int {
	runes := []rune(s)
	start = max(0, min(start, len(runes)))
	end := start + max(0, min(length, len(runes)-start))
	if start == end {
		return 0
	}
	return int(math.Ceil(m.face.Advance(string(runes[start:end]))))
}

// baselineCorrection is the fraction of the line height text is raised by,
// so that y names the top of the text box.
const baselineCorrection = 0.175

// textTop returns the top of the text box for a requested y.
func (m *FontMetrics) textTop(y float64) float64 {
	return y - baselineCorrection*float64(m.height)
}

// baseline returns the gg baseline for a requested y.
func (m *FontMetrics) baseline(y float64) float64 {
	return m.textTop(y) + m.face.Metrics().Ascent
}
