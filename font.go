package graphics

// Well-known family names understood by every backend.
const (
	FamilySystem    = "System"
	FamilyMonospace = "Monospace"
)

// Font describes a font to draw text with.
// Size is the em size before DPI scaling.
type Font struct {
	Family string
	Size   float64
	Bold   bool
}

// SystemFontOfSize returns the regular system font.
func SystemFontOfSize(size float64) Font {
	return Font{Family: FamilySystem, Size: size}
}

// BoldSystemFontOfSize returns the bold system font.
func BoldSystemFontOfSize(size float64) Font {
	return Font{Family: FamilySystem, Size: size, Bold: true}
}

// UserFixedPitchFontOfSize returns a monospaced font.
func UserFixedPitchFontOfSize(size float64) Font {
	return Font{Family: FamilyMonospace, Size: size}
}
