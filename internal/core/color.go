package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for scene elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// entityPalette is cycled through to tell scene entities apart.
var entityPalette = []Color{
	ColorCyan,
	ColorGreen,
	ColorMagenta,
	ColorOrange,
	ColorBlue,
	ColorRed,
	ColorBrightGreen,
	ColorBrightMagenta,
}

// PaletteColor returns the display color for the i-th entity of a scene.
func PaletteColor(i int) Color {
	if i < 0 {
		i = -i
	}
	return entityPalette[i%len(entityPalette)]
}
