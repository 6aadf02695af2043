package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for terminal rendering.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Dimmed returns the color used for a cell covered by a dark overlay.
func (c Color) Dimmed() Color {
	switch c {
	case ColorBrightRed, ColorRed:
		return ColorRed
	case ColorDefault:
		return ColorDefault
	default:
		return ColorGray
	}
}
