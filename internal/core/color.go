package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for game elements.
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
	ColorDarkGray
)

// Fade picks one of three shades for an opacity in [0, 1].
// Terminals cannot blend, so alpha is approximated by stepping down the shade.
func Fade(alpha float64, bright, normal, dim Color) Color {
	switch {
	case alpha > 0.66:
		return bright
	case alpha > 0.33:
		return normal
	default:
		return dim
	}
}
