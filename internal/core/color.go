package core

// Color represents a foreground color for a screen cell.
// The terminal front end maps each value to an ANSI 256-color style.
type Color uint8

// Predefined colors for arena elements.
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
	ColorBrightCyan
	ColorGray
	ColorDim
)

// SideColor returns the color used for everything a side owns.
func SideColor(s Side) Color {
	if s == SideEnemy {
		return ColorBrightRed
	}
	return ColorBrightGreen
}
