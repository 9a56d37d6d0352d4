package core

// Color is a foreground colour for a screen cell. The front end maps each
// value to an ANSI 256-colour code.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorBrightWhite
)

// tilePalette is indexed by tile type minus one.
var tilePalette = []Color{
	ColorRed,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorMagenta,
	ColorCyan,
	ColorOrange,
	ColorWhite,
}

// TileColor returns the colour for a tile type. Type 0 (empty) is gray and
// types past the palette wrap around.
func TileColor(t int) Color {
	if t <= 0 {
		return ColorGray
	}
	return tilePalette[(t-1)%len(tilePalette)]
}
