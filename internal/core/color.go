package core

// Color is a foreground color for a screen cell. The zero value is the
// terminal default. Values map onto ANSI 256-color codes at the render
// layer; the simulation only picks from this palette.
type Color uint8

// The palette. The hull and friendly fire sit in the cyan range, hazards
// and the red bottle in the reds, pickups in blue, walls in gray.
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
