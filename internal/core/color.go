package core

// Color is a foreground colour for a screen cell.
// The platform maps it to ANSI codes.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorOrange
	ColorGray
)
