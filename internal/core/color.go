package core

// Color is a palette slot for a screen cell. The platform layer decides
// how each slot is styled.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGreen
	ColorYellow
	ColorRed
	ColorWhite
	ColorGray
	ColorOrange
	ColorCyan
)
