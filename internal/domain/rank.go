package domain

import "fmt"

// ColorHex is a 0xRRGGBB colour value, directly usable as a Discord embed colour.
type ColorHex int

// RGB splits the colour into 0-1 float components for canvas drawing.
func (c ColorHex) RGB() (r, g, b float64) {
	return float64((c>>16)&0xFF) / 255, float64((c>>8)&0xFF) / 255, float64(c&0xFF) / 255
}

// String renders the colour as #RRGGBB.
func (c ColorHex) String() string {
	return fmt.Sprintf("#%06X", int(c))
}

// RankDisplay is the derived, display-only rank of a player.
type RankDisplay struct {
	Label        string
	PrimaryColor ColorHex
	AccentColor  ColorHex
}
