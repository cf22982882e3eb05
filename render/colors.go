package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFloor      = tcell.NewRGBColor(60, 62, 80)    // Dim grid dots
	RgbBorder     = tcell.NewRGBColor(90, 90, 110)   // Outside the bounds
	RgbWall       = tcell.NewRGBColor(180, 180, 180) // Light gray
	RgbBox        = tcell.NewRGBColor(205, 133, 63)  // Crate brown
	RgbBoxPushed  = tcell.NewRGBColor(255, 165, 0)   // Orange while being pushed
	RgbCharacter  = tcell.NewRGBColor(144, 238, 144) // Light green
	RgbBlocked    = tcell.NewRGBColor(255, 80, 80)   // Red when the last move was blocked
	RgbHUDText    = tcell.NewRGBColor(255, 255, 255)
	RgbHUDDim     = tcell.NewRGBColor(140, 140, 160)
)
