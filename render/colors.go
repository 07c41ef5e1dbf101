package render

import "github.com/gdamore/tcell/v2"

// RGB palette
var (
	RgbBackground  = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbFrame       = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusBar   = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusError = tcell.NewRGBColor(255, 80, 80)   // Normal Red

	RgbSnakeHead = tcell.NewRGBColor(50, 255, 50) // Bright Green
	RgbSnakeBody = tcell.NewRGBColor(0, 200, 0)   // Normal Green
	RgbSnakeDead = tcell.NewRGBColor(180, 50, 50) // Dark Red

	RgbFood        = tcell.NewRGBColor(255, 120, 120) // Bright Red
	RgbSpecialFood = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow

	RgbAutoPilot = tcell.NewRGBColor(100, 150, 255) // Normal Blue
)
