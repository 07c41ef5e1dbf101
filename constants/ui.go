package constants

// Status Messages
const (
	// HelpMessage is shown before the first move and while paused
	HelpMessage = "[Enter] Start [WASD/HJKL] Move [P] Pause/Resume [R] Restart [I] Auto"

	// GameOverFormat takes the final score
	GameOverFormat = "Game Over! Score: %d. Press R to restart."

	// ScoreFormat takes the running score
	ScoreFormat = "Score: %d"
)

// Glyphs
const (
	GlyphSnakeHead   = '█'
	GlyphSnakeBody   = '▓'
	GlyphFood        = '●'
	GlyphSpecialFood = '★'
	GlyphEmpty       = ' '
)

// Layout
const (
	// CellWidth is terminal columns per board cell, keeps cells roughly square
	CellWidth = 2

	// BoardOffsetY leaves a row for the status line above the board frame
	BoardOffsetY = 1

	// SpecialBlinkTicks is the remaining lifetime under which special food blinks
	SpecialBlinkTicks = 10
)
