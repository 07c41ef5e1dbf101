package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
)

// Frame glyphs
const (
	frameHorizontal  = '─'
	frameVertical    = '│'
	frameTopLeft     = '┌'
	frameTopRight    = '┐'
	frameBottomLeft  = '└'
	frameBottomRight = '┘'
)

const tooSmallMessage = "Terminal too small: need %dx%d"

// TerminalRenderer draws snapshots onto a tcell screen
// Layout: status line on row 0, framed board below, each cell constants.CellWidth columns wide
type TerminalRenderer struct {
	screen tcell.Screen
	base   tcell.Style
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(screen tcell.Screen) *TerminalRenderer {
	return &TerminalRenderer{
		screen: screen,
		base:   tcell.StyleDefault.Background(RgbBackground),
	}
}

// RequiredSize returns the terminal size needed for a board of tileCount cells
func RequiredSize(tileCount int) (width, height int) {
	return tileCount*constants.CellWidth + 2, constants.BoardOffsetY + tileCount + 2
}

// CellOrigin returns the screen column and row of a board cell's left half
func CellOrigin(p core.Point) (x, y int) {
	return 1 + p.X*constants.CellWidth, constants.BoardOffsetY + 1 + p.Y
}

// RenderFrame renders the entire game frame
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot) {
	r.screen.Clear()

	needW, needH := RequiredSize(snap.TileCount)
	if w, h := r.screen.Size(); w < needW || h < needH {
		r.drawText(0, 0, fmt.Sprintf(tooSmallMessage, needW, needH), r.base.Foreground(RgbStatusError))
		r.screen.Show()
		return
	}

	r.drawFrame(snap.TileCount)
	for _, m := range snap.Models {
		if !m.Visible {
			continue
		}
		switch m.Kind {
		case engine.KindFood:
			r.drawCell(m.Cells[0], constants.GlyphFood, r.base.Foreground(RgbFood))
		case engine.KindSpecialFood:
			r.drawCell(m.Cells[0], constants.GlyphSpecialFood, r.base.Foreground(RgbSpecialFood))
		case engine.KindSnake:
			r.drawSnake(m.Cells, snap.Phase == engine.PhaseGameOver)
		case engine.KindStatus:
			r.drawStatusBar(snap, m.Text)
		}
	}

	r.screen.Show()
}

func (r *TerminalRenderer) drawFrame(tileCount int) {
	style := r.base.Foreground(RgbFrame)
	right := tileCount*constants.CellWidth + 1
	top := constants.BoardOffsetY
	bottom := top + tileCount + 1

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, top, frameHorizontal, nil, style)
		r.screen.SetContent(x, bottom, frameHorizontal, nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, frameVertical, nil, style)
		r.screen.SetContent(right, y, frameVertical, nil, style)
	}
	r.screen.SetContent(0, top, frameTopLeft, nil, style)
	r.screen.SetContent(right, top, frameTopRight, nil, style)
	r.screen.SetContent(0, bottom, frameBottomLeft, nil, style)
	r.screen.SetContent(right, bottom, frameBottomRight, nil, style)
}

func (r *TerminalRenderer) drawSnake(cells []core.Point, dead bool) {
	headStyle := r.base.Foreground(RgbSnakeHead)
	bodyStyle := r.base.Foreground(RgbSnakeBody)
	if dead {
		headStyle = r.base.Foreground(RgbSnakeDead)
	}

	// Body first so the head stays visible on the collision cell
	for i := len(cells) - 1; i > 0; i-- {
		r.drawCell(cells[i], constants.GlyphSnakeBody, bodyStyle)
	}
	if len(cells) > 0 {
		r.drawCell(cells[0], constants.GlyphSnakeHead, headStyle)
	}
}

// drawCell fills every column of a board cell with glyph
func (r *TerminalRenderer) drawCell(p core.Point, glyph rune, style tcell.Style) {
	x, y := CellOrigin(p)
	for i := 0; i < constants.CellWidth; i++ {
		r.screen.SetContent(x+i, y, glyph, nil, style)
	}
}

func (r *TerminalRenderer) drawStatusBar(snap engine.Snapshot, message string) {
	style := r.base.Foreground(RgbStatusBar)
	if snap.Err != nil {
		style = r.base.Foreground(RgbStatusError)
	}
	x := r.drawText(0, 0, message, style)

	if snap.AutoPilot {
		r.drawText(x+1, 0, "[AUTO]", r.base.Foreground(RgbAutoPilot).Bold(true))
	}
}

// drawText writes s starting at (x, y) and returns the column after the last rune
func (r *TerminalRenderer) drawText(x, y int, s string, style tcell.Style) int {
	for _, ch := range s {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}
