// Package term plays the game on a terminal through tcell.
package term

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/types"

	"github.com/gdamore/tcell/v2"
)

// Each grid cell is drawn two columns wide so cells look roughly square
const cellColumns = 2

var (
	borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	textStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	titleStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
)

func cellStyle(c types.Color) tcell.Style {
	return tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
}

// CellOrigin returns the screen column and row of the cell holding p,
// leaving room for the border.
func CellOrigin(grid types.Grid, p types.Point) (col, row int) {
	return 1 + (p.X/grid.CellSize)*cellColumns, 1 + p.Y/grid.CellSize
}

// BoardSize returns the screen area the board and status line need
func BoardSize(grid types.Grid) (width, height int) {
	return grid.Columns()*cellColumns + 2, grid.Rows() + 3
}

type Renderer struct {
	screen tcell.Screen
	grid   types.Grid
}

func NewRenderer(screen tcell.Screen, grid types.Grid) *Renderer {
	return &Renderer{screen: screen, grid: grid}
}

// Draw renders one frame from snap
func (r *Renderer) Draw(snap game.Snapshot) {
	r.screen.Clear()

	needW, needH := BoardSize(r.grid)
	if w, h := r.screen.Size(); w < needW || h < needH {
		r.text(0, 0, fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d", needW, needH, w, h), textStyle)
		r.screen.Show()
		return
	}

	r.drawBorder(needW, needH-1)
	r.drawCell(snap.Food, cellStyle(types.FoodColor))
	for _, p := range snap.Body {
		r.drawCell(p, cellStyle(types.SnakeColor))
	}

	status := fmt.Sprintf("Score: %d  High: %d  Speed: %dms  Games: %d  Best: %d",
		snap.Score, snap.HighScore, snap.SpeedMS, snap.Games, snap.Best)
	r.text(1, needH-1, status, textStyle)

	switch snap.State {
	case game.Paused:
		r.overlay(needW, needH-1, "PAUSED", "Space to resume")
	case game.GameOver:
		r.overlay(needW, needH-1, "GAME OVER", fmt.Sprintf("Score %d - R or Enter to restart", snap.Score))
	}

	r.screen.Show()
}

func (r *Renderer) drawCell(p types.Point, style tcell.Style) {
	col, row := CellOrigin(r.grid, p)
	for i := 0; i < cellColumns; i++ {
		r.screen.SetContent(col+i, row, ' ', nil, style)
	}
}

func (r *Renderer) drawBorder(w, h int) {
	for x := 1; x < w-1; x++ {
		r.screen.SetContent(x, 0, tcell.RuneHLine, nil, borderStyle)
		r.screen.SetContent(x, h-1, tcell.RuneHLine, nil, borderStyle)
	}
	for y := 1; y < h-1; y++ {
		r.screen.SetContent(0, y, tcell.RuneVLine, nil, borderStyle)
		r.screen.SetContent(w-1, y, tcell.RuneVLine, nil, borderStyle)
	}
	r.screen.SetContent(0, 0, tcell.RuneULCorner, nil, borderStyle)
	r.screen.SetContent(w-1, 0, tcell.RuneURCorner, nil, borderStyle)
	r.screen.SetContent(0, h-1, tcell.RuneLLCorner, nil, borderStyle)
	r.screen.SetContent(w-1, h-1, tcell.RuneLRCorner, nil, borderStyle)
}

func (r *Renderer) overlay(w, h int, title, hint string) {
	mid := h / 2
	r.text((w-len(title))/2, mid-1, title, titleStyle)
	r.text((w-len(hint))/2, mid+1, hint, textStyle)
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
