package ui

import (
	"fmt"

	"grid-snake/game"
	"grid-snake/game/manager"
	"grid-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	hudHeight     = 48 // Status strip below the playfield
	fontSize      = 20
	graphBars     = 30 // Most recent games shown in the score graph
	graphBarWidth = 4
)

var (
	backgroundColor = rl.NewColor(0x11, 0x18, 0x27, 255)
	hudColor        = rl.NewColor(0x1F, 0x29, 0x37, 255)
	textColor       = rl.RayWhite
)

func toRaylib(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

type Renderer struct {
	grid         types.Grid
	screenWidth  int32
	screenHeight int32
}

func NewRenderer(grid types.Grid) *Renderer {
	return &Renderer{
		grid:         grid,
		screenWidth:  int32(grid.Width),
		screenHeight: int32(grid.Height + hudHeight),
	}
}

// WindowSize returns the window dimensions needed for the grid plus HUD
func (r *Renderer) WindowSize() (int32, int32) {
	return r.screenWidth, r.screenHeight
}

// Draw renders one frame. It holds no game logic and can run at any rate.
func (r *Renderer) Draw(snap game.Snapshot, history []manager.GameRecord) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(backgroundColor)

	r.drawCell(snap.Food, toRaylib(types.FoodColor))
	for _, p := range snap.Body {
		r.drawCell(p, toRaylib(types.SnakeColor))
	}

	r.drawHUD(snap, history)

	switch snap.State {
	case game.Paused:
		r.drawOverlay("PAUSED", "Space to resume")
	case game.GameOver:
		r.drawOverlay("GAME OVER", fmt.Sprintf("Score %d - R or Enter to restart", snap.Score))
	}
}

func (r *Renderer) drawCell(p types.Point, color rl.Color) {
	rect := r.grid.Inset(p)
	rl.DrawRectangle(int32(rect.X), int32(rect.Y), int32(rect.W), int32(rect.H), color)
}

func (r *Renderer) drawHUD(snap game.Snapshot, history []manager.GameRecord) {
	top := int32(r.grid.Height)
	rl.DrawRectangle(0, top, r.screenWidth, hudHeight, hudColor)

	status := fmt.Sprintf("Score: %d   High: %d   Speed: %dms   Games: %d",
		snap.Score, snap.HighScore, snap.SpeedMS, snap.Games)
	rl.DrawText(status, 10, top+(hudHeight-fontSize)/2, fontSize, textColor)

	r.drawScoreGraph(top, history)
}

// drawScoreGraph draws one bar per recent game, scaled to the best of them
func (r *Renderer) drawScoreGraph(top int32, history []manager.GameRecord) {
	if len(history) == 0 {
		return
	}
	if len(history) > graphBars {
		history = history[len(history)-graphBars:]
	}

	maxScore := 1
	for _, rec := range history {
		if rec.Score > maxScore {
			maxScore = rec.Score
		}
	}

	graphHeight := int32(hudHeight - 12)
	x := r.screenWidth - int32(graphBars*(graphBarWidth+2)) - 10
	base := top + hudHeight - 6
	for _, rec := range history {
		h := graphHeight * int32(rec.Score) / int32(maxScore)
		if h < 1 {
			h = 1
		}
		rl.DrawRectangle(x, base-h, graphBarWidth, h, toRaylib(types.SnakeColor))
		x += graphBarWidth + 2
	}
}

func (r *Renderer) drawOverlay(title, hint string) {
	h := int32(r.grid.Height)
	rl.DrawRectangle(0, 0, r.screenWidth, h, rl.Fade(rl.Black, 0.6))

	titleSize := int32(fontSize * 2)
	tw := rl.MeasureText(title, titleSize)
	rl.DrawText(title, (r.screenWidth-tw)/2, h/2-titleSize, titleSize, textColor)

	hw := rl.MeasureText(hint, fontSize)
	rl.DrawText(hint, (r.screenWidth-hw)/2, h/2+10, fontSize, textColor)
}
