package ui

import (
	"grid-snake/ai"
	"grid-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const targetFPS = 60

// Run opens a window and plays g until the window closes or Quit is pressed.
// When pilot is non-nil it steers instead of the keyboard arrows.
func Run(g *game.Game, pilot *ai.Autopilot) error {
	renderer := NewRenderer(g.Grid)
	w, h := renderer.WindowSize()

	rl.InitWindow(w, h, "Snake")
	defer rl.CloseWindow()
	rl.SetExitKey(0) // Esc is mapped to Quit like every other binding
	rl.SetTargetFPS(targetFPS)

	g.Start()
	for !rl.WindowShouldClose() {
		for _, cmd := range PollCommands() {
			if cmd == game.CmdQuit {
				return nil
			}
			g.Handle(cmd)
		}

		if pilot != nil {
			pilot.Drive(g)
		}
		g.Advance()

		renderer.Draw(g.Snapshot(), g.GetStateManager().GetHistory())
	}
	return nil
}
