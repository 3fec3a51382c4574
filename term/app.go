package term

import (
	"fmt"
	"time"

	"grid-snake/ai"
	"grid-snake/game"

	"github.com/gdamore/tcell/v2"
)

const frameInterval = 16 * time.Millisecond // ~60 FPS

// Run plays g on the terminal until Quit is pressed. When pilot is non-nil
// it steers instead of the keyboard arrows.
func Run(g *game.Game, pilot *ai.Autopilot) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	renderer := NewRenderer(screen, g.Grid)

	// PollEvent blocks, so it gets its own goroutine; the game stays on this one
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	g.Start()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				cmd := CommandForEvent(ev)
				if cmd == game.CmdQuit {
					return nil
				}
				g.Handle(cmd)
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			if pilot != nil {
				pilot.Drive(g)
			}
			g.Advance()
			renderer.Draw(g.Snapshot())
		}
	}
}
