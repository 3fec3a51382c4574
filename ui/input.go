package ui

import (
	"grid-snake/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var keyCommands = map[int32]game.Command{
	rl.KeyUp:         game.CmdUp,
	rl.KeyW:          game.CmdUp,
	rl.KeyDown:       game.CmdDown,
	rl.KeyS:          game.CmdDown,
	rl.KeyLeft:       game.CmdLeft,
	rl.KeyA:          game.CmdLeft,
	rl.KeyRight:      game.CmdRight,
	rl.KeyD:          game.CmdRight,
	rl.KeySpace:      game.CmdTogglePause,
	rl.KeyR:          game.CmdRestart,
	rl.KeyEnter:      game.CmdRestart,
	rl.KeyEqual:      game.CmdFaster, // '+' shares the key with '='
	rl.KeyKpAdd:      game.CmdFaster,
	rl.KeyMinus:      game.CmdSlower,
	rl.KeyKpSubtract: game.CmdSlower,
	rl.KeyZero:       game.CmdResetSpeed,
	rl.KeyEscape:     game.CmdQuit,
	rl.KeyQ:          game.CmdQuit,
}

// CommandForKey maps a raylib key code to a command. Unbound keys give CmdNone.
func CommandForKey(key int32) game.Command {
	return keyCommands[key]
}

// PollCommands drains the keys pressed since the last frame
func PollCommands() []game.Command {
	var cmds []game.Command
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if cmd := CommandForKey(key); cmd != game.CmdNone {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}
