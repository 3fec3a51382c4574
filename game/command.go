package game

import "grid-snake/game/types"

// Command is a player intent decoded from a key press
type Command int

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdTogglePause
	CmdRestart
	CmdFaster
	CmdSlower
	CmdResetSpeed
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNone:        "none",
	CmdUp:          "up",
	CmdDown:        "down",
	CmdLeft:        "left",
	CmdRight:       "right",
	CmdTogglePause: "toggle-pause",
	CmdRestart:     "restart",
	CmdFaster:      "faster",
	CmdSlower:      "slower",
	CmdResetSpeed:  "reset-speed",
	CmdQuit:        "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Direction returns the movement a command asks for, or None
func (c Command) Direction() types.Direction {
	switch c {
	case CmdUp:
		return types.Up
	case CmdDown:
		return types.Down
	case CmdLeft:
		return types.Left
	case CmdRight:
		return types.Right
	default:
		return types.None
	}
}

// Handle applies a command to the game. Quit and unknown commands are left
// to the caller and change nothing here.
func (g *Game) Handle(cmd Command) {
	switch cmd {
	case CmdUp, CmdDown, CmdLeft, CmdRight:
		g.ChangeDirection(cmd.Direction())
	case CmdTogglePause:
		g.TogglePause()
	case CmdRestart:
		g.Restart()
	case CmdFaster:
		g.SetSpeed(g.speed - types.SpeedStep)
	case CmdSlower:
		g.SetSpeed(g.speed + types.SpeedStep)
	case CmdResetSpeed:
		g.ResetSpeed()
	}
}
