package term

import (
	"unicode"

	"grid-snake/game"

	"github.com/gdamore/tcell/v2"
)

var keyCommands = map[tcell.Key]game.Command{
	tcell.KeyUp:     game.CmdUp,
	tcell.KeyDown:   game.CmdDown,
	tcell.KeyLeft:   game.CmdLeft,
	tcell.KeyRight:  game.CmdRight,
	tcell.KeyEnter:  game.CmdRestart,
	tcell.KeyEscape: game.CmdQuit,
	tcell.KeyCtrlC:  game.CmdQuit,
}

var runeCommands = map[rune]game.Command{
	'w': game.CmdUp,
	's': game.CmdDown,
	'a': game.CmdLeft,
	'd': game.CmdRight,
	' ': game.CmdTogglePause,
	'r': game.CmdRestart,
	'+': game.CmdFaster,
	'=': game.CmdFaster,
	'-': game.CmdSlower,
	'0': game.CmdResetSpeed,
	'q': game.CmdQuit,
}

// CommandForEvent maps a key event to a command. Unbound keys give CmdNone.
func CommandForEvent(ev *tcell.EventKey) game.Command {
	if ev.Key() == tcell.KeyRune {
		return runeCommands[unicode.ToLower(ev.Rune())]
	}
	return keyCommands[ev.Key()]
}
