package game

import (
	"tile-sandbox/internal/geom"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionQuit
)

// keyToAction maps a tcell key event to an action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
	default:
		return ActionNone
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// actionToDelta converts a movement action to a unit vector.
func actionToDelta(a Action) geom.Vector {
	switch a {
	case ActionMoveN:
		return geom.Vector{X: 0, Y: -1}
	case ActionMoveS:
		return geom.Vector{X: 0, Y: 1}
	case ActionMoveE:
		return geom.Vector{X: 1, Y: 0}
	case ActionMoveW:
		return geom.Vector{X: -1, Y: 0}
	}
	return geom.Zero()
}

// HandleKey applies a key press: movement keys move the player in place,
// anything unrecognised is ignored. The resolved action is returned so the
// caller can act on ActionQuit.
func (g *GameState) HandleKey(ev *tcell.EventKey) Action {
	action := keyToAction(ev)
	if d := actionToDelta(action); d != geom.Zero() {
		g.player.Pos.Add(d)
	}
	return action
}
