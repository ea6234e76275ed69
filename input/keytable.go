package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Tab, Ctrl+*, Esc)
	Keys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:    ActionRotateLeft,
			tcell.KeyRight:   ActionRotateRight,
			tcell.KeyUp:      ActionRotateUp,
			tcell.KeyDown:    ActionRotateDown,
			tcell.KeyTab:     ActionSelectNext,
			tcell.KeyBacktab: ActionSelectPrev,
			tcell.KeyEnter:   ActionFire,
			tcell.KeyEscape:  ActionQuit,
			tcell.KeyCtrlC:   ActionQuit,
			tcell.KeyCtrlQ:   ActionQuit,
		},
		Runes: map[rune]Action{
			'a': ActionRotateLeft,
			'd': ActionRotateRight,
			'w': ActionRotateUp,
			's': ActionRotateDown,
			'e': ActionSelectNext,
			'q': ActionSelectPrev,
			' ': ActionFire,
			'h': ActionFire,
			'+': ActionMoveForward,
			'=': ActionMoveForward,
			'-': ActionMoveBack,
			'b': ActionCycleBlend,
			'r': ActionRestart,
			'x': ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  maps.Clone(kt.Keys),
		Runes: maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event to its action
// Ctrl+letter may arrive as a rune with ModCtrl and resolves to the Ctrl key binding
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Action {
	if ev.Key() != tcell.KeyRune {
		return kt.Keys[ev.Key()]
	}

	r := ev.Rune()
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		if r >= 'a' && r <= 'z' {
			return kt.Keys[tcell.KeyCtrlA+tcell.Key(r-'a')]
		}
	}
	return kt.Runes[r]
}

// unbind removes every binding of an action
func (kt *KeyTable) unbind(a Action) {
	maps.DeleteFunc(kt.Keys, func(_ tcell.Key, v Action) bool { return v == a })
	maps.DeleteFunc(kt.Runes, func(_ rune, v Action) bool { return v == a })
}
