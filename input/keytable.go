package input

import "github.com/gdamore/tcell/v2"

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows)
	Keys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Intent{
			tcell.KeyUp:    IntentMoveUp,
			tcell.KeyDown:  IntentMoveDown,
			tcell.KeyLeft:  IntentMoveLeft,
			tcell.KeyRight: IntentMoveRight,
			tcell.KeyEnter: IntentStart,
			tcell.KeyCtrlC: IntentQuit,
		},

		Runes: map[rune]Intent{
			// WASD
			'w': IntentMoveUp, 'W': IntentMoveUp,
			's': IntentMoveDown, 'S': IntentMoveDown,
			'a': IntentMoveLeft, 'A': IntentMoveLeft,
			'd': IntentMoveRight, 'D': IntentMoveRight,

			// vi motions
			'k': IntentMoveUp, 'K': IntentMoveUp,
			'j': IntentMoveDown, 'J': IntentMoveDown,
			'h': IntentMoveLeft, 'H': IntentMoveLeft,
			'l': IntentMoveRight, 'L': IntentMoveRight,

			' ': IntentStart,
			'p': IntentTogglePause, 'P': IntentTogglePause,
			'r': IntentRestart, 'R': IntentRestart,
			'i': IntentToggleAuto, 'I': IntentToggleAuto,
			'q': IntentQuit, 'Q': IntentQuit,
		},
	}
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  cloneMap(kt.Keys),
		Runes: cloneMap(kt.Runes),
	}
}

func cloneMap[K comparable](m map[K]Intent) map[K]Intent {
	c := make(map[K]Intent, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}

// Lookup resolves a key event to its intent, IntentNone if unbound
func (kt *KeyTable) Lookup(ev *tcell.EventKey) Intent {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.Keys[ev.Key()]
}
