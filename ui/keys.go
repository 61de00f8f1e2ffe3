package ui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"
)

// Action is what a key means to the picker.
type Action int

const (
	ActionNone Action = iota
	ActionInsert
	ActionDelete
	ActionUp
	ActionDown
	ActionConfirm
	ActionCancel
)

func (a Action) String() string {
	switch a {
	case ActionInsert:
		return "insert"
	case ActionDelete:
		return "delete"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Key is a classified key press. Rune is only meaningful for ActionInsert.
type Key struct {
	Action Action
	Rune   rune
}

// Insert is the key for typing r.
func Insert(r rune) Key { return Key{Action: ActionInsert, Rune: r} }

// Named keys, for callers scripting a session.
var (
	KeyDelete  = Key{Action: ActionDelete}
	KeyUp      = Key{Action: ActionUp}
	KeyDown    = Key{Action: ActionDown}
	KeyConfirm = Key{Action: ActionConfirm}
	KeyCancel  = Key{Action: ActionCancel}
)

// Type turns text into insert keys.
func Type(text string) []Key {
	out := make([]Key, 0, len(text))
	for _, r := range text {
		out = append(out, classifyRune(r))
	}
	return out
}

func classifyRune(r rune) Key {
	if unicode.IsPrint(r) {
		return Insert(r)
	}
	return Key{}
}

type keyMap struct {
	Delete  key.Binding
	Up      key.Binding
	Down    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

var keys = keyMap{
	Delete:  key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
	Up:      key.NewBinding(key.WithKeys("up", "ctrl+p")),
	Down:    key.NewBinding(key.WithKeys("down", "ctrl+n")),
	Confirm: key.NewBinding(key.WithKeys("enter")),
	Cancel:  key.NewBinding(key.WithKeys("esc", "ctrl+c")),
}

// KeysFromTea classifies a bubbletea key message. A paste arrives as one
// message carrying many runes, so the result is a batch.
func KeysFromTea(msg tea.KeyMsg) []Key {
	switch msg.Type {
	case tea.KeyRunes, tea.KeySpace:
		if msg.Alt {
			return []Key{{}}
		}
		if len(msg.Runes) == 0 {
			return []Key{Insert(' ')}
		}
		return Type(string(msg.Runes))
	}

	switch {
	case key.Matches(msg, keys.Delete):
		return []Key{KeyDelete}
	case key.Matches(msg, keys.Up):
		return []Key{KeyUp}
	case key.Matches(msg, keys.Down):
		return []Key{KeyDown}
	case key.Matches(msg, keys.Confirm):
		return []Key{KeyConfirm}
	case key.Matches(msg, keys.Cancel):
		return []Key{KeyCancel}
	}
	return []Key{{}}
}

// KeyFromTcell classifies a tcell key event.
func KeyFromTcell(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return Key{}
		}
		return classifyRune(ev.Rune())
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyDelete
	case tcell.KeyUp, tcell.KeyCtrlP:
		return KeyUp
	case tcell.KeyDown, tcell.KeyCtrlN:
		return KeyDown
	case tcell.KeyEnter:
		return KeyConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return KeyCancel
	}
	return Key{}
}
