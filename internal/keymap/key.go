package keymap

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key is the canonical token for one keypress plus modifiers, e.g. "j", "G",
// "<ENTER>", "<c-x>" or "<a-lt>".
type Key string

// Code identifies the physical key of an Event.
type Code int

const (
	CodeOther Code = iota
	CodeRune
	CodeBackspace
	CodeTab
	CodeEnter
	CodeEscape
	CodeSpace
	CodeDelete
)

// Modifier is a bitset of held modifier keys.
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModAlt
	ModCtrl
)

// Has reports whether all bits of o are set in m.
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// Event is a raw key event as read from the terminal.
type Event struct {
	Code Code
	Rune rune // only meaningful for CodeRune
	Mods Modifier
}

// Modifier markers applied by Translate.
const (
	shiftPrefix = "s-"
	altPrefix   = "a-"
	ctrlPrefix  = "c-"
)

var namedCodes = map[Code]string{
	CodeBackspace: "BS",
	CodeTab:       "TAB",
	CodeEnter:     "ENTER",
	CodeEscape:    "ESC",
	CodeSpace:     "SPACE",
	CodeDelete:    "DEL",
}

// Translate maps a raw event to its canonical Key. Events outside the
// supported set (arrows, function keys, non-ASCII runes) return false.
func Translate(ev Event) (Key, bool) {
	base, ok := baseToken(ev)
	if !ok {
		return "", false
	}

	// Uppercase letters already carry shift, so they never get the marker.
	// Combined modifiers collapse to one marker: shift, then alt, then ctrl.
	token := base
	switch {
	case !isUpperLetter(base) && ev.Mods.Has(ModShift):
		token = shiftPrefix + base
	case ev.Mods.Has(ModAlt):
		token = altPrefix + base
	case ev.Mods.Has(ModCtrl):
		token = ctrlPrefix + base
	}

	if len(token) > 1 {
		token = "<" + token + ">"
	}
	return Key(token), true
}

func baseToken(ev Event) (string, bool) {
	if ev.Code != CodeRune {
		name, ok := namedCodes[ev.Code]
		return name, ok
	}
	switch r := ev.Rune; {
	case r == ' ':
		return "SPACE", true
	case r == '<':
		return "lt", true
	case r > ' ' && r <= '~':
		return string(r), true
	default:
		return "", false
	}
}

func isUpperLetter(s string) bool {
	return len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z'
}

// FromTea converts a bubbletea key message into raw Events. The terminal
// reader reports runes that arrive together, such as fast typing or key
// repeat, as one message, so a rune message yields one Event per rune.
// Pastes and keys with no Event representation yield nothing.
func FromTea(msg tea.KeyMsg) []Event {
	var mods Modifier
	if msg.Alt {
		mods |= ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if msg.Paste {
			return nil
		}
		events := make([]Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, Event{Code: CodeRune, Rune: r, Mods: mods})
		}
		return events
	case tea.KeySpace:
		return []Event{{Code: CodeSpace, Mods: mods}}
	case tea.KeyBackspace:
		return []Event{{Code: CodeBackspace, Mods: mods}}
	case tea.KeyTab:
		return []Event{{Code: CodeTab, Mods: mods}}
	case tea.KeyShiftTab:
		return []Event{{Code: CodeTab, Mods: mods | ModShift}}
	case tea.KeyEnter:
		return []Event{{Code: CodeEnter, Mods: mods}}
	case tea.KeyEsc:
		return []Event{{Code: CodeEscape, Mods: mods}}
	case tea.KeyDelete:
		return []Event{{Code: CodeDelete, Mods: mods}}
	}

	// ctrl+i, ctrl+m and ctrl+[ share their codes with tab, enter and esc
	// and were handled above.
	if msg.Type < tea.KeyCtrlA || msg.Type > tea.KeyCtrlZ {
		return nil
	}
	return []Event{{
		Code: CodeRune,
		Rune: 'a' + rune(msg.Type-tea.KeyCtrlA),
		Mods: mods | ModCtrl,
	}}
}
