//nolint:goconst // test cases intentionally repeat strings for readability
package keymap

import (
	"slices"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want Key
		ok   bool
	}{
		{"lowercase letter", Event{Code: CodeRune, Rune: 'z'}, "z", true},
		{"uppercase letter", Event{Code: CodeRune, Rune: 'Z'}, "Z", true},
		{"digit", Event{Code: CodeRune, Rune: '7'}, "7", true},
		{"punctuation", Event{Code: CodeRune, Rune: '/'}, "/", true},
		{"less-than is named", Event{Code: CodeRune, Rune: '<'}, "<lt>", true},
		{"space rune", Event{Code: CodeRune, Rune: ' '}, "<SPACE>", true},
		{"space code", Event{Code: CodeSpace}, "<SPACE>", true},
		{"backspace", Event{Code: CodeBackspace}, "<BS>", true},
		{"tab", Event{Code: CodeTab}, "<TAB>", true},
		{"enter", Event{Code: CodeEnter}, "<ENTER>", true},
		{"escape", Event{Code: CodeEscape}, "<ESC>", true},
		{"delete", Event{Code: CodeDelete}, "<DEL>", true},
		{"shift lowercase", Event{Code: CodeRune, Rune: 'a', Mods: ModShift}, "<s-a>", true},
		{"shift uppercase has no marker", Event{Code: CodeRune, Rune: 'A', Mods: ModShift}, "A", true},
		{"shift tab", Event{Code: CodeTab, Mods: ModShift}, "<s-TAB>", true},
		{"alt letter", Event{Code: CodeRune, Rune: 'x', Mods: ModAlt}, "<a-x>", true},
		{"alt less-than", Event{Code: CodeRune, Rune: '<', Mods: ModAlt}, "<a-lt>", true},
		{"ctrl letter", Event{Code: CodeRune, Rune: 'c', Mods: ModCtrl}, "<c-c>", true},
		{"shift wins over alt and ctrl", Event{Code: CodeEnter, Mods: ModShift | ModAlt | ModCtrl}, "<s-ENTER>", true},
		{"alt wins over ctrl", Event{Code: CodeRune, Rune: 'q', Mods: ModAlt | ModCtrl}, "<a-q>", true},
		{"uppercase with shift and ctrl gets ctrl", Event{Code: CodeRune, Rune: 'Q', Mods: ModShift | ModCtrl}, "<c-Q>", true},
		{"non-ascii rune", Event{Code: CodeRune, Rune: 'é'}, "", false},
		{"control rune", Event{Code: CodeRune, Rune: '\x01'}, "", false},
		{"other code", Event{Code: CodeOther}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Translate(tt.ev)
			if ok != tt.ok {
				t.Fatalf("Translate(%+v) ok = %v, want %v", tt.ev, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("Translate(%+v) = %q, want %q", tt.ev, got, tt.want)
			}
		})
	}
}

func TestTranslate_Deterministic(t *testing.T) {
	for r := rune(' '); r <= '~'; r++ {
		for mods := Modifier(0); mods <= ModShift|ModAlt|ModCtrl; mods++ {
			ev := Event{Code: CodeRune, Rune: r, Mods: mods}
			first, ok1 := Translate(ev)
			second, ok2 := Translate(ev)
			if first != second || ok1 != ok2 {
				t.Fatalf("Translate(%+v) not deterministic: %q/%v vs %q/%v", ev, first, ok1, second, ok2)
			}
		}
	}
}

func TestTranslate_AtMostOneMarker(t *testing.T) {
	for r := rune('!'); r <= '~'; r++ {
		for mods := Modifier(0); mods <= ModShift|ModAlt|ModCtrl; mods++ {
			k, ok := Translate(Event{Code: CodeRune, Rune: r, Mods: mods})
			if !ok {
				t.Fatalf("rune %q with mods %b not translated", r, mods)
			}
			s := string(k)
			if len(s) == 1 {
				continue
			}
			inner := s[1 : len(s)-1]
			for _, p := range []string{shiftPrefix, altPrefix, ctrlPrefix} {
				if rest, found := strings.CutPrefix(inner, p); found && rest != "" {
					inner = rest
					break
				}
			}
			if !validBase(inner) {
				t.Errorf("key %q does not reduce to a base after one marker (left %q)", k, inner)
			}
			if r >= 'A' && r <= 'Z' && strings.HasPrefix(s, "<s-") {
				t.Errorf("uppercase %q got a shift marker: %q", r, k)
			}
		}
	}
}

func TestTranslate_ResultParses(t *testing.T) {
	codes := []Code{CodeBackspace, CodeTab, CodeEnter, CodeEscape, CodeSpace, CodeDelete}
	for mods := Modifier(0); mods <= ModShift|ModAlt|ModCtrl; mods++ {
		for r := rune(' '); r <= '~'; r++ {
			k, _ := Translate(Event{Code: CodeRune, Rune: r, Mods: mods})
			if _, err := ParseKey(string(k)); err != nil {
				t.Errorf("ParseKey(%q) = %v", k, err)
			}
		}
		for _, c := range codes {
			k, _ := Translate(Event{Code: c, Mods: mods})
			if _, err := ParseKey(string(k)); err != nil {
				t.Errorf("ParseKey(%q) = %v", k, err)
			}
		}
	}
}

func TestFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []Key
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}, []Key{"j"}},
		{"uppercase rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}, []Key{"G"}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}, Alt: true}, []Key{"<a-j>"}},
		{"batched runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ZZ")}, []Key{"Z", "Z"}},
		{"batched alt runes", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("dd"), Alt: true}, []Key{"<a-d>", "<a-d>"}},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, []Key{"<SPACE>"}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, []Key{"<ENTER>"}},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, []Key{"<TAB>"}},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, []Key{"<s-TAB>"}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []Key{"<ESC>"}},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, []Key{"<BS>"}},
		{"delete", tea.KeyMsg{Type: tea.KeyDelete}, []Key{"<DEL>"}},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, []Key{"<c-c>"}},
		{"ctrl+z", tea.KeyMsg{Type: tea.KeyCtrlZ}, []Key{"<c-z>"}},
		{"arrow", tea.KeyMsg{Type: tea.KeyUp}, nil},
		{"function key", tea.KeyMsg{Type: tea.KeyF1}, nil},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc"), Paste: true}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []Key
			for _, ev := range FromTea(tt.msg) {
				k, ok := Translate(ev)
				if !ok {
					t.Fatalf("Translate(%+v) failed for %v", ev, tt.msg)
				}
				got = append(got, k)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("FromTea(%v) = %q, want %q", tt.msg, got, tt.want)
			}
		})
	}
}
