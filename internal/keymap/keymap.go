// Package keymap turns raw keypresses into application orders: it translates
// key events into canonical keys and matches typed key sequences against a
// table of bound keymaps.
package keymap

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMalformedKeymap is returned when a keymap string cannot be parsed.
var ErrMalformedKeymap = errors.New("malformed keymap")

// Keymap is a non-empty sequence of keys bound to one order.
type Keymap []Key

// String concatenates the keys. Multi-character keys are bracketed, so the
// result is unambiguous and can be used as a lookup key.
func (km Keymap) String() string {
	var sb strings.Builder
	for _, k := range km {
		sb.WriteString(string(k))
	}
	return sb.String()
}

// Equal reports whether both keymaps hold the same keys in the same order.
func (km Keymap) Equal(other Keymap) bool {
	return slices.Equal(km, other)
}

// Clone returns a copy of km.
func (km Keymap) Clone() Keymap {
	return slices.Clone(km)
}

// HasPrefix reports whether km starts with prefix.
func (km Keymap) HasPrefix(prefix Keymap) bool {
	if len(prefix) > len(km) {
		return false
	}
	return slices.Equal(km[:len(prefix)], prefix)
}

// ParseKeymap parses a keymap written the way keys render, e.g. "ZZ",
// "gr" or "<c-x>s".
func ParseKeymap(s string) (Keymap, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrMalformedKeymap)
	}

	var km Keymap
	for rest := s; rest != ""; {
		var token string
		if rest[0] == '<' {
			end := closingBracket(rest)
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated '<' in %q", ErrMalformedKeymap, s)
			}
			token, rest = rest[:end+1], rest[end+1:]
		} else {
			token, rest = rest[:1], rest[1:]
		}

		key, err := ParseKey(token)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", s, err)
		}
		km = append(km, key)
	}
	return km, nil
}

// MustParseKeymap is like ParseKeymap but panics on error. Only for tests and
// literals known to be valid.
func MustParseKeymap(s string) Keymap {
	km, err := ParseKeymap(s)
	if err != nil {
		panic(err)
	}
	return km
}

// ParseKey validates a single key token. Only tokens that Translate can
// produce are accepted.
func ParseKey(token string) (Key, error) {
	if len(token) == 1 {
		c := token[0]
		if c > ' ' && c <= '~' && c != '<' {
			return Key(token), nil
		}
		return "", fmt.Errorf("%w: invalid key %q", ErrMalformedKeymap, token)
	}

	inner, ok := strings.CutPrefix(token, "<")
	if ok {
		inner, ok = strings.CutSuffix(inner, ">")
	}
	if !ok || inner == "" {
		return "", fmt.Errorf("%w: invalid key %q", ErrMalformedKeymap, token)
	}

	base := inner
	prefix := ""
	for _, p := range []string{shiftPrefix, altPrefix, ctrlPrefix} {
		if b, found := strings.CutPrefix(inner, p); found && b != "" {
			prefix, base = p, b
			break
		}
	}

	if !validBase(base) {
		return "", fmt.Errorf("%w: unknown key name %q", ErrMalformedKeymap, token)
	}
	if prefix == "" && len(base) == 1 {
		// single characters are never bracketed
		return "", fmt.Errorf("%w: invalid key %q", ErrMalformedKeymap, token)
	}
	if prefix == shiftPrefix && isUpperLetter(base) {
		return "", fmt.Errorf("%w: shift marker on uppercase letter %q", ErrMalformedKeymap, token)
	}
	return Key(token), nil
}

// closingBracket returns the index of the '>' closing the bracketed key at
// the start of s. The base always holds at least one character, so "<a->>"
// is alt plus '>'.
func closingBracket(s string) int {
	start := 1
	for _, p := range []string{shiftPrefix, altPrefix, ctrlPrefix} {
		if strings.HasPrefix(s[1:], p) {
			start += len(p)
			break
		}
	}
	if start+1 > len(s) {
		return -1
	}
	end := strings.IndexByte(s[start+1:], '>')
	if end < 0 {
		return -1
	}
	return start + 1 + end
}

func validBase(base string) bool {
	if len(base) == 1 {
		c := base[0]
		return c > ' ' && c <= '~' && c != '<'
	}
	if base == "lt" {
		return true
	}
	for _, name := range namedCodes {
		if base == name {
			return true
		}
	}
	return false
}
