package keymap

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownOrder is returned when a binding names an order that does not exist.
var ErrUnknownOrder = errors.New("unknown order")

// Binding ties one order to the keymaps that trigger it.
type Binding struct {
	Order       Order
	Keys        []string
	Description string
}

// Bindings is the default binding table.
var Bindings = []Binding{
	{OrderExit, []string{"ZZ", "<c-c>"}, "Quit"},
	{OrderRefresh, []string{"gr"}, "Reload changed memos"},
	{OrderHelp, []string{"?"}, "Show key bindings"},
	{OrderCursorDown, []string{"j"}, "Move down"},
	{OrderCursorUp, []string{"k"}, "Move up"},
	{OrderCursorTop, []string{"gg"}, "First memo"},
	{OrderCursorBottom, []string{"G"}, "Last memo"},
	{OrderEdit, []string{"<ENTER>", "e"}, "Edit memo"},
	{OrderNew, []string{"o"}, "New memo"},
	{OrderDelete, []string{"dd"}, "Delete memo"},
}

// WithOverrides returns a copy of bindings where every order present in
// overrides has its keys replaced. Override keys are order names.
func WithOverrides(bindings []Binding, overrides map[string][]string) ([]Binding, error) {
	names := make([]string, 0, len(overrides))
	for name := range overrides {
		if !Order(name).Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, name)
		}
		names = append(names, name)
	}
	sort.Strings(names)

	result := make([]Binding, len(bindings))
	copy(result, bindings)
	for _, name := range names {
		keys := overrides[name]
		found := false
		for i := range result {
			if result[i].Order == Order(name) {
				result[i].Keys = keys
				found = true
			}
		}
		if !found {
			result = append(result, Binding{Order: Order(name), Keys: keys, Description: name})
		}
	}
	return result, nil
}

// Table is the immutable keymap to order lookup used by the matcher.
type Table struct {
	orders       map[string]Order   // keymap string -> order
	keymaps      []Keymap           // every bound keymap, in binding order
	byAction     map[Order][]string // order -> keys (for help)
	descriptions map[Order]string
}

// NewTable parses every binding. A malformed keymap, an unknown order or a
// keymap bound to two orders is an error.
func NewTable(bindings []Binding) (*Table, error) {
	t := &Table{
		orders:       make(map[string]Order),
		byAction:     make(map[Order][]string),
		descriptions: make(map[Order]string),
	}
	for _, b := range bindings {
		if !b.Order.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOrder, b.Order)
		}
		if b.Description != "" {
			t.descriptions[b.Order] = b.Description
		}
		for _, raw := range b.Keys {
			km, err := ParseKeymap(raw)
			if err != nil {
				return nil, fmt.Errorf("binding for %s: %w", b.Order, err)
			}
			key := km.String()
			if prev, ok := t.orders[key]; ok {
				if prev == b.Order {
					continue
				}
				return nil, fmt.Errorf("%w: %s bound to both %s and %s", ErrMalformedKeymap, key, prev, b.Order)
			}
			t.orders[key] = b.Order
			t.keymaps = append(t.keymaps, km)
			t.byAction[b.Order] = append(t.byAction[b.Order], key)
		}
	}
	return t, nil
}

// Lookup returns the order bound to exactly km.
func (t *Table) Lookup(km Keymap) (Order, bool) {
	o, ok := t.orders[km.String()]
	return o, ok
}

// Keymaps returns every bound keymap.
func (t *Table) Keymaps() []Keymap {
	return t.keymaps
}

// KeysFor returns the keymaps bound to an order (for help).
func (t *Table) KeysFor(o Order) []string {
	return t.byAction[o]
}

// Description returns what an order does, falling back to its name.
func (t *Table) Description(o Order) string {
	if d, ok := t.descriptions[o]; ok {
		return d
	}
	return string(o)
}

// Shadowed returns pairs of bound keymaps where the first is a strict prefix
// of the second. The longer keymap can never fire, because the matcher
// resolves the shortest match first.
func (t *Table) Shadowed() [][2]Keymap {
	var pairs [][2]Keymap
	for _, short := range t.keymaps {
		for _, long := range t.keymaps {
			if len(long) > len(short) && long.HasPrefix(short) {
				pairs = append(pairs, [2]Keymap{short, long})
			}
		}
	}
	return pairs
}
