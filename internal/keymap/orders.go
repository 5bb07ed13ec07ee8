package keymap

// Order is an application command resolved from a fully typed keymap.
type Order string

const (
	// Global orders
	OrderExit    Order = "exit"
	OrderRefresh Order = "refresh" // reload every memo whose file changed
	OrderHelp    Order = "help"    // show the binding table

	// Cursor movement
	OrderCursorDown   Order = "cursor_down"
	OrderCursorUp     Order = "cursor_up"
	OrderCursorTop    Order = "cursor_top"
	OrderCursorBottom Order = "cursor_bottom"

	// Memo actions
	OrderEdit   Order = "edit"   // open the selected memo in $EDITOR
	OrderNew    Order = "new"    // prompt for a name and create an empty memo
	OrderDelete Order = "delete" // remove the selected memo and its file
)

// Orders lists every order in display order.
var Orders = []Order{
	OrderExit,
	OrderRefresh,
	OrderHelp,
	OrderCursorDown,
	OrderCursorUp,
	OrderCursorTop,
	OrderCursorBottom,
	OrderEdit,
	OrderNew,
	OrderDelete,
}

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	for _, known := range Orders {
		if o == known {
			return true
		}
	}
	return false
}
