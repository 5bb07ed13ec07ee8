// Package icons picks the glyphs drawn next to memos.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Memo  string
	Empty string // a memo with no content
}

var (
	nerdIcons = Icons{
		Memo:  " ", // nf-fa-file_text
		Empty: " ", // nf-fa-file_o
	}

	unicodeIcons = Icons{
		Memo:  "📝 ",
		Empty: "📄 ",
	}

	noneIcons = Icons{}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// FormatMemo prefixes a memo name with its icon.
func FormatMemo(name string, empty bool) string {
	if empty {
		return current.Empty + name
	}
	return current.Memo + name
}
