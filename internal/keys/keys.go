package keys

import (
	tea "charm.land/bubbletea/v2"
)

// Key is a single key press reduced to the parts the handlers need: the
// keystroke name used for binding lookups and any literal text it produced.
type Key struct {
	Name string
	Text string
}

// FromKeyPress converts a Bubble Tea key press into a Key.
func FromKeyPress(msg tea.KeyPressMsg) Key {
	return Key{Name: msg.String(), Text: msg.Text}
}

// Named builds a key that carries no text, such as "enter" or "up".
func Named(name string) Key {
	return Key{Name: name}
}

// Char builds a printable key.
func Char(text string) Key {
	return Key{Name: text, Text: text}
}

func (k Key) String() string {
	return k.Name
}

// IsChar reports whether the key produced printable text.
func (k Key) IsChar() bool {
	return k.Text != ""
}
