package keys

import "charm.land/bubbles/v2/key"

// Binding pairs a bubbles key binding with its primary key. Alternate keys
// only match while text input is not focused.
type Binding struct {
	key.Binding
	primary string
}

func newBinding(primary, alt, helpKey, desc string) Binding {
	keys := []string{primary}
	if alt != "" {
		keys = append(keys, alt)
	}
	return Binding{
		Binding: key.NewBinding(key.WithKeys(keys...), key.WithHelp(helpKey, desc)),
		primary: primary,
	}
}

// Primary returns the main key of the binding.
func (b Binding) Primary() string {
	return b.primary
}

// Matches reports whether k triggers the binding.
func (b Binding) Matches(k Key, ignoreSpecialKeys bool) bool {
	if k.Name == b.primary {
		return true
	}
	if ignoreSpecialKeys {
		return false
	}
	return key.Matches(k, b.Binding)
}

// KeyMap is the static binding table shared by every handler.
type KeyMap struct {
	Up               Binding
	Down             Binding
	Left             Binding
	Right            Binding
	PgUp             Binding
	PgDown           Binding
	Home             Binding
	End              Binding
	Backspace        Binding
	Delete           Binding
	Submit           Binding
	Confirm          Binding
	Esc              Binding
	Quit             Binding
	Help             Binding
	NextServarr      Binding
	PreviousServarr  Binding
	Add              Binding
	Edit             Binding
	Sort             Binding
	Filter           Binding
	Search           Binding
	Refresh          Binding
	Update           Binding
	AutoSearch       Binding
	Settings         Binding
	Test             Binding
	TestAll          Binding
	Events           Binding
	Tasks            Binding
	Logs             Binding
	Clear            Binding
	ToggleMonitoring Binding
}

// Default is the binding table used by the application.
var Default = newKeyMap()

func newKeyMap() KeyMap {
	return KeyMap{
		Up:               newBinding("up", "k", "↑/k", "up"),
		Down:             newBinding("down", "j", "↓/j", "down"),
		Left:             newBinding("left", "h", "←/h", "left"),
		Right:            newBinding("right", "l", "→/l", "right"),
		PgUp:             newBinding("pgup", "ctrl+u", "pgup", "page up"),
		PgDown:           newBinding("pgdown", "ctrl+d", "pgdown", "page down"),
		Home:             newBinding("home", "", "home", "scroll to top"),
		End:              newBinding("end", "", "end", "scroll to bottom"),
		Backspace:        newBinding("backspace", "ctrl+h", "backspace", "backspace"),
		Delete:           newBinding("delete", "", "del", "delete selected item"),
		Submit:           newBinding("enter", "", "enter", "submit"),
		Confirm:          newBinding("ctrl+s", "", "ctrl+s", "confirm"),
		Esc:              newBinding("esc", "", "esc", "close/back"),
		Quit:             newBinding("q", "ctrl+c", "q", "quit"),
		Help:             newBinding("?", "", "?", "show/hide keybindings"),
		NextServarr:      newBinding("tab", "", "tab", "next servarr"),
		PreviousServarr:  newBinding("shift+tab", "", "shift+tab", "previous servarr"),
		Add:              newBinding("a", "", "a", "add"),
		Edit:             newBinding("e", "", "e", "edit"),
		Sort:             newBinding("o", "", "o", "sort"),
		Filter:           newBinding("f", "", "f", "filter"),
		Search:           newBinding("/", "", "/", "search"),
		Refresh:          newBinding("ctrl+r", "", "ctrl+r", "refresh"),
		Update:           newBinding("u", "", "u", "update"),
		AutoSearch:       newBinding("S", "", "S", "auto search"),
		Settings:         newBinding("s", "", "s", "settings"),
		Test:             newBinding("t", "", "t", "test"),
		TestAll:          newBinding("T", "", "T", "test all"),
		Events:           newBinding("e", "", "e", "events"),
		Tasks:            newBinding("t", "", "t", "tasks"),
		Logs:             newBinding("L", "", "L", "logs"),
		Clear:            newBinding("c", "", "c", "clear"),
		ToggleMonitoring: newBinding("m", "", "m", "toggle monitoring"),
	}
}

// All returns every binding in help-table order.
func (k KeyMap) All() []Binding {
	return []Binding{
		k.Up, k.Down, k.Left, k.Right, k.PgUp, k.PgDown, k.Home, k.End,
		k.Backspace, k.Delete, k.Submit, k.Confirm, k.Esc, k.Quit, k.Help,
		k.NextServarr, k.PreviousServarr, k.Add, k.Edit, k.Sort, k.Filter,
		k.Search, k.Refresh, k.Update, k.AutoSearch, k.Settings, k.Test,
		k.TestAll, k.Events, k.Tasks, k.Logs, k.Clear, k.ToggleMonitoring,
	}
}

// ShortHelp satisfies help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextServarr.Binding, k.Help.Binding, k.Quit.Binding}
}

// FullHelp satisfies help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	all := k.All()
	out := make([]key.Binding, 0, len(all))
	for _, b := range all {
		out = append(out, b.Binding)
	}
	return [][]key.Binding{out}
}

// HelpEntry is one row of the key-mapping table.
type HelpEntry struct {
	Key  string
	Desc string
}

// HelpEntries lists every binding for the key-mapping popup.
func (k KeyMap) HelpEntries() []HelpEntry {
	all := k.All()
	entries := make([]HelpEntry, 0, len(all))
	for _, b := range all {
		h := b.Help()
		entries = append(entries, HelpEntry{Key: h.Key, Desc: h.Desc})
	}
	return entries
}
