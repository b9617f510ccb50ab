package dashboard

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up, Down, Left, Right key.Binding
	Select                key.Binding
	View                  key.Binding
	Join                  key.Binding
	Search                key.Binding
	Sidebar               key.Binding
	FocusSidebar          key.Binding
	ResetFilters          key.Binding
	Sort                  key.Binding
	Create                key.Binding
	Theme                 key.Binding
	Back                  key.Binding
	Help                  key.Binding
	Quit                  key.Binding

	// Wizard
	NextField, PrevField key.Binding
	NextStep, PrevStep   key.Binding
	Toggle               key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑", "up")),
		Down:         key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "left")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "right")),
		Select:       key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		View:         key.NewBinding(key.WithKeys("v", "enter"), key.WithHelp("v", "details")),
		Join:         key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "join")),
		Search:       key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sidebar:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sidebar")),
		FocusSidebar: key.NewBinding(key.WithKeys("tab", "f"), key.WithHelp("tab", "filters")),
		ResetFilters: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Sort:         key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "sort")),
		Create:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "create")),
		Theme:        key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Back:         key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		NextField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next field")),
		PrevField: key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev field")),
		NextStep:  key.NewBinding(key.WithKeys("ctrl+n", "pgdown"), key.WithHelp("ctrl+n", "next step")),
		PrevStep:  key.NewBinding(key.WithKeys("ctrl+p", "pgup"), key.WithHelp("ctrl+p", "prev step")),
		Toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.FocusSidebar, k.View, k.Join, k.Create, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.View, k.Join, k.Search, k.Create},
		{k.Sidebar, k.FocusSidebar, k.Select, k.ResetFilters, k.Sort},
		{k.Theme, k.Back, k.Help, k.Quit},
	}
}

type wizardKeys keyMap

// ShortHelp implements help.KeyMap for the wizard modal.
func (k wizardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.PrevField, k.NextStep, k.PrevStep, k.Left, k.Toggle, k.Back}
}

// FullHelp implements help.KeyMap for the wizard modal.
func (k wizardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
