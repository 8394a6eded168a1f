package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding; pages enable the subset that applies to them
type keyMap struct {
	signIn      key.Binding
	cancel      key.Binding
	removeLocal key.Binding
	openMap     key.Binding
	closeMap    key.Binding
	prev        key.Binding
	next        key.Binding
	quit        key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		signIn: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter", "Sign in"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel sign-in"),
		),
		removeLocal: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Remove local store"),
		),
		openMap: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "Open map"),
		),
		closeMap: key.NewBinding(
			key.WithKeys("esc", " "),
			key.WithHelp("esc/click map", "Close map"),
		),
		prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "Previous"),
		),
		next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "Next"),
		),
		quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// pageKeys adapts the bindings of one page to help.KeyMap
type pageKeys []key.Binding

func (p pageKeys) ShortHelp() []key.Binding {
	return p
}

func (p pageKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{p}
}
