package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	esc      key.Binding
	tab      key.Binding
	quit     key.Binding
	notes    key.Binding
	reminder key.Binding
	delete   key.Binding
	planner  key.Binding
	version  key.Binding
	copy     key.Binding
	refresh  key.Binding
	save     key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	enter:    key.NewBinding(key.WithKeys("enter")),
	esc:      key.NewBinding(key.WithKeys("esc")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	notes:    key.NewBinding(key.WithKeys("e")),
	reminder: key.NewBinding(key.WithKeys("r")),
	delete:   key.NewBinding(key.WithKeys("d")),
	planner:  key.NewBinding(key.WithKeys("p")),
	version:  key.NewBinding(key.WithKeys("v")),
	copy:     key.NewBinding(key.WithKeys("c")),
	refresh:  key.NewBinding(key.WithKeys("s")),
	save:     key.NewBinding(key.WithKeys("ctrl+s")),
}
