package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up       key.Binding
	down     key.Binding
	tab      key.Binding
	quit     key.Binding
	sync     key.Binding
	reload   key.Binding
	like     key.Binding
	favorite key.Binding
	info     key.Binding
	esc      key.Binding
}

var keys = keyMap{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	tab:      key.NewBinding(key.WithKeys("tab")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c")),
	sync:     key.NewBinding(key.WithKeys("s")),
	reload:   key.NewBinding(key.WithKeys("r")),
	like:     key.NewBinding(key.WithKeys("l")),
	favorite: key.NewBinding(key.WithKeys("f")),
	info:     key.NewBinding(key.WithKeys("i")),
	esc:      key.NewBinding(key.WithKeys("esc")),
}
