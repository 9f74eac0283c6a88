package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Submit key.Binding
	Enter  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Left   key.Binding
	Right  key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// Terminals deliver ctrl+enter as ctrl+j.
var keys = keyMap{
	Submit: key.NewBinding(key.WithKeys("ctrl+j", "alt+enter", "ctrl+s"), key.WithHelp("ctrl+enter", "predict")),
	Enter:  key.NewBinding(key.WithKeys("enter")),
	Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next")),
	Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("shift+tab", "prev")),
	Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←/→", "choose")),
	Right:  key.NewBinding(key.WithKeys("right")),
	Escape: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss/reset")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

func helpLine() string {
	var s string
	for i, b := range []key.Binding{keys.Submit, keys.Next, keys.Prev, keys.Left, keys.Escape, keys.Quit} {
		if i > 0 {
			s += " • "
		}
		s += b.Help().Key + " " + b.Help().Desc
	}
	return s
}
