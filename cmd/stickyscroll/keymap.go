// SPDX-License-Identifier: Unlicense OR MIT

package main

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the demo keybindings.
type keyMap struct {
	Sticky key.Binding
	Sync   key.Binding
	Up     key.Binding
	Down   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Sticky: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "toggle header")),
		Sync:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "sync lists")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("k/↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("j/↓", "down")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Sticky, k.Sync, k.Up, k.Down, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
