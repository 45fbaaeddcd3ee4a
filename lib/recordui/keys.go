// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the record browser.
type KeyMap struct {
	// Navigation. In the list these move the selection; in the raw
	// view they scroll.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Focus cycling: list, then each field region, then back.
	FocusNext     key.Binding
	FocusPrevious key.Binding

	// Back returns focus to the list, or cancels an in-flight load
	// when the list already has focus.
	Back key.Binding

	// Splitter resize.
	SplitGrow   key.Binding
	SplitShrink key.Binding

	Open   key.Binding
	Reload key.Binding

	// RawToggle switches the detail pane between the field regions
	// and the highlighted JSON of the whole record.
	RawToggle key.Binding

	// Copy works outside the field regions. CopyField is the variant
	// usable while a field region has focus, where plain letters are
	// text input.
	Copy      key.Binding
	CopyField key.Binding

	Dismiss key.Binding // Closes the error dialog.

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style navigation
// (j/k) alongside standard arrow keys and page up/down.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next region"),
	),
	FocusPrevious: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "prev region"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "list/cancel"),
	),
	SplitGrow: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "grow list"),
	),
	SplitShrink: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "shrink list"),
	),
	Open: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "open"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload"),
	),
	RawToggle: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "raw"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	CopyField: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("C-y", "copy field"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("enter", "esc"),
		key.WithHelp("Enter/Esc", "dismiss"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp implements help.KeyMap for the status bar.
func (keys KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		keys.Quit,
		keys.Open,
		keys.Down,
		keys.FocusNext,
		keys.RawToggle,
		keys.Copy,
		keys.Reload,
	}
}

// FullHelp implements help.KeyMap.
func (keys KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Up, keys.Down, keys.PageUp, keys.PageDown, keys.Home, keys.End},
		{keys.FocusNext, keys.FocusPrevious, keys.Back, keys.SplitGrow, keys.SplitShrink},
		{keys.Open, keys.Reload, keys.RawToggle, keys.Copy, keys.CopyField, keys.Quit},
	}
}

// fieldHelp is the binding subset shown while a field region has
// focus, where letter keys are text input.
func (keys KeyMap) fieldHelp() []key.Binding {
	return []key.Binding{
		keys.FocusNext,
		keys.FocusPrevious,
		keys.Back,
		keys.CopyField,
	}
}
