// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette for the viewer. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Cursor row in the list when the record under it is not yet
	// selected (fresh load, nothing chosen).
	CursorForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// FocusAccent marks the focused pane: scrollbar thumb, region
	// border, field title.
	FocusAccent lipgloss.Color

	// FieldTitle is the label shown above each detail region.
	FieldTitle lipgloss.Color

	// Status bar notices.
	ErrorForeground  lipgloss.Color
	NoticeForeground lipgloss.Color

	// Modal dialogs.
	ModalForeground lipgloss.Color
	ModalBackground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),
	CursorForeground:   lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	FocusAccent: lipgloss.Color("220"), // yellow/amber
	FieldTitle:  lipgloss.Color("75"),  // blue

	ErrorForeground:  lipgloss.Color("196"), // red
	NoticeForeground: lipgloss.Color("114"), // green

	ModalForeground: lipgloss.Color("252"),
	ModalBackground: lipgloss.Color("237"), // slightly lighter than terminal background
}
