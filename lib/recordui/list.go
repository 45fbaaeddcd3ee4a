// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/jsonl-viewer/lib/tui"
)

// ListRenderer draws label rows within a fixed width. Each row is a
// right-aligned 1-based position column followed by the label:
//
//	   1 task-001
//	   2 Task 2
//	  10 build-cache-eviction
type ListRenderer struct {
	theme       tui.Theme
	width       int
	numberWidth int
}

// NewListRenderer creates a ListRenderer for a list of total rows
// rendered at the given width. The position column is sized for the
// largest position so labels align.
func NewListRenderer(theme tui.Theme, width, total int) ListRenderer {
	return ListRenderer{
		theme:       theme,
		width:       width,
		numberWidth: len(strconv.Itoa(max(total, 1))),
	}
}

// rowFlattener folds control whitespace so a label always occupies
// exactly one row. The stored label is unchanged.
var rowFlattener = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ", "\t", " ")

// RenderRow renders the label at the given position. Selected rows
// get the highlight background; the focused flag adds the cursor
// marker so the user can tell which pane receives navigation keys.
func (renderer ListRenderer) RenderRow(position int, label string, selected, focused bool) string {
	number := strconv.Itoa(position + 1)
	number = strings.Repeat(" ", renderer.numberWidth-len(number)) + number

	marker := " "
	if selected && focused {
		marker = "▸"
	}

	labelWidth := renderer.width - renderer.numberWidth - 3
	if labelWidth < 1 {
		labelWidth = 1
	}
	text := rowFlattener.Replace(label)
	if lipgloss.Width(text) > labelWidth {
		text = truncateString(text, labelWidth-1) + "…"
	}

	if selected {
		baseStyle := lipgloss.NewStyle().
			Background(renderer.theme.SelectedBackground).
			Foreground(renderer.theme.SelectedForeground)
		markerStyle := baseStyle.Foreground(renderer.theme.FocusAccent).Bold(true)
		row := markerStyle.Render(marker) +
			baseStyle.Render(number+" ") +
			baseStyle.Bold(true).Render(text)
		return baseStyle.Width(renderer.width).MaxWidth(renderer.width).Render(row)
	}

	numberStyle := lipgloss.NewStyle().Foreground(renderer.theme.FaintText)
	labelStyle := lipgloss.NewStyle().Foreground(renderer.theme.NormalText)
	row := marker + numberStyle.Render(number+" ") + labelStyle.Render(text)
	return lipgloss.NewStyle().Width(renderer.width).MaxWidth(renderer.width).Render(row)
}

// RenderMessage renders a faint notice in place of the list rows,
// wrapped to the list width.
func (renderer ListRenderer) RenderMessage(text string) string {
	return lipgloss.NewStyle().
		Foreground(renderer.theme.FaintText).
		Width(renderer.width).
		Padding(1, 1).
		Render(text)
}

// truncateString truncates a string to maxWidth visual characters.
// Handles multi-byte characters correctly via lipgloss width
// measurement.
func truncateString(text string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	runes := []rune(text)
	for length := len(runes) - 1; length >= 0; length-- {
		candidate := string(runes[:length])
		if lipgloss.Width(candidate) <= maxWidth {
			return candidate
		}
	}
	return ""
}
