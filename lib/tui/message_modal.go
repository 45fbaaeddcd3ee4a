// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// MessageModal is a centered dialog showing a title and a wrapped
// message, dismissed by the owning model (typically on Enter or Esc).
// It holds no input state.
type MessageModal struct {
	Title   string
	Message string
	Footer  string
	theme   Theme

	// Error dialogs use the error color for the title.
	isError bool
}

// NewErrorModal creates a modal for reporting a failed operation.
func NewErrorModal(title, message string, theme Theme) MessageModal {
	return MessageModal{
		Title:   title,
		Message: message,
		Footer:  "Enter/Esc dismiss",
		theme:   theme,
		isError: true,
	}
}

// Modal chrome overhead: 2 columns border + 2 columns padding
// horizontally; 2 lines border + title + blank + footer vertically.
const (
	messageModalChromeWidth  = 4
	messageModalChromeHeight = 5
	messageModalMaxInner     = 72
	messageModalMinInner     = 20
	messageModalMargin       = 2
)

// Render produces the modal lines and the anchor position (top-left
// corner in screen coordinates) for [SpliceOverlay].
func (modal MessageModal) Render(screenWidth, screenHeight int) ([]string, int, int) {
	innerWidth := screenWidth - messageModalMargin*2 - messageModalChromeWidth
	if innerWidth > messageModalMaxInner {
		innerWidth = messageModalMaxInner
	}
	if innerWidth < messageModalMinInner {
		innerWidth = messageModalMinInner
	}

	backgroundStyle := lipgloss.NewStyle().
		Background(modal.theme.ModalBackground)

	titleColor := modal.theme.HeaderForeground
	if modal.isError {
		titleColor = modal.theme.ErrorForeground
	}
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(titleColor).
		Background(modal.theme.ModalBackground)

	textStyle := lipgloss.NewStyle().
		Foreground(modal.theme.ModalForeground).
		Background(modal.theme.ModalBackground)

	footerStyle := lipgloss.NewStyle().
		Foreground(modal.theme.FaintText).
		Background(modal.theme.ModalBackground)

	// Body lines are capped so the dialog always fits on screen; the
	// tail of a very long message is elided.
	maxBodyLines := screenHeight - messageModalMargin*2 - messageModalChromeHeight
	if maxBodyLines < 1 {
		maxBodyLines = 1
	}
	bodyLines := strings.Split(ansi.Wrap(modal.Message, innerWidth, ""), "\n")
	if len(bodyLines) > maxBodyLines {
		bodyLines = bodyLines[:maxBodyLines]
		last := ansi.Truncate(bodyLines[maxBodyLines-1], innerWidth-1, "")
		bodyLines[maxBodyLines-1] = last + "…"
	}

	var lines []string
	lines = append(lines, PadLine(titleStyle.Render(ansi.Truncate(modal.Title, innerWidth, "…")), innerWidth, backgroundStyle))
	lines = append(lines, backgroundStyle.Render(strings.Repeat(" ", innerWidth)))
	for _, line := range bodyLines {
		lines = append(lines, PadLine(textStyle.Render(line), innerWidth, backgroundStyle))
	}
	lines = append(lines, PadLine(footerStyle.Render(modal.Footer), innerWidth, backgroundStyle))

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(modal.theme.BorderColor).
		Background(modal.theme.ModalBackground).
		Padding(0, 1)

	rendered := borderStyle.Render(strings.Join(lines, "\n"))
	resultLines := strings.Split(rendered, "\n")

	renderedWidth := 0
	if len(resultLines) > 0 {
		renderedWidth = ansi.StringWidth(resultLines[0])
	}
	anchorX, anchorY := CenterAnchor(screenWidth, screenHeight, renderedWidth, len(resultLines))
	return resultLines, anchorX, anchorY
}
