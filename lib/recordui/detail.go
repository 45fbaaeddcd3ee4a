// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/bureau-foundation/jsonl-viewer/lib/browser"
	"github.com/bureau-foundation/jsonl-viewer/lib/jsonl"
	"github.com/bureau-foundation/jsonl-viewer/lib/tui"
)

// Text rows given to each field kind. Long-text regions split
// whatever height remains after the fixed regions and titles.
const (
	singleLineRows = 1
	shortTextRows  = 3
	minLongRows    = 1
)

// fieldLineLimit is the most lines a bubbles textarea holds; SetValue
// drops the rest.
const fieldLineLimit = 10000

// fieldRegion is one labelled text region in the detail pane.
type fieldRegion struct {
	field browser.DisplayField
	area  textarea.Model

	// present is false when the selected record lacks the field.
	present bool

	// source is the rendered field text. shown is what the textarea
	// held right after SetValue, which differs from source when the
	// textarea expanded tabs or dropped lines past fieldLineLimit.
	source    string
	shown     string
	truncated bool

	// top is the pane-relative line of the region's title; the
	// textarea occupies the rows lines below it.
	top  int
	rows int
}

// DetailPane shows the selected record. In fields mode it is a stack
// of textareas, one per display field, rewritten in full on every
// selection. In raw mode it is a scrollable viewport of the whole
// record as indented, highlighted JSON.
type DetailPane struct {
	theme  tui.Theme
	width  int
	height int

	regions []fieldRegion
	raw     viewport.Model
	rawMode bool

	hasRecord bool
	rawSource string
}

// NewDetailPane creates a detail pane with one empty region per
// display field.
func NewDetailPane(theme tui.Theme) DetailPane {
	pane := DetailPane{theme: theme}
	for _, field := range browser.DisplayFieldSet {
		pane.regions = append(pane.regions, fieldRegion{
			field: field,
			area:  newFieldArea(theme),
		})
	}
	return pane
}

func newFieldArea(theme tui.Theme) textarea.Model {
	area := textarea.New()
	area.ShowLineNumbers = false
	area.Prompt = "│ "
	area.Placeholder = ""
	// Field values are arbitrary length; the defaults cap both.
	area.CharLimit = 0
	area.MaxHeight = 0

	area.FocusedStyle.CursorLine = lipgloss.NewStyle()
	area.FocusedStyle.Prompt = lipgloss.NewStyle().Foreground(theme.FocusAccent)
	area.FocusedStyle.Text = lipgloss.NewStyle().Foreground(theme.NormalText)
	area.BlurredStyle.Prompt = lipgloss.NewStyle().Foreground(theme.BorderColor)
	area.BlurredStyle.Text = lipgloss.NewStyle().Foreground(theme.NormalText)
	area.Blur()
	return area
}

// contentWidth returns the usable width for text content (total width
// minus the left padding column and right scrollbar column).
func (pane DetailPane) contentWidth() int {
	width := pane.width - 2
	if width < 1 {
		width = 1
	}
	return width
}

// SetSize updates the pane dimensions and lays the regions out again.
func (pane *DetailPane) SetSize(width, height int) {
	previousWidth := pane.width
	pane.width = width
	pane.height = height

	pane.layoutRegions()

	pane.raw.Width = pane.contentWidth()
	pane.raw.Height = max(height, 1)
	if pane.hasRecord && width != previousWidth {
		pane.raw.SetContent(pane.renderRaw())
	}
}

// layoutRegions assigns each region its title line and text rows.
// Fixed-size regions keep their rows; long-text regions divide the
// remainder evenly with any leftover going to the last one.
func (pane *DetailPane) layoutRegions() {
	fixedLines := 0
	longCount := 0
	for _, region := range pane.regions {
		fixedLines++ // Title line.
		switch region.field.Kind {
		case browser.FieldSingleLine:
			fixedLines += singleLineRows
		case browser.FieldShortText:
			fixedLines += shortTextRows
		default:
			longCount++
		}
	}

	longRows, leftover := minLongRows, 0
	if longCount > 0 {
		remaining := pane.height - fixedLines
		if remaining > longCount*minLongRows {
			longRows = remaining / longCount
			leftover = remaining % longCount
		}
	}

	top := 0
	longSeen := 0
	for index := range pane.regions {
		region := &pane.regions[index]
		switch region.field.Kind {
		case browser.FieldSingleLine:
			region.rows = singleLineRows
		case browser.FieldShortText:
			region.rows = shortTextRows
		default:
			longSeen++
			region.rows = longRows
			if longSeen == longCount {
				region.rows += leftover
			}
		}
		region.top = top
		region.area.SetWidth(pane.contentWidth())
		region.area.SetHeight(region.rows)
		top += 1 + region.rows
	}
}

// SetRecord writes every region from the record, replacing whatever
// the regions held (including text the user typed). The raw view is
// rebuilt and scrolled to the top.
func (pane *DetailPane) SetRecord(record jsonl.Record) {
	for index, text := range browser.Render(record) {
		region := &pane.regions[index]
		region.area.SetValue(text.Text)
		region.present = text.Present
		region.source = text.Text
		region.shown = region.area.Value()
		region.truncated = strings.Count(text.Text, "\n") >= fieldLineLimit
	}
	pane.hasRecord = true
	pane.rawSource = browser.IndentJSON(map[string]any(record))
	pane.raw.SetContent(pane.renderRaw())
	pane.raw.GotoTop()
}

// Clear empties every region and the raw view.
func (pane *DetailPane) Clear() {
	for index := range pane.regions {
		pane.regions[index].area.SetValue("")
		pane.regions[index].present = false
		pane.regions[index].source = ""
		pane.regions[index].shown = ""
		pane.regions[index].truncated = false
	}
	pane.hasRecord = false
	pane.rawSource = ""
	pane.raw.SetContent("")
}

// renderRaw highlights the record JSON with chroma and wraps it to
// the viewport width. The ASCII color profile skips highlighting so
// the text stays free of escape sequences.
func (pane DetailPane) renderRaw() string {
	body := pane.rawSource
	if lipgloss.ColorProfile() != termenv.Ascii {
		var buffer strings.Builder
		if err := quick.Highlight(&buffer, pane.rawSource, "json", "terminal256", "monokai"); err == nil {
			body = buffer.String()
		}
	}
	return lipgloss.NewStyle().Width(pane.contentWidth()).Render(body)
}

// Values returns the current text of every region in display order.
// Includes any edits typed since the last SetRecord.
func (pane DetailPane) Values() []string {
	values := make([]string, len(pane.regions))
	for index := range pane.regions {
		values[index] = pane.RegionText(index)
	}
	return values
}

// RegionText returns the text of the region at index, or "" when the
// index is out of range. An unedited region returns the field text in
// full, including lines and tabs the textarea could not hold.
func (pane DetailPane) RegionText(index int) string {
	if index < 0 || index >= len(pane.regions) {
		return ""
	}
	region := pane.regions[index]
	value := region.area.Value()
	if value == region.shown {
		return region.source
	}
	return value
}

// RawText returns the undecorated JSON shown in raw mode.
func (pane DetailPane) RawText() string {
	return pane.rawSource
}

// RegionCount is the number of field regions.
func (pane DetailPane) RegionCount() int {
	return len(pane.regions)
}

// RegionAt maps a pane-relative line to the region drawn there, or -1
// when the line is outside every region.
func (pane DetailPane) RegionAt(line int) int {
	for index, region := range pane.regions {
		if line >= region.top && line < region.top+1+region.rows {
			return index
		}
	}
	return -1
}

// FocusRegion gives keyboard focus to the region at index and blurs
// the rest. The returned command drives the cursor blink.
func (pane *DetailPane) FocusRegion(index int) tea.Cmd {
	var cmd tea.Cmd
	for regionIndex := range pane.regions {
		if regionIndex == index {
			cmd = pane.regions[regionIndex].area.Focus()
		} else {
			pane.regions[regionIndex].area.Blur()
		}
	}
	return cmd
}

// BlurAll removes keyboard focus from every region.
func (pane *DetailPane) BlurAll() {
	for index := range pane.regions {
		pane.regions[index].area.Blur()
	}
}

// UpdateRegion forwards a message to the region at index. Edits stay
// in the textarea; nothing is written back to the record.
func (pane *DetailPane) UpdateRegion(index int, message tea.Msg) tea.Cmd {
	if index < 0 || index >= len(pane.regions) {
		return nil
	}
	var cmd tea.Cmd
	pane.regions[index].area, cmd = pane.regions[index].area.Update(message)
	return cmd
}

// View renders the pane. focusedRegion is the index of the region
// with keyboard focus, or -1; rawFocused highlights the raw view's
// scrollbar.
func (pane DetailPane) View(focusedRegion int, rawFocused bool) string {
	if pane.rawMode {
		return pane.viewRaw(rawFocused)
	}

	titleStyle := lipgloss.NewStyle().
		Foreground(pane.theme.FieldTitle).
		Bold(true)
	focusedTitleStyle := lipgloss.NewStyle().
		Foreground(pane.theme.FocusAccent).
		Bold(true)
	absentStyle := lipgloss.NewStyle().
		Foreground(pane.theme.FaintText).
		Italic(true)

	var blocks []string
	for index, region := range pane.regions {
		title := titleStyle.Render(region.field.Title)
		if index == focusedRegion {
			title = focusedTitleStyle.Render("▸ " + region.field.Title)
		}
		if pane.hasRecord && !region.present {
			title += absentStyle.Render("  (absent)")
		}
		if region.truncated {
			title += absentStyle.Render(fmt.Sprintf("  (truncated at %d lines, v for full JSON)", fieldLineLimit))
		}
		blocks = append(blocks, title, region.area.View())
	}

	content := lipgloss.NewStyle().
		PaddingLeft(1).
		Width(pane.width - 1).
		Height(pane.height).
		MaxHeight(pane.height).
		Render(strings.Join(blocks, "\n"))

	blankColumn := lipgloss.NewStyle().Width(1).Height(pane.height).Render("")
	return lipgloss.JoinHorizontal(lipgloss.Top, content, blankColumn)
}

func (pane DetailPane) viewRaw(focused bool) string {
	contentStyle := lipgloss.NewStyle().
		PaddingLeft(1).
		Width(pane.width - 1).
		Height(pane.height).
		MaxHeight(pane.height)

	if !pane.hasRecord {
		emptyStyle := lipgloss.NewStyle().Foreground(pane.theme.FaintText)
		content := contentStyle.Render(lipgloss.Place(
			pane.contentWidth(), pane.height,
			lipgloss.Center, lipgloss.Center,
			emptyStyle.Render("Select a record to view its JSON"),
		))
		scrollbar := tui.RenderScrollbar(pane.theme, pane.height, 0, pane.height, 0, focused)
		return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
	}

	content := contentStyle.Render(pane.raw.View())
	scrollbar := tui.RenderScrollbar(
		pane.theme, pane.height,
		pane.raw.TotalLineCount(), pane.raw.Height, pane.raw.YOffset,
		focused,
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, content, scrollbar)
}
