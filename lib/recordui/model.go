// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/bureau-foundation/jsonl-viewer/lib/browser"
	"github.com/bureau-foundation/jsonl-viewer/lib/clock"
	"github.com/bureau-foundation/jsonl-viewer/lib/jsonl"
	"github.com/bureau-foundation/jsonl-viewer/lib/tui"
)

// FocusRegion identifies which part of the screen receives keys.
type FocusRegion int

const (
	// FocusList means navigation keys move the selection.
	FocusList FocusRegion = iota
	// FocusFields means keystrokes go to one field region's textarea.
	// Model.fieldFocus says which.
	FocusFields
	// FocusRaw means navigation keys scroll the raw JSON view.
	FocusRaw
	// FocusPicker means the file picker covers the screen and gets
	// all input.
	FocusPicker
	// FocusDialog means the error dialog is open. Only dismiss keys
	// and ctrl+c are honoured.
	FocusDialog
)

// Split ratio bounds and step size.
const (
	splitRatioMin  = 0.20
	splitRatioMax  = 0.80
	splitRatioStep = 0.05

	// DefaultSplitRatio is the list pane's share of the width.
	DefaultSplitRatio = 0.35

	// doubleClickThreshold is the maximum interval between two clicks
	// on the splitter divider to count as a double-click.
	doubleClickThreshold = 400 * time.Millisecond
)

// emptyStateText is shown in the list pane before any file is loaded.
const emptyStateText = "No file loaded. Press o to open a JSONL file."

// noticeKind selects the status bar notice color.
type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeError
)

// Options configures a Model.
type Options struct {
	// Path is loaded at startup when non-empty.
	Path string

	// StartDirectory is where the file picker opens. Defaults to the
	// working directory.
	StartDirectory string

	// SplitRatio is the initial list pane share of the width, clamped
	// to [0.2, 0.8]. Zero means DefaultSplitRatio.
	SplitRatio float64

	// ShowHidden lists dotfiles in the picker.
	ShowHidden bool

	// Watch reloads the loaded file whenever it changes on disk.
	Watch bool

	// Logger receives load and watch events. Nil discards them.
	Logger *slog.Logger

	// Clock times divider double-clicks. Nil means clock.Real().
	Clock clock.Clock
}

// Model is the top-level bubbletea model for the record browser.
//
// Update runs on the program's event loop. Records logged from there
// must stay below the TUILogHandler level: that handler delivers via
// Program.Send, which blocks until the same loop receives.
type Model struct {
	theme  tui.Theme
	keys   KeyMap
	logger *slog.Logger
	clock  clock.Clock
	load   loadFunc

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	state        browser.State
	scrollOffset int

	// Two-pane layout.
	focusRegion       FocusRegion
	fieldFocus        int
	splitRatio        float64
	detailPane        DetailPane
	draggingSplitter  bool
	lastSplitterClick time.Time

	picker  filepicker.Model
	spinner spinner.Model
	help    help.Model

	// Background load. loadSequence increases with every request;
	// a result is applied only if it carries the current value.
	loadSequence int
	loadingPath  string
	cancelLoad   context.CancelFunc
	initialLoad  tea.Cmd

	dialog *tui.MessageModal

	watchEnabled bool
	watcher      *FileWatcher

	notice           string
	noticeKind       noticeKind
	noticeGeneration int
}

// NewModel creates a Model. When options.Path is set the load starts
// from Init.
func NewModel(options Options) Model {
	logger := options.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	wallClock := options.Clock
	if wallClock == nil {
		wallClock = clock.Real()
	}

	splitRatio := options.SplitRatio
	if splitRatio == 0 {
		splitRatio = DefaultSplitRatio
	}
	splitRatio = min(max(splitRatio, splitRatioMin), splitRatioMax)

	startDirectory := options.StartDirectory
	if startDirectory == "" {
		if workingDirectory, err := os.Getwd(); err == nil {
			startDirectory = workingDirectory
		} else {
			startDirectory = "."
		}
	}

	picker := filepicker.New()
	picker.CurrentDirectory = startDirectory
	picker.AllowedTypes = jsonl.Extensions
	picker.ShowHidden = options.ShowHidden

	helpModel := help.New()
	helpModel.Styles.ShortKey = lipgloss.NewStyle().Foreground(tui.DefaultTheme.NormalText)
	helpModel.Styles.ShortDesc = lipgloss.NewStyle().Foreground(tui.DefaultTheme.HelpText)
	helpModel.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(tui.DefaultTheme.BorderColor)

	model := Model{
		theme:        tui.DefaultTheme,
		keys:         DefaultKeyMap,
		logger:       logger,
		clock:        wallClock,
		load:         jsonl.Load,
		state:        browser.NewState(),
		splitRatio:   splitRatio,
		detailPane:   NewDetailPane(tui.DefaultTheme),
		picker:       picker,
		spinner:      spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:         helpModel,
		watchEnabled: options.Watch,
	}

	if options.Path != "" {
		model.initialLoad = model.startLoad(options.Path)
	}
	return model
}

// State returns the browsing state: dataset, labels, selection.
func (model Model) State() browser.State {
	return model.state
}

// Close releases background resources: the in-flight load and the
// file watcher. Call after the program exits.
func (model Model) Close() {
	if model.cancelLoad != nil {
		model.cancelLoad()
	}
	if model.watcher != nil {
		model.watcher.Close()
	}
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return model.initialLoad
}

// Update implements tea.Model. Routes keyboard events based on the
// current focus region and applies background results.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		return model.handleKey(message)

	case tea.MouseMsg:
		return model, model.handleMouse(message)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.updatePaneSizes()
		var cmd tea.Cmd
		model.picker, cmd = model.picker.Update(message)
		return model, cmd

	case loadResultMsg:
		return model.handleLoadResult(message)

	case fileChangedMsg:
		return model.handleFileChanged(message)

	case logRecordMsg:
		kind := noticeInfo
		if message.Level >= slog.LevelWarn {
			kind = noticeError
		}
		return model, model.setNotice(message.Summary, kind, logRecordFadeDelay)

	case noticeFadeMsg:
		if message.generation == model.noticeGeneration {
			model.notice = ""
		}
		return model, nil

	case spinner.TickMsg:
		if model.loadingPath == "" {
			return model, nil
		}
		var cmd tea.Cmd
		model.spinner, cmd = model.spinner.Update(message)
		return model, cmd
	}

	// Anything else belongs to a component: directory listings for
	// the picker, cursor blink for the focused textarea.
	var commands []tea.Cmd
	var cmd tea.Cmd
	model.picker, cmd = model.picker.Update(message)
	commands = append(commands, cmd)
	if model.focusRegion == FocusFields {
		commands = append(commands, model.detailPane.UpdateRegion(model.fieldFocus, message))
	}
	return model, tea.Batch(commands...)
}

func (model Model) handleKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if message.Type == tea.KeyCtrlC {
		return model, model.quit()
	}

	switch model.focusRegion {
	case FocusDialog:
		return model.handleDialogKeys(message)
	case FocusPicker:
		return model.handlePickerKeys(message)
	case FocusFields:
		return model.handleFieldKeys(message)
	}

	var cmd tea.Cmd
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, model.quit()

	case key.Matches(message, model.keys.FocusNext):
		cmd = model.cycleFocus(1)

	case key.Matches(message, model.keys.FocusPrevious):
		cmd = model.cycleFocus(-1)

	case key.Matches(message, model.keys.Back):
		if model.focusRegion != FocusList {
			cmd = model.focusStop(0)
		} else if model.loadingPath != "" && model.cancelLoad != nil {
			model.cancelLoad()
			cmd = model.setNotice("Cancelling load…", noticeInfo, noticeFadeDelay)
		}

	case key.Matches(message, model.keys.SplitGrow):
		model.splitRatio = min(model.splitRatio+splitRatioStep, splitRatioMax)
		model.updatePaneSizes()

	case key.Matches(message, model.keys.SplitShrink):
		model.splitRatio = max(model.splitRatio-splitRatioStep, splitRatioMin)
		model.updatePaneSizes()

	case key.Matches(message, model.keys.Open):
		cmd = model.openPicker()

	case key.Matches(message, model.keys.Reload):
		cmd = model.reload()

	case key.Matches(message, model.keys.RawToggle):
		model.detailPane.rawMode = !model.detailPane.rawMode
		if model.focusRegion == FocusRaw && !model.detailPane.rawMode {
			model.focusRegion = FocusList
		}

	case key.Matches(message, model.keys.Copy):
		cmd = model.copyFocused()

	default:
		if model.focusRegion == FocusRaw {
			model.handleRawKeys(message)
		} else {
			model.handleListKeys(message)
		}
	}
	return model, cmd
}

// handleListKeys moves the selection. With nothing selected (fresh
// load) a relative movement key selects the first record; Home and
// End still jump to their end of the list.
func (model *Model) handleListKeys(message tea.KeyMsg) {
	count := model.state.Len()
	if count == 0 {
		return
	}

	current := model.state.Selection
	var target int
	switch {
	case key.Matches(message, model.keys.Home):
		target = 0
	case key.Matches(message, model.keys.End):
		target = count - 1
	case current == browser.NoSelection:
		if !key.Matches(message, model.keys.Up, model.keys.Down, model.keys.PageUp, model.keys.PageDown) &&
			message.Type != tea.KeyEnter && message.Type != tea.KeySpace {
			return
		}
		target = 0
	case key.Matches(message, model.keys.Up):
		target = current - 1
	case key.Matches(message, model.keys.Down):
		target = current + 1
	case key.Matches(message, model.keys.PageUp):
		target = current - model.visibleHeight()
	case key.Matches(message, model.keys.PageDown):
		target = current + model.visibleHeight()
	case message.Type == tea.KeyEnter, message.Type == tea.KeySpace:
		// Re-selecting rewrites the regions, discarding edits.
		target = current
	default:
		return
	}

	model.selectRecord(min(max(target, 0), count-1))
}

func (model *Model) handleRawKeys(message tea.KeyMsg) {
	raw := &model.detailPane.raw
	switch {
	case key.Matches(message, model.keys.Up):
		raw.LineUp(1)
	case key.Matches(message, model.keys.Down):
		raw.LineDown(1)
	case key.Matches(message, model.keys.PageUp):
		raw.LineUp(max(raw.Height, 1))
	case key.Matches(message, model.keys.PageDown):
		raw.LineDown(max(raw.Height, 1))
	case key.Matches(message, model.keys.Home):
		raw.GotoTop()
	case key.Matches(message, model.keys.End):
		raw.GotoBottom()
	}
}

// handleFieldKeys routes input while a field region has focus. Only
// non-printing bindings are intercepted; everything else is text.
func (model Model) handleFieldKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case key.Matches(message, model.keys.FocusNext):
		cmd = model.cycleFocus(1)
	case key.Matches(message, model.keys.FocusPrevious):
		cmd = model.cycleFocus(-1)
	case key.Matches(message, model.keys.Back):
		cmd = model.focusStop(0)
	case key.Matches(message, model.keys.CopyField):
		cmd = model.copyFocused()
	default:
		cmd = model.detailPane.UpdateRegion(model.fieldFocus, message)
	}
	return model, cmd
}

func (model Model) handleDialogKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(message, model.keys.Dismiss) {
		model.dialog = nil
		model.focusRegion = FocusList
	}
	return model, nil
}

func (model Model) handlePickerKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Esc is the picker's own "parent directory" key; here it closes
	// the picker. h, left and backspace still go up.
	if message.Type == tea.KeyEsc {
		model.focusRegion = FocusList
		return model, nil
	}

	var cmd tea.Cmd
	model.picker, cmd = model.picker.Update(message)

	if selected, path := model.picker.DidSelectFile(message); selected {
		model.focusRegion = FocusList
		return model, tea.Batch(cmd, model.startLoad(path))
	}
	if selected, path := model.picker.DidSelectDisabledFile(message); selected {
		notice := filepath.Base(path) + " is not a JSONL file"
		return model, tea.Batch(cmd, model.setNotice(notice, noticeError, noticeFadeDelay))
	}
	return model, cmd
}

// cycleFocus moves focus by step through the stops: the list, then
// each field region (or the raw view in raw mode).
func (model *Model) cycleFocus(step int) tea.Cmd {
	stops := 1 + model.detailPane.RegionCount()
	if model.detailPane.rawMode {
		stops = 2
	}

	current := 0
	switch model.focusRegion {
	case FocusFields:
		current = 1 + model.fieldFocus
	case FocusRaw:
		current = 1
	}

	next := ((current+step)%stops + stops) % stops
	return model.focusStop(next)
}

// focusStop focuses stop 0 (the list) or a detail stop.
func (model *Model) focusStop(stop int) tea.Cmd {
	if stop == 0 {
		model.focusRegion = FocusList
		model.detailPane.BlurAll()
		return nil
	}
	if model.detailPane.rawMode {
		model.focusRegion = FocusRaw
		model.detailPane.BlurAll()
		return nil
	}
	model.focusRegion = FocusFields
	model.fieldFocus = stop - 1
	return model.detailPane.FocusRegion(model.fieldFocus)
}

// selectRecord applies a selection and rewrites the detail pane.
// Out-of-range positions are ignored.
func (model *Model) selectRecord(position int) {
	state, ok := browser.Select(model.state, position)
	if !ok {
		return
	}
	model.state = state
	model.ensureSelectionVisible()
	model.syncDetailPane()
}

// syncDetailPane writes the selected record into the detail pane.
func (model *Model) syncDetailPane() {
	record, ok := model.state.Selected()
	if !ok {
		model.detailPane.Clear()
		return
	}
	model.detailPane.SetRecord(record)
}

func (model *Model) openPicker() tea.Cmd {
	model.detailPane.BlurAll()
	model.focusRegion = FocusPicker
	return model.picker.Init()
}

// startLoad begins a background load of path, superseding any load
// already in flight.
func (model *Model) startLoad(path string) tea.Cmd {
	if model.cancelLoad != nil {
		model.cancelLoad()
	}
	model.loadSequence++
	ctx, cancel := context.WithCancel(context.Background())
	model.cancelLoad = cancel
	model.loadingPath = path
	return tea.Batch(
		loadCmd(ctx, model.load, model.logger, model.loadSequence, path),
		model.spinner.Tick,
	)
}

func (model *Model) reload() tea.Cmd {
	if model.state.Dataset == nil {
		return model.setNotice("No file loaded", noticeInfo, noticeFadeDelay)
	}
	return model.startLoad(model.state.Dataset.Path)
}

// handleLoadResult applies a finished load. A failure opens the error
// dialog and leaves the dataset and selection untouched; a success
// replaces both.
func (model Model) handleLoadResult(message loadResultMsg) (tea.Model, tea.Cmd) {
	if message.sequence != model.loadSequence {
		return model, nil
	}
	if model.cancelLoad != nil {
		model.cancelLoad()
		model.cancelLoad = nil
	}
	model.loadingPath = ""

	if message.err != nil {
		if errors.Is(message.err, context.Canceled) {
			return model, model.setNotice("Load cancelled", noticeInfo, noticeFadeDelay)
		}
		model.showError("Failed to load file: " + message.err.Error())
		return model, nil
	}

	model.state = browser.Load(model.state, message.dataset)
	model.scrollOffset = 0
	model.detailPane.Clear()

	notice := fmt.Sprintf("Loaded %d records from %s", message.dataset.Len(), filepath.Base(message.path))
	return model, tea.Batch(
		model.setNotice(notice, noticeInfo, noticeFadeDelay),
		model.ensureWatch(message.dataset.Path),
	)
}

func (model *Model) showError(text string) {
	dialog := tui.NewErrorModal("Error", text, model.theme)
	model.dialog = &dialog
	model.detailPane.BlurAll()
	model.focusRegion = FocusDialog
}

// ensureWatch points the watcher at path, replacing a watcher on a
// different file. Returns the command that waits for the next change.
func (model *Model) ensureWatch(path string) tea.Cmd {
	if !model.watchEnabled {
		return nil
	}
	absolutePath, err := filepath.Abs(path)
	if err != nil {
		absolutePath = path
	}
	if model.watcher != nil && model.watcher.Path() == absolutePath {
		return nil
	}
	if model.watcher != nil {
		model.watcher.Stop()
		model.watcher = nil
	}

	watcher, err := WatchFile(absolutePath, model.logger)
	if err != nil {
		model.logger.Info("file watch unavailable", "path", absolutePath, "error", err)
		return model.setNotice("Cannot watch file: "+err.Error(), noticeError, logRecordFadeDelay)
	}
	model.watcher = watcher
	return waitForChange(watcher)
}

func (model Model) handleFileChanged(message fileChangedMsg) (tea.Model, tea.Cmd) {
	if model.watcher == nil || model.watcher.Path() != message.path {
		return model, nil
	}
	return model, tea.Batch(
		waitForChange(model.watcher),
		model.startLoad(message.path),
	)
}

// copyFocused copies the focused region's text: the selected label
// from the list, the field text from a field region, or the whole
// record JSON from the raw view.
func (model *Model) copyFocused() tea.Cmd {
	var text, description string
	switch model.focusRegion {
	case FocusFields:
		text = model.detailPane.RegionText(model.fieldFocus)
		description = browser.DisplayFieldSet[model.fieldFocus].Title
	case FocusRaw:
		text = model.detailPane.RawText()
		description = "record JSON"
	default:
		if _, ok := model.state.Selected(); ok {
			text = model.state.Labels[model.state.Selection]
			description = text
		}
	}

	if text == "" {
		return model.setNotice("Nothing to copy", noticeInfo, noticeFadeDelay)
	}
	return tea.Batch(
		copyToClipboard(text),
		model.setNotice("Copied: "+description, noticeInfo, noticeFadeDelay),
	)
}

// setNotice shows a status bar notice and schedules its removal.
func (model *Model) setNotice(text string, kind noticeKind, delay time.Duration) tea.Cmd {
	model.noticeGeneration++
	model.notice = text
	model.noticeKind = kind
	return fadeNotice(model.noticeGeneration, delay)
}

// quit signals background work to stop and ends the program. It runs
// on the event loop, so it does not wait for the watcher; Close after
// the program returns does.
func (model Model) quit() tea.Cmd {
	if model.cancelLoad != nil {
		model.cancelLoad()
	}
	if model.watcher != nil {
		model.watcher.Stop()
	}
	return tea.Quit
}

// contentStartY is the first screen row below the header.
func (model Model) contentStartY() int {
	return 1
}

// handleMouse routes mouse events by position. The wheel moves the
// selection over the list and scrolls the raw view. A click selects
// a list row or focuses a field region. The divider drags to resize
// and double-clicks to toggle between a narrow and a wide list.
func (model *Model) handleMouse(message tea.MouseMsg) tea.Cmd {
	if model.focusRegion == FocusPicker || model.focusRegion == FocusDialog {
		return nil
	}

	listWidth := model.listWidth()
	contentStart := model.contentStartY()
	dividerX := listWidth

	inContentArea := message.Y >= contentStart && message.Y < model.height-2
	inListPane := message.X >= 0 && message.X < dividerX
	onDivider := message.X == dividerX
	inDetailPane := message.X > dividerX

	if model.draggingSplitter {
		if message.Action == tea.MouseActionRelease {
			model.draggingSplitter = false
			return nil
		}
		model.setSplitFromMouseX(message.X)
		return nil
	}

	switch message.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelDown:
		if !inContentArea {
			return nil
		}
		up := message.Button == tea.MouseButtonWheelUp
		if inListPane || onDivider {
			if model.state.Len() == 0 {
				return nil
			}
			// The wheel is relative, so from no selection either
			// direction lands on the first record.
			target := 0
			if model.state.Selection != browser.NoSelection {
				target = model.state.Selection + 1
				if up {
					target = model.state.Selection - 1
				}
			}
			model.selectRecord(min(max(target, 0), model.state.Len()-1))
		} else if inDetailPane && model.detailPane.rawMode {
			if up {
				model.detailPane.raw.LineUp(3)
			} else {
				model.detailPane.raw.LineDown(3)
			}
		}

	case tea.MouseButtonLeft:
		if message.Action != tea.MouseActionPress || !inContentArea {
			return nil
		}
		if onDivider {
			now := model.clock.Now()
			if now.Sub(model.lastSplitterClick) <= doubleClickThreshold {
				if model.splitRatio > 0.50 {
					model.splitRatio = 0.25
				} else {
					model.splitRatio = 0.75
				}
				model.updatePaneSizes()
				model.lastSplitterClick = time.Time{}
				return nil
			}
			model.lastSplitterClick = now
			model.draggingSplitter = true
			return nil
		}
		if inListPane {
			model.focusStop(0)
			model.selectRecord(model.scrollOffset + message.Y - contentStart)
			return nil
		}
		if inDetailPane {
			if model.detailPane.rawMode {
				return model.focusStop(1)
			}
			if region := model.detailPane.RegionAt(message.Y - contentStart); region >= 0 {
				return model.focusStop(region + 1)
			}
		}
	}
	return nil
}

// setSplitFromMouseX updates the split ratio based on the mouse X
// coordinate, clamped to the configured min/max bounds.
func (model *Model) setSplitFromMouseX(mouseX int) {
	if model.width <= 0 {
		return
	}
	ratio := float64(mouseX) / float64(model.width)
	model.splitRatio = min(max(ratio, splitRatioMin), splitRatioMax)
	model.updatePaneSizes()
}

// updatePaneSizes recalculates pane dimensions after a resize or
// split ratio change.
func (model *Model) updatePaneSizes() {
	// 1 column for the vertical divider between panes.
	detailWidth := model.width - model.listWidth() - 1
	if detailWidth < 10 {
		detailWidth = 10
	}
	model.detailPane.SetSize(detailWidth, max(model.visibleHeight(), 0))
	model.help.Width = model.width
	model.ensureSelectionVisible()
}

// listWidth returns the width of the list pane in columns.
func (model Model) listWidth() int {
	return int(float64(model.width) * model.splitRatio)
}

// visibleHeight returns the number of content rows between the
// header and the bottom separator plus status bar.
func (model Model) visibleHeight() int {
	return model.height - model.contentStartY() - 2
}

// ensureSelectionVisible adjusts scrollOffset so the selected row is
// within the visible window.
func (model *Model) ensureSelectionVisible() {
	visible := model.visibleHeight()
	if visible <= 0 {
		return
	}

	maxOffset := max(model.state.Len()-visible, 0)
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}

	selection := model.state.Selection
	if selection == browser.NoSelection {
		return
	}
	if selection < model.scrollOffset {
		model.scrollOffset = selection
	}
	if selection >= model.scrollOffset+visible {
		model.scrollOffset = selection - visible + 1
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	if model.focusRegion == FocusPicker {
		return model.renderPicker()
	}

	listView := model.renderListPane()
	divider := model.renderDivider()
	rawFocused := model.focusRegion == FocusRaw
	fieldFocus := -1
	if model.focusRegion == FocusFields {
		fieldFocus = model.fieldFocus
	}
	detailView := model.detailPane.View(fieldFocus, rawFocused)

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))

	output := strings.Join([]string{
		model.renderHeader(),
		lipgloss.JoinHorizontal(lipgloss.Top, listView, divider, detailView),
		separator,
		model.renderStatus(),
	}, "\n")

	if model.dialog != nil {
		lines, anchorX, anchorY := model.dialog.Render(model.width, model.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	return output
}

// renderListPane renders the labels with a scrollbar on the right.
func (model Model) renderListPane() string {
	listWidth := model.listWidth()
	rowWidth := listWidth - 1
	visible := max(model.visibleHeight(), 0)
	focused := model.focusRegion == FocusList

	renderer := NewListRenderer(model.theme, rowWidth, model.state.Len())

	var body string
	switch {
	case model.state.Dataset == nil:
		body = renderer.RenderMessage(emptyStateText)
	case model.state.Len() == 0:
		body = renderer.RenderMessage("No records in " + filepath.Base(model.state.Dataset.Path) + ".")
	default:
		var rows []string
		for index := model.scrollOffset; index < model.scrollOffset+visible && index < model.state.Len(); index++ {
			selected := index == model.state.Selection
			rows = append(rows, renderer.RenderRow(index, model.state.Labels[index], selected, focused))
		}
		body = strings.Join(rows, "\n")
	}

	contentStyle := lipgloss.NewStyle().
		Width(rowWidth).
		Height(visible).
		MaxHeight(visible)

	scrollbar := tui.RenderScrollbar(
		model.theme, visible,
		model.state.Len(), visible, model.scrollOffset,
		focused,
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, contentStyle.Render(body), scrollbar)
}

// renderDivider renders the single-column vertical divider between the
// list and detail panes. The divider is draggable for resizing.
func (model Model) renderDivider() string {
	visible := max(model.visibleHeight(), 0)

	color := model.theme.BorderColor
	if model.draggingSplitter {
		color = model.theme.FocusAccent
	}

	lines := make([]string, visible)
	for index := range lines {
		lines[index] = "│"
	}
	return lipgloss.NewStyle().
		Foreground(color).
		Width(1).
		Height(visible).
		Render(strings.Join(lines, "\n"))
}

// renderHeader renders the file name embedded in a horizontal rule
// with dataset statistics on the right:
//
//	─── tasks.jsonl.gz ──────────── 12 records  48 kB  gzip  3f2a9c01be47 ─
func (model Model) renderHeader() string {
	separatorStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	statsStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	title := "jsonl-viewer"
	statsText := ""
	if dataset := model.state.Dataset; dataset != nil {
		title = filepath.Base(dataset.Path)
		statsText = fmt.Sprintf("%d records  %s  %s  %s",
			dataset.Len(),
			humanize.Bytes(uint64(dataset.Size)),
			dataset.Compression,
			dataset.Digest.Short())
	}

	rightWidth := 1
	right := separatorStyle.Render("─")
	if statsText != "" {
		rightWidth += lipgloss.Width(statsText) + 2
		right = " " + statsStyle.Render(statsText) + " " + right
	}

	// "─── " + title + " " before the fill.
	maxTitle := model.width - rightWidth - 6
	if maxTitle < 4 {
		maxTitle = 4
	}
	if lipgloss.Width(title) > maxTitle {
		title = truncateString(title, maxTitle-1) + "…"
	}
	left := separatorStyle.Render("───") + " " + titleStyle.Render(title) + " "
	leftWidth := 3 + 1 + lipgloss.Width(title) + 1

	fill := max(model.width-leftWidth-rightWidth, 1)
	line := left + separatorStyle.Render(strings.Repeat("─", fill)) + right
	return ansi.Truncate(line, model.width, "")
}

// renderStatus renders the bottom bar: focus indicator, key help,
// position, load progress and the current notice.
func (model Model) renderStatus() string {
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)

	focusIndicator := "LIST"
	switch model.focusRegion {
	case FocusFields:
		focusIndicator = strings.ToUpper(browser.DisplayFieldSet[model.fieldFocus].Title)
	case FocusRaw:
		focusIndicator = "RAW"
	case FocusDialog:
		focusIndicator = "ERROR"
	}

	var helpView string
	if model.focusRegion == FocusFields {
		helpView = model.help.ShortHelpView(model.keys.fieldHelp())
	} else {
		helpView = model.help.View(model.keys)
	}

	status := style.Render(fmt.Sprintf(" [%s] ", focusIndicator)) + helpView

	if count := model.state.Len(); count > 0 {
		position := "-"
		if model.state.Selection != browser.NoSelection {
			position = fmt.Sprintf("%d", model.state.Selection+1)
		}
		status += style.Render(fmt.Sprintf("  %s/%d", position, count))
	}

	if model.loadingPath != "" {
		loadingStyle := lipgloss.NewStyle().Foreground(model.theme.FocusAccent).Bold(true)
		status += "  " + model.spinner.View() + loadingStyle.Render(" Loading "+filepath.Base(model.loadingPath))
	}

	if model.notice != "" {
		color := model.theme.NoticeForeground
		if model.noticeKind == noticeError {
			color = model.theme.ErrorForeground
		}
		status += "  " + lipgloss.NewStyle().Foreground(color).Bold(true).Render(model.notice)
	}

	return ansi.Truncate(status, model.width, "…")
}

// renderPicker renders the full-screen file picker.
func (model Model) renderPicker() string {
	separatorStyle := lipgloss.NewStyle().Foreground(model.theme.BorderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(model.theme.HeaderForeground)
	faintStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	title := "Open JSONL file"
	header := separatorStyle.Render("───") + " " + titleStyle.Render(title) + " " +
		separatorStyle.Render(strings.Repeat("─", max(model.width-lipgloss.Width(title)-5, 1)))

	directory := faintStyle.Render(" " + model.picker.CurrentDirectory)

	footer := faintStyle.Render(" Enter open  h/← parent  Esc cancel  (" +
		strings.Join(jsonl.Extensions, " ") + ")")
	if model.notice != "" && model.noticeKind == noticeError {
		footer += "  " + lipgloss.NewStyle().Foreground(model.theme.ErrorForeground).Bold(true).Render(model.notice)
	}

	return strings.Join([]string{
		ansi.Truncate(header, model.width, ""),
		ansi.Truncate(directory, model.width, "…"),
		model.picker.View(),
		ansi.Truncate(footer, model.width, "…"),
	}, "\n")
}
