// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/jsonl-viewer/lib/jsonl"
	"github.com/bureau-foundation/jsonl-viewer/lib/tui"
)

func TestDetailPaneLayout(t *testing.T) {
	pane := NewDetailPane(tui.DefaultTheme)
	pane.SetSize(80, 20)

	// Titles take one line each; task_id has 1 row, test 3, and the
	// three long fields split the remaining 11 as 3, 3, 5.
	wantTops := []int{0, 2, 6, 10, 14}
	wantRows := []int{1, 3, 3, 3, 5}
	for index, region := range pane.regions {
		if region.top != wantTops[index] || region.rows != wantRows[index] {
			t.Errorf("region %d: top=%d rows=%d, want top=%d rows=%d",
				index, region.top, region.rows, wantTops[index], wantRows[index])
		}
	}

	tests := []struct {
		line int
		want int
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{5, 1},
		{6, 2},
		{13, 3},
		{19, 4},
		{20, -1},
		{-1, -1},
	}
	for _, test := range tests {
		if got := pane.RegionAt(test.line); got != test.want {
			t.Errorf("RegionAt(%d) = %d, want %d", test.line, got, test.want)
		}
	}
}

func TestDetailPaneLayoutTinyHeight(t *testing.T) {
	pane := NewDetailPane(tui.DefaultTheme)
	pane.SetSize(40, 3)

	for index, region := range pane.regions {
		if region.rows < 1 {
			t.Errorf("region %d has %d rows, want at least 1", index, region.rows)
		}
	}
}

func TestDetailPaneSetRecordAndClear(t *testing.T) {
	pane := NewDetailPane(tui.DefaultTheme)
	pane.SetSize(80, 30)

	record := jsonl.Record{
		"task_id":  "alpha",
		"prompt":   "line one\nline two",
		"solution": json.Number("42"),
		"extra":    true,
	}
	pane.SetRecord(record)

	values := pane.Values()
	want := []string{"alpha", "", "", "line one\nline two", "42"}
	for index := range want {
		if values[index] != want[index] {
			t.Errorf("region %d = %q, want %q", index, values[index], want[index])
		}
	}
	if pane.regions[1].present {
		t.Error("absent test field marked present")
	}
	if !pane.regions[4].present {
		t.Error("solution field not marked present")
	}
	if !strings.Contains(pane.RawText(), `"extra": true`) {
		t.Errorf("raw text missing field outside the display set: %q", pane.RawText())
	}

	view := ansi.Strip(pane.View(-1, false))
	if !strings.Contains(view, "Test  (absent)") {
		t.Errorf("view should mark the absent field:\n%s", view)
	}

	pane.Clear()
	for index, value := range pane.Values() {
		if value != "" {
			t.Errorf("region %d = %q after Clear", index, value)
		}
	}
	if pane.RawText() != "" {
		t.Error("raw text survived Clear")
	}
	if view := ansi.Strip(pane.View(-1, false)); strings.Contains(view, "(absent)") {
		t.Error("cleared pane should not mark fields absent")
	}
}

func TestDetailPaneKeepsTextTheTextareaCannotHold(t *testing.T) {
	pane := NewDetailPane(tui.DefaultTheme)
	pane.SetSize(120, 30)

	lines := make([]string, fieldLineLimit+2000)
	for index := range lines {
		lines[index] = "step"
	}
	longSolution := strings.Join(lines, "\n")
	pane.SetRecord(jsonl.Record{
		"task_id":  "alpha",
		"test":     "a\tb",
		"solution": longSolution,
	})

	if got := pane.RegionText(4); got != longSolution {
		t.Errorf("solution region holds %d lines, want %d",
			strings.Count(got, "\n")+1, len(lines))
	}
	if got := pane.RegionText(1); got != "a\tb" {
		t.Errorf("test region = %q, want the tab kept", got)
	}

	view := ansi.Strip(pane.View(-1, false))
	if !strings.Contains(view, "(truncated at 10000 lines, v for full JSON)") {
		t.Errorf("view should mark the truncated field:\n%s", view)
	}
	if strings.Count(view, "truncated at") != 1 {
		t.Errorf("only the solution region should be marked truncated:\n%s", view)
	}

	// Once edited, the region reports what the textarea holds.
	pane.FocusRegion(1)
	pane.UpdateRegion(1, typedKey("!"))
	if got := pane.RegionText(1); got == "a\tb" || !strings.Contains(got, "!") {
		t.Errorf("edited region = %q, want the typed text", got)
	}

	pane.SetRecord(jsonl.Record{"task_id": "beta"})
	if view := ansi.Strip(pane.View(-1, false)); strings.Contains(view, "truncated at") {
		t.Errorf("truncation mark survived a new record:\n%s", view)
	}
}

func TestDetailPaneFocusAndEdit(t *testing.T) {
	pane := NewDetailPane(tui.DefaultTheme)
	pane.SetSize(80, 30)
	pane.SetRecord(jsonl.Record{"task_id": "alpha"})

	pane.FocusRegion(0)
	if !pane.regions[0].area.Focused() {
		t.Fatal("region 0 not focused")
	}
	for index := 1; index < pane.RegionCount(); index++ {
		if pane.regions[index].area.Focused() {
			t.Errorf("region %d focused alongside region 0", index)
		}
	}

	pane.UpdateRegion(0, typedKey("!"))
	if got := pane.RegionText(0); got != "alpha!" {
		t.Errorf("edited region = %q, want alpha!", got)
	}

	pane.SetRecord(jsonl.Record{"task_id": "alpha"})
	if got := pane.RegionText(0); got != "alpha" {
		t.Errorf("region after SetRecord = %q, edit should be discarded", got)
	}

	pane.BlurAll()
	if pane.regions[0].area.Focused() {
		t.Error("BlurAll left region 0 focused")
	}
	if pane.RegionText(-1) != "" || pane.RegionText(99) != "" {
		t.Error("out-of-range RegionText should be empty")
	}
	if pane.UpdateRegion(99, typedKey("x")) != nil {
		t.Error("out-of-range UpdateRegion should be a no-op")
	}
}

func TestDetailPaneRawViewEmpty(t *testing.T) {
	pane := NewDetailPane(tui.DefaultTheme)
	pane.SetSize(60, 10)
	pane.rawMode = true

	view := ansi.Strip(pane.View(-1, false))
	if !strings.Contains(view, "Select a record to view its JSON") {
		t.Errorf("empty raw view = %q", view)
	}
}
