// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package browser

import (
	"fmt"

	"github.com/bureau-foundation/jsonl-viewer/lib/jsonl"
)

// NoSelection is the Selection value when no record is selected.
const NoSelection = -1

// State is the viewer's application state. The zero value is not
// valid; start from [NewState].
//
// Invariant: Selection is NoSelection or a valid index into
// Dataset.Records, and len(Labels) == Dataset.Len().
type State struct {
	Dataset   *jsonl.Dataset
	Labels    []string
	Selection int
}

// NewState returns the state before any file has been loaded.
func NewState() State {
	return State{Selection: NoSelection}
}

// Load returns the state after a successful load of dataset: the
// dataset replaces the previous one, labels are rebuilt from scratch,
// and the selection is cleared. The previous state is not modified.
func Load(state State, dataset *jsonl.Dataset) State {
	return State{
		Dataset:   dataset,
		Labels:    Labels(dataset),
		Selection: NoSelection,
	}
}

// Select returns the state with position selected. If position is out
// of range the state is returned unchanged and ok is false.
func Select(state State, position int) (State, bool) {
	if position < 0 || position >= state.Dataset.Len() {
		return state, false
	}
	state.Selection = position
	return state, true
}

// Selected returns the selected record, or false when there is none.
func (state State) Selected() (jsonl.Record, bool) {
	if state.Selection == NoSelection || state.Selection >= state.Dataset.Len() {
		return nil, false
	}
	return state.Dataset.Records[state.Selection], true
}

// Len returns the number of records in the current dataset.
func (state State) Len() int {
	return state.Dataset.Len()
}

// Label returns the list label for the record at position: the
// identifier field's text when present, otherwise "Task <n>" with n
// counted from 1.
func Label(record jsonl.Record, position int) string {
	if value, exists := Lookup(record, IdentifierField); exists {
		return DisplayText(value)
	}
	return FallbackLabel(position)
}

// FallbackLabel is the synthetic label for a record without an
// identifier field.
func FallbackLabel(position int) string {
	return fmt.Sprintf("Task %d", position+1)
}

// Labels computes one label per record, in dataset order.
func Labels(dataset *jsonl.Dataset) []string {
	if dataset == nil {
		return nil
	}
	labels := make([]string, len(dataset.Records))
	for index, record := range dataset.Records {
		labels[index] = Label(record, index)
	}
	return labels
}
