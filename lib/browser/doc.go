// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package browser holds the presentation-independent core of the
// record viewer: the label list derived from a dataset, the selection
// state, and the fixed set of fields extracted from the selected
// record.
//
// [State] is a plain value. [Load] and [Select] return a new State
// instead of mutating shared fields, so the terminal UI (or a test)
// can hold it in whatever model it likes.
//
// Data flows one way:
//
//	[jsonl.Dataset] -> Load -> State.Labels
//	                 Select(i) -> State.Selection -> Render(record)
package browser
