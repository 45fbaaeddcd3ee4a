// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package recordui implements the interactive terminal browser for
// JSONL datasets. It is a bubbletea program with two panes: a list of
// record labels on the left and the selected record's display fields
// on the right, each field in its own editable text region.
//
// The model owns a [browser.State] and never mutates a loaded dataset.
// Files are loaded in the background through [jsonl.Load]; completion
// arrives as a message on the event loop, so a slow or failing load
// never blocks input. A failed load opens a modal error dialog and
// leaves the previous dataset and selection in place.
//
// Additional surfaces:
//
//   - a file picker (o) restricted to the supported JSONL extensions
//   - a raw view (v) showing the whole record as highlighted JSON
//   - clipboard copy (y) of the focused region or selected label
//   - optional inotify-driven reload when the loaded file changes
//
// Log records at warning level and above can be routed into the
// status bar through [TUILogHandler].
package recordui
