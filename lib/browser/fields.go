// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package browser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bureau-foundation/jsonl-viewer/lib/jsonl"
)

// IdentifierField names the record field used as the list label.
const IdentifierField = "task_id"

// FieldKind describes how a display field is laid out.
type FieldKind int

const (
	// FieldSingleLine is a one-line entry (the identifier).
	FieldSingleLine FieldKind = iota
	// FieldShortText is a short multi-line region.
	FieldShortText
	// FieldLongText is a tall multi-line region for free text.
	FieldLongText
)

// DisplayField is one entry in the Display Field Set.
type DisplayField struct {
	Name  string // Record key.
	Title string // Label shown next to the region.
	Kind  FieldKind
}

// DisplayFieldSet is the fixed list of fields shown for the selected
// record. It is the same for every record regardless of its schema.
var DisplayFieldSet = []DisplayField{
	{Name: IdentifierField, Title: "Task ID", Kind: FieldSingleLine},
	{Name: "test", Title: "Test", Kind: FieldShortText},
	{Name: "detail_description", Title: "Detail Description", Kind: FieldLongText},
	{Name: "prompt", Title: "Prompt", Kind: FieldLongText},
	{Name: "solution", Title: "Solution", Kind: FieldLongText},
}

// FieldText is the rendered text of one display field.
type FieldText struct {
	Field   DisplayField
	Text    string
	Present bool
}

// Lookup returns the value of field in record and whether it exists.
// A field explicitly set to JSON null exists with a nil value.
func Lookup(record jsonl.Record, field string) (any, bool) {
	value, exists := record[field]
	return value, exists
}

// Render extracts every field of [DisplayFieldSet] from record, in
// order. Absent fields produce empty text with Present false. Every
// call yields a complete set; there is no partial update.
func Render(record jsonl.Record) []FieldText {
	result := make([]FieldText, len(DisplayFieldSet))
	for index, field := range DisplayFieldSet {
		result[index].Field = field
		value, exists := Lookup(record, field.Name)
		if !exists {
			continue
		}
		result[index].Text = DisplayText(value)
		result[index].Present = true
	}
	return result
}

// DisplayText converts a decoded JSON value to the text shown in a
// region. Strings are shown as-is, numbers keep their source text,
// booleans and null use their JSON spelling, and objects and arrays
// are rendered as indented JSON with sorted keys.
func DisplayText(value any) string {
	switch typed := value.(type) {
	case nil:
		return "null"
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		if typed {
			return "true"
		}
		return "false"
	case float64:
		return fmt.Sprint(typed)
	default:
		return IndentJSON(typed)
	}
}

// IndentJSON renders value as two-space indented JSON without HTML
// escaping. Map keys come out sorted (encoding/json's map ordering).
// Values that cannot be encoded fall back to Go's %v formatting.
func IndentJSON(value any) string {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(value); err != nil {
		return fmt.Sprintf("%v", value)
	}
	return strings.TrimSuffix(buffer.String(), "\n")
}
