// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// logRecordMsg delivers a slog record to the model for display in
// the status bar.
type logRecordMsg struct {
	Summary string
	Level   slog.Level
}

// messageSender is the part of *tea.Program the handler needs.
type messageSender interface {
	Send(message tea.Msg)
}

// TUILogHandler is a slog.Handler that routes log records into a
// running bubbletea program, where they show in the status bar.
// Writing to stderr would corrupt the alt-screen display.
//
// Records arriving before SetProgram are dropped. Handlers derived
// through WithAttrs and WithGroup share the program pointer, so one
// SetProgram call on the root reaches all of them.
type TUILogHandler struct {
	level  slog.Leveler
	sender *atomic.Pointer[messageSender]
	prefix string // Group path, "a.b." form.
	attrs  []string
}

// NewTUILogHandler creates a handler that delivers records at or
// above level.
func NewTUILogHandler(level slog.Leveler) *TUILogHandler {
	return &TUILogHandler{
		level:  level,
		sender: &atomic.Pointer[messageSender]{},
	}
}

// SetProgram sets the bubbletea program that receives log messages.
// Safe to call from any goroutine.
func (handler *TUILogHandler) SetProgram(program *tea.Program) {
	handler.setSender(program)
}

func (handler *TUILogHandler) setSender(sender messageSender) {
	handler.sender.Store(&sender)
}

// Enabled reports whether the handler is interested in records at the
// given level.
func (handler *TUILogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level.Level()
}

// Handle formats the record as "message (key=value, ...)" and sends
// it to the program.
func (handler *TUILogHandler) Handle(_ context.Context, record slog.Record) error {
	sender := handler.sender.Load()
	if sender == nil {
		return nil
	}

	parts := append([]string(nil), handler.attrs...)
	record.Attrs(func(attr slog.Attr) bool {
		parts = appendAttr(parts, handler.prefix, attr)
		return true
	})

	var summary strings.Builder
	summary.WriteString(record.Message)
	if len(parts) > 0 {
		summary.WriteString(" (")
		summary.WriteString(strings.Join(parts, ", "))
		summary.WriteString(")")
	}

	(*sender).Send(logRecordMsg{
		Summary: summary.String(),
		Level:   record.Level,
	})
	return nil
}

// WithAttrs returns a handler that includes attrs in every summary.
func (handler *TUILogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	derived := handler.clone()
	for _, attr := range attrs {
		derived.attrs = appendAttr(derived.attrs, handler.prefix, attr)
	}
	return derived
}

// WithGroup returns a handler that qualifies later attribute keys
// with name.
func (handler *TUILogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return handler
	}
	derived := handler.clone()
	derived.prefix = handler.prefix + name + "."
	return derived
}

func (handler *TUILogHandler) clone() *TUILogHandler {
	return &TUILogHandler{
		level:  handler.level,
		sender: handler.sender,
		prefix: handler.prefix,
		attrs:  append([]string(nil), handler.attrs...),
	}
}

// appendAttr flattens attr (recursing into groups) as key=value pairs.
func appendAttr(parts []string, prefix string, attr slog.Attr) []string {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return parts
	}
	if attr.Value.Kind() == slog.KindGroup {
		groupPrefix := prefix
		if attr.Key != "" {
			groupPrefix += attr.Key + "."
		}
		for _, member := range attr.Value.Group() {
			parts = appendAttr(parts, groupPrefix, member)
		}
		return parts
	}
	return append(parts, prefix+attr.Key+"="+attr.Value.String())
}
