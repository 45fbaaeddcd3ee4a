// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFanoutHandlerRespectsLevels(t *testing.T) {
	var warnOnly, everything bytes.Buffer
	logger := slog.New(fanoutHandler{
		slog.NewTextHandler(&warnOnly, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&everything, &slog.HandlerOptions{Level: slog.LevelDebug}),
	})

	logger.Debug("loading dataset", "path", "tasks.jsonl")
	logger.Warn("file watch stopped", "path", "tasks.jsonl")

	if strings.Contains(warnOnly.String(), "loading dataset") {
		t.Error("warn handler received a debug record")
	}
	if !strings.Contains(warnOnly.String(), "file watch stopped") {
		t.Error("warn handler missed the warning")
	}
	for _, want := range []string{"loading dataset", "file watch stopped"} {
		if !strings.Contains(everything.String(), want) {
			t.Errorf("debug handler missing %q", want)
		}
	}
}

func TestFanoutHandlerEnabled(t *testing.T) {
	handler := fanoutHandler{
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn}),
		slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}
	if !handler.Enabled(t.Context(), slog.LevelInfo) {
		t.Error("info should be enabled by the second handler")
	}
	if handler.Enabled(t.Context(), slog.LevelDebug) {
		t.Error("debug should be disabled by both handlers")
	}
}

func TestFanoutHandlerWithAttrs(t *testing.T) {
	var first, second bytes.Buffer
	logger := slog.New(fanoutHandler{
		slog.NewTextHandler(&first, nil),
		slog.NewTextHandler(&second, nil),
	}).With("component", "watch")

	logger.Info("started")

	for index, buffer := range []*bytes.Buffer{&first, &second} {
		if !strings.Contains(buffer.String(), "component=watch") {
			t.Errorf("handler %d missing derived attribute: %q", index, buffer.String())
		}
	}
}

func TestOpenFileLogHandlerWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.log")
	handler, closeFile, err := openFileLogHandler(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("openFileLogHandler: %v", err)
	}

	logger := slog.New(handler)
	logger.Debug("hidden")
	logger.Info("dataset loaded", "records", 3)
	closeFile()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 1 {
		t.Fatalf("log has %d lines, want 1: %q", len(lines), data)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "dataset loaded" || entry["records"] != float64(3) {
		t.Errorf("entry = %v", entry)
	}
}

func TestOpenFileLogHandlerBadPath(t *testing.T) {
	_, _, err := openFileLogHandler(filepath.Join(t.TempDir(), "missing", "viewer.log"), slog.LevelInfo)
	if err == nil {
		t.Fatal("expected error for a path in a missing directory")
	}
}

func TestNewStreamHandlerFormat(t *testing.T) {
	var text, structured bytes.Buffer
	slog.New(newStreamHandler(&text, true, slog.LevelInfo)).Info("hello", "n", 1)
	slog.New(newStreamHandler(&structured, false, slog.LevelInfo)).Info("hello", "n", 1)

	if !strings.Contains(text.String(), "msg=hello") {
		t.Errorf("interactive output = %q, want text format", text.String())
	}
	if !json.Valid(bytes.TrimSpace(structured.Bytes())) {
		t.Errorf("non-interactive output = %q, want JSON", structured.String())
	}
}
