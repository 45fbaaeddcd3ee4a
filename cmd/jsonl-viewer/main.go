// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// jsonl-viewer is a terminal UI for browsing JSONL record files. It
// lists one label per record (the task_id field, or "Task <n>") and
// shows a fixed set of text fields of the selected record in
// editable regions. Edits are never saved.
//
// With no FILE argument the window opens empty and a file is chosen
// with the built-in picker (o). Plain, gzip, zstd and lz4 files are
// supported, chosen by suffix.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/bureau-foundation/jsonl-viewer/lib/config"
	"github.com/bureau-foundation/jsonl-viewer/lib/jsonl"
	"github.com/bureau-foundation/jsonl-viewer/lib/recordui"
	"github.com/bureau-foundation/jsonl-viewer/lib/version"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// flags holds the parsed command line.
type flags struct {
	configPath  string
	watch       bool
	logOutput   string
	noColor     bool
	help        bool
	showVersion bool
	file        string
}

// parseFlags parses arguments. Requesting help is not an error: it
// sets flags.help.
func parseFlags(arguments []string, output io.Writer) (*flags, *pflag.FlagSet, error) {
	var parsed flags

	flagSet := pflag.NewFlagSet("jsonl-viewer", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {}
	flagSet.StringVar(&parsed.configPath, "config", "", "viewer config file (YAML, or JSONC for .json/.jsonc)")
	flagSet.BoolVar(&parsed.watch, "watch", false, "reload the file when it changes on disk")
	flagSet.StringVar(&parsed.logOutput, "log-output", "", "write JSON log records to this file (in addition to TUI display)")
	flagSet.BoolVar(&parsed.noColor, "no-color", false, "disable colors")
	flagSet.BoolVar(&parsed.showVersion, "version", false, "print version information and exit")
	flagSet.BoolVarP(&parsed.help, "help", "h", false, "show help")

	if err := flagSet.Parse(arguments); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			parsed.help = true
			return &parsed, flagSet, nil
		}
		return nil, flagSet, Validation("%w", err).
			WithHint("Run 'jsonl-viewer --help' for usage.")
	}

	args := flagSet.Args()
	switch len(args) {
	case 0:
	case 1:
		parsed.file = args[0]
	default:
		return nil, flagSet, Validation("unexpected argument: %s", args[1]).
			WithHint("jsonl-viewer opens one file at a time.")
	}
	return &parsed, flagSet, nil
}

// loadConfig returns the defaults when path is empty, otherwise the
// validated file contents.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.LoadFile(path)
	if err != nil {
		return nil, Validation("cannot load config: %w", err).
			WithHint("Check that the file exists and uses the keys start_directory, split_ratio, show_hidden and log_level.")
	}
	if err := cfg.Validate(); err != nil {
		return nil, Validation("invalid config %s:\n%w", path, err)
	}
	return cfg, nil
}

// hasDatasetExtension reports whether path ends in one of the suffixes
// the picker offers.
func hasDatasetExtension(path string) bool {
	lower := strings.ToLower(path)
	for _, extension := range jsonl.Extensions {
		if strings.HasSuffix(lower, extension) {
			return true
		}
	}
	return false
}

func run(arguments []string) error {
	parsed, flagSet, err := parseFlags(arguments, os.Stderr)
	if err != nil {
		return err
	}

	if parsed.showVersion {
		version.Print("jsonl-viewer")
		return nil
	}
	if parsed.help {
		printHelp(flagSet)
		return nil
	}

	cfg, err := loadConfig(parsed.configPath)
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return Validation("%w", err)
	}

	commandLogger := newCommandLogger(slog.LevelWarn)

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return Validation("stdout is not a terminal").
			WithHint("jsonl-viewer is interactive; run it from a terminal without redirecting its output.")
	}

	if parsed.file != "" && !hasDatasetExtension(parsed.file) {
		commandLogger.Warn("file has no JSONL extension, reading it as plain JSONL",
			"path", parsed.file,
			"compression", jsonl.DetectCompression(parsed.file).String(),
		)
	}

	if parsed.noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	// stderr would corrupt the alt-screen display, so while the TUI
	// runs warnings and errors go to the status bar instead.
	tuiHandler := recordui.NewTUILogHandler(slog.LevelWarn)
	var backgroundLogger *slog.Logger
	if parsed.logOutput != "" {
		fileHandler, closeFile, err := openFileLogHandler(parsed.logOutput, level)
		if err != nil {
			return Validation("cannot open log file %s: %w", parsed.logOutput, err)
		}
		defer closeFile()
		backgroundLogger = slog.New(fanoutHandler{tuiHandler, fileHandler})
	} else {
		backgroundLogger = slog.New(tuiHandler)
	}

	model := recordui.NewModel(recordui.Options{
		Path:           parsed.file,
		StartDirectory: cfg.StartDirectory,
		SplitRatio:     cfg.SplitRatio,
		ShowHidden:     cfg.ShowHidden,
		Watch:          parsed.watch,
		Logger:         backgroundLogger,
	})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	tuiHandler.SetProgram(program)

	finalModel, err := program.Run()
	if final, ok := finalModel.(recordui.Model); ok {
		final.Close()
	}
	if err != nil {
		return Internal("terminal UI failed: %w", err)
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `jsonl-viewer: interactive terminal browser for JSONL record files.

Lists one entry per record, labelled by its task_id field (or "Task <n>"
when absent). Selecting an entry shows the task_id, test,
detail_description, prompt and solution fields in editable text regions.
Edits are never written back.

Files ending in .gz, .zst or .lz4 are decompressed. With no FILE the
window opens empty; press o to pick a file.

Usage:
  jsonl-viewer [flags] [FILE]

Examples:
  # Open the picker in the current directory
  jsonl-viewer

  # Open a compressed dataset and reload it whenever it changes
  jsonl-viewer --watch exports/tasks.jsonl.gz

  # Keep a log of loads while browsing
  jsonl-viewer --log-output /tmp/viewer.log tasks.jsonl

Keys:
  j/k ↑/↓ move   tab next region   v raw JSON   y copy   r reload
  o open file    [ ] resize split  esc back     q quit

Flags:
`)
	flagSet.SetOutput(os.Stderr)
	flagSet.PrintDefaults()
}
