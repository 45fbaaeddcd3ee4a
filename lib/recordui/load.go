// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/bureau-foundation/jsonl-viewer/lib/jsonl"
)

// loadResultMsg reports a finished load. sequence identifies the
// request; the model ignores results for superseded requests.
type loadResultMsg struct {
	sequence int
	path     string
	dataset  *jsonl.Dataset
	err      error
}

// fileChangedMsg reports that the watched file changed on disk.
type fileChangedMsg struct {
	path string
}

// loadFunc is the loader used by background loads. Tests substitute
// it to control timing.
type loadFunc func(ctx context.Context, path string) (*jsonl.Dataset, error)

// loadCmd reads path in the background. The dataset is built entirely
// off the event loop; only the finished result crosses back.
func loadCmd(ctx context.Context, load loadFunc, logger *slog.Logger, sequence int, path string) tea.Cmd {
	return func() tea.Msg {
		logger.Info("loading dataset", "path", path)
		started := time.Now()

		dataset, err := load(ctx, path)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				logger.Info("dataset load cancelled", "path", path)
			} else {
				logger.Info("dataset load failed", "path", path, "error", err)
			}
			return loadResultMsg{sequence: sequence, path: path, err: err}
		}

		logger.Info("dataset loaded",
			"path", path,
			"records", dataset.Len(),
			"bytes", humanize.Bytes(uint64(dataset.Size)),
			"compression", dataset.Compression.String(),
			"digest", dataset.Digest.Short(),
			"duration", time.Since(started),
		)
		return loadResultMsg{sequence: sequence, path: path, dataset: dataset}
	}
}

// waitForChange blocks until the watcher reports a change. Returns
// nil once the watcher is closed, which ends the listen loop.
func waitForChange(watcher *FileWatcher) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-watcher.Changes(); !ok {
			return nil
		}
		return fileChangedMsg{path: watcher.Path()}
	}
}
