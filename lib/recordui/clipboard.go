// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package recordui

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Notice lifetimes in the status bar.
const (
	noticeFadeDelay    = 2 * time.Second
	logRecordFadeDelay = 5 * time.Second
)

// noticeFadeMsg clears the status bar notice. The generation guards
// against an old timer clearing a newer notice.
type noticeFadeMsg struct {
	generation int
}

func fadeNotice(generation int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return noticeFadeMsg{generation: generation}
	})
}

// clipboardWriter is replaced in tests to observe copies without
// touching the system clipboard or the terminal.
var clipboardWriter = writeClipboard

// copyToClipboard writes text to the system clipboard off the event
// loop, since the platform tools run as subprocesses.
func copyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		clipboardWriter(text)
		return nil
	}
}

// writeClipboard tries the platform clipboard first (xclip, xsel,
// wl-copy, pbcopy). On headless hosts and over SSH none of those
// reach the user's machine, so it falls back to the OSC 52 terminal
// escape written directly to /dev/tty, bypassing bubbletea's managed
// output. OSC 52 has no screen effect so it is safe alongside the
// renderer.
func writeClipboard(text string) {
	if err := clipboard.WriteAll(text); err == nil {
		return
	}

	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	// BEL terminator: a single byte survives layered terminals (SSH,
	// tmux, screen) where the two-byte ST can be mangled.
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	osc52 := fmt.Sprintf("\x1b]52;c;%s\x07", encoded)

	inTmux := os.Getenv("TMUX") != "" ||
		strings.HasPrefix(os.Getenv("TERM"), "tmux") ||
		strings.HasPrefix(os.Getenv("TERM"), "screen")
	if inTmux {
		// DCS passthrough for allow-passthrough configurations.
		fmt.Fprintf(tty, "\x1bPtmux;\x1b%s\x1b\\", osc52)
	}
	tty.WriteString(osc52)
}
