// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"
)

func TestScrollbarThumb(t *testing.T) {
	tests := []struct {
		name                        string
		height, total, visible, off int
		wantStart, wantSize         int
	}{
		{"content fits", 10, 5, 10, 0, 0, 10},
		{"empty", 10, 0, 10, 0, 0, 10},
		{"top", 10, 100, 10, 0, 0, 1},
		{"bottom", 10, 100, 10, 90, 9, 1},
		{"half visible middle", 10, 20, 10, 5, 2, 5},
		{"half visible end", 10, 20, 10, 10, 5, 5},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			start, size := ScrollbarThumb(test.height, test.total, test.visible, test.off)
			if start != test.wantStart || size != test.wantSize {
				t.Errorf("ScrollbarThumb = (%d, %d), want (%d, %d)",
					start, size, test.wantStart, test.wantSize)
			}
		})
	}
}

func TestRenderScrollbarHeight(t *testing.T) {
	rendered := RenderScrollbar(DefaultTheme, 7, 50, 7, 10, true)
	if lines := strings.Split(rendered, "\n"); len(lines) != 7 {
		t.Errorf("got %d lines, want 7", len(lines))
	}
	if RenderScrollbar(DefaultTheme, 0, 50, 7, 0, false) != "" {
		t.Error("zero height should render nothing")
	}
}

func TestRenderScrollbarTrackAndThumb(t *testing.T) {
	rendered := RenderScrollbar(DefaultTheme, 10, 100, 10, 0, false)
	if strings.Count(rendered, "┃") != 1 {
		t.Errorf("expected one thumb cell, got %q", rendered)
	}
	if strings.Count(rendered, "│") != 9 {
		t.Errorf("expected nine track cells, got %q", rendered)
	}
}
