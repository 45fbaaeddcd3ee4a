// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// the dataset viewer. Built on bubbletea (Elm architecture), these
// components cover the theme, overlay splicing, scrollbars, and modal
// dialogs.
//
// The viewer model in recordui owns its own layout and data; this
// package only knows how to draw.
package tui
