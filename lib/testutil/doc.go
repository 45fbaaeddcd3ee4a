// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for jsonl-viewer
// packages.
//
// [RequireReceive] and [RequireClosed] encapsulate the timeout safety
// valve pattern (select with a time.After fallback) so that tests
// waiting on background loads or file watch events do not hang when
// the event never arrives.
//
// [WriteFile] and [Rewrite] create and replace dataset and config
// fixtures under t.TempDir().
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no jsonl-viewer dependencies.
package testutil
