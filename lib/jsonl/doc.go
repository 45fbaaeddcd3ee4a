// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsonl loads JSON-Lines datasets into memory. Each non-blank
// line of the input is one independent JSON object; the result is a
// [Dataset] holding the decoded records in file order.
//
// Compression is selected by filename suffix (see [DetectCompression]):
// gzip, zstd, and LZ4 frame streams are decoded transparently, and the
// [Dataset] digest is computed over the decoded bytes so a compressed
// file and its plain counterpart produce the same digest.
//
// Loading is all-or-nothing. Any I/O, decompression, encoding, or parse
// error aborts the load and no partial dataset is returned, so callers
// can keep showing whatever they had before.
//
// This package has no UI dependencies. The terminal viewer and the
// selection state logic both build on it.
package jsonl
