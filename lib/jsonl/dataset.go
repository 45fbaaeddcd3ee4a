// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsonl

import (
	"encoding/hex"
)

// Record is one decoded line: a mapping from field name to a JSON
// value. Values are string, json.Number, bool, nil, []any, or
// map[string]any. No field is guaranteed present.
type Record map[string]any

// Digest is the BLAKE3 hash of a dataset's decoded bytes.
type Digest [32]byte

// String returns the full lowercase hex encoding.
func (digest Digest) String() string {
	return hex.EncodeToString(digest[:])
}

// Short returns the first 12 hex characters, enough to tell two loads
// apart in a status line.
func (digest Digest) Short() string {
	return digest.String()[:12]
}

// Dataset is the ordered, immutable result of one successful load.
// Records[i] came from the i-th non-blank line of the file.
type Dataset struct {
	// Path is the file the dataset was loaded from, as given to Load.
	Path string

	// Compression is the decoder chosen from Path's suffix.
	Compression Compression

	// Records holds the decoded lines in file order.
	Records []Record

	// Size is the number of decoded (uncompressed) bytes read.
	Size int64

	// FileSize is the on-disk size of Path. Zero for datasets built
	// with Decode.
	FileSize int64

	// Digest is the BLAKE3 hash of the decoded bytes.
	Digest Digest
}

// Len returns the number of records.
func (dataset *Dataset) Len() int {
	if dataset == nil {
		return 0
	}
	return len(dataset.Records)
}
