// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsonl

import (
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies the stream encoding of a dataset file.
type Compression int

const (
	// CompressionNone is plain UTF-8 text.
	CompressionNone Compression = iota
	// CompressionGzip is a gzip stream (".gz").
	CompressionGzip
	// CompressionZstd is a zstd stream (".zst").
	CompressionZstd
	// CompressionLZ4 is an LZ4 frame stream (".lz4").
	CompressionLZ4
)

// String returns the short name of the compression, as shown in the
// viewer's header line.
func (compression Compression) String() string {
	switch compression {
	case CompressionNone:
		return "plain"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", int(compression))
	}
}

// Extensions lists the dataset filename suffixes the viewer offers in
// its file picker, in display order.
var Extensions = []string{".jsonl", ".jsonl.gz", ".jsonl.zst", ".jsonl.lz4"}

// DetectCompression chooses a decoder from the filename suffix. The
// check is on the final suffix only, so "data.jsonl.gz" and "data.gz"
// are both gzip. Content sniffing is deliberately not done: a file
// named ".gz" that is not gzip fails to load.
func DetectCompression(path string) Compression {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(lower, ".zst"):
		return CompressionZstd
	case strings.HasSuffix(lower, ".lz4"):
		return CompressionLZ4
	default:
		return CompressionNone
	}
}

// openDecoder wraps reader with the decompressor for compression. The
// returned closer releases decoder resources only; it does not close
// the underlying reader.
func openDecoder(reader io.Reader, compression Compression) (io.ReadCloser, error) {
	switch compression {
	case CompressionNone:
		return io.NopCloser(reader), nil

	case CompressionGzip:
		decoder, err := gzip.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("open gzip stream: %w", err)
		}
		return decoder, nil

	case CompressionZstd:
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, fmt.Errorf("open zstd stream: %w", err)
		}
		return decoder.IOReadCloser(), nil

	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(reader)), nil

	default:
		return nil, fmt.Errorf("unsupported compression: %s", compression)
	}
}
