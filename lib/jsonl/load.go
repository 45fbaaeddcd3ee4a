// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsonl

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/zeebo/blake3"
)

// maxLineSize bounds a single JSONL line. Dataset lines carrying whole
// source files or transcripts can run to megabytes; the default 64 KiB
// scanner buffer is far too small.
const maxLineSize = 64 * 1024 * 1024

// byteOrderMark is stripped from the start of the first line.
var byteOrderMark = []byte("\xef\xbb\xbf")

// Load opens path, decodes it according to its suffix, and parses every
// non-blank line as one JSON object. On any error the returned Dataset
// is nil; there is no partial result.
func Load(ctx context.Context, path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat dataset: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("open dataset: %s is a directory", path)
	}

	compression := DetectCompression(path)
	dataset, err := decode(ctx, file, compression)
	if err != nil {
		return nil, err
	}
	dataset.Path = path
	dataset.FileSize = info.Size()
	return dataset, nil
}

// Decode parses an already open stream. The name is used only to pick
// the decompressor (see [DetectCompression]) and is recorded as the
// dataset's Path.
func Decode(ctx context.Context, reader io.Reader, name string) (*Dataset, error) {
	dataset, err := decode(ctx, reader, DetectCompression(name))
	if err != nil {
		return nil, err
	}
	dataset.Path = name
	return dataset, nil
}

func decode(ctx context.Context, reader io.Reader, compression Compression) (*Dataset, error) {
	decoder, err := openDecoder(reader, compression)
	if err != nil {
		return nil, err
	}
	defer decoder.Close()

	// Hash and count the decoded bytes as the scanner pulls them, so
	// the digest covers exactly what was parsed.
	hasher := blake3.New()
	counter := &countingWriter{}
	tee := io.TeeReader(decoder, io.MultiWriter(hasher, counter))

	scanner := bufio.NewScanner(tee)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var records []Record
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("load cancelled at line %d: %w", lineNumber, err)
		}

		line := scanner.Bytes()
		if lineNumber == 1 {
			line = bytes.TrimPrefix(line, byteOrderMark)
		}
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		record, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNumber, err)
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, fmt.Errorf("line %d: exceeds %d byte limit", lineNumber+1, maxLineSize)
		}
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	dataset := &Dataset{
		Compression: compression,
		Records:     records,
		Size:        counter.count,
	}
	copy(dataset.Digest[:], hasher.Sum(nil))
	return dataset, nil
}

// parseLine decodes exactly one JSON object from line. Trailing data
// after the object and non-object values are errors.
func parseLine(line []byte) (Record, error) {
	if !utf8.Valid(line) {
		return nil, errors.New("invalid UTF-8")
	}

	decoder := json.NewDecoder(bytes.NewReader(line))
	decoder.UseNumber()

	var value any
	if err := decoder.Decode(&value); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("invalid JSON: unexpected data after value")
	}

	object, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %s", kindOf(value))
	}
	return Record(object), nil
}

// kindOf names the JSON type of a decoded value for error messages.
func kindOf(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number, float64:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

type countingWriter struct {
	count int64
}

func (writer *countingWriter) Write(data []byte) (int, error) {
	writer.count += int64(len(data))
	return len(data), nil
}
