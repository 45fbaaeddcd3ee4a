// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package jsonl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

const threeLines = `{"task_id":"HumanEval/0","prompt":"def f():"}
{"task_id":"HumanEval/1","test":"assert f() == 1"}
{"solution":"return 1","score":0.5}
`

// writeFixture writes content to name inside a fresh temp directory
// and returns the full path.
func writeFixture(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoadPreservesLineOrder(t *testing.T) {
	path := writeFixture(t, "a.jsonl", []byte(threeLines))

	dataset, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if dataset.Len() != 3 {
		t.Fatalf("expected 3 records, got %d", dataset.Len())
	}
	if dataset.Records[0]["task_id"] != "HumanEval/0" {
		t.Errorf("record 0 task_id = %v", dataset.Records[0]["task_id"])
	}
	if dataset.Records[1]["task_id"] != "HumanEval/1" {
		t.Errorf("record 1 task_id = %v", dataset.Records[1]["task_id"])
	}
	if _, exists := dataset.Records[2]["task_id"]; exists {
		t.Error("record 2 should have no task_id")
	}
	if dataset.Path != path {
		t.Errorf("Path = %q, want %q", dataset.Path, path)
	}
	if dataset.Compression != CompressionNone {
		t.Errorf("Compression = %s, want plain", dataset.Compression)
	}
	if dataset.Size != int64(len(threeLines)) {
		t.Errorf("Size = %d, want %d", dataset.Size, len(threeLines))
	}
	if dataset.FileSize != int64(len(threeLines)) {
		t.Errorf("FileSize = %d, want %d", dataset.FileSize, len(threeLines))
	}
}

func TestLoadManyLines(t *testing.T) {
	var builder strings.Builder
	const count = 500
	for index := 0; index < count; index++ {
		builder.WriteString(`{"task_id":"t`)
		builder.WriteString(strings.Repeat("x", index%7))
		builder.WriteString(`","n":1}`)
		builder.WriteString("\n")
	}
	path := writeFixture(t, "many.jsonl", []byte(builder.String()))

	dataset, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dataset.Len() != count {
		t.Errorf("expected %d records, got %d", count, dataset.Len())
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	content := "{\"a\":1}\n\n   \n{\"a\":2}\r\n\n"
	path := writeFixture(t, "blank.jsonl", []byte(content))

	dataset, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dataset.Len() != 2 {
		t.Fatalf("expected 2 records, got %d", dataset.Len())
	}
	if dataset.Records[1]["a"] != json.Number("2") {
		t.Errorf("record 1 a = %#v", dataset.Records[1]["a"])
	}
}

func TestLoadNoTrailingNewline(t *testing.T) {
	path := writeFixture(t, "tail.jsonl", []byte(`{"a":1}`+"\n"+`{"a":2}`))

	dataset, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dataset.Len() != 2 {
		t.Errorf("expected 2 records, got %d", dataset.Len())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	path := writeFixture(t, "empty.jsonl", nil)

	dataset, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dataset.Len() != 0 {
		t.Errorf("expected 0 records, got %d", dataset.Len())
	}
}

func TestLoadStripsByteOrderMark(t *testing.T) {
	path := writeFixture(t, "bom.jsonl", []byte("\xef\xbb\xbf{\"task_id\":\"a\"}\n"))

	dataset, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if dataset.Records[0]["task_id"] != "a" {
		t.Errorf("task_id = %v", dataset.Records[0]["task_id"])
	}
}

func TestLoadKeepsNumberText(t *testing.T) {
	path := writeFixture(t, "numbers.jsonl", []byte(`{"big":12345678901234567890,"exp":1e3,"neg":-0.25}`+"\n"))

	dataset, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	record := dataset.Records[0]
	for field, want := range map[string]string{
		"big": "12345678901234567890",
		"exp": "1e3",
		"neg": "-0.25",
	} {
		number, ok := record[field].(json.Number)
		if !ok {
			t.Errorf("%s: expected json.Number, got %T", field, record[field])
			continue
		}
		if number.String() != want {
			t.Errorf("%s = %s, want %s", field, number, want)
		}
	}
}

func TestLoadFailures(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		contains string
	}{
		{
			name:     "malformed second line",
			content:  "{\"task_id\":\"a\"}\nnot-json\n",
			contains: "line 2",
		},
		{
			name:     "array line",
			content:  "[1,2,3]\n",
			contains: "expected a JSON object, got array",
		},
		{
			name:     "string line",
			content:  "{\"a\":1}\n\"hello\"\n",
			contains: "line 2: expected a JSON object, got string",
		},
		{
			name:     "two objects on one line",
			content:  "{\"a\":1}{\"b\":2}\n",
			contains: "unexpected data after value",
		},
		{
			name:     "truncated object",
			content:  "{\"a\":\n",
			contains: "line 1: invalid JSON",
		},
		{
			name:     "invalid utf-8",
			content:  "{\"a\":1}\n{\"a\":\"\xff\xfe\"}\n",
			contains: "line 2: invalid UTF-8",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeFixture(t, "bad.jsonl", []byte(test.content))
			dataset, err := Load(context.Background(), path)
			if err == nil {
				t.Fatalf("expected error, got dataset with %d records", dataset.Len())
			}
			if dataset != nil {
				t.Error("failed load must not return a partial dataset")
			}
			if !strings.Contains(err.Error(), test.contains) {
				t.Errorf("error %q should contain %q", err, test.contains)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "missing.jsonl"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestLoadDirectory(t *testing.T) {
	_, err := Load(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected error when loading a directory")
	}
}

func TestLoadCancelled(t *testing.T) {
	path := writeFixture(t, "a.jsonl", []byte(threeLines))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dataset, err := Load(ctx, path)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if dataset != nil {
		t.Error("cancelled load must not return a dataset")
	}
}

func TestLoadCompressedMatchesPlain(t *testing.T) {
	plainPath := writeFixture(t, "a.jsonl", []byte(threeLines))
	plain, err := Load(context.Background(), plainPath)
	if err != nil {
		t.Fatalf("Load plain: %v", err)
	}

	tests := []struct {
		name        string
		file        string
		compression Compression
		compress    func(t *testing.T, data []byte) []byte
	}{
		{"gzip", "a.jsonl.gz", CompressionGzip, gzipBytes},
		{"zstd", "a.jsonl.zst", CompressionZstd, zstdBytes},
		{"lz4", "a.jsonl.lz4", CompressionLZ4, lz4Bytes},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := writeFixture(t, test.file, test.compress(t, []byte(threeLines)))

			compressed, err := Load(context.Background(), path)
			if err != nil {
				t.Fatalf("Load %s: %v", test.name, err)
			}
			if compressed.Compression != test.compression {
				t.Errorf("Compression = %s, want %s", compressed.Compression, test.compression)
			}
			if !reflect.DeepEqual(compressed.Records, plain.Records) {
				t.Errorf("records differ:\n got  %v\n want %v", compressed.Records, plain.Records)
			}
			if compressed.Digest != plain.Digest {
				t.Errorf("digest %s differs from plain %s", compressed.Digest.Short(), plain.Digest.Short())
			}
			if compressed.Size != plain.Size {
				t.Errorf("decoded size %d, want %d", compressed.Size, plain.Size)
			}
		})
	}
}

func TestLoadGzipSuffixWithPlainContent(t *testing.T) {
	path := writeFixture(t, "lying.jsonl.gz", []byte(threeLines))

	_, err := Load(context.Background(), path)
	if err == nil {
		t.Fatal("expected error for non-gzip content with .gz suffix")
	}
	if !strings.Contains(err.Error(), "gzip") {
		t.Errorf("error %q should mention gzip", err)
	}
}

func TestDigestDiffersForDifferentContent(t *testing.T) {
	first, err := Decode(context.Background(), strings.NewReader(`{"a":1}`), "first.jsonl")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	second, err := Decode(context.Background(), strings.NewReader(`{"a":2}`), "second.jsonl")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if first.Digest == second.Digest {
		t.Error("different content produced the same digest")
	}
	if len(first.Digest.Short()) != 12 {
		t.Errorf("Short() length = %d, want 12", len(first.Digest.Short()))
	}
}

func TestDecodeUsesNameForCompression(t *testing.T) {
	compressed := gzipBytes(t, []byte(threeLines))

	dataset, err := Decode(context.Background(), bytes.NewReader(compressed), "stream.jsonl.gz")
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if dataset.Len() != 3 {
		t.Errorf("expected 3 records, got %d", dataset.Len())
	}
	if dataset.FileSize != 0 {
		t.Errorf("FileSize = %d, want 0 for decoded streams", dataset.FileSize)
	}
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buffer.Bytes()
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd encoder: %v", err)
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, nil)
}

func lz4Bytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer := lz4.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		t.Fatalf("lz4 write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("lz4 close: %v", err)
	}
	return buffer.Bytes()
}
