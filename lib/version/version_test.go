// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"bytes"
	"runtime"
	"runtime/debug"
	"strings"
	"testing"
)

// withBuild sets the ldflags variables and the embedded build info
// for the duration of the test.
func withBuild(t *testing.T, commit, dirty, buildTime, semver string, info *debug.BuildInfo) {
	t.Helper()
	originalCommit, originalDirty, originalTime, originalVersion := GitCommit, GitDirty, BuildTime, Version
	originalRead := readBuildInfo
	t.Cleanup(func() {
		GitCommit, GitDirty, BuildTime, Version = originalCommit, originalDirty, originalTime, originalVersion
		readBuildInfo = originalRead
	})

	GitCommit, GitDirty, BuildTime, Version = commit, dirty, buildTime, semver
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestInfoFromLdflags(t *testing.T) {
	vcs := &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "ffffffffffffffff"},
	}}
	withBuild(t, "abc1234", "false", "2026-10-01T12:00:00Z", "1.2.0", vcs)

	if got, want := Info(), "1.2.0 (abc1234, 2026-10-01T12:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}

	GitDirty = "true"
	if got := Info(); !strings.Contains(got, "abc1234-dirty") {
		t.Errorf("Info() = %q, want dirty marker", got)
	}
}

func TestInfoFallsBackToVCSSettings(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.time", Value: "2026-09-30T08:00:00Z"},
			{Key: "vcs.modified", Value: "true"},
		},
	}
	withBuild(t, unset, "false", unset, defaultVersion, info)

	if got, want := Info(), "v0.3.1 (0123456-dirty, 2026-09-30T08:00:00Z)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
	if got := Short(); got != "v0.3.1" {
		t.Errorf("Short() = %q, want v0.3.1", got)
	}
}

func TestInfoWithoutBuildInfo(t *testing.T) {
	withBuild(t, unset, "false", unset, defaultVersion, nil)

	if got, want := Info(), "0.1.0-dev (unknown, unknown)"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestDevelModuleVersionIgnored(t *testing.T) {
	withBuild(t, unset, "false", unset, defaultVersion, &debug.BuildInfo{
		Main: debug.Module{Version: "(devel)"},
	})

	if got := Short(); got != defaultVersion {
		t.Errorf("Short() = %q, want %q", got, defaultVersion)
	}
}

func TestFprint(t *testing.T) {
	var buffer bytes.Buffer
	Fprint(&buffer, "jsonl-viewer")

	output := buffer.String()
	if !strings.HasPrefix(output, "jsonl-viewer "+Info()) {
		t.Errorf("output = %q, want binary name then Info()", output)
	}
	if !strings.Contains(output, runtime.Version()) {
		t.Errorf("output = %q, missing Go version", output)
	}
	if !strings.HasSuffix(output, "\n") {
		t.Error("output should end with a newline")
	}
}
