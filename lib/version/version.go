// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package version

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
)

const (
	unset          = "unknown"
	defaultVersion = "0.1.0-dev"
)

// Set via -ldflags -X at build time.
var (
	GitCommit = unset
	GitDirty  = "false"
	BuildTime = unset
	Version   = defaultVersion
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// stamp is the build metadata after filling ldflags gaps from the
// VCS settings the Go toolchain embeds (go install, go build in a
// checkout).
type stamp struct {
	version string
	commit  string
	dirty   bool
	time    string
}

func current() stamp {
	result := stamp{
		version: Version,
		commit:  GitCommit,
		dirty:   GitDirty == "true",
		time:    BuildTime,
	}

	info, ok := readBuildInfo()
	if !ok {
		return result
	}
	if result.version == defaultVersion && info.Main.Version != "" && info.Main.Version != "(devel)" {
		result.version = info.Main.Version
	}
	if result.commit != unset {
		return result
	}
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			result.commit = setting.Value
			if len(result.commit) > 7 {
				result.commit = result.commit[:7]
			}
		case "vcs.modified":
			result.dirty = setting.Value == "true"
		case "vcs.time":
			if result.time == unset {
				result.time = setting.Value
			}
		}
	}
	return result
}

// Info returns "<version> (<commit>[-dirty], <build time>)".
func Info() string {
	build := current()
	dirty := ""
	if build.dirty {
		dirty = "-dirty"
	}
	return fmt.Sprintf("%s (%s%s, %s)", build.version, build.commit, dirty, build.time)
}

// Full is Info plus the Go version and platform.
func Full() string {
	return fmt.Sprintf("%s\n  Go: %s\n  Platform: %s/%s",
		Info(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// Short returns just the version number.
func Short() string {
	return current().version
}

// Print writes the --version output for binary to stdout.
func Print(binary string) {
	Fprint(os.Stdout, binary)
}

// Fprint writes "<binary> <Full()>" to w.
func Fprint(w io.Writer, binary string) {
	fmt.Fprintf(w, "%s %s\n", binary, Full())
}
