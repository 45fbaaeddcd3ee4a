// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for jsonl-viewer.
//
// Configuration is optional and comes from a single file passed with
// --config. There is no ~/.config discovery and no environment
// variable override: without --config the viewer runs on [Default].
//
// Files ending in .json or .jsonc are JSON with comments, normalised
// with tidwall/jsonc before decoding; every other file is YAML.
// Variable expansion is performed on start_directory after loading:
// ${HOME} and ${VAR:-default} patterns are expanded.
//
// Key exports:
//
//   - [Config] -- start directory, split ratio, hidden files, log level
//   - [Default] -- the configuration used without a file
//   - [LoadFile] -- decode a file over the defaults
//
// This package depends on no other jsonl-viewer packages.
package config
