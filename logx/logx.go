// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the logging verbosity settings of the
// command line tools, and a terminal [slog.Handler] that colors
// messages by level.
package logx

import (
	"log/slog"
	"os"
)

// buildLevels are the default verbosity levels of each [Build].
var buildLevels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"dev":     slog.LevelInfo,
	"release": slog.LevelWarn,
}

// DefaultLevel returns the verbosity used when no flag is given:
// [slog.LevelDebug] in debug builds, [slog.LevelWarn] in release
// builds, and [slog.LevelInfo] otherwise.
func DefaultLevel() slog.Level {
	return buildLevels[Build]
}

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set from command line flags with [LevelFromFlags].
var UserLevel = DefaultLevel()

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [DefaultLevel])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return DefaultLevel()
	}
}

// SetDefaultLogger sets the default logger to be a [Handler] writing
// to stderr, with the level set to [UserLevel].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr, &slog.HandlerOptions{Level: UserLevel})))
}
