// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, true, true))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, DefaultLevel(), LevelFromFlags(false, false, false))
}

func TestDefaultLevel(t *testing.T) {
	assert.Equal(t, "dev", Build)
	assert.Equal(t, slog.LevelInfo, DefaultLevel())
	for _, b := range []string{"debug", "dev", "release"} {
		assert.Contains(t, buildLevels, b)
	}
}

func TestHandler(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
	l.Debug("hidden")
	l.Info("saved progress", "mode", "COLOR_MEMORY", "level", 3)
	l.Warn("degraded challenge", "target", 4.5, "note", "two words")
	l.With("store", "sqlite").WithGroup("db").Error("failed", "err", errors.New("locked"), slog.Group("pragma", "busy", 5000))

	assert.Equal(t, `INFO  saved progress mode=COLOR_MEMORY level=3
WARN  degraded challenge target=4.5 note="two words"
ERROR failed store=sqlite db.err=locked db.pragma.busy=5000
`, buf.String())
}

func TestDefaultLogger(t *testing.T) {
	old := UserLevel
	defer func() { UserLevel = old }()
	UserLevel = slog.LevelDebug
	SetDefaultLogger()
	assert.True(t, slog.Default().Enabled(t.Context(), slog.LevelDebug))

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
