// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/rainbow/progress"
	"cogentcore.org/rainbow/progress/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore(t *testing.T) {
	for _, ext := range Extensions() {
		t.Run(ext, func(t *testing.T) {
			storetest.Run(t, func(t *testing.T) progress.Store {
				s, err := New(filepath.Join(t.TempDir(), "progress"+ext))
				require.NoError(t, err)
				return s
			})
		})
	}
}

func TestUnsupported(t *testing.T) {
	_, err := New("progress.xml")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.ErrorContains(t, err, ".json, .toml, .yaml, .yml")
	_, err = New("progress")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	s, err := New("Progress.JSON")
	require.NoError(t, err)
	assert.Equal(t, "Progress.JSON", s.Filename())
}

func TestTolerantLevelScores(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "progress.json")
	data := `{"modes": [
	{"gameMode": "COLOR_HARMONY", "currentLevel": 3, "levelScores": {"1": 60, "oops": 5}, "totalScore": 65, "completedLevels": 1},
	{"gameMode": "COLOR_PAINTING", "currentLevel": 2},
	{"gameMode": "color_memory", "currentLevel": 2, "levelScores": {"1": 58}, "totalScore": 58, "completedLevels": 1}
]}`
	require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
	s, err := New(fn)
	require.NoError(t, err)

	all, err := s.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)

	h := all[progress.ColorHarmony]
	assert.Empty(t, h.LevelScores)
	assert.Zero(t, h.TotalScore)
	assert.Equal(t, 3, h.CurrentLevel)

	m := all[progress.ColorMemory]
	assert.Equal(t, map[int]int{1: 58}, m.LevelScores)
	assert.Equal(t, 1, m.CompletedLevels)
}

func TestMalformedLevelScores(t *testing.T) {
	files := map[string]string{
		"string.json": `{"modes":[{"gameMode":"COLOR_DISTINGUISH","currentLevel":3,"levelScores":"{oops"}]}`,
		"value.json":  `{"modes":[{"gameMode":"COLOR_DISTINGUISH","currentLevel":3,"levelScores":{"1":"x"}}]}`,
		"list.json":   `{"modes":[{"gameMode":"COLOR_DISTINGUISH","currentLevel":3,"levelScores":[60]}]}`,
		"value.toml":  "[[modes]]\ngameMode = 'COLOR_DISTINGUISH'\ncurrentLevel = 3\n\n[modes.levelScores]\n1 = 'x'\n",
		"string.toml": "[[modes]]\ngameMode = 'COLOR_DISTINGUISH'\ncurrentLevel = 3\nlevelScores = 'oops'\n",
		"value.yaml":  "modes:\n  - gameMode: COLOR_DISTINGUISH\n    currentLevel: 3\n    levelScores:\n      \"1\": [x]\n",
		"string.yaml": "modes:\n  - gameMode: COLOR_DISTINGUISH\n    currentLevel: 3\n    levelScores: oops\n",
	}
	for name, data := range files {
		fn := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
		s, err := New(fn)
		require.NoError(t, err)
		p, err := s.Load(context.Background(), progress.ColorDistinguish)
		require.NoError(t, err, name)
		assert.Equal(t, 3, p.CurrentLevel, name)
		assert.Empty(t, p.LevelScores, name)
		assert.Zero(t, p.TotalScore, name)
	}

	// integer keys and numbers are read the same in every format
	for name, data := range map[string]string{
		"scores.json": `{"modes":[{"gameMode":"COLOR_DISTINGUISH","currentLevel":2,"levelScores":{"1":60}}]}`,
		"scores.toml": "[[modes]]\ngameMode = 'COLOR_DISTINGUISH'\ncurrentLevel = 2\n\n[modes.levelScores]\n1 = 60\n",
		"scores.yaml": "modes:\n  - gameMode: COLOR_DISTINGUISH\n    currentLevel: 2\n    levelScores:\n      1: 60\n",
	} {
		fn := filepath.Join(t.TempDir(), name)
		require.NoError(t, os.WriteFile(fn, []byte(data), 0o644))
		s, err := New(fn)
		require.NoError(t, err)
		p, err := s.Load(context.Background(), progress.ColorDistinguish)
		require.NoError(t, err, name)
		assert.Equal(t, map[int]int{1: 60}, p.LevelScores, name)
		assert.Equal(t, 1, p.CompletedLevels, name)
	}
}

func TestCorruptFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "progress.toml")
	require.NoError(t, os.WriteFile(fn, []byte("modes = [[["), 0o644))
	s, err := New(fn)
	require.NoError(t, err)
	_, err = s.Load(context.Background(), progress.ColorDistinguish)
	assert.ErrorContains(t, err, "reading progress file")
}
