// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sqlitestore

import (
	"context"
	"path/filepath"
	"testing"

	"cogentcore.org/rainbow/progress"
	"cogentcore.org/rainbow/progress/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "progress.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStore(t *testing.T) {
	storetest.Run(t, func(t *testing.T) progress.Store {
		return openTestStore(t)
	})
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	assert.ErrorContains(t, err, "storage path is required")
}

func TestReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "progress.db")
	s, err := Open(path)
	require.NoError(t, err)
	p, _, err := progress.FoldLevel(progress.New(progress.ColorHarmony), 1, 66)
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, p))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	q, err := s.Load(ctx, progress.ColorHarmony)
	require.NoError(t, err)
	assert.Equal(t, p, q)
}

func TestMalformedLevelScores(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	_, err := s.sqlDB.Exec(`INSERT INTO game_progress (`+columns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		"COLOR_MEMORY", 5, "{not json", 120, 2, nil)
	require.NoError(t, err)
	_, err = s.sqlDB.Exec(`INSERT INTO game_progress (`+columns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		"COLOR_CHESS", 1, "{}", 0, 0, nil)
	require.NoError(t, err)

	p, err := s.Load(ctx, progress.ColorMemory)
	require.NoError(t, err)
	assert.Empty(t, p.LevelScores)
	assert.Zero(t, p.TotalScore)
	assert.Zero(t, p.CompletedLevels)
	assert.Equal(t, 5, p.CurrentLevel)
	assert.True(t, p.LastPlayedAt.IsZero())

	all, err := s.LoadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
