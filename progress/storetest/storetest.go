// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package storetest provides a test suite that every
// [progress.Store] implementation should pass.
package storetest

import (
	"context"
	"sync"
	"testing"
	"time"

	"cogentcore.org/rainbow/base/errors"
	"cogentcore.org/rainbow/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Run runs the store test suite, calling newStore for a fresh empty
// store in each subtest.
func Run(t *testing.T, newStore func(t *testing.T) progress.Store) {
	t.Run("LoadMissing", func(t *testing.T) {
		s := newStore(t)
		p, err := s.Load(context.Background(), progress.ColorHarmony)
		require.NoError(t, err)
		assert.Equal(t, progress.New(progress.ColorHarmony), p)
	})

	t.Run("SaveLoad", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		p := played(t)
		require.NoError(t, s.Save(ctx, p))
		q, err := s.Load(ctx, progress.ColorDistinguish)
		require.NoError(t, err)
		assert.Equal(t, p, q)

		other, err := s.Load(ctx, progress.ColorMemory)
		require.NoError(t, err)
		assert.Equal(t, progress.New(progress.ColorMemory), other)

		// saved values do not alias the caller's map
		p.LevelScores[9] = 99
		q, err = s.Load(ctx, progress.ColorDistinguish)
		require.NoError(t, err)
		assert.NotContains(t, q.LevelScores, 9)
	})

	t.Run("LoadAllReset", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		all, err := s.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, all)

		p := played(t)
		require.NoError(t, s.Save(ctx, p))
		require.NoError(t, s.Save(ctx, progress.New(progress.ColorMemory)))
		all, err = s.LoadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 2)
		assert.Equal(t, p, all[progress.ColorDistinguish])

		require.NoError(t, s.Reset(ctx, progress.ColorDistinguish))
		q, err := s.Load(ctx, progress.ColorDistinguish)
		require.NoError(t, err)
		assert.Equal(t, progress.New(progress.ColorDistinguish), q)
		all, err = s.LoadAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)

		// resetting a missing mode is not an error
		require.NoError(t, s.Reset(ctx, progress.ColorHarmony))
	})

	t.Run("Update", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		p, err := s.Update(ctx, progress.ColorDistinguish, func(p progress.Progress) (progress.Progress, error) {
			p, _, err := progress.FoldLevel(p, 1, 60)
			return p, err
		})
		require.NoError(t, err)
		assert.Equal(t, 60, p.TotalScore)

		fail := errors.New("fail")
		_, err = s.Update(ctx, progress.ColorDistinguish, func(p progress.Progress) (progress.Progress, error) {
			return p.Reset(), fail
		})
		assert.ErrorIs(t, err, fail)
		q, err := s.Load(ctx, progress.ColorDistinguish)
		require.NoError(t, err)
		assert.Equal(t, p, q)
	})

	t.Run("ConcurrentUpdate", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		var wg sync.WaitGroup
		for l := 1; l <= 10; l++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Update(ctx, progress.ColorDistinguish, func(p progress.Progress) (progress.Progress, error) {
					p, _, err := progress.FoldLevel(p, l, 70)
					return p, err
				})
				assert.NoError(t, err)
			}()
		}
		wg.Wait()
		p, err := s.Load(ctx, progress.ColorDistinguish)
		require.NoError(t, err)
		assert.Len(t, p.LevelScores, 10)
		assert.Equal(t, 700, p.TotalScore)
		assert.NoError(t, p.Check())
	})

	t.Run("Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		s := newStore(t)
		_, err := s.Load(ctx, progress.ColorDistinguish)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, s.Save(ctx, progress.New(progress.ColorDistinguish)), context.Canceled)
	})
}

// played returns a progress with a few levels played, with a
// LastPlayedAt that survives every supported encoding exactly.
func played(t *testing.T) progress.Progress {
	p := progress.New(progress.ColorDistinguish)
	for l, s := range map[int]int{1: 64, 2: 40, 6: 75} {
		var err error
		p, _, err = progress.FoldLevel(p, l, s)
		require.NoError(t, err)
	}
	return p.Touch(time.Date(2024, 6, 30, 18, 45, 12, 0, time.UTC))
}
