// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord(t *testing.T) {
	p := New(ColorMemory)
	p, _, _ = FoldLevel(p, 1, 80)
	p, _, _ = FoldLevel(p, 2, 30)
	p = p.Touch(time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC))

	r := NewRecord(p)
	assert.Equal(t, "COLOR_MEMORY", r.GameMode)
	assert.Equal(t, map[string]int{"1": 80, "2": 30}, r.LevelScores)
	assert.Equal(t, 110, r.TotalScore)

	q, err := r.Progress()
	require.NoError(t, err)
	assert.Equal(t, p, q)
}

func TestRecordTolerant(t *testing.T) {
	r := Record{
		GameMode:        "COLOR_HARMONY",
		CurrentLevel:    4,
		LevelScores:     map[string]int{"1": 80, "two": 30},
		TotalScore:      110,
		CompletedLevels: 1,
	}
	p, err := r.Progress()
	require.NoError(t, err)
	assert.Empty(t, p.LevelScores)
	assert.Zero(t, p.TotalScore)
	assert.Zero(t, p.CompletedLevels)
	assert.Equal(t, 4, p.CurrentLevel)

	r.CurrentLevel = 77
	r.LevelScores = nil
	p, err = r.Progress()
	require.NoError(t, err)
	assert.Equal(t, 1, p.CurrentLevel)
	assert.NotNil(t, p.LevelScores)

	r.GameMode = "COLOR_SORTING"
	_, err = r.Progress()
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestRecordDecodedLevelScores(t *testing.T) {
	tests := []struct {
		scores any
		want   map[int]int
	}{
		{map[string]any{"1": float64(60), "2": float64(54)}, map[int]int{1: 60, 2: 54}},
		{map[string]any{"3": int64(70)}, map[int]int{3: 70}},
		{map[any]any{4: 61, "5": 62}, map[int]int{4: 61, 5: 62}},
		{`{"1":55}`, map[int]int{1: 55}},
		{"{oops", map[int]int{}},
		{map[string]any{"1": "x"}, map[int]int{}},
		{map[string]any{"1": 60.5}, map[int]int{}},
		{map[string]any{"1": map[string]any{}}, map[int]int{}},
		{[]any{float64(60)}, map[int]int{}},
		{float64(60), map[int]int{}},
	}
	for _, test := range tests {
		r := Record{GameMode: "COLOR_DISTINGUISH", CurrentLevel: 3, LevelScores: test.scores}
		p, err := r.Progress()
		require.NoError(t, err, test.scores)
		assert.Equal(t, test.want, p.LevelScores, test.scores)
		assert.Equal(t, 3, p.CurrentLevel)
		assert.NoError(t, p.Check())
	}
}

func TestLevelScoresCodec(t *testing.T) {
	s := EncodeLevelScores(map[int]int{3: 70, 1: 55})
	assert.Equal(t, `{"1":55,"3":70}`, s)
	assert.Equal(t, map[int]int{1: 55, 3: 70}, DecodeLevelScores(s))
	assert.Equal(t, "{}", EncodeLevelScores(nil))

	for _, bad := range []string{"", "null", "not json", `{"1":`, `{"x":5}`, `{"0":5}`, `{"31":5}`, `{"2":-1}`, `[1,2]`, `{"1":"a"}`} {
		m := DecodeLevelScores(bad)
		assert.NotNil(t, m, bad)
		assert.Empty(t, m, bad)
	}
}
