// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package levels

import (
	"testing"

	"cogentcore.org/rainbow/base/errors"
	"cogentcore.org/rainbow/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstAndLastLevel(t *testing.T) {
	p, err := ProfileFor(1)
	require.NoError(t, err)
	tolassert.Equal(t, float32(8), p.TargetDeltaE)
	assert.Equal(t, HueOnly, p.Strategy)
	assert.Equal(t, 50, p.RequiredScore)
	assert.Equal(t, Easy, p.Tier)

	p, err = ProfileFor(30)
	require.NoError(t, err)
	tolassert.Equal(t, float32(1.5), p.TargetDeltaE)
	assert.Equal(t, AllAxes, p.Strategy)
	assert.Equal(t, 95, p.RequiredScore)
	assert.Equal(t, Master, p.Tier)
}

func TestInvalidLevel(t *testing.T) {
	for _, l := range []int{-3, 0, 31, 100} {
		_, err := TargetDeltaE(l)
		assert.True(t, errors.Is(err, ErrInvalidLevel), l)
		_, err = RequiredScore(l)
		assert.ErrorIs(t, err, ErrInvalidLevel)
		_, err = StrategyFor(l)
		assert.ErrorIs(t, err, ErrInvalidLevel)
		_, err = TierName(l)
		assert.ErrorIs(t, err, ErrInvalidLevel)
		_, err = ProfileFor(l)
		assert.ErrorIs(t, err, ErrInvalidLevel)
		assert.False(t, IsTierStart(l))
	}
	assert.EqualError(t, Validate(31), "invalid level: 31 is not within [1, 30]")
}

func TestMonotonic(t *testing.T) {
	prevD := float32(1e9)
	prevS := 0
	for l := MinLevel; l <= MaxLevel; l++ {
		d, err := TargetDeltaE(l)
		require.NoError(t, err)
		s, err := RequiredScore(l)
		require.NoError(t, err)
		assert.LessOrEqual(t, d, prevD, l)
		assert.GreaterOrEqual(t, d, float32(EndDeltaE), l)
		assert.GreaterOrEqual(t, s, prevS, l)
		assert.LessOrEqual(t, s, MaxRequiredScore, l)
		prevD, prevS = d, s
	}
}

func TestTargetDeltaE(t *testing.T) {
	d, _ := TargetDeltaE(2)
	tolassert.Equal(t, float32(7.52), d)
	d, _ = TargetDeltaE(11)
	tolassert.EqualTol(t, float32(4.3089), d, 0.001)
	d, _ = TargetDeltaE(28)
	tolassert.EqualTol(t, float32(1.5050), d, 0.001)
	d, _ = TargetDeltaE(29)
	tolassert.Equal(t, float32(1.5), d)
}

func TestRequiredScore(t *testing.T) {
	want := map[int]int{1: 50, 2: 52, 10: 68, 11: 70, 20: 88, 21: 90, 25: 94, 26: 95, 30: 95}
	for l, s := range want {
		got, err := RequiredScore(l)
		require.NoError(t, err)
		assert.Equal(t, s, got, l)
	}
}

func TestStrategyBands(t *testing.T) {
	want := map[Strategy][2]int{
		HueOnly:         {1, 10},
		HueChroma:       {11, 15},
		HueLightness:    {16, 20},
		ChromaLightness: {21, 25},
		AllAxes:         {26, 30},
	}
	for s, band := range want {
		for l := band[0]; l <= band[1]; l++ {
			got, err := StrategyFor(l)
			require.NoError(t, err)
			assert.Equal(t, s, got, l)
		}
	}
}

func TestTiers(t *testing.T) {
	assert.Equal(t, []int{1, 6, 11, 16, 21, 26}, TierStarts())
	names := []string{"Easy", "Normal", "Hard", "Advanced", "Expert", "Master"}
	for l := MinLevel; l <= MaxLevel; l++ {
		n, err := TierName(l)
		require.NoError(t, err)
		assert.Equal(t, names[(l-1)/5], n)
		assert.Equal(t, (l-1)%5 == 0, IsTierStart(l))
	}
	assert.Equal(t, 16, Advanced.Start())
	assert.Equal(t, 20, Advanced.End())
	assert.Equal(t, 30, Master.End())
	assert.Equal(t, "Tier(9)", Tier(9).String())
}

func TestStrategyText(t *testing.T) {
	for _, s := range Strategies() {
		b, err := s.MarshalText()
		require.NoError(t, err)
		var back Strategy
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, s, back)
	}
	s, err := ParseStrategy(" Chroma-Lightness ")
	require.NoError(t, err)
	assert.Equal(t, ChromaLightness, s)

	_, err = ParseStrategy("saturation")
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	_, err = Strategy(7).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownStrategy)
	assert.Equal(t, "Strategy(7)", Strategy(7).String())

	l, c, h := ChromaLightness.Axes()
	assert.Equal(t, []bool{true, true, false}, []bool{l, c, h})
	l, c, h = HueOnly.Axes()
	assert.Equal(t, []bool{false, false, true}, []bool{l, c, h})
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, MaxLevel)
	for i, p := range all {
		assert.Equal(t, i+1, p.Level)
	}
}
