// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package levels maps the linear difficulty progression of levels
// 1 to 30 onto perceptual targets: the ΔE between the base and distinct
// colors, the variation strategy, the score required to pass, and the
// tier name. All functions are pure and are total over the valid levels.
package levels

import (
	"fmt"

	"cogentcore.org/rainbow/base/errors"
	"cogentcore.org/rainbow/math32"
)

const (
	// MinLevel is the first level.
	MinLevel = 1

	// MaxLevel is the last level.
	MaxLevel = 30

	// LevelsPerTier is the number of levels in each [Tier].
	LevelsPerTier = 5

	// StartDeltaE is the target ΔE at the first level.
	StartDeltaE = 8.0

	// EndDeltaE is the floor of the target ΔE, reached near the last level.
	EndDeltaE = 1.5

	// DecayRate is the fraction by which the target ΔE shrinks per level.
	DecayRate = 0.06

	// MaxRequiredScore caps [RequiredScore].
	MaxRequiredScore = 95
)

// ErrInvalidLevel is returned for levels outside [MinLevel, MaxLevel].
var ErrInvalidLevel = errors.New("invalid level")

// Validate returns an error wrapping [ErrInvalidLevel] if the level
// is out of range.
func Validate(level int) error {
	if level < MinLevel || level > MaxLevel {
		return fmt.Errorf("%w: %d is not within [%d, %d]", ErrInvalidLevel, level, MinLevel, MaxLevel)
	}
	return nil
}

// TargetDeltaE returns the perceptual distance between the base and
// distinct colors at the given level, decaying exponentially from
// [StartDeltaE] down to the [EndDeltaE] floor.
func TargetDeltaE(level int) (float32, error) {
	if err := Validate(level); err != nil {
		return 0, err
	}
	return math32.Max(EndDeltaE, StartDeltaE*math32.Pow(1-DecayRate, float32(level-1))), nil
}

// RequiredScore returns the score needed to pass the given level.
// It rises linearly in three bands of ten levels and is capped at
// [MaxRequiredScore].
func RequiredScore(level int) (int, error) {
	if err := Validate(level); err != nil {
		return 0, err
	}
	var s int
	switch {
	case level <= 10:
		s = 50 + 2*(level-1)
	case level <= 20:
		s = 70 + 2*(level-11)
	default:
		s = 90 + (level - 21)
	}
	return min(s, MaxRequiredScore), nil
}

// TierFor returns the tier containing the given level.
func TierFor(level int) (Tier, error) {
	if err := Validate(level); err != nil {
		return Easy, err
	}
	return Tier((level - MinLevel) / LevelsPerTier), nil
}

// TierName returns the name of the tier containing the given level.
func TierName(level int) (string, error) {
	t, err := TierFor(level)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// StrategyFor returns the variation strategy for the given level.
func StrategyFor(level int) (Strategy, error) {
	t, err := TierFor(level)
	if err != nil {
		return HueOnly, err
	}
	return t.Strategy(), nil
}

// IsTierStart returns whether the level is the first level of a tier.
// Such levels are always unlocked.
func IsTierStart(level int) bool {
	return Validate(level) == nil && (level-MinLevel)%LevelsPerTier == 0
}

// TierStarts returns the first level of every tier.
func TierStarts() []int {
	starts := make([]int, TiersN)
	for t := range TiersN {
		starts[t] = t.Start()
	}
	return starts
}

// Profile is everything derived from a level.
type Profile struct {
	Level         int
	TargetDeltaE  float32
	RequiredScore int
	Strategy      Strategy
	Tier          Tier
}

// ProfileFor returns the [Profile] of the given level.
func ProfileFor(level int) (Profile, error) {
	if err := Validate(level); err != nil {
		return Profile{}, err
	}
	p := Profile{Level: level}
	p.TargetDeltaE = errors.Ignore1(TargetDeltaE(level))
	p.RequiredScore = errors.Ignore1(RequiredScore(level))
	p.Tier = errors.Ignore1(TierFor(level))
	p.Strategy = p.Tier.Strategy()
	return p, nil
}

// All returns the profiles of all levels in order.
func All() []Profile {
	ps := make([]Profile, 0, MaxLevel)
	for l := MinLevel; l <= MaxLevel; l++ {
		p, _ := ProfileFor(l)
		ps = append(ps, p)
	}
	return ps
}
