// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"cogentcore.org/rainbow/base/errors"
	"cogentcore.org/rainbow/colors"
	"cogentcore.org/rainbow/colors/oklch"
	"cogentcore.org/rainbow/levels"
)

// DefaultCount is the default number of colors in a challenge (a 3x3 grid).
const DefaultCount = 9

// ErrInvalidCount is returned for challenge sets with fewer than two colors.
var ErrInvalidCount = errors.New("invalid color count")

// Challenge is one generated question: a set of colors in which exactly
// one, at CorrectIndex, differs from the rest.
type Challenge struct {
	Level         int
	Colors        []colors.RGB
	CorrectIndex  int
	RequiredScore int

	// TargetDeltaE is the jittered ΔE that was requested.
	TargetDeltaE float32

	// ActualDeltaE is the ΔE between the generated base and distinct
	// colors. It is outside [Tolerance] of TargetDeltaE only when the
	// search fell back to the closest achievable color.
	ActualDeltaE float32

	Strategy levels.Strategy
	TierName string

	Base     oklch.OKLCH
	Distinct oklch.OKLCH
}

// IsCorrect returns whether the given index is the distinct color.
func (c *Challenge) IsCorrect(index int) bool {
	return index == c.CorrectIndex
}

// Choices returns the colors of the challenge.
func (c *Challenge) Choices() []colors.RGB {
	return c.Colors
}

// Solution returns the index of the distinct color.
func (c *Challenge) Solution() int {
	return c.CorrectIndex
}

// Degraded returns whether the distinct color missed the target ΔE
// by more than [Tolerance].
func (c *Challenge) Degraded() bool {
	return !withinTolerance(c.ActualDeltaE, c.TargetDeltaE)
}

// BuildSet returns count-1 copies of base followed by the distinct color.
// Shuffling is left to the caller.
func BuildSet(count int, base, distinct oklch.OKLCH) ([]colors.RGB, error) {
	if count < 2 {
		return nil, fmt.Errorf("%w: %d (need at least 2)", ErrInvalidCount, count)
	}
	b := base.RGB()
	set := make([]colors.RGB, count)
	for i := range count - 1 {
		set[i] = b
	}
	set[count-1] = distinct.RGB()
	return set, nil
}

// Challenge generates a challenge of count colors for the given level.
// A count of 0 uses [DefaultCount]. Up to [MaxBases] base colors from
// [Generator.BaseFor] are tried, until one has a distinct color within
// tolerance that differs only along the axes of the strategy of the
// level; otherwise the last one is used.
func (g *Generator) Challenge(level, count int) (Challenge, error) {
	return g.challenge(level, count, nil)
}

// ChallengeWithBase is [Generator.Challenge] with the given base color,
// which is brought into gamut with [oklch.ClampToGamut].
func (g *Generator) ChallengeWithBase(level, count int, base oklch.OKLCH) (Challenge, error) {
	base = oklch.ClampToGamut(base)
	return g.challenge(level, count, &base)
}

func (g *Generator) challenge(level, count int, fixed *oklch.OKLCH) (Challenge, error) {
	prof, err := levels.ProfileFor(level)
	if err != nil {
		return Challenge{}, err
	}
	if count == 0 {
		count = DefaultCount
	}
	if count < 2 {
		return Challenge{}, fmt.Errorf("%w: %d (need at least 2)", ErrInvalidCount, count)
	}
	target := g.Jitter(prof.TargetDeltaE)
	var base, distinct oklch.OKLCH
	for range MaxBases {
		if fixed != nil {
			base = *fixed
		} else {
			base = g.BaseFor(target, prof.Strategy)
		}
		var exact bool
		distinct, exact = g.distinct(base, target, prof.Strategy)
		if exact || fixed != nil {
			break
		}
	}
	set, err := BuildSet(count, base, distinct)
	if err != nil {
		return Challenge{}, err
	}
	correct := g.shuffle(set, count-1)
	return Challenge{
		Level:         level,
		Colors:        set,
		CorrectIndex:  correct,
		RequiredScore: prof.RequiredScore,
		TargetDeltaE:  target,
		ActualDeltaE:  oklch.DeltaE(base, distinct),
		Strategy:      prof.Strategy,
		TierName:      prof.Tier.String(),
		Base:          base,
		Distinct:      distinct,
	}, nil
}

// shuffle shuffles the colors with the random source of the generator,
// returning the new index of the color at index i.
func (g *Generator) shuffle(cs []colors.RGB, i int) int {
	g.Rand.Shuffle(len(cs), func(a, b int) {
		cs[a], cs[b] = cs[b], cs[a]
		switch i {
		case a:
			i = b
		case b:
			i = a
		}
	})
	return i
}
