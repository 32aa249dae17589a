// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package palette generates base colors and distinct companion colors
// whose perceptual distance (ΔE) from the base matches a target, while
// staying within the sRGB gamut. Generation never fails: when the
// bounded search cannot meet the tolerance, the closest achievable color
// is returned.
package palette

import (
	"cogentcore.org/rainbow/base/randx"
	"cogentcore.org/rainbow/colors/oklch"
	"cogentcore.org/rainbow/levels"
	"cogentcore.org/rainbow/math32"
)

// The safe ranges keep generated colors away from the extremes of
// lightness and chroma, where the sRGB gamut is narrow.
const (
	MinLightness = 0.20
	MaxLightness = 0.85
	MinChroma    = 0.02
	MaxChroma    = 0.32
)

const (
	// MaxAttempts bounds every sampling loop in the generator.
	MaxAttempts = 100

	// Tolerance is the accepted relative error of the ΔE of a distinct color.
	Tolerance = 0.10

	// JitterFraction is the relative random variation applied to the
	// target ΔE of each question, so that no fixed pattern can be learned.
	JitterFraction = 0.08

	// MinDeltaE and MaxDeltaE bound the jittered target ΔE.
	MinDeltaE = 1
	MaxDeltaE = 30

	// MaxBases bounds the number of base colors tried for one challenge.
	MaxBases = 10
)

// fallbackBase is used when no in gamut base color was sampled;
// only its hue is randomized.
var fallbackBase = oklch.OKLCH{L: 0.5, C: 0.15}

// Generator generates challenge colors from its random source.
// A Generator with a separate seeded source must only be used
// by one goroutine at a time; create one Generator per goroutine.
type Generator struct {

	// Rand is the random source used for all sampling.
	Rand randx.Rand
}

// New returns a new [Generator] using the given random source,
// or the global source if it is nil.
func New(rnd randx.Rand) *Generator {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	return &Generator{Rand: rnd}
}

// NewSeeded returns a new [Generator] with its own source seeded
// with the given seed, for reproducible results.
func NewSeeded(seed int64) *Generator {
	return New(randx.NewSysRand(seed))
}

// SafeBase returns a random in gamut base color with lightness and
// chroma in the safe ranges. It samples at most [MaxAttempts] times,
// after which it falls back to a mid lightness, mid chroma color
// with a random hue.
func (g *Generator) SafeBase() oklch.OKLCH {
	return g.safeBase(MinChroma)
}

// BaseFor returns a safe base color, as [Generator.SafeBase], from which
// the target ΔE can be reached by a hue rotation alone. For strategies
// that vary hue, its chroma is at least target/100: the hue chord then
// never exceeds the chroma, so the rotation is at most 60°.
func (g *Generator) BaseFor(target float32, strategy levels.Strategy) oklch.OKLCH {
	if _, _, useH := strategy.Axes(); !useH {
		return g.SafeBase()
	}
	return g.safeBase(math32.Clamp(target/100, MinChroma, MaxChroma/2))
}

func (g *Generator) safeBase(minChroma float32) oklch.OKLCH {
	for range MaxAttempts {
		c := oklch.New(
			randx.Uniform32(MinLightness, MaxLightness, g.Rand),
			randx.Uniform32(minChroma, MaxChroma, g.Rand),
			randx.Uniform32(0, 360, g.Rand))
		if c.InGamut() {
			return c
		}
	}
	return oklch.ClampToGamut(fallbackBase.WithH(randx.Uniform32(0, 360, g.Rand)))
}

// Jitter returns the target ΔE randomly varied by up to
// ±[JitterFraction], clamped to [MinDeltaE, MaxDeltaE].
func (g *Generator) Jitter(target float32) float32 {
	v := 1 + randx.Symmetric32(JitterFraction, g.Rand)
	return math32.Clamp(target*v, MinDeltaE, MaxDeltaE)
}

// Distinct returns a color whose ΔE from base is within [Tolerance] of
// the target, differing only along the axes allowed by the strategy.
// Each of at most [MaxAttempts] attempts samples a direction over the
// allowed axes, steps the target distance along it, and clamps the
// result to the safe ranges. The first in gamut candidate within
// tolerance is returned. If there is none, a candidate brought into
// gamut by [oklch.ClampToGamut] that is within tolerance is used, and
// failing that, the closest candidate brought into gamut. The result is
// always in gamut.
func (g *Generator) Distinct(base oklch.OKLCH, target float32, strategy levels.Strategy) oklch.OKLCH {
	c, _ := g.distinct(base, target, strategy)
	return c
}

// distinct is [Generator.Distinct], also returning whether the result is
// an in gamut candidate within tolerance, which differs from base only
// along the axes of the strategy.
func (g *Generator) distinct(base oklch.OKLCH, target float32, strategy levels.Strategy) (oklch.OKLCH, bool) {
	var best, clamped oklch.OKLCH
	bestMiss := float32(math32.MaxFloat32)
	haveClamped := false
	for range MaxAttempts {
		cand := clampSafe(g.step(base, target, strategy))
		d := oklch.DeltaE(base, cand)
		if cand.InGamut() {
			if withinTolerance(d, target) {
				return cand, true
			}
		} else if !haveClamped {
			gc := oklch.ClampToGamut(cand)
			if withinTolerance(oklch.DeltaE(base, gc), target) {
				clamped, haveClamped = gc, true
			}
		}
		if miss := math32.Abs(d - target); miss < bestMiss {
			best, bestMiss = cand, miss
		}
	}
	if haveClamped {
		return clamped, false
	}
	return oklch.ClampToGamut(best), false
}

// step returns base moved by the target ΔE along a random direction
// over the axes of the strategy. The hue component of the direction
// is a chord length, which is converted to a hue angle at the average
// chroma of the two colors, so that the unclamped result is at exactly
// the target ΔE whenever that chord is reachable.
func (g *Generator) step(base oklch.OKLCH, target float32, strategy levels.Strategy) oklch.OKLCH {
	dl, dc, dh := g.direction(strategy)
	mag := math32.Sqrt(dl*dl + dc*dc + dh*dh)
	scale := (target / 100) / mag
	dl, dc, dh = dl*scale, dc*scale, dh*scale
	c := base.C + dc
	angle, _ := oklch.HueAngle(dh, (base.C+c)/2)
	return oklch.New(base.L+dl, c, base.H+angle)
}

// direction returns a random nonzero direction over the axes of the
// strategy, with disallowed axes pinned to zero. When hue varies along
// with only one other axis, that axis has a narrower range so that hue
// stays the dominant difference.
func (g *Generator) direction(strategy levels.Strategy) (dl, dc, dh float32) {
	useL, useC, useH := strategy.Axes()
	secondary := float32(1)
	if useH && useL != useC {
		secondary = 0.75
	}
	if useL {
		dl = randx.Symmetric32(secondary, g.Rand)
	}
	if useC {
		dc = randx.Symmetric32(secondary, g.Rand)
	}
	if useH {
		dh = randx.Symmetric32(1, g.Rand)
	}
	if dl == 0 && dc == 0 && dh == 0 {
		switch {
		case useH:
			dh = 1
		case useL:
			dl = 1
		default:
			dc = 1
		}
	}
	return
}

// clampSafe clamps lightness and chroma to the safe ranges.
func clampSafe(c oklch.OKLCH) oklch.OKLCH {
	return oklch.New(
		math32.Clamp(c.L, MinLightness, MaxLightness),
		math32.Clamp(c.C, MinChroma, MaxChroma),
		c.H)
}

func withinTolerance(d, target float32) bool {
	return math32.Abs(d-target) <= target*Tolerance
}
