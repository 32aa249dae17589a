// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package palette

import (
	"fmt"

	"cogentcore.org/rainbow/base/randx"
	"cogentcore.org/rainbow/colors"
	"cogentcore.org/rainbow/colors/oklch"
	"cogentcore.org/rainbow/levels"
	"cogentcore.org/rainbow/math32"
)

// Harmony is a kind of color harmony asked for by a [HarmonyPuzzle].
type Harmony int32

const (
	// Complementary is the color opposite the base on the hue circle.
	Complementary Harmony = iota

	// Analogous is a color within [AnalogousRange] of the base on the hue circle.
	Analogous

	HarmoniesN
)

func (h Harmony) String() string {
	switch h {
	case Complementary:
		return "complementary"
	case Analogous:
		return "analogous"
	}
	return fmt.Sprintf("Harmony(%d)", int32(h))
}

const (
	// HarmonyOptions is the number of colors offered by a [HarmonyPuzzle].
	HarmonyOptions = 4

	// AnalogousRange is the largest hue difference in degrees between
	// a color and its analogous colors.
	AnalogousRange = 30

	// minAnalogous is the smallest hue difference of a generated
	// analogous color, so that it is not mistaken for the base.
	minAnalogous = 10

	// minDecoy and maxDecoy are the smallest hue difference in degrees
	// between a decoy and the harmony it imitates at the last and the
	// first level. Each decoy adds up to minDecoy more at random.
	minDecoy = 30
	maxDecoy = 120

	// decoyLightness and decoyChroma are the random variation of the
	// lightness and the relative variation of the chroma of decoys.
	decoyLightness = 0.05
	decoyChroma    = 0.10
)

// Vibrant base colors of harmony puzzles.
const (
	minVibrantLightness = 0.60
	maxVibrantLightness = 0.80
	minVibrantChroma    = 0.10
	maxVibrantChroma    = 0.18
)

// HarmonyPuzzle is one generated question of the harmony game: a base
// color and [HarmonyOptions] colors, of which exactly one, at
// CorrectIndex, is in the asked harmony with the base. The hues of the
// other colors, the decoys, are further from that harmony the lower
// the level.
type HarmonyPuzzle struct {
	Level         int
	Harmony       Harmony
	Base          oklch.OKLCH
	Options       []colors.RGB
	CorrectIndex  int
	RequiredScore int
	TierName      string
}

// IsCorrect returns whether the given index is the harmonious color.
func (h *HarmonyPuzzle) IsCorrect(index int) bool {
	return index == h.CorrectIndex
}

// Choices returns the options of the puzzle.
func (h *HarmonyPuzzle) Choices() []colors.RGB {
	return h.Options
}

// Solution returns the index of the harmonious color.
func (h *HarmonyPuzzle) Solution() int {
	return h.CorrectIndex
}

// HarmonyFor returns a random harmony for the given level: mostly
// [Complementary] in the first ten levels, evenly mixed in the next ten,
// and mostly [Analogous] in the last ten, which are harder to tell apart.
func (g *Generator) HarmonyFor(level int) (Harmony, error) {
	if err := levels.Validate(level); err != nil {
		return 0, err
	}
	p := float32(0.5)
	switch {
	case level <= 10:
		p = 0.7
	case level > 20:
		p = 0.3
	}
	if g.Rand.Float32() < p {
		return Complementary, nil
	}
	return Analogous, nil
}

// decoySpread returns the hue difference in degrees between decoys and
// the harmony at the given level, which shrinks with the target ΔE of
// the level from maxDecoy to minDecoy.
func decoySpread(prof levels.Profile) float32 {
	f := (prof.TargetDeltaE - levels.EndDeltaE) / (levels.StartDeltaE - levels.EndDeltaE)
	return minDecoy + math32.Clamp(f, 0, 1)*(maxDecoy-minDecoy)
}

// VibrantBase returns a random in gamut color of moderate lightness and
// chroma, whose hue stays well defined under rotation.
func (g *Generator) VibrantBase() oklch.OKLCH {
	return oklch.ClampToGamut(oklch.New(
		randx.Uniform32(minVibrantLightness, maxVibrantLightness, g.Rand),
		randx.Uniform32(minVibrantChroma, maxVibrantChroma, g.Rand),
		randx.Uniform32(0, 360, g.Rand)))
}

// HarmonyPuzzle generates a harmony puzzle for the given level.
// The harmonious color keeps the lightness and chroma of the base and
// only rotates its hue. Each decoy is rotated away from the harmony by
// a random amount in [spread, spread+30) degrees, where the spread
// shrinks with the level from 120 to 30, and has its lightness and
// chroma slightly varied. Complementary decoys are rotated away from
// the complement, analogous decoys away from the analogous range.
// Every color is brought into gamut by [oklch.ClampToGamut], which
// keeps hues.
func (g *Generator) HarmonyPuzzle(level int) (HarmonyPuzzle, error) {
	prof, err := levels.ProfileFor(level)
	if err != nil {
		return HarmonyPuzzle{}, err
	}
	harmony, err := g.HarmonyFor(level)
	if err != nil {
		return HarmonyPuzzle{}, err
	}
	base := g.VibrantBase()
	spread := decoySpread(prof)
	opts := make([]colors.RGB, 0, HarmonyOptions)
	var correct oklch.OKLCH
	switch harmony {
	case Complementary:
		correct = base.WithH(base.H + 180)
	case Analogous:
		correct = base.WithH(base.H + g.sign()*randx.Uniform32(minAnalogous, AnalogousRange, g.Rand))
	}
	opts = append(opts, oklch.ClampToGamut(correct).RGB())
	for range HarmonyOptions - 1 {
		sgn := g.sign()
		off := sgn * (spread + minDecoy*g.Rand.Float32())
		h := correct.H + off
		if harmony == Analogous {
			h = base.H + off + sgn*AnalogousRange
		}
		d := oklch.New(
			math32.Clamp(base.L+randx.Symmetric32(decoyLightness, g.Rand), MinLightness, MaxLightness),
			math32.Clamp(base.C*(1+randx.Symmetric32(decoyChroma, g.Rand)), MinChroma, MaxChroma),
			h)
		opts = append(opts, oklch.ClampToGamut(d).RGB())
	}
	return HarmonyPuzzle{
		Level:         level,
		Harmony:       harmony,
		Base:          base,
		Options:       opts,
		CorrectIndex:  g.shuffle(opts, 0),
		RequiredScore: prof.RequiredScore,
		TierName:      prof.Tier.String(),
	}, nil
}

// sign returns 1 or -1 with equal probability.
func (g *Generator) sign() float32 {
	if g.Rand.Intn(2) == 0 {
		return -1
	}
	return 1
}
