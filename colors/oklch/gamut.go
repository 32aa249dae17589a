// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import "cogentcore.org/rainbow/math32"

// gamutEps absorbs float32 rounding in the matrix products, so that
// colors converted from valid sRGB test as in gamut.
const gamutEps = 1e-5

// ClampIterations is the number of chroma bisection steps done by
// [ClampToGamut], giving a chroma resolution of about 0.4 / 2^20.
const ClampIterations = 20

// InGamut returns whether the color can be shown in sRGB without
// clipping. The test is done on the linear components before gamma
// encoding and before any clamping.
func (c OKLCH) InGamut() bool {
	rl, gl, bl := c.Linear()
	return inUnit(rl) && inUnit(gl) && inUnit(bl)
}

func inUnit(v float32) bool {
	return v >= -gamutEps && v <= 1+gamutEps
}

// ClampToGamut returns the given color if it is in gamut. Otherwise it
// keeps the lightness and hue and does a bisection on chroma between 0
// and the current chroma, returning the largest chroma that is in gamut.
// Lightness outside of 0-1 is clamped first, since no chroma can bring
// such a color into gamut.
func ClampToGamut(c OKLCH) OKLCH {
	if c.InGamut() {
		return c
	}
	c.L = math32.Clamp(c.L, 0, 1)
	result := c.WithC(0)
	low, high := float32(0), c.C
	for range ClampIterations {
		mid := (low + high) / 2
		test := c.WithC(mid)
		if test.InGamut() {
			result = test
			low = mid
		} else {
			high = mid
		}
	}
	return result
}

// MaxChroma returns the largest in gamut chroma for the lightness and
// hue of the given color, searching up to the given limit.
func MaxChroma(c OKLCH, limit float32) float32 {
	return ClampToGamut(c.WithC(limit)).C
}
