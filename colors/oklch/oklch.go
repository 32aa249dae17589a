// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oklch implements the OKLCH perceptual color space: conversion
// to and from display sRGB, sRGB gamut membership and chroma clamping,
// and the ΔE perceptual distance between two colors. Equal ΔE values
// correspond to approximately equal perceived differences.
package oklch

import (
	"fmt"

	"cogentcore.org/rainbow/colors"
	"cogentcore.org/rainbow/colors/cie"
	"cogentcore.org/rainbow/math32"
)

// OKLCH is a color in the polar form of OKLab.
type OKLCH struct {

	// L is the perceived lightness, 0 (black) to 1 (white).
	L float32

	// C is the chroma, or colorfulness. Grays have 0 chroma, and
	// the most saturated sRGB colors reach about 0.32. The displayable
	// maximum depends on the lightness and hue.
	C float32

	// H is the hue angle in degrees, always within [0, 360).
	H float32
}

// New returns a new OKLCH color, normalizing the hue into [0, 360).
func New(l, c, h float32) OKLCH {
	return OKLCH{L: l, C: c, H: math32.WrapDegrees(h)}
}

// FromRGB converts a display sRGB color to OKLCH: the gamma encoding is
// removed, the linear values are taken through OKLab, and the opponent
// axes are converted to chroma and hue.
func FromRGB(c colors.RGB) OKLCH {
	return SRGBToLab(c.R, c.G, c.B).LCH()
}

// Lab returns the OKLab form of the color.
func (c OKLCH) Lab() Lab {
	sin, cos := math32.Sincos(math32.DegToRad(c.H))
	return Lab{L: c.L, A: c.C * cos, B: c.C * sin}
}

// Linear returns the unclamped linear-light sRGB components of the color.
func (c OKLCH) Linear() (rl, gl, bl float32) {
	return c.Lab().Linear()
}

// RGB converts the color to display sRGB. Components are clamped
// to 0-1 only after gamma encoding, so out of gamut colors come back
// clipped; use [OKLCH.InGamut] to detect that case.
func (c OKLCH) RGB() colors.RGB {
	r, g, b := cie.SRGBFromLinear(c.Linear())
	return colors.RGB{R: r, G: g, B: b}.Clamped()
}

// WithL returns a copy of the color with the given lightness.
func (c OKLCH) WithL(l float32) OKLCH {
	c.L = l
	return c
}

// WithC returns a copy of the color with the given chroma.
func (c OKLCH) WithC(chroma float32) OKLCH {
	c.C = chroma
	return c
}

// WithH returns a copy of the color with the given hue,
// normalized into [0, 360).
func (c OKLCH) WithH(h float32) OKLCH {
	c.H = math32.WrapDegrees(h)
	return c
}

func (c OKLCH) String() string {
	return fmt.Sprintf("oklch(%g %g %g)", c.L, c.C, c.H)
}
