// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides the sRGB transfer functions that move
// between gamma-encoded display values and linear light.
package cie

import "cogentcore.org/rainbow/math32"

const (
	// SRGBThreshold is the encoded value below which the sRGB curve is linear.
	SRGBThreshold = 0.04045

	// LinearThreshold is the linear value below which the sRGB curve is linear.
	LinearThreshold = 0.0031308

	srgbGamma  = 2.4
	srgbSlope  = 12.92
	srgbOffset = 0.055
)

// SRGBToLinearComp converts an sRGB rgb component to linear space (removes gamma).
// Used in converting from sRGB to OKLab.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= SRGBThreshold {
		return srgb / srgbSlope
	}
	return math32.Pow((srgb+srgbOffset)/(1+srgbOffset), srgbGamma)
}

// SRGBFromLinearComp converts an sRGB rgb linear component
// to non-linear (gamma corrected) sRGB value.
// Used in converting from OKLab to sRGB.
func SRGBFromLinearComp(lin float32) float32 {
	if lin <= LinearThreshold {
		return lin * srgbSlope
	}
	return (1+srgbOffset)*math32.Pow(lin, 1/srgbGamma) - srgbOffset
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts set of sRGB components from linear values,
// adding gamma correction. Values are not clamped; callers that need
// displayable output clamp the result.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}
