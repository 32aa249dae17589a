// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import "cogentcore.org/rainbow/math32"

// DeltaE returns the perceptual distance between two colors. It is the
// Euclidean distance over lightness, chroma, and the hue difference
// expressed as a chord at the average chroma, scaled by 100 so that 1 is
// about a just noticeable difference. It is symmetric in a and b.
func DeltaE(a, b OKLCH) float32 {
	dL := a.L - b.L
	dC := a.C - b.C
	dh := HueChord(math32.DiffDegrees(a.H, b.H), (a.C+b.C)/2)
	return 100 * math32.Sqrt(dL*dL+dC*dC+dh*dh)
}

// HueChord returns the signed chord length of a hue difference
// of dh degrees at the given chroma: 2·chroma·sin(dh/2).
func HueChord(dh, chroma float32) float32 {
	return 2 * chroma * math32.Sin(math32.DegToRad(dh)/2)
}

// HueAngle is the inverse of [HueChord]: it returns the signed hue
// difference in degrees whose chord at the given chroma has the given
// length. ok is false when the chord is longer than the diameter
// 2·chroma, in which case the result is the largest reachable angle of
// ±180 degrees.
func HueAngle(chord, chroma float32) (dh float32, ok bool) {
	if chroma <= 0 {
		return 0, chord == 0
	}
	s := chord / (2 * chroma)
	ok = s >= -1 && s <= 1
	s = math32.Clamp(s, -1, 1)
	return 2 * math32.RadToDeg(math32.Asin(s)), ok
}
