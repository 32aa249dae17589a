// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	"fmt"

	"cogentcore.org/rainbow/colors/cie"
	"cogentcore.org/rainbow/math32"
)

// Lab is a color in the OKLab opponent space: L is lightness (0-1),
// and A, B are the green-red and blue-yellow opponent axes.
type Lab struct {
	L, A, B float32
}

// LinearToLab converts linear-light sRGB components to OKLab,
// via the LMS cone response space and a per-component cube root.
func LinearToLab(rl, gl, bl float32) Lab {
	l := 0.4122214708*rl + 0.5363325363*gl + 0.0514459929*bl
	m := 0.2119034982*rl + 0.6806995451*gl + 0.1073969566*bl
	s := 0.0883024619*rl + 0.2817188376*gl + 0.6299787005*bl

	l_ := math32.Cbrt(l)
	m_ := math32.Cbrt(m)
	s_ := math32.Cbrt(s)

	return Lab{
		L: 0.2104542553*l_ + 0.7936177850*m_ - 0.0040720468*s_,
		A: 1.9779984951*l_ - 2.4285922050*m_ + 0.4505937099*s_,
		B: 0.0259040371*l_ + 0.7827717662*m_ - 0.8086757660*s_,
	}
}

// Linear converts the color to linear-light sRGB components.
// The result is not clamped: components outside 0-1 mean that
// the color is outside of the sRGB gamut.
func (c Lab) Linear() (rl, gl, bl float32) {
	l_ := c.L + 0.3963377774*c.A + 0.2158037573*c.B
	m_ := c.L - 0.1055613458*c.A - 0.0638541728*c.B
	s_ := c.L - 0.0894841775*c.A - 1.2914855480*c.B

	l := l_ * l_ * l_
	m := m_ * m_ * m_
	s := s_ * s_ * s_

	rl = +4.0767416621*l - 3.3077115913*m + 0.2309699292*s
	gl = -1.2684380046*l + 2.6097574011*m - 0.3413193965*s
	bl = -0.0041960863*l - 0.7034186147*m + 1.7076147010*s
	return
}

// SRGBToLab converts gamma-encoded sRGB components (0-1) to OKLab.
func SRGBToLab(r, g, b float32) Lab {
	return LinearToLab(cie.SRGBToLinear(r, g, b))
}

// LCH returns the polar form of the color, with the hue normalized to [0, 360).
func (c Lab) LCH() OKLCH {
	return OKLCH{
		L: c.L,
		C: math32.Hypot(c.A, c.B),
		H: math32.WrapDegrees(math32.RadToDeg(math32.Atan2(c.B, c.A))),
	}
}

func (c Lab) String() string {
	return fmt.Sprintf("oklab(%g %g %g)", c.L, c.A, c.B)
}
