// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the display-referred color value shared by
// the color math, palette generation, and rendering code.
package colors

import (
	"fmt"

	"cogentcore.org/rainbow/math32"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a display-referred sRGB color with gamma-encoded components
// normalized to 0-1. It is an immutable value type; all methods return
// new values.
type RGB struct {
	R, G, B float32
}

// FromHex parses a hex color string of the form "#rrggbb".
func FromHex(hex string) (RGB, error) {
	cf, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, fmt.Errorf("colors.FromHex: %w", err)
	}
	return fromColorful(cf), nil
}

func fromColorful(c colorful.Color) RGB {
	return RGB{R: float32(c.R), G: float32(c.G), B: float32(c.B)}
}

// Colorful returns the color as a [colorful.Color].
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Clamped returns the color with each component clamped to 0-1.
func (c RGB) Clamped() RGB {
	return RGB{R: math32.Clamp(c.R, 0, 1), G: math32.Clamp(c.G, 0, 1), B: math32.Clamp(c.B, 0, 1)}
}

// Hex returns the color as a "#rrggbb" string.
func (c RGB) Hex() string {
	return c.Clamped().Colorful().Hex()
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}
