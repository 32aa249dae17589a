// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	"testing"

	"cogentcore.org/rainbow/base/randx"
	"cogentcore.org/rainbow/base/tolassert"
	"cogentcore.org/rainbow/colors"
	"cogentcore.org/rainbow/math32"
	"github.com/stretchr/testify/assert"
)

func TestKnownColors(t *testing.T) {
	red := FromRGB(colors.RGB{R: 1, G: 0, B: 0})
	tolassert.EqualTol(t, float32(0.6279), red.L, 0.001)
	tolassert.EqualTol(t, float32(0.2577), red.C, 0.001)
	tolassert.EqualTol(t, float32(29.23), red.H, 0.1)

	blue := FromRGB(colors.RGB{R: 0, G: 0, B: 1})
	tolassert.EqualTol(t, float32(0.452), blue.L, 0.001)
	tolassert.EqualTol(t, float32(0.3132), blue.C, 0.001)
	tolassert.EqualTol(t, float32(264.05), blue.H, 0.1)

	white := FromRGB(colors.RGB{R: 1, G: 1, B: 1})
	tolassert.EqualTol(t, float32(1), white.L, 0.0001)
	tolassert.EqualTol(t, float32(0), white.C, 0.0001)

	black := FromRGB(colors.RGB{})
	assert.Equal(t, float32(0), black.L)
	assert.Equal(t, float32(0), black.C)
	assert.Equal(t, float32(0), black.H)
}

// TestColorful checks the conversion against the float64
// implementation in go-colorful.
func TestColorful(t *testing.T) {
	rnd := randx.NewSysRand(11)
	for range 500 {
		c := colors.RGB{R: rnd.Float32(), G: rnd.Float32(), B: rnd.Float32()}
		ok := FromRGB(c)
		l, ch, h := c.Colorful().OkLch()
		tolassert.EqualTol(t, float32(l), ok.L, 0.002, c.String())
		tolassert.EqualTol(t, float32(ch), ok.C, 0.002, c.String())
		if ch > 0.02 {
			tolassert.EqualTol(t, 0, math32.DiffDegrees(float32(h), ok.H), 0.5, c.String())
		}
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := randx.NewSysRand(5)
	for range 1000 {
		c := colors.RGB{R: rnd.Float32(), G: rnd.Float32(), B: rnd.Float32()}
		p := FromRGB(c)
		assert.True(t, p.InGamut(), c.String())
		back := p.RGB()
		tolassert.EqualTol(t, c.R, back.R, 0.0002, c.String())
		tolassert.EqualTol(t, c.G, back.G, 0.0002, c.String())
		tolassert.EqualTol(t, c.B, back.B, 0.0002, c.String())
	}
	for _, c := range []colors.RGB{{R: 0, G: 0, B: 0}, {R: 1, G: 1, B: 1}, {R: 1, G: 0, B: 0}, {R: 0, G: 1, B: 0}, {R: 0, G: 0, B: 1}, {R: 0.5, G: 0.5, B: 0.5}} {
		back := FromRGB(c).RGB()
		tolassert.EqualTol(t, c.R, back.R, 0.0002, c.String())
		tolassert.EqualTol(t, c.G, back.G, 0.0002, c.String())
		tolassert.EqualTol(t, c.B, back.B, 0.0002, c.String())
	}
}

func TestHueNormalized(t *testing.T) {
	rnd := randx.NewSysRand(8)
	for range 500 {
		c := colors.RGB{R: rnd.Float32(), G: rnd.Float32(), B: rnd.Float32()}
		h := FromRGB(c).H
		assert.GreaterOrEqual(t, h, float32(0))
		assert.Less(t, h, float32(360))
	}
	assert.Equal(t, float32(350), New(0.5, 0.1, -10).H)
	assert.Equal(t, float32(20), New(0.5, 0.1, 380).H)
	assert.Equal(t, float32(340), New(0.5, 0.1, 0).WithH(-20).H)
}

func TestLab(t *testing.T) {
	c := New(0.7, 0.1, 90)
	lab := c.Lab()
	tolassert.Equal(t, float32(0.7), lab.L)
	tolassert.Equal(t, float32(0), lab.A)
	tolassert.Equal(t, float32(0.1), lab.B)
	back := lab.LCH()
	tolassert.Equal(t, c.L, back.L)
	tolassert.Equal(t, c.C, back.C)
	tolassert.EqualTol(t, c.H, back.H, 0.001)
	assert.Equal(t, "oklch(0.7 0.1 90)", c.String())
}

func TestOutOfGamutRGB(t *testing.T) {
	c := New(0.5, 0.4, 145)
	assert.False(t, c.InGamut())
	rgb := c.RGB()
	assert.Equal(t, rgb, rgb.Clamped())
}
