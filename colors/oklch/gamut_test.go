// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oklch

import (
	"testing"

	"cogentcore.org/rainbow/base/randx"
	"github.com/stretchr/testify/assert"
)

func TestInGamut(t *testing.T) {
	assert.True(t, New(0.5, 0, 0).InGamut())
	assert.True(t, New(0.6279, 0.25, 29.23).InGamut())
	assert.False(t, New(0.6279, 0.35, 29.23).InGamut())
	assert.False(t, New(1.2, 0, 0).InGamut())
	assert.False(t, New(0.9, 0.3, 264).InGamut())
}

func TestClampToGamut(t *testing.T) {
	rnd := randx.NewSysRand(3)
	for range 2000 {
		c := New(randx.Uniform32(0, 1, rnd), randx.Uniform32(0, 0.45, rnd), randx.Uniform32(0, 360, rnd))
		cl := ClampToGamut(c)
		assert.True(t, cl.InGamut(), c.String())
		if c.InGamut() {
			assert.Equal(t, c, cl)
			continue
		}
		assert.Equal(t, c.L, cl.L)
		assert.Equal(t, c.H, cl.H)
		assert.Less(t, cl.C, c.C)
		// the bisection keeps the largest in gamut chroma
		assert.False(t, cl.WithC(cl.C+0.001).InGamut(), c.String())
	}
	assert.True(t, ClampToGamut(New(1.3, 0.2, 40)).InGamut())
	assert.True(t, ClampToGamut(New(-0.2, 0.2, 40)).InGamut())
}

func TestMaxChroma(t *testing.T) {
	mc := MaxChroma(New(0.6279, 0, 29.23), 0.4)
	assert.InDelta(t, 0.2577, mc, 0.002)
	assert.InDelta(t, 0, MaxChroma(New(1, 0, 100), 0.4), 0.001)
}
