// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSysRandSeeded(t *testing.T) {
	a := NewSysRand(42)
	b := NewSysRand(42)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Float32(), b.Float32())
		assert.Equal(t, a.Intn(9), b.Intn(9))
	}
	a.Seed(7)
	b.Seed(7)
	assert.Equal(t, a.Int63(), b.Int63())

	g := NewGlobalRand()
	v := g.Float64()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
	g.Seed(3)
	assert.NotNil(t, g.Rand)
}

func TestUniform(t *testing.T) {
	rnd := NewSysRand(1)
	for i := 0; i < 1000; i++ {
		v := Uniform32(0.2, 0.85, rnd)
		assert.GreaterOrEqual(t, v, float32(0.2))
		assert.Less(t, v, float32(0.85))

		s := Symmetric32(1.5, rnd)
		assert.GreaterOrEqual(t, s, float32(-1.5))
		assert.Less(t, s, float32(1.5))
	}
	v := Uniform32(1, 2)
	assert.GreaterOrEqual(t, v, float32(1))
}

func TestSeeds(t *testing.T) {
	var sd Seeds
	sd.Init(5, 0)
	assert.Equal(t, Seeds{1, 2, 3, 4, 5}, sd)
	sd.Init(3, 100)
	assert.Equal(t, Seeds{101, 102, 103}, sd)
	assert.Equal(t, NewSysRand(102).Int63(), sd.Rand(1).Int63())
}

func TestShuffle(t *testing.T) {
	rnd := NewSysRand(9)
	xs := []int{0, 1, 2, 3, 4, 5, 6, 7, 8}
	rnd.Shuffle(len(xs), func(i, j int) { xs[i], xs[j] = xs[j], xs[i] })
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, xs)
}
