// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"testing"
	"time"

	"cogentcore.org/rainbow/levels"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type inner struct {
	Samples int     `default:"200"`
	Ratio   float32 `default:"0.15"`
}

type config struct {
	Name     string          `default:"rainbow"`
	Verbose  bool            `default:"true"`
	Seed     int64           `default:"-3"`
	Timeout  time.Duration   `default:"1.5s"`
	Strategy levels.Strategy `default:"hue-chroma"`
	Untagged string
	Inner    inner
	hidden   int
}

func TestSetFromDefaultTags(t *testing.T) {
	c := &config{Untagged: "keep", hidden: 4}
	require.NoError(t, SetFromDefaultTags(c))
	assert.Equal(t, "rainbow", c.Name)
	assert.True(t, c.Verbose)
	assert.Equal(t, int64(-3), c.Seed)
	assert.Equal(t, 1500*time.Millisecond, c.Timeout)
	assert.Equal(t, levels.HueChroma, c.Strategy)
	assert.Equal(t, "keep", c.Untagged)
	assert.Equal(t, 200, c.Inner.Samples)
	assert.InDelta(t, 0.15, c.Inner.Ratio, 1e-6)
	assert.Equal(t, 4, c.hidden)
}

func TestSetFromDefaultTagsErrors(t *testing.T) {
	assert.Error(t, SetFromDefaultTags(config{}))
	assert.Error(t, SetFromDefaultTags((*config)(nil)))

	type bad struct {
		N int `default:"many"`
		M int `default:"2"`
	}
	b := &bad{}
	err := SetFromDefaultTags(b)
	assert.ErrorContains(t, err, `field "N"`)
	assert.Equal(t, 2, b.M)
}
