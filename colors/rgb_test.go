// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"testing"

	"cogentcore.org/rainbow/base/tolassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	c, err := FromHex("#ff8000")
	require.NoError(t, err)
	assert.Equal(t, float32(1), c.R)
	tolassert.EqualTol(t, float32(0.50196), c.G, 0.00001)
	assert.Equal(t, float32(0), c.B)
	assert.Equal(t, "#ff8000", c.Hex())

	_, err = FromHex("orange")
	assert.Error(t, err)
}

func TestString(t *testing.T) {
	c := RGB{0.2, 0.4, 0.6}
	assert.Equal(t, "rgb(0.2, 0.4, 0.6)", c.String())
	assert.Equal(t, "#336699", c.Hex())
}

func TestClamped(t *testing.T) {
	c := RGB{-0.1, 0.5, 1.2}
	assert.NotEqual(t, c, c.Clamped())
	assert.Equal(t, RGB{0, 0.5, 1}, c.Clamped())
	assert.Equal(t, "#0080ff", c.Hex())
}
