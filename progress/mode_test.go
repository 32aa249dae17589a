// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMode(t *testing.T) {
	for _, m := range Modes() {
		p, err := ParseMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, p)
	}
	m, err := ParseMode(" color-memory ")
	require.NoError(t, err)
	assert.Equal(t, ColorMemory, m)
	m, err = ParseMode("Color Harmony")
	require.NoError(t, err)
	assert.Equal(t, ColorHarmony, m)

	_, err = ParseMode("COLOR_HARMONI")
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.ErrorContains(t, err, `did you mean "COLOR_HARMONY"`)

	_, err = ParseMode("distinguish")
	assert.ErrorContains(t, err, `did you mean "COLOR_DISTINGUISH"`)
}

func TestModeText(t *testing.T) {
	b, err := ColorHarmony.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "COLOR_HARMONY", string(b))

	var m Mode
	require.NoError(t, m.UnmarshalText([]byte("color_memory")))
	assert.Equal(t, ColorMemory, m)
	assert.Error(t, m.UnmarshalText([]byte("chess")))

	_, err = Mode(9).MarshalText()
	assert.ErrorIs(t, err, ErrUnknownMode)
	assert.Equal(t, "Mode(9)", Mode(9).String())
	assert.False(t, ModesN.IsValid())
}
