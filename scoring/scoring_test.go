// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoints(t *testing.T) {
	cases := map[int64]int{
		0:     20,
		400:   20,
		500:   20,
		999:   20,
		1000:  19,
		1200:  19,
		1500:  18,
		2600:  16,
		5000:  11,
		5500:  10,
		60000: 10,
	}
	for ms, want := range cases {
		got, err := PointsForResponseMillis(ms)
		require.NoError(t, err)
		assert.Equal(t, want, got, ms)
	}
	assert.Equal(t, 20, MaxPerQuestion())
}

func TestNonIncreasing(t *testing.T) {
	prev := MaxPerQuestion()
	for d := time.Duration(0); d < 10*time.Second; d += 37 * time.Millisecond {
		p, err := PointsForResponse(d)
		require.NoError(t, err)
		assert.LessOrEqual(t, p, prev)
		assert.GreaterOrEqual(t, p, BasePoints)
		prev = p
	}
}

func TestNegative(t *testing.T) {
	_, err := PointsForResponse(-time.Millisecond)
	assert.ErrorIs(t, err, ErrNegativeElapsed)
	_, err = PointsForResponseMillis(-1)
	assert.ErrorIs(t, err, ErrNegativeElapsed)
}
