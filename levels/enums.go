// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package levels

import (
	"fmt"
	"strings"

	"cogentcore.org/rainbow/base/errors"
)

// Strategy determines which perceptual axes (lightness, chroma, hue)
// may differ between the base color of a challenge and its distinct
// companion color. It is fixed by the level and never user settable.
type Strategy int32

const (
	// HueOnly varies only the hue.
	HueOnly Strategy = iota

	// HueChroma varies hue and chroma.
	HueChroma

	// HueLightness varies hue and lightness.
	HueLightness

	// ChromaLightness varies chroma and lightness, keeping the hue fixed.
	ChromaLightness

	// AllAxes varies lightness, chroma, and hue.
	AllAxes

	// StrategiesN is the number of variation strategies.
	StrategiesN
)

// ErrUnknownStrategy is returned when parsing a strategy name fails.
var ErrUnknownStrategy = errors.New("unknown variation strategy")

var strategyNames = [StrategiesN]string{"hue-only", "hue-chroma", "hue-lightness", "chroma-lightness", "all-axes"}

// String returns the kebab-case name of the strategy.
func (s Strategy) String() string {
	if s < 0 || s >= StrategiesN {
		return fmt.Sprintf("Strategy(%d)", int32(s))
	}
	return strategyNames[s]
}

// Axes returns which of lightness, chroma, and hue the strategy varies.
func (s Strategy) Axes() (l, c, h bool) {
	switch s {
	case HueOnly:
		return false, false, true
	case HueChroma:
		return false, true, true
	case HueLightness:
		return true, false, true
	case ChromaLightness:
		return true, true, false
	default:
		return true, true, true
	}
}

// Strategies returns all of the variation strategies in order.
func Strategies() []Strategy {
	ss := make([]Strategy, StrategiesN)
	for i := range ss {
		ss[i] = Strategy(i)
	}
	return ss
}

// ParseStrategy returns the strategy with the given name, ignoring case.
// It returns [ErrUnknownStrategy] for any other name.
func ParseStrategy(name string) (Strategy, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, sn := range strategyNames {
		if sn == n {
			return Strategy(i), nil
		}
	}
	return HueOnly, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// MarshalText implements [encoding.TextMarshaler].
func (s Strategy) MarshalText() ([]byte, error) {
	if s < 0 || s >= StrategiesN {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStrategy, int32(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Strategy) UnmarshalText(text []byte) error {
	v, err := ParseStrategy(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Tier is one of the six difficulty bands of [LevelsPerTier] levels each.
type Tier int32

const (
	Easy Tier = iota
	Normal
	Hard
	Advanced
	Expert
	Master

	// TiersN is the number of tiers.
	TiersN
)

var tierNames = [TiersN]string{"Easy", "Normal", "Hard", "Advanced", "Expert", "Master"}

// tierStrategies is the variation strategy of each tier: the first two
// tiers both vary hue only.
var tierStrategies = [TiersN]Strategy{HueOnly, HueOnly, HueChroma, HueLightness, ChromaLightness, AllAxes}

// String returns the human readable tier name.
func (t Tier) String() string {
	if t < 0 || t >= TiersN {
		return fmt.Sprintf("Tier(%d)", int32(t))
	}
	return tierNames[t]
}

// Start returns the first level of the tier.
func (t Tier) Start() int {
	return int(t)*LevelsPerTier + MinLevel
}

// End returns the last level of the tier.
func (t Tier) End() int {
	return t.Start() + LevelsPerTier - 1
}

// Strategy returns the variation strategy used by all levels of the tier.
func (t Tier) Strategy() Strategy {
	return tierStrategies[t]
}
