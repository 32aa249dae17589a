// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress

import (
	"fmt"
	"strings"

	"cogentcore.org/rainbow/base/errors"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// Mode is a game mode. Progress is tracked separately for each mode.
type Mode int32

const (
	// ColorDistinguish is finding the one color that differs from the rest.
	ColorDistinguish Mode = iota

	// ColorHarmony is choosing colors that go together.
	ColorHarmony

	// ColorMemory is recalling a color after it has been hidden.
	ColorMemory

	// ModesN is the number of game modes.
	ModesN
)

// ErrUnknownMode is returned when parsing a game mode tag fails.
var ErrUnknownMode = errors.New("unknown game mode")

// modeTags are the persisted tags of the modes.
var modeTags = [ModesN]string{"COLOR_DISTINGUISH", "COLOR_HARMONY", "COLOR_MEMORY"}

// String returns the persisted tag of the mode.
func (m Mode) String() string {
	if !m.IsValid() {
		return fmt.Sprintf("Mode(%d)", int32(m))
	}
	return modeTags[m]
}

// IsValid returns whether the mode is one of the known modes.
func (m Mode) IsValid() bool {
	return m >= 0 && m < ModesN
}

// Modes returns all of the game modes in order.
func Modes() []Mode {
	ms := make([]Mode, ModesN)
	for i := range ms {
		ms[i] = Mode(i)
	}
	return ms
}

// ParseMode returns the mode with the given tag. The tag is matched
// ignoring case, and dashes and spaces may be used in place of
// underscores, so "color-distinguish" also works. Any other tag
// returns an error wrapping [ErrUnknownMode] that suggests the most
// similar known tag.
func ParseMode(tag string) (Mode, error) {
	n := normalizeTag(tag)
	for i, mt := range modeTags {
		if mt == n {
			return Mode(i), nil
		}
	}
	return ColorDistinguish, fmt.Errorf("%w: %q (did you mean %q?)", ErrUnknownMode, tag, closestTag(n))
}

func normalizeTag(tag string) string {
	n := strings.ToUpper(strings.TrimSpace(tag))
	return strings.NewReplacer("-", "_", " ", "_").Replace(n)
}

// closestTag returns the known mode tag most similar to the given one.
func closestTag(tag string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := modeTags[0], -1.0
	for _, mt := range modeTags {
		if sim := strutil.Similarity(tag, mt, lev); sim > bestSim {
			best, bestSim = mt, sim
		}
	}
	return best
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int32(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	v, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = v
	return nil
}
