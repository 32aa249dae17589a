// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scoring converts the response time for a correct answer
// into points: a fixed base plus a time bonus that decays in steps.
package scoring

import (
	"fmt"
	"time"

	"cogentcore.org/rainbow/base/errors"
)

const (
	// BasePoints is awarded for every correct answer.
	BasePoints = 10

	// MaxBonus is the time bonus for an answer within [GraceWindow].
	MaxBonus = 10

	// BonusStep is the bonus lost per elapsed [BonusInterval].
	BonusStep = 1

	// BonusInterval is the time over which [BonusStep] of the bonus decays.
	BonusInterval = 500 * time.Millisecond

	// GraceWindow is the response time that still earns the full bonus.
	GraceWindow = BonusInterval
)

// ErrNegativeElapsed is returned for negative response times.
var ErrNegativeElapsed = errors.New("negative elapsed time")

// PointsForResponse returns the points for a correct answer given
// after the elapsed time. Within [GraceWindow] it is [BasePoints] +
// [MaxBonus]; after that one [BonusStep] is lost for every full
// [BonusInterval] beyond the first, and the result never drops below
// [BasePoints].
func PointsForResponse(elapsed time.Duration) (int, error) {
	if elapsed < 0 {
		return 0, fmt.Errorf("%w: %v", ErrNegativeElapsed, elapsed)
	}
	if elapsed <= GraceWindow {
		return BasePoints + MaxBonus, nil
	}
	intervals := int(elapsed / BonusInterval)
	bonus := max(MaxBonus-(intervals-1)*BonusStep, 0)
	return BasePoints + bonus, nil
}

// PointsForResponseMillis is [PointsForResponse] for a time in milliseconds.
func PointsForResponseMillis(elapsedMs int64) (int, error) {
	return PointsForResponse(time.Duration(elapsedMs) * time.Millisecond)
}

// MaxPerQuestion returns the most points a single answer can earn.
func MaxPerQuestion() int {
	return BasePoints + MaxBonus
}
