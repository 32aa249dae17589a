// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package progress keeps the per game mode progress of a player: the
// best score of each level, the totals derived from them, and the
// frontier of unlocked levels. New results are folded into a
// [Progress] value by the pure [Fold] function; persistence is left
// to a [Store].
package progress

import (
	"fmt"
	"maps"
	"time"

	"cogentcore.org/rainbow/base/errors"
	"cogentcore.org/rainbow/levels"
)

// ErrInvalidScore is returned when folding a negative score.
var ErrInvalidScore = errors.New("invalid score")

// Progress is the progress of one game mode. It is a value: [Fold] and
// the other updating functions return a modified copy and never change
// the map of the value they are given.
//
// The derived fields always satisfy TotalScore == sum(LevelScores) and
// CompletedLevels == number of levels whose best score meets the
// required score of that level.
type Progress struct {
	Mode Mode

	// CurrentLevel is the unlock frontier: the highest level unlocked by
	// completing the level before it.
	CurrentLevel int

	// LevelScores is the best score of each played level.
	LevelScores map[int]int

	TotalScore      int
	CompletedLevels int

	// LastPlayedAt is the time of the last completed session,
	// or zero if the mode has not been played.
	LastPlayedAt time.Time
}

// New returns the default progress of the given mode,
// in which only the first level of each tier is unlocked.
func New(mode Mode) Progress {
	return Progress{Mode: mode, CurrentLevel: levels.MinLevel, LevelScores: map[int]int{}}
}

// Clone returns a copy of the progress that does not share its map.
func (p Progress) Clone() Progress {
	p.LevelScores = maps.Clone(p.LevelScores)
	if p.LevelScores == nil {
		p.LevelScores = map[int]int{}
	}
	return p
}

// Outcome describes the effect of folding one result into a [Progress].
type Outcome struct {
	Level         int
	Score         int
	RequiredScore int

	// PreviousBest is the best score of the level before the fold.
	PreviousBest int

	// IsPass is whether the score meets the required score.
	IsPass bool

	// IsNewBest is whether the score beats the previous best.
	IsNewBest bool

	// IsNewCompletion is whether the level was completed for the first time.
	IsNewCompletion bool

	// NextLevelUnlocked is whether a following level is available after a pass.
	NextLevelUnlocked bool

	// CurrentLevel, CompletedLevels, and TotalScore are those of the
	// progress after the fold.
	CurrentLevel    int
	CompletedLevels int
	TotalScore      int
}

// Fold returns the progress with the score for the given level folded in,
// along with the [Outcome] of doing so. A score above the stored best
// replaces it and the total is recomputed as the sum of bests. Reaching
// the threshold for the first time completes the level, and advances the
// frontier to the following level (capped at [levels.MaxLevel]) when the
// level is at or beyond the current frontier. Folding a score that does
// not beat the stored best returns progress equal to p.
func Fold(p Progress, level, score, threshold int) (Progress, Outcome, error) {
	if err := levels.Validate(level); err != nil {
		return p, Outcome{}, err
	}
	if score < 0 {
		return p, Outcome{}, fmt.Errorf("%w: %d", ErrInvalidScore, score)
	}
	prev := p.BestScore(level)
	out := Outcome{
		Level:         level,
		Score:         score,
		RequiredScore: threshold,
		PreviousBest:  prev,
		IsPass:        score >= threshold,
	}
	out.NextLevelUnlocked = out.IsPass && level < levels.MaxLevel
	if score <= prev {
		return p, out.totals(p), nil
	}
	out.IsNewBest = true
	out.IsNewCompletion = out.IsPass && prev < threshold

	np := p.Clone()
	np.LevelScores[level] = score
	np.TotalScore = sumScores(np.LevelScores)
	if out.IsNewCompletion {
		np.CompletedLevels++
		if level >= np.CurrentLevel {
			np.CurrentLevel = min(level+1, levels.MaxLevel)
		}
	}
	return np, out.totals(np), nil
}

func (o Outcome) totals(p Progress) Outcome {
	o.CurrentLevel = p.CurrentLevel
	o.CompletedLevels = p.CompletedLevels
	o.TotalScore = p.TotalScore
	return o
}

// FoldLevel is [Fold] with the required score of the level as threshold.
func FoldLevel(p Progress, level, score int) (Progress, Outcome, error) {
	threshold, err := levels.RequiredScore(level)
	if err != nil {
		return p, Outcome{}, err
	}
	return Fold(p, level, score, threshold)
}

func sumScores(scores map[int]int) int {
	total := 0
	for _, s := range scores {
		total += s
	}
	return total
}

// Touch returns the progress with LastPlayedAt set to the given time.
func (p Progress) Touch(now time.Time) Progress {
	p.LastPlayedAt = now
	return p
}

// Reset returns the default progress of the same mode.
func (p Progress) Reset() Progress {
	return New(p.Mode)
}

// BestScore returns the best score of the level, or 0 if it has not been played.
func (p Progress) BestScore(level int) int {
	return p.LevelScores[level]
}

// IsCompleted returns whether the best score of the level meets the
// required score of that level.
func (p Progress) IsCompleted(level int) bool {
	req, err := levels.RequiredScore(level)
	if err != nil {
		return false
	}
	best, ok := p.LevelScores[level]
	return ok && best >= req
}

// IsUnlocked returns whether the level can be played: it is the first
// level of a tier, or the level before it is completed.
func (p Progress) IsUnlocked(level int) bool {
	if levels.Validate(level) != nil {
		return false
	}
	return levels.IsTierStart(level) || p.IsCompleted(level-1)
}

// CompletionRate returns the fraction of all levels that are completed.
func (p Progress) CompletionRate() float32 {
	return float32(p.CompletedLevels) / levels.MaxLevel
}

// AverageScore returns the average best score over the played levels,
// or 0 if no level has been played.
func (p Progress) AverageScore() float32 {
	if len(p.LevelScores) == 0 {
		return 0
	}
	return float32(p.TotalScore) / float32(len(p.LevelScores))
}

// NextPlayable returns the first unlocked level that is not completed,
// or the last level if every level is completed.
func (p Progress) NextPlayable() int {
	for l := levels.MinLevel; l <= levels.MaxLevel; l++ {
		if p.IsUnlocked(l) && !p.IsCompleted(l) {
			return l
		}
	}
	return levels.MaxLevel
}

// LevelStatus is the status of one level within a [Progress].
type LevelStatus struct {
	levels.Profile
	Unlocked  bool
	Completed bool
	BestScore int
}

// Levels returns the status of every level in order.
func (p Progress) Levels() []LevelStatus {
	all := levels.All()
	st := make([]LevelStatus, len(all))
	for i, prof := range all {
		st[i] = LevelStatus{
			Profile:   prof,
			Unlocked:  p.IsUnlocked(prof.Level),
			Completed: p.IsCompleted(prof.Level),
			BestScore: p.BestScore(prof.Level),
		}
	}
	return st
}

// Check returns an error if the derived fields of the progress do not
// match its level scores.
func (p Progress) Check() error {
	var errs []error
	if sum := sumScores(p.LevelScores); sum != p.TotalScore {
		errs = append(errs, fmt.Errorf("total score %d does not match the sum of level scores %d", p.TotalScore, sum))
	}
	if n := countCompleted(p); n != p.CompletedLevels {
		errs = append(errs, fmt.Errorf("completed levels %d does not match the %d levels meeting their required score", p.CompletedLevels, n))
	}
	return errors.Join(errs...)
}

func countCompleted(p Progress) int {
	n := 0
	for l := range p.LevelScores {
		if p.IsCompleted(l) {
			n++
		}
	}
	return n
}

// MaxAchievableLevel returns the highest level whose required score is
// met by the given score, or 0 if it does not meet that of any level.
func MaxAchievableLevel(score int) int {
	maxLevel := 0
	for l := levels.MinLevel; l <= levels.MaxLevel; l++ {
		if req, _ := levels.RequiredScore(l); score >= req {
			maxLevel = l
		}
	}
	return maxLevel
}
