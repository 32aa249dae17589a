// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package game

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/rainbow/levels"
	"cogentcore.org/rainbow/palette"
	"cogentcore.org/rainbow/progress"
)

// Service starts sessions and records their results in a store.
type Service struct {
	Store progress.Store

	// Now returns the current time, used for [progress.Progress.LastPlayedAt].
	Now func() time.Time
}

// NewService returns a new [Service] using the given store.
func NewService(store progress.Store) *Service {
	return &Service{Store: store, Now: time.Now}
}

// Start returns a new session of the given level, which must be unlocked
// in the stored progress of the mode, as by [NewSession].
func (sv *Service) Start(ctx context.Context, gen *palette.Generator, mode progress.Mode, level, count int) (*Session, error) {
	if err := levels.Validate(level); err != nil {
		return nil, err
	}
	if mode.IsValid() && !Playable(mode) {
		return nil, fmt.Errorf("%w: %s", ErrNoGame, mode)
	}
	p, err := sv.Store.Load(ctx, mode)
	if err != nil {
		return nil, err
	}
	if !p.IsUnlocked(level) {
		return nil, fmt.Errorf("%w: level %d of %s", ErrLocked, level, mode)
	}
	return NewSession(gen, mode, level, count)
}

// Complete folds the score for the level into the stored progress of
// the mode, using the required score of the level, and marks the mode
// as played now. It returns the outcome of the fold, whose totals are
// those of the stored progress.
func (sv *Service) Complete(ctx context.Context, mode progress.Mode, level, score int) (progress.Outcome, error) {
	var out progress.Outcome
	p, err := sv.Store.Update(ctx, mode, func(p progress.Progress) (progress.Progress, error) {
		np, o, err := progress.FoldLevel(p, level, score)
		if err != nil {
			return p, err
		}
		out = o
		return np.Touch(sv.Now()), nil
	})
	if err != nil {
		return progress.Outcome{}, err
	}
	slog.Info("level complete", "mode", mode, "level", level, "score", score, "pass", out.IsPass, "newBest", out.IsNewBest, "currentLevel", p.CurrentLevel, "totalScore", p.TotalScore)
	return out, nil
}

// Finish records the final score of a session that is over. The score
// is recorded even for a failed session, so that its best score can
// improve, but only a cleared session reports a pass. The rest of the
// outcome reflects the stored progress: a failed session whose score
// meets the required score still completes the level, and then reports
// the next level as unlocked.
func (sv *Service) Finish(ctx context.Context, s *Session) (progress.Outcome, error) {
	if !s.Done() {
		return progress.Outcome{}, fmt.Errorf("finish: session of level %d is still playing", s.Level)
	}
	out, err := sv.Complete(ctx, s.Mode, s.Level, s.Score)
	if err != nil {
		return out, err
	}
	if s.State() == Failed {
		out.IsPass = false
	}
	return out, nil
}
