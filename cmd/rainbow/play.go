// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/rainbow/game"
	"cogentcore.org/rainbow/palette"
	"cogentcore.org/rainbow/progress"
)

// Play plays one level interactively, reading the number of the chosen
// color for each question, and records the final score.
func Play(ctx context.Context, a *App) error {
	sv := game.NewService(a.Store)
	level := a.Level
	if level == 0 {
		p, err := a.Store.Load(ctx, a.Mode)
		if err != nil {
			return err
		}
		level = p.NextPlayable()
	}
	s, err := sv.Start(ctx, a.Generator(), a.Mode, level, a.Count)
	if err != nil {
		return err
	}
	task, prompt := "find the color that differs", "Which color is different"
	if a.Mode == progress.ColorHarmony {
		task, prompt = "find the color in harmony with the base", "Which color is it"
	}
	fmt.Fprintf(a.Out, "Level %d: %s (required score %d)\n\n", s.Level, task, s.RequiredScore)

	in := bufio.NewScanner(a.In)
	for !s.Done() {
		if err := ctx.Err(); err != nil {
			return err
		}
		q := s.Current()
		fmt.Fprintf(a.Out, "Question %d/%d  score %d\n", s.Question, game.QuestionsPerLevel, s.Score)
		if h, ok := q.(*palette.HarmonyPuzzle); ok {
			fmt.Fprintf(a.Out, "base %s  which color is %s?\n", block(a.Term(), h.Base.RGB()), h.Harmony)
		}
		renderGrid(a.Out, a.Term(), q.Choices())
		start := time.Now()
		idx, err := readChoice(in, a.Out, prompt, len(q.Choices()))
		if err != nil {
			return err
		}
		ans, err := s.Answer(idx, time.Since(start))
		if err != nil {
			return err
		}
		if ans.Correct {
			fmt.Fprintf(a.Out, "Correct! +%d\n\n", ans.Points)
		} else {
			fmt.Fprintf(a.Out, "Wrong: it was %d\n\n", ans.CorrectIndex+1)
		}
	}

	out, err := sv.Finish(ctx, s)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Level %d %s with %d points", s.Level, s.State(), s.Score)
	if out.IsNewBest {
		fmt.Fprintf(a.Out, " (new best, previous %d)", out.PreviousBest)
	}
	fmt.Fprintln(a.Out)
	switch {
	case out.IsPass && out.NextLevelUnlocked:
		fmt.Fprintf(a.Out, "Passed! Level %d is unlocked.\n", s.Level+1)
	case out.IsPass:
		fmt.Fprintln(a.Out, "Passed!")
	case out.NextLevelUnlocked:
		fmt.Fprintf(a.Out, "Not passed, but the score completes the level: level %d is unlocked.\n", out.CurrentLevel)
	default:
		fmt.Fprintf(a.Out, "Not passed: clear all %d questions with at least %d points.\n", game.QuestionsPerLevel, s.RequiredScore)
	}
	return nil
}

// readChoice reads color numbers until a valid one in [1, n] is given,
// returning it as an index.
func readChoice(in *bufio.Scanner, out io.Writer, prompt string, n int) (int, error) {
	for {
		fmt.Fprintf(out, "%s (1-%d)? ", prompt, n)
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return 0, err
			}
			return 0, io.ErrUnexpectedEOF
		}
		v, err := strconv.Atoi(strings.TrimSpace(in.Text()))
		if err == nil && v >= 1 && v <= n {
			return v - 1, nil
		}
		fmt.Fprintf(out, "Enter a number from 1 to %d.\n", n)
	}
}
