// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"

	"cogentcore.org/rainbow/colors"
	"cogentcore.org/rainbow/colors/oklch"
	"cogentcore.org/rainbow/levels"
	"cogentcore.org/rainbow/palette"
	"cogentcore.org/rainbow/progress"
)

// Challenge prints one generated challenge and its parameters, or a
// harmony puzzle in the harmony mode.
func Challenge(ctx context.Context, a *App) error {
	gen := a.Generator()
	if a.Mode == progress.ColorHarmony {
		return harmonyPuzzle(a, gen)
	}
	var c palette.Challenge
	var err error
	if a.Base != "" {
		var base colors.RGB
		base, err = colors.FromHex(a.Base)
		if err != nil {
			return err
		}
		c, err = gen.ChallengeWithBase(a.Level, a.Count, oklch.FromRGB(base))
	} else {
		c, err = gen.Challenge(a.Level, a.Count)
	}
	if err != nil {
		return err
	}
	if c.Degraded() {
		slog.Warn("challenge missed its target difference", "level", c.Level, "target", c.TargetDeltaE, "actual", c.ActualDeltaE)
	}
	fmt.Fprintf(a.Out, "Level %d (%s, %s), required score %d\n\n", c.Level, c.TierName, c.Strategy, c.RequiredScore)
	renderGrid(a.Out, a.Term(), c.Colors)
	fmt.Fprintf(a.Out, "answer:   %d\n", c.CorrectIndex+1)
	fmt.Fprintf(a.Out, "base:     %v %s\n", c.Base, c.Base.RGB().Hex())
	fmt.Fprintf(a.Out, "distinct: %v %s\n", c.Distinct, c.Distinct.RGB().Hex())
	fmt.Fprintf(a.Out, "ΔE:       %.2f (target %.2f)\n", c.ActualDeltaE, c.TargetDeltaE)
	return nil
}

func harmonyPuzzle(a *App, gen *palette.Generator) error {
	h, err := gen.HarmonyPuzzle(a.Level)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Level %d (%s, %s), required score %d\n\n", h.Level, h.TierName, h.Harmony, h.RequiredScore)
	fmt.Fprintf(a.Out, "base %s  %v %s\n\n", block(a.Term(), h.Base.RGB()), h.Base, h.Base.RGB().Hex())
	renderGrid(a.Out, a.Term(), h.Options)
	fmt.Fprintf(a.Out, "answer:   %d\n", h.CorrectIndex+1)
	return nil
}

// Levels lists all levels with their status in the progress of the mode.
func Levels(ctx context.Context, a *App) error {
	p, err := a.Store.Load(ctx, a.Mode)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "%-5s  %-8s  %-16s  %5s  %8s  %-9s  %4s\n", "Level", "Tier", "Strategy", "ΔE", "Required", "Status", "Best")
	for _, st := range p.Levels() {
		status := "locked"
		switch {
		case st.Completed:
			status = "completed"
		case st.Unlocked:
			status = "unlocked"
		}
		fmt.Fprintf(a.Out, "%-5d  %-8s  %-16s  %5.2f  %8d  %-9s  %4d\n", st.Level, st.Tier, st.Strategy, st.TargetDeltaE, st.RequiredScore, status, st.BestScore)
	}
	return nil
}

// Progress shows or resets the stored progress of the mode, or of all
// modes with -all.
func Progress(ctx context.Context, a *App) error {
	modes := []progress.Mode{a.Mode}
	if a.All {
		modes = progress.Modes()
	}
	for _, m := range modes {
		if a.Reset {
			if err := a.Store.Reset(ctx, m); err != nil {
				return err
			}
			fmt.Fprintf(a.Out, "%s: reset\n", m)
			continue
		}
		p, err := a.Store.Load(ctx, m)
		if err != nil {
			return err
		}
		printProgress(a, p)
	}
	return nil
}

func printProgress(a *App, p progress.Progress) {
	last := "never"
	if !p.LastPlayedAt.IsZero() {
		last = p.LastPlayedAt.Local().Format("2006-01-02 15:04")
	}
	fmt.Fprintf(a.Out, "%s\n", p.Mode)
	fmt.Fprintf(a.Out, "  completed:     %d/%d (%.0f%%)\n", p.CompletedLevels, levels.MaxLevel, 100*p.CompletionRate())
	fmt.Fprintf(a.Out, "  total score:   %d\n", p.TotalScore)
	fmt.Fprintf(a.Out, "  average score: %.1f\n", p.AverageScore())
	fmt.Fprintf(a.Out, "  frontier:      %d\n", p.CurrentLevel)
	fmt.Fprintf(a.Out, "  next playable: %d\n", p.NextPlayable())
	fmt.Fprintf(a.Out, "  last played:   %s\n", last)
}
