// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/rainbow/base/randx"
	"cogentcore.org/rainbow/colors/oklch"
	"cogentcore.org/rainbow/levels"
	"cogentcore.org/rainbow/math32"
	"cogentcore.org/rainbow/palette"
	"golang.org/x/sync/errgroup"
)

// levelStats are the calibration results of one level.
type levelStats struct {
	levels.Profile

	// MeanRatio is the mean of the actual ΔE over the target ΔE.
	MeanRatio float32

	// Within10 and Within15 are the fractions of samples within
	// 10% and 15% of the target ΔE.
	Within10 float32
	Within15 float32
}

// calibrateLevel generates the given number of distinct colors
// at the target ΔE of the level, using its own generator.
func calibrateLevel(ctx context.Context, gen *palette.Generator, prof levels.Profile, samples int) (levelStats, error) {
	st := levelStats{Profile: prof}
	var sum float32
	var in10, in15 int
	for range samples {
		if err := ctx.Err(); err != nil {
			return st, err
		}
		base := gen.BaseFor(prof.TargetDeltaE, prof.Strategy)
		d := gen.Distinct(base, prof.TargetDeltaE, prof.Strategy)
		ratio := oklch.DeltaE(base, d) / prof.TargetDeltaE
		sum += ratio
		miss := math32.Abs(ratio - 1)
		if miss <= 0.10 {
			in10++
		}
		if miss <= 0.15 {
			in15++
		}
	}
	n := float32(samples)
	st.MeanRatio, st.Within10, st.Within15 = sum/n, float32(in10)/n, float32(in15)/n
	return st, nil
}

// Calibrate measures how closely the generated colors match the target
// ΔE of every level, calibrating levels in parallel with one generator
// each.
func Calibrate(ctx context.Context, a *App) error {
	samples := a.Calibrate.Samples
	if samples < 1 {
		return fmt.Errorf("calibrate: samples must be positive, not %d", samples)
	}
	seed := a.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	var seeds randx.Seeds
	seeds.Init(levels.MaxLevel, seed)
	start := time.Now()
	stats := make([]levelStats, levels.MaxLevel)
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(max(a.Calibrate.Workers, 1))
	for i, prof := range levels.All() {
		eg.Go(func() error {
			gen := palette.New(seeds.Rand(i))
			st, err := calibrateLevel(ctx, gen, prof, samples)
			stats[i] = st
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}
	slog.Info("calibrated", "levels", len(stats), "samples", samples, "seed", seed, "took", time.Since(start))

	fmt.Fprintf(a.Out, "%-5s  %-16s  %6s  %6s  %6s  %6s\n", "Level", "Strategy", "ΔE", "ratio", "±10%", "±15%")
	var total float32
	for _, st := range stats {
		total += st.Within15
		fmt.Fprintf(a.Out, "%-5d  %-16s  %6.2f  %6.3f  %5.1f%%  %5.1f%%\n", st.Level, st.Strategy, st.TargetDeltaE, st.MeanRatio, 100*st.Within10, 100*st.Within15)
	}
	fmt.Fprintf(a.Out, "overall within ±15%%: %.1f%%\n", 100*total/float32(len(stats)))
	return nil
}
