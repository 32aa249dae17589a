// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"io"

	"cogentcore.org/rainbow/palette"
	"cogentcore.org/rainbow/progress"
	"github.com/muesli/termenv"
)

// App is the state shared by the commands.
type App struct {
	*Config

	Store progress.Store
	In    io.Reader
	Out   io.Writer

	// Level is the level selected with the -level flag; 0 picks one.
	Level int

	// All is whether to act on all game modes.
	All bool

	// Reset is whether to reset progress.
	Reset bool

	// Base is the "#rrggbb" base color of a challenge; empty picks one.
	Base string

	term *termenv.Output
}

// Generator returns a new color generator, seeded from the config.
func (a *App) Generator() *palette.Generator {
	if a.Seed == 0 {
		return palette.New(nil)
	}
	return palette.NewSeeded(a.Seed)
}

// Term returns the terminal output used for rendering colors.
func (a *App) Term() *termenv.Output {
	if a.term == nil {
		a.term = termenv.NewOutput(a.Out)
	}
	return a.term
}

// command is one subcommand of the tool.
type command struct {
	doc   string
	flags func(fs *flag.FlagSet, a *App)
	run   func(ctx context.Context, a *App) error
}

var commands = map[string]command{
	"play":      {"play a level interactively", playFlags, Play},
	"challenge": {"print one generated challenge", challengeFlags, Challenge},
	"levels":    {"list the levels and their status", noFlags, Levels},
	"progress":  {"show or reset the stored progress", progressFlags, Progress},
	"calibrate": {"measure generation accuracy for every level", calibrateFlags, Calibrate},
}

var commandOrder = []string{"play", "challenge", "levels", "progress", "calibrate"}

func noFlags(fs *flag.FlagSet, a *App) {}

func playFlags(fs *flag.FlagSet, a *App) {
	fs.IntVar(&a.Level, "level", 0, "level to play (default: the next playable level)")
	fs.IntVar(&a.Count, "count", a.Count, "number of colors in each question")
}

func challengeFlags(fs *flag.FlagSet, a *App) {
	fs.IntVar(&a.Level, "level", 1, "level of the challenge")
	fs.IntVar(&a.Count, "count", a.Count, "number of colors in the challenge")
	fs.StringVar(&a.Base, "base", "", "base color of the challenge as #rrggbb (default: a random one)")
}

func progressFlags(fs *flag.FlagSet, a *App) {
	fs.BoolVar(&a.All, "all", false, "show or reset all game modes")
	fs.BoolVar(&a.Reset, "reset", false, "reset the progress")
}

func calibrateFlags(fs *flag.FlagSet, a *App) {
	fs.IntVar(&a.Calibrate.Samples, "samples", a.Calibrate.Samples, "challenges generated per level")
	fs.IntVar(&a.Calibrate.Workers, "workers", a.Calibrate.Workers, "levels calibrated in parallel")
}
