// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rainbow is a terminal color discrimination trainer: it shows
// a grid of colors in which one differs slightly, and records progress
// through 30 levels of decreasing color difference.
//
// Usage:
//
//	rainbow [flags] <command> [command flags]
//
// The commands are:
//
//	play       play a level interactively
//	challenge  print one generated challenge
//	levels     list the levels and their status
//	progress   show or reset the stored progress
//	calibrate  measure generation accuracy for every level
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/rainbow/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	if err := run(ctx, os.Args[1:], Environ(), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "rainbow: %v\n", err)
		os.Exit(1)
	}
}

// run parses the global flags and runs the named command.
func run(ctx context.Context, args []string, environ map[string]string, in io.Reader, out io.Writer) error {
	fs := flag.NewFlagSet("rainbow", flag.ContinueOnError)
	fs.SetOutput(out)
	configFile := fs.String("config", "", "config file (default: "+ConfigFile+" in the data directory)")
	var vv, v, q bool
	fs.BoolVar(&vv, "vv", false, "show debug log messages")
	fs.BoolVar(&v, "v", false, "show informational log messages")
	fs.BoolVar(&q, "q", false, "only show error log messages")
	fs.Usage = func() { usage(fs) }
	if err := fs.Parse(args); err != nil {
		return err
	}
	logx.UserLevel = logx.LevelFromFlags(vv, v, q)
	logx.SetDefaultLogger()

	if fs.NArg() == 0 {
		usage(fs)
		return fmt.Errorf("no command given")
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		usage(fs)
		return fmt.Errorf("unknown command %q", fs.Arg(0))
	}

	cfg, err := LoadConfig(*configFile, environ)
	if err != nil {
		return err
	}
	cfs := flag.NewFlagSet(fs.Arg(0), flag.ContinueOnError)
	cfs.SetOutput(out)
	cfs.StringVar(&cfg.Store, "store", cfg.Store, "progress store: sqlite, toml, json, yaml, or memory")
	cfs.TextVar(&cfg.Mode, "mode", cfg.Mode, "game mode")
	cfs.StringVar(&cfg.DataDir, "data", cfg.DataDir, "data directory")
	cfs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 for a random one)")
	a := &App{Config: cfg, In: in, Out: out}
	cmd.flags(cfs, a)
	if err := cfs.Parse(fs.Args()[1:]); err != nil {
		return err
	}

	store, closeStore, err := cfg.OpenStore()
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			slog.Error("closing progress store", "err", err)
		}
	}()
	a.Store = store
	slog.Debug("running command", "command", fs.Arg(0), "store", cfg.Store, "mode", cfg.Mode)
	return cmd.run(ctx, a)
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintln(w, "Usage: rainbow [flags] <command> [command flags]")
	fmt.Fprintln(w, "\nCommands:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].doc)
	}
	fmt.Fprintln(w, "\nFlags:")
	fs.PrintDefaults()
}
