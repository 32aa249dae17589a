// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filestore provides a [progress.Store] that keeps the progress
// of all game modes in a single TOML, JSON, or YAML file, chosen by the
// extension of the file name.
package filestore

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"cogentcore.org/rainbow/base/errors"
	"cogentcore.org/rainbow/base/iox/jsonx"
	"cogentcore.org/rainbow/base/iox/tomlx"
	"cogentcore.org/rainbow/base/iox/yamlx"
	"cogentcore.org/rainbow/progress"
)

// ErrUnsupportedFormat is returned for file names with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported progress file format")

// format is a pair of open and save functions for one encoding.
type format struct {
	open func(v any, filename string) error
	save func(v any, filename string) error
}

var formats = map[string]format{
	".toml": {tomlx.Open, tomlx.Save},
	".json": {jsonx.Open, jsonx.SaveIndent},
	".yaml": {yamlx.Open, yamlx.Save},
	".yml":  {yamlx.Open, yamlx.Save},
}

// Extensions returns the supported file name extensions.
func Extensions() []string {
	exts := make([]string, 0, len(formats))
	for ext := range formats {
		exts = append(exts, ext)
	}
	slices.Sort(exts)
	return exts
}

// document is the content of a progress file.
type document struct {
	Modes []progress.Record `json:"modes" toml:"modes" yaml:"modes"`
}

// Store is a [progress.Store] backed by a single file. Every operation
// reads the file, and every change rewrites it completely.
// It is safe for concurrent use within one process.
type Store struct {
	mu       sync.Mutex
	filename string
	format   format
}

// New returns a new [Store] for the given file, which need not exist yet.
func New(filename string) (*Store, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := formats[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q (use one of %s)", ErrUnsupportedFormat, filename, strings.Join(Extensions(), ", "))
	}
	return &Store{filename: filename, format: f}, nil
}

// Filename returns the name of the file of the store.
func (s *Store) Filename() string {
	return s.filename
}

// read returns the progress of all modes in the file,
// which is empty if the file does not exist.
func (s *Store) read() (map[progress.Mode]progress.Progress, error) {
	var doc document
	err := s.format.open(&doc, s.filename)
	if errors.Is(err, fs.ErrNotExist) {
		return map[progress.Mode]progress.Progress{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading progress file %q: %w", s.filename, err)
	}
	all := make(map[progress.Mode]progress.Progress, len(doc.Modes))
	for _, r := range doc.Modes {
		p, err := r.Progress()
		if err != nil {
			slog.Warn("skipping progress record", "file", s.filename, "err", err)
			continue
		}
		all[p.Mode] = p
	}
	return all, nil
}

func (s *Store) write(all map[progress.Mode]progress.Progress) error {
	doc := document{Modes: make([]progress.Record, 0, len(all))}
	for _, m := range progress.Modes() {
		if p, ok := all[m]; ok {
			doc.Modes = append(doc.Modes, progress.NewRecord(p))
		}
	}
	if err := s.format.save(&doc, s.filename); err != nil {
		return fmt.Errorf("writing progress file %q: %w", s.filename, err)
	}
	slog.Debug("saved progress", "file", s.filename, "modes", len(doc.Modes))
	return nil
}

func (s *Store) Load(ctx context.Context, mode progress.Mode) (progress.Progress, error) {
	if err := ctx.Err(); err != nil {
		return progress.Progress{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.read()
	if err != nil {
		return progress.Progress{}, err
	}
	if p, ok := all[mode]; ok {
		return p, nil
	}
	return progress.New(mode), nil
}

func (s *Store) Save(ctx context.Context, p progress.Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.Mode.IsValid() {
		return fmt.Errorf("%w: %d", progress.ErrUnknownMode, int32(p.Mode))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.read()
	if err != nil {
		return err
	}
	all[p.Mode] = p
	return s.write(all)
}

func (s *Store) LoadAll(ctx context.Context) (map[progress.Mode]progress.Progress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

func (s *Store) Reset(ctx context.Context, mode progress.Mode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.read()
	if err != nil {
		return err
	}
	if _, ok := all[mode]; !ok {
		return nil
	}
	delete(all, mode)
	return s.write(all)
}

func (s *Store) Update(ctx context.Context, mode progress.Mode, fn func(p progress.Progress) (progress.Progress, error)) (progress.Progress, error) {
	if err := ctx.Err(); err != nil {
		return progress.Progress{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := s.read()
	if err != nil {
		return progress.Progress{}, err
	}
	p, ok := all[mode]
	if !ok {
		p = progress.New(mode)
	}
	p, err = fn(p)
	if err != nil {
		return progress.Progress{}, err
	}
	p.Mode = mode
	all[mode] = p
	return p, s.write(all)
}
