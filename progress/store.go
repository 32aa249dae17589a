// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress

import (
	"context"
	"fmt"
	"sync"
)

// Store persists one [Progress] per game mode.
type Store interface {

	// Load returns the stored progress of the mode,
	// or the default progress from [New] if there is none.
	Load(ctx context.Context, mode Mode) (Progress, error)

	// Save stores the progress under its mode, replacing any previous value.
	Save(ctx context.Context, p Progress) error

	// LoadAll returns the stored progress of every mode that has any.
	LoadAll(ctx context.Context) (map[Mode]Progress, error)

	// Reset removes the stored progress of the mode.
	Reset(ctx context.Context, mode Mode) error

	// Update loads the progress of the mode, applies fn to it, and saves
	// the result, with no other update of the same store in between.
	// The saved progress is returned. Nothing is saved if fn returns an error.
	Update(ctx context.Context, mode Mode, fn func(p Progress) (Progress, error)) (Progress, error)
}

// MemStore is a [Store] that keeps progress in memory.
// It is safe for concurrent use.
type MemStore struct {
	mu    sync.Mutex
	modes map[Mode]Progress
}

// NewMemStore returns a new empty [MemStore].
func NewMemStore() *MemStore {
	return &MemStore{modes: map[Mode]Progress{}}
}

func (s *MemStore) Load(ctx context.Context, mode Mode) (Progress, error) {
	if err := ctx.Err(); err != nil {
		return Progress{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(mode), nil
}

func (s *MemStore) load(mode Mode) Progress {
	if p, ok := s.modes[mode]; ok {
		return p.Clone()
	}
	return New(mode)
}

func (s *MemStore) Save(ctx context.Context, p Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.Mode.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownMode, int32(p.Mode))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.modes[p.Mode] = p.Clone()
	return nil
}

func (s *MemStore) LoadAll(ctx context.Context) (map[Mode]Progress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	all := make(map[Mode]Progress, len(s.modes))
	for m, p := range s.modes {
		all[m] = p.Clone()
	}
	return all, nil
}

func (s *MemStore) Reset(ctx context.Context, mode Mode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.modes, mode)
	return nil
}

func (s *MemStore) Update(ctx context.Context, mode Mode, fn func(p Progress) (Progress, error)) (Progress, error) {
	if err := ctx.Err(); err != nil {
		return Progress{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := fn(s.load(mode))
	if err != nil {
		return Progress{}, err
	}
	p.Mode = mode
	s.modes[mode] = p.Clone()
	return p, nil
}
