// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sqlitestore provides a [progress.Store] backed by a SQLite
// database, with one row per game mode in the game_progress table.
// Level scores are stored as a JSON object with string keys in a single
// text column; a value that can not be decoded is read as no scores.
package sqlitestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"cogentcore.org/rainbow/progress"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS game_progress (
	game_mode TEXT PRIMARY KEY NOT NULL,
	current_level INTEGER NOT NULL,
	level_scores TEXT NOT NULL,
	total_score INTEGER NOT NULL,
	completed_levels INTEGER NOT NULL,
	last_played_at INTEGER
)`

const columns = `game_mode, current_level, level_scores, total_score, completed_levels, last_played_at`

// Store is a SQLite-backed [progress.Store].
type Store struct {
	sqlDB *sql.DB
}

// Open opens the SQLite store at the provided path, creating the
// database and its table if needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)&_txlock=immediate"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// a single connection serializes all updates
	sqlDB.SetMaxOpenConns(1)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	slog.Debug("opened progress database", "path", cleanPath)
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func toMillis(value time.Time) sql.NullInt64 {
	if value.IsZero() {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: value.UTC().UnixMilli(), Valid: true}
}

func fromMillis(value sql.NullInt64) time.Time {
	if !value.Valid {
		return time.Time{}
	}
	return time.UnixMilli(value.Int64).UTC()
}

// querier is the part of [sql.DB] and [sql.Tx] used by the store.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProgress(row scanner) (progress.Progress, error) {
	var (
		tag          string
		currentLevel int
		scores       string
		total        int
		completed    int
		lastPlayed   sql.NullInt64
	)
	if err := row.Scan(&tag, &currentLevel, &scores, &total, &completed, &lastPlayed); err != nil {
		return progress.Progress{}, err
	}
	mode, err := progress.ParseMode(tag)
	if err != nil {
		return progress.Progress{}, err
	}
	return progress.Restore(mode, currentLevel, progress.DecodeLevelScores(scores), fromMillis(lastPlayed)), nil
}

func load(ctx context.Context, q querier, mode progress.Mode) (progress.Progress, error) {
	row := q.QueryRowContext(ctx, `SELECT `+columns+` FROM game_progress WHERE game_mode = ?`, mode.String())
	p, err := scanProgress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.New(mode), nil
	}
	if err != nil {
		return progress.Progress{}, fmt.Errorf("load progress %s: %w", mode, err)
	}
	return p, nil
}

func save(ctx context.Context, q querier, p progress.Progress) error {
	_, err := q.ExecContext(ctx, `INSERT INTO game_progress (`+columns+`) VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(game_mode) DO UPDATE SET
	current_level = excluded.current_level,
	level_scores = excluded.level_scores,
	total_score = excluded.total_score,
	completed_levels = excluded.completed_levels,
	last_played_at = excluded.last_played_at`,
		p.Mode.String(),
		p.CurrentLevel,
		progress.EncodeLevelScores(p.LevelScores),
		p.TotalScore,
		p.CompletedLevels,
		toMillis(p.LastPlayedAt),
	)
	if err != nil {
		return fmt.Errorf("save progress %s: %w", p.Mode, err)
	}
	return nil
}

func (s *Store) Load(ctx context.Context, mode progress.Mode) (progress.Progress, error) {
	if err := ctx.Err(); err != nil {
		return progress.Progress{}, err
	}
	return load(ctx, s.sqlDB, mode)
}

func (s *Store) Save(ctx context.Context, p progress.Progress) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !p.Mode.IsValid() {
		return fmt.Errorf("%w: %d", progress.ErrUnknownMode, int32(p.Mode))
	}
	return save(ctx, s.sqlDB, p)
}

func (s *Store) LoadAll(ctx context.Context) (map[progress.Mode]progress.Progress, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	rows, err := s.sqlDB.QueryContext(ctx, `SELECT `+columns+` FROM game_progress`)
	if err != nil {
		return nil, fmt.Errorf("load all progress: %w", err)
	}
	defer rows.Close()

	all := map[progress.Mode]progress.Progress{}
	for rows.Next() {
		p, err := scanProgress(rows)
		if errors.Is(err, progress.ErrUnknownMode) {
			slog.Warn("skipping progress row", "err", err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("scan progress: %w", err)
		}
		all[p.Mode] = p
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load all progress: %w", err)
	}
	return all, nil
}

func (s *Store) Reset(ctx context.Context, mode progress.Mode) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM game_progress WHERE game_mode = ?`, mode.String()); err != nil {
		return fmt.Errorf("reset progress %s: %w", mode, err)
	}
	return nil
}

func (s *Store) Update(ctx context.Context, mode progress.Mode, fn func(p progress.Progress) (progress.Progress, error)) (progress.Progress, error) {
	if err := ctx.Err(); err != nil {
		return progress.Progress{}, err
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return progress.Progress{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	p, err := load(ctx, tx, mode)
	if err != nil {
		return progress.Progress{}, err
	}
	p, err = fn(p)
	if err != nil {
		return progress.Progress{}, err
	}
	p.Mode = mode
	if err := save(ctx, tx, p); err != nil {
		return progress.Progress{}, err
	}
	if err := tx.Commit(); err != nil {
		return progress.Progress{}, fmt.Errorf("commit transaction: %w", err)
	}
	return p, nil
}

var _ progress.Store = (*Store)(nil)
