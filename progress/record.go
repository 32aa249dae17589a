// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package progress

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"cogentcore.org/rainbow/base/errors"
	"cogentcore.org/rainbow/levels"
)

// Record is the persisted form of a [Progress], which can be encoded
// as JSON, TOML, or YAML.
type Record struct {
	GameMode     string `json:"gameMode" toml:"gameMode" yaml:"gameMode"`
	CurrentLevel int    `json:"currentLevel" toml:"currentLevel" yaml:"currentLevel"`

	// LevelScores is the best score of each level, keyed by the level
	// number as a string. [NewRecord] sets it to a map[string]int. It is
	// decoded into whatever the file holds, so that a malformed value
	// only loses the level scores of one record instead of failing the
	// whole file; [Record.Progress] converts it.
	LevelScores any `json:"levelScores" toml:"levelScores" yaml:"levelScores"`

	TotalScore      int       `json:"totalScore" toml:"totalScore" yaml:"totalScore"`
	CompletedLevels int       `json:"completedLevels" toml:"completedLevels" yaml:"completedLevels"`
	LastPlayedAt    time.Time `json:"lastPlayedAt" toml:"lastPlayedAt" yaml:"lastPlayedAt"`
}

// NewRecord returns the persisted form of the given progress.
func NewRecord(p Progress) Record {
	sm := make(map[string]int, len(p.LevelScores))
	for l, s := range p.LevelScores {
		sm[strconv.Itoa(l)] = s
	}
	return Record{
		GameMode:        p.Mode.String(),
		CurrentLevel:    p.CurrentLevel,
		LevelScores:     sm,
		TotalScore:      p.TotalScore,
		CompletedLevels: p.CompletedLevels,
		LastPlayedAt:    p.LastPlayedAt,
	}
}

// Progress returns the progress of the record. Only an unknown game
// mode is an error: level scores that can not be converted back,
// whatever their shape, are replaced by an empty map, as by
// [DecodeLevelScores], and the derived totals are then recomputed
// from the level scores.
func (r Record) Progress() (Progress, error) {
	mode, err := ParseMode(r.GameMode)
	if err != nil {
		return New(ColorDistinguish), err
	}
	return Restore(mode, r.CurrentLevel, levelScoresFromAny(r.LevelScores), r.LastPlayedAt), nil
}

// Restore returns a progress rebuilt from its stored parts. The totals
// are recomputed from the level scores, an invalid current level is
// replaced by the first level, and the time is converted to UTC.
func Restore(mode Mode, currentLevel int, scores map[int]int, lastPlayedAt time.Time) Progress {
	p := Progress{
		Mode:         mode,
		CurrentLevel: currentLevel,
		LevelScores:  scores,
		LastPlayedAt: lastPlayedAt.UTC(),
	}
	if p.LevelScores == nil {
		p.LevelScores = map[int]int{}
	}
	if levels.Validate(p.CurrentLevel) != nil {
		p.CurrentLevel = levels.MinLevel
	}
	p.TotalScore = sumScores(p.LevelScores)
	p.CompletedLevels = countCompleted(p)
	return p
}

// EncodeLevelScores returns the level scores as a JSON object
// with string keys, as stored in a single text column.
func EncodeLevelScores(scores map[int]int) string {
	sm := make(map[string]int, len(scores))
	for l, s := range scores {
		sm[strconv.Itoa(l)] = s
	}
	return string(errors.Ignore1(json.Marshal(sm))) // a map[string]int always marshals
}

// DecodeLevelScores returns the level scores encoded by [EncodeLevelScores].
// Any malformed input, including invalid JSON, a key that is not a valid
// level, or a negative score, results in an empty map.
func DecodeLevelScores(s string) map[int]int {
	var sm map[string]int
	if err := json.Unmarshal([]byte(s), &sm); err != nil {
		return map[int]int{}
	}
	return levelScoresFromStrings(sm)
}

func levelScoresFromStrings(sm map[string]int) map[int]int {
	scores := make(map[int]int, len(sm))
	for k, s := range sm {
		l, err := strconv.Atoi(k)
		if err != nil || levels.Validate(l) != nil || s < 0 {
			return map[int]int{}
		}
		scores[l] = s
	}
	return scores
}

// levelScoresFromAny converts level scores as decoded by any of the
// supported encodings. A string is taken as the JSON text of
// [EncodeLevelScores].
func levelScoresFromAny(v any) map[int]int {
	switch v := v.(type) {
	case map[string]int:
		return levelScoresFromStrings(v)
	case string:
		return DecodeLevelScores(v)
	case map[string]any:
		sm := make(map[string]int, len(v))
		for k, a := range v {
			s, ok := scoreValue(a)
			if !ok {
				return map[int]int{}
			}
			sm[k] = s
		}
		return levelScoresFromStrings(sm)
	case map[any]any:
		sm := make(map[string]int, len(v))
		for k, a := range v {
			s, ok := scoreValue(a)
			if !ok {
				return map[int]int{}
			}
			sm[fmt.Sprint(k)] = s
		}
		return levelScoresFromStrings(sm)
	}
	return map[int]int{}
}

// scoreValue returns the integer score of a decoded number.
func scoreValue(v any) (int, bool) {
	switch v := v.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint64:
		return int(v), v <= math.MaxInt32
	case float64:
		return int(v), v == math.Trunc(v) && math.Abs(v) <= math.MaxInt32
	}
	return 0, false
}
