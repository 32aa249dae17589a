// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package game plays levels: a [Session] asks the questions of one
// level and scores the answers, and a [Service] records the final
// scores of sessions in a [progress.Store].
package game

import (
	"fmt"
	"time"

	"cogentcore.org/rainbow/base/errors"
	"cogentcore.org/rainbow/colors"
	"cogentcore.org/rainbow/levels"
	"cogentcore.org/rainbow/palette"
	"cogentcore.org/rainbow/progress"
	"cogentcore.org/rainbow/scoring"
)

// QuestionsPerLevel is the number of questions in a session.
const QuestionsPerLevel = 5

var (
	// ErrSessionOver is returned when answering after a session has ended.
	ErrSessionOver = errors.New("session is over")

	// ErrInvalidIndex is returned for an answer outside of the colors of the question.
	ErrInvalidIndex = errors.New("invalid answer index")

	// ErrLocked is returned when starting a level that is not unlocked.
	ErrLocked = errors.New("level is locked")

	// ErrNoGame is returned for game modes that can not be played yet.
	ErrNoGame = errors.New("game mode has no game")
)

// Question is one question of a session: a set of colors of which
// exactly one is the answer.
type Question interface {
	Choices() []colors.RGB
	Solution() int
	IsCorrect(index int) bool
}

// Playable returns whether sessions can be played in the given mode.
func Playable(mode progress.Mode) bool {
	return mode == progress.ColorDistinguish || mode == progress.ColorHarmony
}

// State is the state of a [Session].
type State int32

const (
	// Playing is a session with a question waiting for an answer.
	Playing State = iota

	// Cleared is a session in which every question was answered correctly.
	Cleared

	// Failed is a session that ended on a wrong answer.
	Failed
)

func (s State) String() string {
	switch s {
	case Playing:
		return "playing"
	case Cleared:
		return "cleared"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("State(%d)", int32(s))
}

// Session is one play of a level: up to [QuestionsPerLevel] questions,
// ending early on the first wrong answer. Each correct answer earns
// points based on the response time, and the final score is their sum.
// A Session is not safe for concurrent use.
type Session struct {
	Mode          progress.Mode
	Level         int
	RequiredScore int

	// Count is the number of colors in each question, which is
	// always [palette.HarmonyOptions] in [progress.ColorHarmony].
	Count int

	// Question is the number of the current question, starting at 1.
	Question int

	// Score is the sum of the points earned so far.
	Score int

	state   State
	gen     *palette.Generator
	current Question
}

// NewSession returns a new session of the given level, with its first
// question generated by gen. In [progress.ColorDistinguish] each
// question is a [palette.Challenge] of count colors, where a count of 0
// uses [palette.DefaultCount]. In [progress.ColorHarmony] each question
// is a [palette.HarmonyPuzzle] and count is ignored. Other modes return
// [ErrNoGame].
func NewSession(gen *palette.Generator, mode progress.Mode, level, count int) (*Session, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %d", progress.ErrUnknownMode, int32(mode))
	}
	if !Playable(mode) {
		return nil, fmt.Errorf("%w: %s", ErrNoGame, mode)
	}
	req, err := levels.RequiredScore(level)
	if err != nil {
		return nil, err
	}
	switch {
	case mode == progress.ColorHarmony:
		count = palette.HarmonyOptions
	case count == 0:
		count = palette.DefaultCount
	}
	s := &Session{Mode: mode, Level: level, RequiredScore: req, Count: count, Question: 1, gen: gen}
	if err := s.next(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) next() error {
	if s.Mode == progress.ColorHarmony {
		h, err := s.gen.HarmonyPuzzle(s.Level)
		if err != nil {
			return err
		}
		s.current = &h
		return nil
	}
	c, err := s.gen.Challenge(s.Level, s.Count)
	if err != nil {
		return err
	}
	s.current = &c
	return nil
}

// Current returns the current question, or the last one once the
// session is over. It is a *[palette.Challenge] or a
// *[palette.HarmonyPuzzle] depending on the mode.
func (s *Session) Current() Question {
	return s.current
}

// State returns the state of the session.
func (s *Session) State() State {
	return s.state
}

// Done returns whether the session is over.
func (s *Session) Done() bool {
	return s.state != Playing
}

// Answer is the result of answering one question.
type Answer struct {
	Correct      bool
	CorrectIndex int

	// Points is the number of points earned by the answer.
	Points int

	// Score is the score of the session after the answer.
	Score int

	// Done is whether the session is over after the answer.
	Done bool
}

// Answer answers the current question with the index of the chosen
// color, given the time taken to answer. A wrong answer ends the
// session; so does a correct answer to the last question.
func (s *Session) Answer(index int, elapsed time.Duration) (Answer, error) {
	if s.Done() {
		return Answer{}, ErrSessionOver
	}
	if n := len(s.current.Choices()); index < 0 || index >= n {
		return Answer{}, fmt.Errorf("%w: %d is not within [0, %d)", ErrInvalidIndex, index, n)
	}
	a := Answer{Correct: s.current.IsCorrect(index), CorrectIndex: s.current.Solution()}
	if !a.Correct {
		s.state = Failed
		a.Score, a.Done = s.Score, true
		return a, nil
	}
	pts, err := scoring.PointsForResponse(elapsed)
	if err != nil {
		return Answer{}, err
	}
	s.Score += pts
	a.Points, a.Score = pts, s.Score
	if s.Question == QuestionsPerLevel {
		s.state = Cleared
		a.Done = true
		return a, nil
	}
	s.Question++
	return a, s.next()
}

// Passed returns whether the session was cleared with at least
// the required score.
func (s *Session) Passed() bool {
	return s.state == Cleared && s.Score >= s.RequiredScore
}
