// Package model defines shared data structures.
package model

import "time"

// Difficulty selects how quickly the hit zone shrinks.
type Difficulty string

const (
	DifficultyNormal Difficulty = "normal"
	DifficultyHard   Difficulty = "hard"
)

// Valid reports whether d is one of the known difficulty levels.
func (d Difficulty) Valid() bool {
	return d == DifficultyNormal || d == DifficultyHard
}

// GameSettings holds the player-tunable parameters of a session.
type GameSettings struct {
	Speed      float64
	Difficulty Difficulty
	CountHits  int
}

// GameState is the full mutable state of one play session.
type GameState struct {
	IsStarted       bool
	IsOverHitZone   bool
	IsRotating      bool
	PointerAngle    float64
	SuccessfulHits  int
	CurrentHitRange float64
	CenterRange     float64
	LastTimestamp   time.Time
	IsWin           bool
	IsLoose         bool
	Countdown       int
}

// Terminal reports whether the session has been won or lost.
func (s GameState) Terminal() bool {
	return s.IsWin || s.IsLoose
}

// Outcome describes how a finished game ended.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLose Outcome = "lose"
)

// RoundResult captures a finished game for the in-process results log.
type RoundResult struct {
	ID         string
	Outcome    Outcome
	Difficulty Difficulty
	Hits       int
	TargetHits int
	FinalRange float64
	StartedAt  time.Time
	EndedAt    time.Time
}

// ResultSummary aggregates finished games.
type ResultSummary struct {
	Games      int
	Wins       int
	Losses     int
	TotalHits  int
	BestHits   int
	BestStreak int
	LastEnded  time.Time
}
