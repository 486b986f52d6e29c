package domain

import (
	"time"
)

// RankingResult is one trading pair's score under one strategy on one date.
// For a fixed (strategy, date) the rank positions are exactly 1..N with
// final scores non-increasing along the sequence.
type RankingResult struct {
	StrategyName    string
	Date            time.Time
	TradingPair     string
	ComponentScores map[string]float64
	FinalScore      float64
	RankPosition    int
}

// RecomputeMode controls what happens when rankings already exist for a
// (strategy, date) key.
type RecomputeMode int

const (
	// RecomputeModeIncremental skips dates that already have persisted results.
	RecomputeModeIncremental RecomputeMode = iota
	// RecomputeModeForced replaces prior results for the key in full.
	RecomputeModeForced
)

func (m RecomputeMode) String() string {
	if m == RecomputeModeForced {
		return "forced"
	}
	return "incremental"
}
