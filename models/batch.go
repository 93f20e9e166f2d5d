package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// StrategyStats represents aggregated win/lose counts for one strategy
type StrategyStats struct {
	Strategy Strategy
	Wins     int
	Losses   int
}

// Played returns the number of rounds the strategy was evaluated in
func (s *StrategyStats) Played() int {
	return s.Wins + s.Losses
}

// WinProportion returns the unrounded fraction of rounds won
func (s *StrategyStats) WinProportion() float64 {
	played := s.Played()
	if played == 0 {
		return 0
	}
	return float64(s.Wins) / float64(played)
}

// LoseProportion returns the unrounded fraction of rounds lost
func (s *StrategyStats) LoseProportion() float64 {
	played := s.Played()
	if played == 0 {
		return 0
	}
	return float64(s.Losses) / float64(played)
}

// BatchResult aggregates the outcomes of one simulated batch of rounds
type BatchResult struct {
	RunID   uuid.UUID
	Seed    int64
	Rounds  int
	Results []RoundResult // round-major: round 1 stay, round 1 switch, round 2 stay, ...
	Trace   []*Round      // full per-round traces in round order
	Stats   map[Strategy]*StrategyStats
	Elapsed time.Duration
}

// ProportionRow holds the rounded win/lose proportions for one strategy
type ProportionRow struct {
	Strategy Strategy
	Win      float64
	Lose     float64
}

// ProportionTable is the per-strategy summary of a batch, rows in
// evaluation order. Each row sums to 1.0 up to rounding.
type ProportionTable struct {
	Precision int
	Rows      []ProportionRow
}

// Proportions derives the win/lose proportion table for the batch,
// rounding each cell to the given number of decimals.
func (b *BatchResult) Proportions(precision int) ProportionTable {
	table := ProportionTable{Precision: precision}
	for _, strategy := range Strategies() {
		stats, ok := b.Stats[strategy]
		if !ok {
			continue
		}
		table.Rows = append(table.Rows, ProportionRow{
			Strategy: strategy,
			Win:      roundTo(stats.WinProportion(), precision),
			Lose:     roundTo(stats.LoseProportion(), precision),
		})
	}
	return table
}

func roundTo(v float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	return math.Round(v*scale) / scale
}
