package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundResult_Won(t *testing.T) {
	win := RoundResult{Strategy: StrategyStay, Outcome: OutcomeWin}
	lose := RoundResult{Strategy: StrategySwitch, Outcome: OutcomeLose}

	assert.True(t, win.Won())
	assert.False(t, lose.Won())
}

func TestStrategyStats_WinProportion(t *testing.T) {
	tests := []struct {
		name   string
		wins   int
		losses int
		win    float64
		lose   float64
	}{
		{
			name:   "two thirds won",
			wins:   2,
			losses: 1,
			win:    2.0 / 3.0,
			lose:   1.0 / 3.0,
		},
		{
			name:   "all won",
			wins:   5,
			losses: 0,
			win:    1,
			lose:   0,
		},
		{
			name:   "nothing played",
			wins:   0,
			losses: 0,
			win:    0,
			lose:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := &StrategyStats{Strategy: StrategyStay, Wins: tt.wins, Losses: tt.losses}

			assert.Equal(t, tt.wins+tt.losses, stats.Played())
			assert.InDelta(t, tt.win, stats.WinProportion(), 1e-9)
			assert.InDelta(t, tt.lose, stats.LoseProportion(), 1e-9)
		})
	}
}

func TestBatchResult_Proportions(t *testing.T) {
	batch := &BatchResult{
		Rounds: 100,
		Stats: map[Strategy]*StrategyStats{
			StrategyStay:   {Strategy: StrategyStay, Wins: 33, Losses: 67},
			StrategySwitch: {Strategy: StrategySwitch, Wins: 67, Losses: 33},
		},
	}

	table := batch.Proportions(2)

	assert.Equal(t, 2, table.Precision)
	assert.Len(t, table.Rows, 2)
	assert.Equal(t, StrategyStay, table.Rows[0].Strategy)
	assert.Equal(t, StrategySwitch, table.Rows[1].Strategy)
	assert.Equal(t, 0.33, table.Rows[0].Win)
	assert.Equal(t, 0.67, table.Rows[0].Lose)
	assert.Equal(t, 0.67, table.Rows[1].Win)
	assert.Equal(t, 0.33, table.Rows[1].Lose)
}

func TestBatchResult_Proportions_Rounding(t *testing.T) {
	// 1/3 and 2/3 exercise rounding at every precision.
	batch := &BatchResult{
		Rounds: 3,
		Stats: map[Strategy]*StrategyStats{
			StrategyStay:   {Strategy: StrategyStay, Wins: 1, Losses: 2},
			StrategySwitch: {Strategy: StrategySwitch, Wins: 2, Losses: 1},
		},
	}

	table := batch.Proportions(4)
	assert.Equal(t, 0.3333, table.Rows[0].Win)
	assert.Equal(t, 0.6667, table.Rows[0].Lose)

	table = batch.Proportions(1)
	assert.Equal(t, 0.3, table.Rows[0].Win)
	assert.Equal(t, 0.7, table.Rows[0].Lose)

	table = batch.Proportions(0)
	assert.Equal(t, 0.0, table.Rows[0].Win)
	assert.Equal(t, 1.0, table.Rows[0].Lose)
}
