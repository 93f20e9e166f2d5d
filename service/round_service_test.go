package service

import (
	"testing"

	"montyhall/models"
	"montyhall/random"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundService_DoorCount(t *testing.T) {
	tests := []struct {
		name      string
		doorCount int
		expectErr bool
	}{
		{
			name:      "classic three doors",
			doorCount: 3,
			expectErr: false,
		},
		{
			name:      "two doors rejected",
			doorCount: 2,
			expectErr: true,
		},
		{
			name:      "ten doors rejected",
			doorCount: 10,
			expectErr: true,
		},
		{
			name:      "zero doors rejected",
			doorCount: 0,
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewRoundService(tt.doorCount)

			if tt.expectErr {
				assert.ErrorIs(t, err, models.ErrInvalidArgument)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.doorCount, svc.DoorCount())
			}
		})
	}
}

func TestRoundService_CreateAssignment_ExactlyOnePrize(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	master := random.NewSeeded(1)
	for i := 0; i < 500; i++ {
		assignment := svc.CreateAssignment(random.NewSeeded(master.Int63()))

		require.Equal(t, 3, assignment.DoorCount())
		prizes := 0
		for door := models.Door(1); door <= 3; door++ {
			if assignment.Content(door) == models.ContentPrize {
				prizes++
			} else {
				require.Equal(t, models.ContentBlank, assignment.Content(door))
			}
		}
		require.Equal(t, 1, prizes)
	}
}

func TestRoundService_CreateAssignment_UniformPlacement(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	counts := make(map[models.Door]int)
	master := random.NewSeeded(2)
	for i := 0; i < 3000; i++ {
		assignment := svc.CreateAssignment(random.NewSeeded(master.Int63()))
		prize, err := assignment.PrizeDoor()
		require.NoError(t, err)
		counts[prize]++
	}

	// Each door should hide the prize about a third of the time.
	for door := models.Door(1); door <= 3; door++ {
		assert.InDelta(t, 1000, counts[door], 150, "door %d placement count", door)
	}
}

func TestRoundService_SelectInitialPick_Range(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	master := random.NewSeeded(3)
	for i := 0; i < 500; i++ {
		pick := svc.SelectInitialPick(random.NewSeeded(master.Int63()))
		require.True(t, pick.Valid(3), "pick %d out of range", pick)
	}
}

func TestRoundService_RevealDoor_NeverPrizeNeverPick(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	master := random.NewSeeded(4)
	for i := 0; i < 1000; i++ {
		src := random.NewSeeded(master.Int63())
		assignment := svc.CreateAssignment(src)
		pick := svc.SelectInitialPick(src)

		revealed, err := svc.RevealDoor(src, assignment, pick)
		require.NoError(t, err)

		require.NotEqual(t, pick, revealed)
		require.Equal(t, models.ContentBlank, assignment.Content(revealed))
	}
}

func TestRoundService_RevealDoor_ForcedWhenPickIsBlank(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	// With the prize behind door 1 and door 2 picked, the host has no
	// choice: only door 3 is blank and unpicked.
	assignment := models.Assignment{models.ContentPrize, models.ContentBlank, models.ContentBlank}

	revealed, err := svc.RevealDoor(random.NewSeeded(99), assignment, 2)
	assert.NoError(t, err)
	assert.Equal(t, models.Door(3), revealed)
}

func TestRoundService_RevealDoor_UniformWhenPickIsPrize(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	// Prize picked: doors 2 and 3 are both blank, the host chooses
	// between them uniformly.
	assignment := models.Assignment{models.ContentPrize, models.ContentBlank, models.ContentBlank}

	counts := make(map[models.Door]int)
	master := random.NewSeeded(5)
	for i := 0; i < 2000; i++ {
		revealed, err := svc.RevealDoor(random.NewSeeded(master.Int63()), assignment, 1)
		require.NoError(t, err)
		counts[revealed]++
	}

	assert.Zero(t, counts[1])
	assert.InDelta(t, 1000, counts[2], 150)
	assert.InDelta(t, 1000, counts[3], 150)
}

func TestRoundService_RevealDoor_Validation(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	valid := models.Assignment{models.ContentPrize, models.ContentBlank, models.ContentBlank}
	src := random.NewSeeded(6)

	tests := []struct {
		name       string
		assignment models.Assignment
		pick       models.Door
		expectErr  error
	}{
		{
			name:       "pick below range",
			assignment: valid,
			pick:       0,
			expectErr:  models.ErrInvalidArgument,
		},
		{
			name:       "pick above range",
			assignment: valid,
			pick:       4,
			expectErr:  models.ErrInvalidArgument,
		},
		{
			name:       "assignment too short",
			assignment: models.Assignment{models.ContentPrize, models.ContentBlank},
			pick:       1,
			expectErr:  models.ErrInvalidState,
		},
		{
			name:       "assignment without prize",
			assignment: models.Assignment{models.ContentBlank, models.ContentBlank, models.ContentBlank},
			pick:       1,
			expectErr:  models.ErrInvalidState,
		},
		{
			name:       "assignment with two prizes",
			assignment: models.Assignment{models.ContentPrize, models.ContentPrize, models.ContentBlank},
			pick:       1,
			expectErr:  models.ErrInvalidState,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			revealed, err := svc.RevealDoor(src, tt.assignment, tt.pick)

			assert.ErrorIs(t, err, tt.expectErr)
			assert.Equal(t, models.Door(0), revealed)
		})
	}
}

func TestRoundService_ResolveFinalPick_Stay(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	final, err := svc.ResolveFinalPick(models.StrategyStay, 2, 3)
	assert.NoError(t, err)
	assert.Equal(t, models.Door(2), final)
}

func TestRoundService_ResolveFinalPick_Switch(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	tests := []struct {
		name     string
		initial  models.Door
		revealed models.Door
		target   models.Door
	}{
		{name: "picked 1 revealed 2", initial: 1, revealed: 2, target: 3},
		{name: "picked 1 revealed 3", initial: 1, revealed: 3, target: 2},
		{name: "picked 2 revealed 1", initial: 2, revealed: 1, target: 3},
		{name: "picked 2 revealed 3", initial: 2, revealed: 3, target: 1},
		{name: "picked 3 revealed 1", initial: 3, revealed: 1, target: 2},
		{name: "picked 3 revealed 2", initial: 3, revealed: 2, target: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final, err := svc.ResolveFinalPick(models.StrategySwitch, tt.initial, tt.revealed)

			assert.NoError(t, err)
			assert.Equal(t, tt.target, final)
			assert.NotEqual(t, tt.initial, final)
			assert.NotEqual(t, tt.revealed, final)
		})
	}
}

func TestRoundService_ResolveFinalPick_Validation(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	tests := []struct {
		name      string
		strategy  models.Strategy
		initial   models.Door
		revealed  models.Door
		expectErr error
	}{
		{
			name:      "initial pick out of range",
			strategy:  models.StrategyStay,
			initial:   0,
			revealed:  2,
			expectErr: models.ErrInvalidArgument,
		},
		{
			name:      "revealed door out of range",
			strategy:  models.StrategyStay,
			initial:   1,
			revealed:  5,
			expectErr: models.ErrInvalidArgument,
		},
		{
			name:      "revealed equals pick",
			strategy:  models.StrategySwitch,
			initial:   2,
			revealed:  2,
			expectErr: models.ErrInvalidState,
		},
		{
			name:      "unknown strategy",
			strategy:  models.Strategy("hedge"),
			initial:   1,
			revealed:  2,
			expectErr: models.ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			final, err := svc.ResolveFinalPick(tt.strategy, tt.initial, tt.revealed)

			assert.ErrorIs(t, err, tt.expectErr)
			assert.Equal(t, models.Door(0), final)
		})
	}
}

func TestRoundService_DetermineOutcome(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	assignment := models.Assignment{models.ContentBlank, models.ContentPrize, models.ContentBlank}

	outcome, err := svc.DetermineOutcome(assignment, 2)
	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeWin, outcome)

	outcome, err = svc.DetermineOutcome(assignment, 1)
	assert.NoError(t, err)
	assert.Equal(t, models.OutcomeLose, outcome)

	_, err = svc.DetermineOutcome(assignment, 4)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestRoundService_PlayRound_Invariants(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	master := random.NewSeeded(7)
	for i := 0; i < 1000; i++ {
		round, err := svc.PlayRound(random.NewSeeded(master.Int63()))
		require.NoError(t, err)

		prize, err := round.Assignment.PrizeDoor()
		require.NoError(t, err)
		require.Equal(t, prize, round.Prize)

		// The host never opens the prize door or the contestant's pick.
		require.NotEqual(t, round.InitialPick, round.Revealed)
		require.NotEqual(t, prize, round.Revealed)

		// Stay keeps the initial pick, switch moves off it.
		require.Equal(t, round.InitialPick, round.StayPick)
		require.NotEqual(t, round.InitialPick, round.SwitchPick)
		require.NotEqual(t, round.Revealed, round.SwitchPick)

		// Exactly one strategy wins every round.
		require.NotEqual(t, round.Stay.Outcome, round.Switch.Outcome)

		// Stay wins exactly when the first pick found the prize.
		if round.InitialPick == prize {
			require.Equal(t, models.OutcomeWin, round.Stay.Outcome)
			require.Equal(t, models.OutcomeLose, round.Switch.Outcome)
		} else {
			require.Equal(t, models.OutcomeLose, round.Stay.Outcome)
			require.Equal(t, models.OutcomeWin, round.Switch.Outcome)
		}
	}
}

func TestRoundService_PlayRound_Deterministic(t *testing.T) {
	svc, err := NewRoundService(3)
	require.NoError(t, err)

	first, err := svc.PlayRound(random.NewSeeded(42))
	require.NoError(t, err)

	second, err := svc.PlayRound(random.NewSeeded(42))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
