package service

import (
	"fmt"

	"montyhall/models"
	"montyhall/random"
)

// ClassicDoorCount is the door count of the classic game
const ClassicDoorCount = 3

type roundService struct {
	doorCount int
}

// NewRoundService creates a new round service for a doorCount-door game.
// Only the classic three-door game is accepted: with more doors the
// switch strategy has no single well-defined target, so larger games
// are rejected rather than guessed at.
func NewRoundService(doorCount int) (RoundService, error) {
	if doorCount != ClassicDoorCount {
		return nil, fmt.Errorf("%w: door count must be %d, got %d", models.ErrInvalidArgument, ClassicDoorCount, doorCount)
	}
	return &roundService{doorCount: doorCount}, nil
}

func (s *roundService) DoorCount() int {
	return s.doorCount
}

func (s *roundService) CreateAssignment(src random.Source) models.Assignment {
	// Shuffling one prize among blanks samples a uniform permutation,
	// so every door is equally likely to hide the prize.
	assignment := make(models.Assignment, s.doorCount)
	for i := range assignment {
		assignment[i] = models.ContentBlank
	}
	assignment[0] = models.ContentPrize

	src.Shuffle(len(assignment), func(i, j int) {
		assignment[i], assignment[j] = assignment[j], assignment[i]
	})

	return assignment
}

func (s *roundService) SelectInitialPick(src random.Source) models.Door {
	return models.Door(src.Intn(s.doorCount) + 1)
}

func (s *roundService) RevealDoor(src random.Source, assignment models.Assignment, pick models.Door) (models.Door, error) {
	// Validate inputs
	if !pick.Valid(s.doorCount) {
		return 0, fmt.Errorf("%w: pick %d is not a door in a %d-door game", models.ErrInvalidArgument, pick, s.doorCount)
	}
	if assignment.DoorCount() != s.doorCount {
		return 0, fmt.Errorf("%w: assignment covers %d doors, want %d", models.ErrInvalidState, assignment.DoorCount(), s.doorCount)
	}
	if _, err := assignment.PrizeDoor(); err != nil {
		return 0, err
	}

	// The host may open any door that is blank and not the contestant's
	// pick. When the contestant picked the prize that leaves two doors;
	// when they picked a blank it leaves exactly one.
	candidates := make([]models.Door, 0, s.doorCount-1)
	for door := models.Door(1); int(door) <= s.doorCount; door++ {
		if door == pick || assignment.Content(door) != models.ContentBlank {
			continue
		}
		candidates = append(candidates, door)
	}

	if len(candidates) == 1 {
		return candidates[0], nil
	}
	return candidates[src.Intn(len(candidates))], nil
}

func (s *roundService) ResolveFinalPick(strategy models.Strategy, initialPick, revealed models.Door) (models.Door, error) {
	// Validate inputs
	if !initialPick.Valid(s.doorCount) {
		return 0, fmt.Errorf("%w: initial pick %d is not a door in a %d-door game", models.ErrInvalidArgument, initialPick, s.doorCount)
	}
	if !revealed.Valid(s.doorCount) {
		return 0, fmt.Errorf("%w: revealed door %d is not a door in a %d-door game", models.ErrInvalidArgument, revealed, s.doorCount)
	}
	if initialPick == revealed {
		return 0, fmt.Errorf("%w: revealed door %d equals the contestant's pick", models.ErrInvalidState, revealed)
	}

	switch strategy {
	case models.StrategyStay:
		return initialPick, nil

	case models.StrategySwitch:
		var target models.Door
		for door := models.Door(1); int(door) <= s.doorCount; door++ {
			if door == initialPick || door == revealed {
				continue
			}
			if target != 0 {
				return 0, fmt.Errorf("%w: switch target is ambiguous in a %d-door game", models.ErrInvalidState, s.doorCount)
			}
			target = door
		}
		return target, nil

	default:
		return 0, fmt.Errorf("%w: unknown strategy %q", models.ErrInvalidArgument, strategy)
	}
}

func (s *roundService) DetermineOutcome(assignment models.Assignment, finalPick models.Door) (models.Outcome, error) {
	// Validate inputs
	if !finalPick.Valid(s.doorCount) {
		return "", fmt.Errorf("%w: final pick %d is not a door in a %d-door game", models.ErrInvalidArgument, finalPick, s.doorCount)
	}
	if assignment.DoorCount() != s.doorCount {
		return "", fmt.Errorf("%w: assignment covers %d doors, want %d", models.ErrInvalidState, assignment.DoorCount(), s.doorCount)
	}

	if assignment.Content(finalPick) == models.ContentPrize {
		return models.OutcomeWin, nil
	}
	return models.OutcomeLose, nil
}

func (s *roundService) PlayRound(src random.Source) (*models.Round, error) {
	assignment := s.CreateAssignment(src)
	initialPick := s.SelectInitialPick(src)

	prize, err := assignment.PrizeDoor()
	if err != nil {
		return nil, fmt.Errorf("failed to locate the prize: %w", err)
	}

	revealed, err := s.RevealDoor(src, assignment, initialPick)
	if err != nil {
		return nil, fmt.Errorf("failed to reveal a door: %w", err)
	}

	stayPick, err := s.ResolveFinalPick(models.StrategyStay, initialPick, revealed)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve stay pick: %w", err)
	}
	switchPick, err := s.ResolveFinalPick(models.StrategySwitch, initialPick, revealed)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve switch pick: %w", err)
	}

	stayOutcome, err := s.DetermineOutcome(assignment, stayPick)
	if err != nil {
		return nil, fmt.Errorf("failed to score stay pick: %w", err)
	}
	switchOutcome, err := s.DetermineOutcome(assignment, switchPick)
	if err != nil {
		return nil, fmt.Errorf("failed to score switch pick: %w", err)
	}

	return &models.Round{
		Assignment:  assignment,
		Prize:       prize,
		InitialPick: initialPick,
		Revealed:    revealed,
		StayPick:    stayPick,
		SwitchPick:  switchPick,
		Stay:        models.RoundResult{Strategy: models.StrategyStay, Outcome: stayOutcome},
		Switch:      models.RoundResult{Strategy: models.StrategySwitch, Outcome: switchOutcome},
	}, nil
}
