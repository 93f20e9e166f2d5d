package service

import (
	"context"

	"montyhall/events"
	"montyhall/models"
	"montyhall/random"
)

// RoundService defines the interface for single-round game operations
type RoundService interface {
	// DoorCount returns the number of doors in play
	DoorCount() int

	// CreateAssignment places the prize behind a uniformly random door,
	// leaving every other door blank
	CreateAssignment(src random.Source) models.Assignment

	// SelectInitialPick chooses the contestant's first door uniformly at
	// random, independent of the assignment
	SelectInitialPick(src random.Source) models.Door

	// RevealDoor opens a door the host may open: blank and not the
	// contestant's pick, chosen uniformly when more than one qualifies
	RevealDoor(src random.Source, assignment models.Assignment, pick models.Door) (models.Door, error)

	// ResolveFinalPick applies a strategy to produce the contestant's
	// final door given the initial pick and the revealed door
	ResolveFinalPick(strategy models.Strategy, initialPick, revealed models.Door) (models.Door, error)

	// DetermineOutcome scores a final pick against the assignment
	DetermineOutcome(assignment models.Assignment, finalPick models.Door) (models.Outcome, error)

	// PlayRound runs one full round, resolving both strategies against
	// the same assignment, initial pick, and revealed door
	PlayRound(src random.Source) (*models.Round, error)
}

// SimulatorService defines the interface for batch simulation operations
type SimulatorService interface {
	// Simulate plays n rounds and aggregates both strategies' results
	Simulate(ctx context.Context, n int) (*models.BatchResult, error)

	// PlayNGames is the batch entry point by its traditional name; it
	// behaves exactly like Simulate
	PlayNGames(ctx context.Context, n int) (*models.BatchResult, error)
}

// EventPublisher defines the interface for publishing events
type EventPublisher interface {
	Emit(ctx context.Context, event events.Event)
}
