package service

import (
	"context"

	"montyhall/events"
	"montyhall/models"
	"montyhall/random"

	"github.com/stretchr/testify/mock"
)

// MockRoundService is a mock implementation of RoundService
type MockRoundService struct {
	mock.Mock
}

func (m *MockRoundService) DoorCount() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockRoundService) CreateAssignment(src random.Source) models.Assignment {
	args := m.Called(src)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(models.Assignment)
}

func (m *MockRoundService) SelectInitialPick(src random.Source) models.Door {
	args := m.Called(src)
	return args.Get(0).(models.Door)
}

func (m *MockRoundService) RevealDoor(src random.Source, assignment models.Assignment, pick models.Door) (models.Door, error) {
	args := m.Called(src, assignment, pick)
	return args.Get(0).(models.Door), args.Error(1)
}

func (m *MockRoundService) ResolveFinalPick(strategy models.Strategy, initialPick, revealed models.Door) (models.Door, error) {
	args := m.Called(strategy, initialPick, revealed)
	return args.Get(0).(models.Door), args.Error(1)
}

func (m *MockRoundService) DetermineOutcome(assignment models.Assignment, finalPick models.Door) (models.Outcome, error) {
	args := m.Called(assignment, finalPick)
	return args.Get(0).(models.Outcome), args.Error(1)
}

func (m *MockRoundService) PlayRound(src random.Source) (*models.Round, error) {
	args := m.Called(src)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Round), args.Error(1)
}

// MockEventPublisher is a mock implementation of EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Emit(ctx context.Context, event events.Event) {
	m.Called(ctx, event)
}
