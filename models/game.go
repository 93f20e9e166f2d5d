package models

import "fmt"

// Door identifies one of the doors in a round, numbered from 1
type Door int

// Valid checks that the door exists in a game with doorCount doors
func (d Door) Valid(doorCount int) bool {
	return d >= 1 && int(d) <= doorCount
}

// DoorContent represents what is hidden behind a door
type DoorContent string

const (
	ContentBlank DoorContent = "blank"
	ContentPrize DoorContent = "prize"
)

// Strategy represents a contestant's fixed policy for the final pick
type Strategy string

const (
	StrategyStay   Strategy = "stay"
	StrategySwitch Strategy = "switch"
)

// Strategies returns all strategies in evaluation order
func Strategies() []Strategy {
	return []Strategy{StrategyStay, StrategySwitch}
}

// Outcome represents the result of a round for one strategy
type Outcome string

const (
	OutcomeLose Outcome = "lose"
	OutcomeWin  Outcome = "win"
)

// Assignment records the content behind each door for one round.
// Index i holds the content of door i+1. An assignment is built once
// per round and never modified afterwards.
type Assignment []DoorContent

// DoorCount returns the number of doors in the assignment
func (a Assignment) DoorCount() int {
	return len(a)
}

// Content returns the content behind the given door. The door must be
// within range; callers validate doors before looking them up.
func (a Assignment) Content(d Door) DoorContent {
	return a[d-1]
}

// PrizeDoor returns the door hiding the prize. It fails when the
// assignment does not hold exactly one prize.
func (a Assignment) PrizeDoor() (Door, error) {
	var prize Door
	for i, content := range a {
		if content != ContentPrize {
			continue
		}
		if prize != 0 {
			return 0, fmt.Errorf("%w: assignment holds more than one prize", ErrInvalidState)
		}
		prize = Door(i + 1)
	}
	if prize == 0 {
		return 0, fmt.Errorf("%w: assignment holds no prize", ErrInvalidState)
	}
	return prize, nil
}
