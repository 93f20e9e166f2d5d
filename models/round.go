package models

// RoundResult pairs a strategy with its outcome for a single round
type RoundResult struct {
	Strategy Strategy
	Outcome  Outcome
}

// Won checks if the strategy won the round
func (r RoundResult) Won() bool {
	return r.Outcome == OutcomeWin
}

// Round captures the full trace of one simulated round. Both strategies
// are resolved against the same assignment, initial pick, and revealed
// door, so their outcomes are directly comparable.
type Round struct {
	Index       int
	Assignment  Assignment
	Prize       Door
	InitialPick Door
	Revealed    Door
	StayPick    Door
	SwitchPick  Door
	Stay        RoundResult
	Switch      RoundResult
}

// Results returns both strategy results in evaluation order
func (r *Round) Results() []RoundResult {
	return []RoundResult{r.Stay, r.Switch}
}
