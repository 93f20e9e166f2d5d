package random

import "math/rand"

// Source is the randomness provider for round simulation. A Source is
// not safe for concurrent use; the simulator derives an independently
// seeded Source per round so parallel rounds never share one.
type Source interface {
	// Intn returns a non-negative random int in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Int63 returns a non-negative random int64.
	Int63() int64

	// Shuffle pseudo-randomizes the order of n elements using swap.
	Shuffle(n int, swap func(i, j int))
}

// NewSeeded returns a deterministic Source for the given seed. Equal
// seeds yield identical streams.
func NewSeeded(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}
