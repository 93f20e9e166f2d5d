package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"montyhall/config"
	"montyhall/events"
	"montyhall/models"
	"montyhall/observability"
	"montyhall/random"
)

type simulatorService struct {
	rounds    RoundService
	publisher EventPublisher
	seed      int64
	workers   int
}

// NewSimulatorService creates a new simulator service. The seed fixes
// all randomness for a batch, so equal seeds reproduce identical
// results; workers sets how many goroutines play rounds (1 = sequential).
func NewSimulatorService(rounds RoundService, publisher EventPublisher, seed int64, workers int) SimulatorService {
	return &simulatorService{
		rounds:    rounds,
		publisher: publisher,
		seed:      seed,
		workers:   workers,
	}
}

func (s *simulatorService) Simulate(ctx context.Context, n int) (*models.BatchResult, error) {
	// Validate inputs
	if n < 1 {
		return nil, fmt.Errorf("%w: round count must be at least 1, got %d", models.ErrInvalidArgument, n)
	}
	if s.workers < 1 {
		return nil, fmt.Errorf("%w: worker count must be at least 1, got %d", models.ErrInvalidArgument, s.workers)
	}

	runID := uuid.New()
	started := time.Now()

	log.WithFields(log.Fields{
		"runId":   runID,
		"rounds":  n,
		"seed":    s.seed,
		"workers": s.workers,
	}).Info("Starting simulation batch")

	s.publisher.Emit(ctx, events.BatchStartedEvent{
		RunID:   runID,
		Rounds:  n,
		Seed:    s.seed,
		Workers: s.workers,
	})

	// Draw one sub-seed per round up front. Each round then runs on its
	// own stream, so results do not depend on how rounds are spread
	// across workers.
	master := random.NewSeeded(s.seed)
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = master.Int63()
	}

	var rounds []*models.Round
	var err error
	if s.workers == 1 {
		rounds, err = s.playSequential(ctx, runID, seeds)
	} else {
		rounds, err = s.playParallel(ctx, seeds)
	}
	if err != nil {
		return nil, err
	}

	batch := s.aggregate(runID, n, rounds)
	batch.Elapsed = time.Since(started)

	observability.GetMetrics().RecordBatchCompleted(s.workers, batch.Elapsed)

	stay := batch.Stats[models.StrategyStay]
	switched := batch.Stats[models.StrategySwitch]

	s.publisher.Emit(ctx, events.BatchCompletedEvent{
		RunID:      runID,
		Rounds:     n,
		StayWins:   stay.Wins,
		SwitchWins: switched.Wins,
		Elapsed:    batch.Elapsed,
	})

	log.WithFields(log.Fields{
		"runId":      runID,
		"rounds":     n,
		"stayWins":   stay.Wins,
		"switchWins": switched.Wins,
		"elapsed":    batch.Elapsed,
	}).Info("Simulation batch completed")

	return batch, nil
}

func (s *simulatorService) PlayNGames(ctx context.Context, n int) (*models.BatchResult, error) {
	return s.Simulate(ctx, n)
}

// playOne plays round index on its own seeded stream and records its
// metrics
func (s *simulatorService) playOne(index int, seed int64) (*models.Round, error) {
	round, err := s.rounds.PlayRound(random.NewSeeded(seed))
	if err != nil {
		return nil, fmt.Errorf("round %d failed: %w", index+1, err)
	}
	round.Index = index + 1

	metrics := observability.GetMetrics()
	metrics.RecordRoundPlayed()
	for _, result := range round.Results() {
		metrics.RecordOutcome(string(result.Strategy), string(result.Outcome))
	}

	return round, nil
}

func (s *simulatorService) playSequential(ctx context.Context, runID uuid.UUID, seeds []int64) ([]*models.Round, error) {
	progressInterval := config.Get().ProgressInterval

	rounds := make([]*models.Round, len(seeds))
	for i, seed := range seeds {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("simulation cancelled after %d rounds: %w", i, ctx.Err())
		default:
		}

		round, err := s.playOne(i, seed)
		if err != nil {
			return nil, err
		}
		rounds[i] = round

		if progressInterval > 0 && (i+1)%progressInterval == 0 && i+1 < len(seeds) {
			s.publisher.Emit(ctx, events.BatchProgressEvent{
				RunID:  runID,
				Played: i + 1,
				Total:  len(seeds),
			})
		}
	}
	return rounds, nil
}

func (s *simulatorService) playParallel(ctx context.Context, seeds []int64) ([]*models.Round, error) {
	workers := s.workers
	if workers > len(seeds) {
		workers = len(seeds)
	}

	metrics := observability.GetMetrics()
	metrics.UpdateActiveWorkers(int64(workers))
	defer metrics.UpdateActiveWorkers(-int64(workers))

	// Contiguous chunks keep each worker's writes on distinct indices.
	rounds := make([]*models.Round, len(seeds))
	errs := make(chan error, workers)
	var wg sync.WaitGroup

	chunk := (len(seeds) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		if start >= len(seeds) {
			break
		}
		end := start + chunk
		if end > len(seeds) {
			end = len(seeds)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				select {
				case <-ctx.Done():
					errs <- fmt.Errorf("simulation cancelled: %w", ctx.Err())
					return
				default:
				}

				round, err := s.playOne(i, seeds[i])
				if err != nil {
					errs <- err
					return
				}
				rounds[i] = round
			}
		}(start, end)
	}

	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return nil, err
	}
	return rounds, nil
}

// aggregate flattens the played rounds into a batch result, results in
// round-major order (both strategies of round 1, then round 2, ...)
func (s *simulatorService) aggregate(runID uuid.UUID, n int, rounds []*models.Round) *models.BatchResult {
	batch := &models.BatchResult{
		RunID:   runID,
		Seed:    s.seed,
		Rounds:  n,
		Results: make([]models.RoundResult, 0, 2*n),
		Trace:   rounds,
		Stats: map[models.Strategy]*models.StrategyStats{
			models.StrategyStay:   {Strategy: models.StrategyStay},
			models.StrategySwitch: {Strategy: models.StrategySwitch},
		},
	}

	for _, round := range rounds {
		for _, result := range round.Results() {
			batch.Results = append(batch.Results, result)

			stats := batch.Stats[result.Strategy]
			if result.Won() {
				stats.Wins++
			} else {
				stats.Losses++
			}
		}
	}

	return batch
}
