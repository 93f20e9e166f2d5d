package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"montyhall/config"
	"montyhall/events"
	"montyhall/observability"
	"montyhall/random"
	"montyhall/report"
	"montyhall/service"

	"github.com/sirupsen/logrus"
)

// Options holds the command line settings for one simulation run
type Options struct {
	Rounds    int   // Rounds to play
	Seed      int64 // Master seed, 0 draws a fresh one
	Workers   int   // Concurrent round workers
	Precision int   // Decimals in the proportions table
	Trace     bool  // Print every round before the summary
	LogLevel  string
}

// Run initializes the simulator and plays one batch of rounds
func Run(ctx context.Context, opts Options) error {
	log.Println("Starting Monty Hall simulator...")

	// Load configuration
	cfg := config.Get()

	// Configure logging
	level, err := logrus.ParseLevel(opts.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to parse log level %q: %w", opts.LogLevel, err)
	}
	logrus.SetLevel(level)

	// Initialize metrics
	if err := observability.InitializeGlobalMetrics(ctx, cfg); err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := observability.ShutdownGlobalMetrics(shutdownCtx); err != nil {
			log.Printf("Error shutting down metrics: %v", err)
		}
	}()

	// Initialize event bus
	log.Println("Initializing event bus...")
	eventBus := events.NewBus()
	subscribeProgressLogging(eventBus)
	log.Println("Event bus initialized successfully")

	// Initialize services
	log.Println("Initializing services...")
	roundService, err := service.NewRoundService(cfg.DoorCount)
	if err != nil {
		return fmt.Errorf("failed to initialize round service: %w", err)
	}

	seed := opts.Seed
	if seed == 0 {
		drawn, err := random.NewSeed()
		if err != nil {
			return fmt.Errorf("failed to draw seed: %w", err)
		}
		seed = drawn
		log.Printf("Drew seed %d", seed)
	}

	simulator := service.NewSimulatorService(roundService, eventBus, seed, opts.Workers)
	log.Println("Services initialized successfully")

	// Play the batch
	batch, err := simulator.PlayNGames(ctx, opts.Rounds)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	// Report results
	if opts.Trace {
		fmt.Println(report.RenderRounds(batch.Trace))
	}
	fmt.Print(report.RenderTable(batch.Proportions(opts.Precision)))
	log.Printf("Played %d rounds in %s", batch.Rounds, batch.Elapsed)

	return nil
}

// subscribeProgressLogging logs batch progress events as they are published
func subscribeProgressLogging(bus *events.Bus) {
	bus.Subscribe(events.EventTypeBatchProgress, func(ctx context.Context, event events.Event) {
		progress, ok := event.(events.BatchProgressEvent)
		if !ok {
			return
		}

		logrus.WithFields(logrus.Fields{
			"runId":  progress.RunID,
			"played": progress.Played,
			"total":  progress.Total,
		}).Info("Simulation progress")
	})
}
