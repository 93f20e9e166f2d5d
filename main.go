package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"montyhall/cmd"
	"montyhall/config"
)

func main() {
	cfg := config.Get()

	// Parse command line flags
	rounds := flag.Int("n", cfg.DefaultRounds, "number of rounds to play")
	seed := flag.Int64("seed", 0, "master random seed (0 draws one from the OS)")
	workers := flag.Int("workers", cfg.Workers, "concurrent workers playing rounds")
	precision := flag.Int("precision", cfg.ReportPrecision, "decimal places in the proportions table")
	trace := flag.Bool("trace", false, "print every round before the summary table")
	logLevel := flag.String("log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	flag.Parse()

	// A bare positional argument also sets the round count
	if arg := flag.Arg(0); arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil {
			log.Fatalf("Invalid round count %q", arg)
		}
		*rounds = parsed
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal, shutting down gracefully...")
		cancel()
	}()

	// Run the simulation
	opts := cmd.Options{
		Rounds:    *rounds,
		Seed:      *seed,
		Workers:   *workers,
		Precision: *precision,
		Trace:     *trace,
		LogLevel:  *logLevel,
	}
	if err := cmd.Run(ctx, opts); err != nil {
		log.Fatal("Application error:", err)
	}
}
