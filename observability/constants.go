package observability

// Metric name prefixes
const (
	MetricPrefix = "montyhall"
)

// Metric names
const (
	// Round metrics
	RoundsPlayedTotal = MetricPrefix + ".rounds.played_total"
	OutcomesTotal     = MetricPrefix + ".rounds.outcomes_total"

	// Batch metrics
	BatchesCompletedTotal = MetricPrefix + ".batches.completed_total"
	BatchDuration         = MetricPrefix + ".batches.duration"
	WorkersActive         = MetricPrefix + ".batches.workers_active"
)

// Label keys
const (
	LabelStrategy = "strategy"
	LabelOutcome  = "outcome"
	LabelWorkers  = "workers"
)
