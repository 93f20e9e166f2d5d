package observability

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"montyhall/config"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

// MetricsProvider manages OpenTelemetry metrics for the simulator
type MetricsProvider struct {
	config        *config.Config
	meterProvider *sdkmetric.MeterProvider
	meter         metric.Meter
	initialized   bool
	mu            sync.RWMutex

	// Metric instruments
	roundsPlayedCounter     metric.Int64Counter
	outcomesCounter         metric.Int64Counter
	batchesCompletedCounter metric.Int64Counter
	batchDurationHist       metric.Float64Histogram
	workersActiveGauge      metric.Int64UpDownCounter
}

// NewMetricsProvider creates a new metrics provider
func NewMetricsProvider(cfg *config.Config) *MetricsProvider {
	return &MetricsProvider{
		config: cfg,
	}
}

// Initialize sets up the OpenTelemetry metrics provider
func (mp *MetricsProvider) Initialize(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.initialized {
		log.Println("Metrics provider already initialized")
		return nil
	}

	if !mp.config.OTelEnabled {
		log.Println("OpenTelemetry metrics disabled")
		mp.initialized = true
		return nil
	}

	// Create resource with service information
	res, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(mp.config.OTelServiceName),
			attribute.String("environment", mp.config.Environment),
		),
	)
	if err != nil {
		return fmt.Errorf("failed to create resource: %w", err)
	}

	opts := []sdkmetric.Option{sdkmetric.WithResource(res)}

	// Create appropriate exporter based on config
	switch mp.config.OTelExporterType {
	case "console":
		exporter, err := stdoutmetric.New()
		if err != nil {
			return fmt.Errorf("failed to create console exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exporter,
				sdkmetric.WithInterval(time.Duration(mp.config.OTelExportIntervalMillis)*time.Millisecond),
			),
		))
		log.Println("Using console metric exporter")

	case "otlp":
		ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()

		exporter, err := otlpmetricgrpc.New(ctx,
			otlpmetricgrpc.WithEndpoint(mp.config.OTelOTLPEndpoint),
			otlpmetricgrpc.WithInsecure(),
		)
		if err != nil {
			return fmt.Errorf("failed to create OTLP exporter: %w", err)
		}
		opts = append(opts, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(
				exporter,
				sdkmetric.WithInterval(time.Duration(mp.config.OTelExportIntervalMillis)*time.Millisecond),
			),
		))
		log.Printf("Using OTLP metric exporter: %s", mp.config.OTelOTLPEndpoint)

	case "none":
		// No reader: instruments stay live but nothing is exported
		log.Println("Metrics export disabled (exporter_type='none')")

	default:
		return fmt.Errorf("unknown exporter type: %s", mp.config.OTelExporterType)
	}

	// Create meter provider with the configured readers
	mp.meterProvider = sdkmetric.NewMeterProvider(opts...)

	// Set as global meter provider
	otel.SetMeterProvider(mp.meterProvider)

	// Get meter for creating instruments
	mp.meter = mp.meterProvider.Meter("montyhall")

	// Create metric instruments
	if err := mp.createInstruments(); err != nil {
		return fmt.Errorf("failed to create instruments: %w", err)
	}

	mp.initialized = true
	log.Println("Metrics provider initialized successfully")
	return nil
}

// createInstruments creates all metric instruments
func (mp *MetricsProvider) createInstruments() error {
	var err error

	// Round metrics
	mp.roundsPlayedCounter, err = mp.meter.Int64Counter(
		RoundsPlayedTotal,
		metric.WithDescription("Total number of rounds played"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create rounds played counter: %w", err)
	}

	mp.outcomesCounter, err = mp.meter.Int64Counter(
		OutcomesTotal,
		metric.WithDescription("Total number of per-strategy round outcomes"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create outcomes counter: %w", err)
	}

	// Batch metrics
	mp.batchesCompletedCounter, err = mp.meter.Int64Counter(
		BatchesCompletedTotal,
		metric.WithDescription("Total number of completed simulation batches"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create batches completed counter: %w", err)
	}

	mp.batchDurationHist, err = mp.meter.Float64Histogram(
		BatchDuration,
		metric.WithDescription("Duration of simulation batches in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0),
	)
	if err != nil {
		return fmt.Errorf("failed to create batch duration histogram: %w", err)
	}

	// Worker metrics - using UpDownCounter for gauge-like behavior
	mp.workersActiveGauge, err = mp.meter.Int64UpDownCounter(
		WorkersActive,
		metric.WithDescription("Current number of active simulation workers"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return fmt.Errorf("failed to create workers active gauge: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the metrics provider
func (mp *MetricsProvider) Shutdown(ctx context.Context) error {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	if mp.meterProvider != nil {
		return mp.meterProvider.Shutdown(ctx)
	}
	return nil
}

// RecordRoundPlayed records one completed round
func (mp *MetricsProvider) RecordRoundPlayed() {
	if !mp.isEnabled() {
		return
	}

	mp.roundsPlayedCounter.Add(context.Background(), 1)
}

// RecordOutcome records the outcome of one strategy in one round
func (mp *MetricsProvider) RecordOutcome(strategy, outcome string) {
	if !mp.isEnabled() {
		return
	}

	mp.outcomesCounter.Add(context.Background(), 1,
		metric.WithAttributes(
			attribute.String(LabelStrategy, strategy),
			attribute.String(LabelOutcome, outcome),
		),
	)
}

// RecordBatchCompleted records a finished batch with its duration
func (mp *MetricsProvider) RecordBatchCompleted(workers int, duration time.Duration) {
	if !mp.isEnabled() {
		return
	}

	attrs := metric.WithAttributes(
		attribute.Int(LabelWorkers, workers),
	)

	mp.batchesCompletedCounter.Add(context.Background(), 1, attrs)
	mp.batchDurationHist.Record(context.Background(), duration.Seconds(), attrs)
}

// UpdateActiveWorkers updates the count of running workers (increment/decrement)
func (mp *MetricsProvider) UpdateActiveWorkers(delta int64) {
	if !mp.isEnabled() {
		return
	}

	mp.workersActiveGauge.Add(context.Background(), delta)
}

// isEnabled checks if metrics are enabled and initialized
func (mp *MetricsProvider) isEnabled() bool {
	if mp == nil {
		return false
	}
	mp.mu.RLock()
	defer mp.mu.RUnlock()
	return mp.initialized && mp.config.OTelEnabled
}

// Global metrics provider instance
var (
	globalMetrics *MetricsProvider
	metricsOnce   sync.Once
)

// InitializeGlobalMetrics initializes the global metrics provider
func InitializeGlobalMetrics(ctx context.Context, cfg *config.Config) error {
	var err error
	metricsOnce.Do(func() {
		globalMetrics = NewMetricsProvider(cfg)
		err = globalMetrics.Initialize(ctx)
	})
	return err
}

// GetMetrics returns the global metrics provider, which may be nil when
// metrics were never initialized. Record methods are safe to call
// through a nil provider.
func GetMetrics() *MetricsProvider {
	return globalMetrics
}

// ShutdownGlobalMetrics shuts down the global metrics provider
func ShutdownGlobalMetrics(ctx context.Context) error {
	if globalMetrics != nil {
		return globalMetrics.Shutdown(ctx)
	}
	return nil
}
