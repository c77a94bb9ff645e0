package cornertable

import "math"

// DefaultEpsilon is the default per-coordinate tolerance under which two
// positions are the same vertex.
const DefaultEpsilon = 1e-10

type options struct {
	epsilon          float64
	logger           *Logger
	metricsCollector MetricsCollector
}

func defaultOptions() options {
	return options{
		epsilon:          DefaultEpsilon,
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

func (o options) validate() error {
	if !(o.epsilon > 0) || math.IsInf(o.epsilon, 0) {
		return ErrInvalidEpsilon
	}
	return nil
}

// Option configures a corner table constructor.
type Option func(*options)

// WithEpsilon sets the vertex matching tolerance. Two positions are the
// same vertex when every coordinate differs by less than eps.
//
// eps must be positive and finite.
func WithEpsilon(eps float64) Option {
	return func(o *options) {
		o.epsilon = eps
	}
}

// WithLogger configures structured logging.
// If nil is passed, logging is disabled.
//
// Example:
//
//	tt, _ := cornertable.NewTriangleTable(
//	    cornertable.WithLogger(cornertable.NewTextLogger(slog.LevelDebug)),
//	)
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &cornertable.BasicMetricsCollector{}
//	tt, _ := cornertable.NewTriangleTable(cornertable.WithMetricsCollector(metrics))
//	// ... use tt ...
//	stats := metrics.GetStats()
//	fmt.Printf("Inserts: %d, avg %dns\n", stats.InsertCount, stats.InsertAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
