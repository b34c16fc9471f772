// Package tracking records named scalar metrics produced by pricing runs.
// Sinks are injected; nothing in the pricing core depends on this package.
package tracking

import (
	"math"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/tantralabs/theo/logger"
)

var ErrInvalidMetric = errors.New("invalid metric")

// Sink receives labeled scalars. Implementations may buffer until Flush.
type Sink interface {
	Log(m Metric) error
	Flush() error
}

// Metric is one recorded value and the run it belongs to.
type Metric struct {
	Experiment string
	RunID      string
	Name       string
	Value      float64
	Timestamp  time.Time
}

// Check rejects metrics without a name or with a non-finite value.
func (m Metric) Check() error {
	if m.Name == "" {
		return errors.Wrap(ErrInvalidMetric, "empty metric name")
	}
	if math.IsNaN(m.Value) || math.IsInf(m.Value, 0) {
		return errors.Wrapf(ErrInvalidMetric, "%s=%v is not finite", m.Name, m.Value)
	}
	return nil
}

// MemorySink keeps every metric in memory, in the order logged.
type MemorySink struct {
	mu      sync.Mutex
	metrics []Metric
	flushes int
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (m *MemorySink) Log(metric Metric) error {
	if err := metric.Check(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.metrics = append(m.metrics, metric)
	return nil
}

func (m *MemorySink) Flush() error {
	m.mu.Lock()
	m.flushes++
	m.mu.Unlock()
	return nil
}

// Metrics returns a copy of everything logged so far.
func (m *MemorySink) Metrics() []Metric {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Metric(nil), m.metrics...)
}

// Values returns the values logged under name, oldest first.
func (m *MemorySink) Values(name string) []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	var values []float64
	for _, metric := range m.metrics {
		if metric.Name == name {
			values = append(values, metric.Value)
		}
	}
	return values
}

func (m *MemorySink) Flushes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.flushes
}

// LogSink writes each metric through the process logger.
type LogSink struct{}

func (LogSink) Log(m Metric) error {
	if err := m.Check(); err != nil {
		return err
	}
	logger.Infow("metric",
		"experiment", m.Experiment,
		"run_id", m.RunID,
		"name", m.Name,
		"value", m.Value,
		"timestamp", m.Timestamp,
	)
	return nil
}

func (LogSink) Flush() error {
	return nil
}

// NopSink discards everything.
type NopSink struct{}

func (NopSink) Log(Metric) error { return nil }
func (NopSink) Flush() error     { return nil }
