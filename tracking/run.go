package tracking

import (
	"sort"
	"time"

	"github.com/fatih/structs"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Run groups metrics under an experiment name and a unique id.
type Run struct {
	ID         string
	Experiment string

	sink Sink
	now  func() time.Time
}

func NewRun(experiment string, sink Sink) *Run {
	return &Run{
		ID:         uuid.New().String(),
		Experiment: experiment,
		sink:       sink,
		now:        time.Now,
	}
}

func (r *Run) LogMetric(name string, value float64) error {
	return r.sink.Log(Metric{
		Experiment: r.Experiment,
		RunID:      r.ID,
		Name:       name,
		Value:      value,
		Timestamp:  r.now(),
	})
}

// LogMetrics logs every numeric field of the struct v, named by its `structs`
// tag (or field name) and prefixed with prefix when it is not empty. Nested
// structs are flattened with "." between names. Fields are logged in name order.
func (r *Run) LogMetrics(prefix string, v interface{}) error {
	if !structs.IsStruct(v) {
		return errors.Errorf("tracking: LogMetrics needs a struct, got %T", v)
	}
	values := map[string]float64{}
	flatten(prefix, structs.Map(v), values)

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := r.LogMetric(name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

// End flushes the sink.
func (r *Run) End() error {
	return r.sink.Flush()
}

func flatten(prefix string, m map[string]interface{}, out map[string]float64) {
	for key, value := range m {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			flatten(name, v, out)
		case float64:
			out[name] = v
		case float32:
			out[name] = float64(v)
		case int:
			out[name] = float64(v)
		case int64:
			out[name] = float64(v)
		case int32:
			out[name] = float64(v)
		}
	}
}
