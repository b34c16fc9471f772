package tracking

import (
	"sync"
	"time"

	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/pkg/errors"
	"github.com/tantralabs/theo/logger"
)

// Measurement is the influx measurement every metric is written to.
const Measurement = "metrics"

type InfluxConfig struct {
	Addr      string
	Username  string
	Password  string
	Database  string
	Precision string
	Timeout   time.Duration
}

// InfluxSink buffers metrics as points and writes them in one batch on Flush.
// Each point carries the tags experiment, run_id and name and a single field
// "value".
type InfluxSink struct {
	influx client.Client
	bpConf client.BatchPointsConfig

	mu     sync.Mutex
	points []*client.Point
}

func NewInfluxSink(c InfluxConfig) (*InfluxSink, error) {
	if c.Timeout <= 0 {
		c.Timeout = time.Millisecond * 1000 * 10
	}
	if c.Precision == "" {
		c.Precision = "us"
	}
	influx, err := client.NewHTTPClient(client.HTTPConfig{
		Addr:     c.Addr,
		Username: c.Username,
		Password: c.Password,
		Timeout:  c.Timeout,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "influx client for %s", c.Addr)
	}
	return &InfluxSink{
		influx: influx,
		bpConf: client.BatchPointsConfig{
			Database:  c.Database,
			Precision: c.Precision,
		},
	}, nil
}

func (s *InfluxSink) Log(m Metric) error {
	if err := m.Check(); err != nil {
		return err
	}
	tags := map[string]string{
		"name": m.Name,
	}
	if m.Experiment != "" {
		tags["experiment"] = m.Experiment
	}
	if m.RunID != "" {
		tags["run_id"] = m.RunID
	}
	pt, err := client.NewPoint(Measurement, tags, map[string]interface{}{"value": m.Value}, m.Timestamp)
	if err != nil {
		return errors.Wrapf(err, "influx point %s", m.Name)
	}
	s.mu.Lock()
	s.points = append(s.points, pt)
	s.mu.Unlock()
	return nil
}

// Flush writes all buffered points. On failure the points stay buffered.
func (s *InfluxSink) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.points) == 0 {
		return nil
	}
	bp, err := client.NewBatchPoints(s.bpConf)
	if err != nil {
		return errors.Wrap(err, "influx batch")
	}
	for _, pt := range s.points {
		bp.AddPoint(pt)
	}
	if err := s.influx.Write(bp); err != nil {
		return errors.Wrapf(err, "writing %d points to influx", len(s.points))
	}
	logger.Debugf("wrote %d points to influx database %s", len(s.points), s.bpConf.Database)
	s.points = nil
	return nil
}

// Pending returns the number of buffered points.
func (s *InfluxSink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.points)
}

func (s *InfluxSink) Close() error {
	return s.influx.Close()
}
