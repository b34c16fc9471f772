package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/structs"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tantralabs/theo/logger"
	"github.com/tantralabs/theo/models"
	"github.com/tantralabs/theo/settings"
	"github.com/tantralabs/theo/tracking"
	"github.com/tantralabs/theo/utils"
)

func newGreeksCmd(a *app) *cobra.Command {
	f := &optionFlags{}
	track := false
	cmd := &cobra.Command{
		Use:   "greeks",
		Short: "prices and Greeks for the call and the put",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := f.params(cmd, a)
			model, err := models.NewBlackScholes(p)
			if err != nil {
				return err
			}
			snapshot := models.NewGreeks(model).Snapshot()
			fmt.Fprint(cmd.OutOrStdout(), utils.CreateKeyValuePairs(structs.Map(snapshot)))

			if !track {
				return nil
			}
			sink, err := newSink(a.conf.Tracking)
			if err != nil {
				return err
			}
			runID, err := trackGreeks(sink, a.conf.Tracking.Experiment, p, snapshot)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "run_id: %s\n", runID)
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&track, "track", false, "log the results to the configured tracking sink")
	return cmd
}

func newSink(c settings.TrackingConfig) (tracking.Sink, error) {
	switch c.Sink {
	case "log":
		return tracking.LogSink{}, nil
	case "none":
		return tracking.NopSink{}, nil
	case "influx":
		return tracking.NewInfluxSink(tracking.InfluxConfig{
			Addr:      c.Influx.Addr,
			Username:  c.Influx.User,
			Password:  c.Influx.Password,
			Database:  c.Influx.Database,
			Precision: c.Influx.Precision,
			Timeout:   c.Influx.Timeout,
		})
	}
	return nil, errors.Errorf("unknown tracking sink %q", c.Sink)
}

// trackGreeks logs the inputs and the snapshot under a new run. The run is
// always ended, so whatever was logged gets flushed, and the sink is closed
// when it holds a connection.
func trackGreeks(sink tracking.Sink, experiment string, p models.OptionParams, snapshot models.GreekValues) (runID string, err error) {
	run := tracking.NewRun(experiment, sink)
	defer func() {
		if endErr := run.End(); err == nil {
			err = endErr
		}
		if closer, ok := sink.(io.Closer); ok {
			if closeErr := closer.Close(); err == nil {
				err = closeErr
			}
		}
		if err == nil {
			logger.Infof("Tracked run %s under experiment %s", run.ID, run.Experiment)
		}
	}()

	if err := run.LogMetrics("params", p); err != nil {
		return "", err
	}
	if err := run.LogMetrics("", snapshot); err != nil {
		return "", err
	}
	return run.ID, nil
}
