package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tantralabs/theo/data"
	"github.com/tantralabs/theo/logger"
	"github.com/tantralabs/theo/stats"
)

func newVolCmd(a *app) *cobra.Command {
	var (
		csvPath  string
		window   int
		lookback int
	)
	cmd := &cobra.Command{
		Use:   "vol",
		Short: "annualized historical volatility of the closes in a bar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if csvPath == "" {
				return errors.New("--csv is required")
			}
			if !cmd.Flags().Changed("window") {
				window = a.conf.Volatility.Window
			}
			bars, err := data.LoadBars(csvPath)
			if err != nil {
				return err
			}
			closes := data.Closes(bars)
			if len(closes) == 2 {
				logger.Warnf("%s has a single return, its volatility is 0", csvPath)
			}

			vol, err := stats.HistoricalVolatility(closes, window)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "volatility %v\n", vol)

			if lookback > 0 {
				rolling, err := stats.RollingVolatility(closes, lookback, window)
				if err != nil {
					return err
				}
				for _, v := range rolling {
					fmt.Fprintf(cmd.OutOrStdout(), "%v\n", v)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "", "bar file with timestamp,open,high,low,close,volume columns")
	cmd.Flags().IntVar(&window, "window", stats.DefaultWindow, "periods per year (defaults to volatility.window)")
	cmd.Flags().IntVar(&lookback, "lookback", 0, "also print the rolling volatility over this many returns")
	return cmd
}
