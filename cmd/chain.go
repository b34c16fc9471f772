package cmd

import (
	"fmt"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"
	"github.com/tantralabs/theo/data"
	"github.com/tantralabs/theo/options"
)

func newChainCmd(a *app) *cobra.Command {
	engine := &options.TheoEngine{}
	out := ""
	cmd := &cobra.Command{
		Use:   "chain",
		Short: "theo values and Greeks across a ladder of strikes",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("rate") {
				engine.RiskFreeRate = a.conf.Pricing.Rate
			}
			rows, err := engine.Evaluate()
			if err != nil {
				return err
			}
			if out != "" {
				if err := data.WriteRows(out, rows); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d rows to %s\n", len(rows), out)
				return nil
			}
			return gocsv.Marshal(&rows, cmd.OutOrStdout())
		},
	}
	cmd.Flags().Float64Var(&engine.Spot, "spot", 0, "underlying price")
	cmd.Flags().Float64Var(&engine.TimeToMaturity, "t", 0, "time to maturity in years")
	cmd.Flags().Float64Var(&engine.Volatility, "sigma", 0, "annualized volatility")
	cmd.Flags().Float64Var(&engine.RiskFreeRate, "rate", 0, "risk-free rate (defaults to pricing.rate)")
	cmd.Flags().Float64Var(&engine.StrikeInterval, "interval", options.DefaultStrikeInterval, "distance between strikes")
	cmd.Flags().IntVar(&engine.NumStrikes, "strikes", options.DefaultNumStrikes, "number of strikes")
	cmd.Flags().StringVar(&out, "out", "", "write the chain to this CSV file instead of stdout")
	return cmd
}
