package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tantralabs/theo/models"
)

// optionFlags are the model inputs shared by price and greeks.
type optionFlags struct {
	spot       float64
	strike     float64
	t          float64
	sigma      float64
	rate       float64
	optionType string
}

func (f *optionFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f.spot, "spot", 0, "underlying price")
	cmd.Flags().Float64Var(&f.strike, "strike", 0, "strike price")
	cmd.Flags().Float64Var(&f.t, "t", 0, "time to maturity in years")
	cmd.Flags().Float64Var(&f.sigma, "sigma", 0, "annualized volatility")
	cmd.Flags().Float64Var(&f.rate, "rate", models.DefaultRiskFreeRate, "risk-free rate (defaults to pricing.rate)")
	cmd.Flags().StringVar(&f.optionType, "type", string(models.Call), "call or put")
}

// params uses pricing.rate from the settings unless --rate was given.
func (f *optionFlags) params(cmd *cobra.Command, a *app) models.OptionParams {
	rate := a.conf.Pricing.Rate
	if cmd.Flags().Changed("rate") {
		rate = f.rate
	}
	return models.NewOptionParams(f.spot, f.strike, f.t, f.sigma).WithRate(rate)
}

func newPriceCmd(a *app) *cobra.Command {
	f := &optionFlags{}
	cmd := &cobra.Command{
		Use:   "price",
		Short: "theoretical value of a call or put",
		RunE: func(cmd *cobra.Command, args []string) error {
			optionType, err := models.ParseOptionType(f.optionType)
			if err != nil {
				return err
			}
			p := f.params(cmd, a)
			var theo float64
			if optionType == models.Call {
				theo, err = models.Price(p.Spot, p.Strike, p.RiskFreeRate, p.TimeToMaturity, p.Volatility)
			} else {
				theo, err = models.PutPrice(p.Spot, p.Strike, p.RiskFreeRate, p.TimeToMaturity, p.Volatility)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %v\n", optionType, theo)
			return nil
		},
	}
	f.register(cmd)
	return cmd
}
