package main

import (
	"github.com/spf13/cobra"

	"github.com/Amansingh-afk/pentti"
	"github.com/Amansingh-afk/pentti/sweep"
)

func (a *app) newDemoCmd() *cobra.Command {
	var (
		dims     int
		sparsity float64
		seed     int64
	)
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Ask the USA / Mexico questions once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := []pentti.Option{pentti.WithLogger(a.log)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, pentti.WithSeed(seed))
			}
			answers, err := sweep.Demo(dims, sparsity, opts...)
			if err != nil {
				return err
			}
			return sweep.WriteAnswers(cmd.OutOrStdout(), answers)
		},
	}
	cmd.Flags().IntVar(&dims, "dims", 10000, "hypervector dimension")
	cmd.Flags().Float64Var(&sparsity, "sparsity", 0.5, "expected fraction of 0 bits")
	cmd.Flags().Int64Var(&seed, "seed", 0, "sampling seed (default: time based)")
	return cmd
}
