package main

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/Amansingh-afk/pentti/sweep"
)

type sweepFlags struct {
	seed        int64
	workers     int
	trials      int
	metricsFile string
}

func (f *sweepFlags) register(cmd *cobra.Command, trials int) {
	cmd.Flags().IntVar(&f.trials, "trials", trials, "independent systems per grid point")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "master seed (default: time based)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "parallel trials (default GOMAXPROCS)")
	cmd.Flags().StringVar(&f.metricsFile, "metrics-file", "", "write prometheus metrics to this textfile")
}

func (f *sweepFlags) masterSeed(cmd *cobra.Command) int64 {
	if cmd.Flags().Changed("seed") {
		return f.seed
	}
	return time.Now().UnixNano()
}

// metrics returns a private registry and the sweep collectors on it, or
// nils when no metrics file was requested.
func (f *sweepFlags) metrics() (*prometheus.Registry, *sweep.Metrics, error) {
	if f.metricsFile == "" {
		return nil, nil, nil
	}
	reg := prometheus.NewRegistry()
	m, err := sweep.NewMetrics(reg)
	if err != nil {
		return nil, nil, err
	}
	return reg, m, nil
}

func (f *sweepFlags) flush(reg *prometheus.Registry) error {
	if reg == nil {
		return nil
	}
	return prometheus.WriteToTextfile(f.metricsFile, reg)
}

func (a *app) newSweepCmd() *cobra.Command {
	var (
		f          sweepFlags
		dims       string
		sparsities string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Measure query accuracy over dimensions and sparsities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d, err := sweep.ParseInts(dims)
			if err != nil {
				return err
			}
			sp, err := sweep.ParseFloats(sparsities)
			if err != nil {
				return err
			}
			reg, m, err := f.metrics()
			if err != nil {
				return err
			}

			res, err := sweep.Run(cmd.Context(), sweep.Config{
				Dims:       d,
				Sparsities: sp,
				Trials:     f.trials,
				Seed:       f.masterSeed(cmd),
				Workers:    f.workers,
			}, sweep.WithMetrics(m), sweep.WithLogger(a.log))
			if err != nil {
				return err
			}
			if err := sweep.WriteTable(cmd.OutOrStdout(), res); err != nil {
				return err
			}
			return f.flush(reg)
		},
	}
	f.register(cmd, 20)
	cmd.Flags().StringVar(&dims, "dims", "1:10000:100", "dimensions as start:stop:step or a comma list")
	cmd.Flags().StringVar(&sparsities, "sparsity", "0.3,0.4,0.5", "comma-separated sparsities")
	return cmd
}

func (a *app) newFidelityCmd() *cobra.Command {
	var (
		f         sweepFlags
		dims      int
		sparsity  float64
		sizes     string
		valuesPer int
	)
	cmd := &cobra.Command{
		Use:   "fidelity",
		Short: "Measure query accuracy as records bundle more pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bs, err := sweep.ParseInts(sizes)
			if err != nil {
				return err
			}
			reg, m, err := f.metrics()
			if err != nil {
				return err
			}

			pts, err := sweep.Fidelity(cmd.Context(), sweep.FidelityConfig{
				Dims:              dims,
				Sparsity:          sparsity,
				BundleSizes:       bs,
				ValuesPerProperty: valuesPer,
				Trials:            f.trials,
				Seed:              f.masterSeed(cmd),
				Workers:           f.workers,
			}, sweep.WithMetrics(m), sweep.WithLogger(a.log))
			if err != nil {
				return err
			}
			if err := sweep.WriteFidelity(cmd.OutOrStdout(), pts); err != nil {
				return err
			}
			return f.flush(reg)
		},
	}
	f.register(cmd, 200)
	cmd.Flags().IntVar(&dims, "dims", 128, "hypervector dimension")
	cmd.Flags().Float64Var(&sparsity, "sparsity", 0.5, "expected fraction of 0 bits")
	cmd.Flags().StringVar(&sizes, "sizes", "1,3,5,9,17", "bundle sizes as a comma list or start:stop:step")
	cmd.Flags().IntVar(&valuesPer, "values", 4, "values per synthetic property")
	return cmd
}
