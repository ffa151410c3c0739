package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

type app struct {
	logLevel string
	log      zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zerolog.Nop()}
	root := &cobra.Command{
		Use:           "pentti",
		Short:         "Binary hypervector symbol encoding experiments",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			lvl, err := zerolog.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.log = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
				Level(lvl).
				With().Timestamp().Logger()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		a.newDemoCmd(),
		a.newSweepCmd(),
		a.newFidelityCmd(),
		a.newQueryCmd(),
	)
	return root
}
