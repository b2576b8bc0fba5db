package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/gotuple/version"
	"github.com/spf13/cobra"
)

// errNotEqual makes eq exit with status 1 without printing an error
var errNotEqual = errors.New("tuples are not equal")

type cli struct {
	verbose bool
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: slog.New(slog.DiscardHandler)}

	rootCmd := &cobra.Command{
		Use:   "gotuple",
		Short: "Evaluate point and vector arithmetic in homogeneous coordinates",
		Long: `gotuple evaluates operations on 4-component tuples (x, y, z, w).
A tuple with w = 1 is a point, a tuple with w = 0 is a vector.

Tuples are written as point(x, y, z), vector(x, y, z) or tuple(x, y, z, w).
Put -- before arguments that start with a minus sign.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}
			c.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "log each evaluated operation")

	rootCmd.AddCommand(
		c.newAddCmd(),
		c.newSubCmd(),
		c.newNegCmd(),
		c.newMulCmd(),
		c.newDivCmd(),
		c.newEqCmd(),
		c.newInfoCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errNotEqual) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
