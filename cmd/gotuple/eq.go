package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *cli) newEqCmd() *cobra.Command {
	var exitCode bool

	cmd := &cobra.Command{
		Use:   "eq [tuple] [tuple]",
		Short: "Compare two tuples within a tolerance of 1e-5",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseTuples(args)
			if err != nil {
				return err
			}

			equal := ts[0].Equal(ts[1])
			c.logger.Debug("evaluated", "op", "eq", "args", args, "result", equal)

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), equal); err != nil {
				return err
			}
			if exitCode && !equal {
				return errNotEqual
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "exit with status 1 when the tuples differ")

	return cmd
}
