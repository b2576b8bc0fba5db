package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func (c *cli) newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [tuple]",
		Short: "Display the components and kind of a tuple",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseTuples(args)
			if err != nil {
				return err
			}
			t := ts[0]
			c.logger.Debug("evaluated", "op", "info", "args", args, "result", t.String())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Tuple: %s\n", t)
			fmt.Fprintf(out, "  Kind: %s\n", t.Kind())
			fmt.Fprintf(out, "  X: %s\n", formatComponent(t.X))
			fmt.Fprintf(out, "  Y: %s\n", formatComponent(t.Y))
			fmt.Fprintf(out, "  Z: %s\n", formatComponent(t.Z))
			fmt.Fprintf(out, "  W: %s\n", formatComponent(t.W))
			fmt.Fprintf(out, "  Point: %t\n", t.IsPoint())
			_, err = fmt.Fprintf(out, "  Vector: %t\n", t.IsVector())
			return err
		},
	}
}

func formatComponent(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
