package main

import (
	"fmt"
	"strconv"

	"github.com/philipparndt/gotuple/pkg/tuple"
	"github.com/spf13/cobra"
)

func (c *cli) newAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [tuple] [tuple]",
		Short: "Add two tuples component-wise",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseTuples(args)
			if err != nil {
				return err
			}
			return c.print(cmd, "add", args, ts[0].Add(ts[1]))
		},
	}
}

func (c *cli) newSubCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sub [tuple] [tuple]",
		Short: "Subtract the second tuple from the first",
		Long: `Subtract the second tuple from the first, component-wise.
point - point gives a vector, point - vector gives a point.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseTuples(args)
			if err != nil {
				return err
			}
			return c.print(cmd, "sub", args, ts[0].Sub(ts[1]))
		},
	}
}

func (c *cli) newNegCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "neg [tuple]",
		Short: "Negate every component of a tuple",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseTuples(args)
			if err != nil {
				return err
			}
			return c.print(cmd, "neg", args, ts[0].Neg())
		},
	}
}

func (c *cli) newMulCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mul [tuple] [scalar]",
		Short: "Multiply a tuple by a scalar",
		Long:  "Multiply a tuple by a scalar. The scalar may be given before or after the tuple.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// scalar first
			if s, err := strconv.ParseFloat(args[0], 64); err == nil {
				ts, err := parseTuples(args[1:])
				if err != nil {
					return err
				}
				return c.print(cmd, "mul", args, tuple.Scale(s, ts[0]))
			}

			ts, err := parseTuples(args[:1])
			if err != nil {
				return err
			}
			s, err := parseScalar(args[1])
			if err != nil {
				return err
			}
			return c.print(cmd, "mul", args, ts[0].Mul(s))
		},
	}
}

func (c *cli) newDivCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "div [tuple] [scalar]",
		Short: "Divide every component of a tuple by a scalar",
		Long:  "Divide every component of a tuple by a scalar. Division by zero yields Inf or NaN components.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ts, err := parseTuples(args[:1])
			if err != nil {
				return err
			}
			s, err := parseScalar(args[1])
			if err != nil {
				return err
			}
			return c.print(cmd, "div", args, ts[0].Div(s))
		},
	}
}

func (c *cli) print(cmd *cobra.Command, op string, args []string, result tuple.Tuple) error {
	c.logger.Debug("evaluated", "op", op, "args", args, "result", result.String())
	_, err := fmt.Fprintln(cmd.OutOrStdout(), result)
	return err
}

func parseTuples(args []string) ([]tuple.Tuple, error) {
	ts := make([]tuple.Tuple, len(args))
	for i, arg := range args {
		t, err := tuple.Parse(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to parse argument %d: %w", i+1, err)
		}
		ts[i] = t
	}
	return ts, nil
}

func parseScalar(arg string) (float64, error) {
	s, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse scalar %q: %w", arg, err)
	}
	return s, nil
}
