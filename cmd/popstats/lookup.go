package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmagro/hemi-popstats/internal/display"
	"github.com/dmagro/hemi-popstats/internal/report"
)

func lookupCmd(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "lookup <pubkey|address>",
		Short: "Fetch the statistics of one pubkey or address",
		Long: `Fetch and print the statistics of a single pubkey or address, then exit.

Examples:
  popstats lookup 0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798
  popstats lookup tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "terminal" && format != "json" {
				return fmt.Errorf("invalid format %q (expected terminal or json)", format)
			}

			a, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			res, err := a.client.Lookup(cmd.Context(), args[0], a.mode)
			if err != nil {
				return err
			}

			if format == "json" {
				return report.WriteJSON(cmd.OutOrStdout(), report.New(res, time.Now()))
			}
			if err := display.NewStatsFormatter(res, a.msgs).Format(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to display results: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "terminal", "Output format: terminal|json")
	return cmd
}
