package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func resolveCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <address>",
		Short: "Print the pubkey behind a Bitcoin address",
		Long: `Ask the statistics site for the pubkey that mined with a Bitcoin address.

Example:
  popstats resolve tb1qrp33g0q5c5txsp9arysrx4k6zdkfs4nce4xj0gdcccefvpysxf3q0sl5k7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			pubkey, err := a.client.ResolvePubkey(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pubkey)
			return nil
		},
	}
}
