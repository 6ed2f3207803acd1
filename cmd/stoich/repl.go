package main

import (
	"github.com/katalvlaran/stoich/internal/repl"
	"github.com/spf13/cobra"
)

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Balance reactions interactively, one per line",
		Long:  `Reads reactions from standard input until "exit", "quit" or end of input.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.close()

			in := cmd.InOrStdin()

			return repl.Run(cmd.Context(), a.svc, in, cmd.OutOrStdout(), repl.WithBanner(isTerminal(in)))
		},
	}
}
