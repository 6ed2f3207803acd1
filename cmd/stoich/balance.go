package main

import (
	"fmt"

	"github.com/katalvlaran/stoich/internal/render"
	"github.com/katalvlaran/stoich/internal/service"
	"github.com/spf13/cobra"
)

func newBalanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "balance <reaction>...",
		Short: "Balance one or more reactions",
		Example: `  stoich balance "H2 + O2 -> H2O"
  stoich balance --format json "Fe + O2 -> Fe2O3" "C3H8 + O2 -> CO2 + H2O"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.close()

			results := make([]service.Result, len(args))
			failed := 0
			for i, in := range args {
				if results[i], err = a.svc.Balance(cmd.Context(), service.SurfaceCLI, in); err != nil {
					failed++
				}
			}
			if err = render.Results(cmd.OutOrStdout(), a.cfg.Format, results); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d reactions could not be balanced", failed, len(args))
			}

			return nil
		},
	}
	cmd.Flags().String("format", "text", "Output format: text, json, yaml")
	cmd.Flags().Bool("verify", true, "Re-check element conservation of the integer result")

	return cmd
}
