package main

import (
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/stoich/internal/batch"
	"github.com/katalvlaran/stoich/internal/config"
	"github.com/katalvlaran/stoich/internal/render"
	"github.com/spf13/cobra"
)

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch <file.yaml>",
		Short: "Balance every reaction listed in a YAML file (\"-\" reads stdin)",
		Example: `  stoich batch reactions.yaml
  printf 'reactions:\n  - H2 + O2 -> H2O\n' | stoich batch --format yaml -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.close()

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			reactions, err := batch.Load(in)
			if err != nil {
				return err
			}
			workers, _ := cmd.Flags().GetInt("workers")
			rep, err := batch.Run(cmd.Context(), a.svc, reactions, workers)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if a.cfg.Format == config.FormatText {
				if err = render.Results(out, config.FormatText, rep.Results); err != nil {
					return err
				}
				fmt.Fprintf(out, "%d balanced, %d failed\n", len(rep.Results)-rep.Failed, rep.Failed)
			} else if err = render.Value(out, a.cfg.Format, rep); err != nil {
				return err
			}
			if rep.Failed > 0 {
				return fmt.Errorf("%d of %d reactions could not be balanced", rep.Failed, len(rep.Results))
			}

			return nil
		},
	}
	cmd.Flags().String("format", "text", "Output format: text, json, yaml")
	cmd.Flags().Int("workers", 0, "Concurrent balancing workers (0 = GOMAXPROCS)")
	cmd.Flags().Bool("verify", true, "Re-check element conservation of the integer result")

	return cmd
}
