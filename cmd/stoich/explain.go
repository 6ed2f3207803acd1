package main

import (
	"fmt"

	"github.com/katalvlaran/stoich/internal/render"
	"github.com/katalvlaran/stoich/internal/service"
	"github.com/spf13/cobra"
)

func newExplainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explain <reaction>",
		Short: "Show every step of balancing a reaction",
		Long: `Prints the parsed terms, element universe, conservation matrix, its reduced
row echelon form, the null space and the result as markdown. On a terminal
the report is rendered; --raw prints the markdown source.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.close()

			input := service.Normalize(args[0])
			analysis, balanced, balErr := a.svc.Explain(input)
			md := render.Explain(input, analysis, balanced, balErr)

			out := cmd.OutOrStdout()
			raw, _ := cmd.Flags().GetBool("raw")
			if !raw && isTerminal(out) {
				style, _ := cmd.Flags().GetString("style")
				if md, err = render.Markdown(md, style, terminalWidth(out, 80)); err != nil {
					return err
				}
			}
			_, err = fmt.Fprint(out, md)

			return err
		},
	}
	cmd.Flags().Bool("raw", false, "Print markdown source even on a terminal")
	cmd.Flags().String("style", "dark", "Glamour style for terminal rendering (dark, light, notty, ...)")

	return cmd
}
