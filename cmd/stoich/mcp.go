package main

import (
	"github.com/katalvlaran/stoich/internal/mcptool"
	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve balance_reaction and explain_reaction as MCP tools over stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.close()

			a.logger.Info("mcp server starting on stdio", "version", version)

			return mcptool.New(a.svc, version).ServeStdio()
		},
	}
}
