package main

import (
	"net/http"
	"time"

	"github.com/katalvlaran/stoich/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the balancing HTTP API",
		Long: `Starts an HTTP server with POST /v1/balance, GET /healthz and GET /metrics.
Stops gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd.Context(), cmd)
			if err != nil {
				return err
			}
			defer a.close()

			srv := &http.Server{
				Addr:              a.cfg.Server.Addr,
				Handler:           httpapi.NewHandler(a.svc, a.metrics.Handler(), a.logger),
				ReadHeaderTimeout: 5 * time.Second,
			}

			return httpapi.Serve(cmd.Context(), srv, a.cfg.Server.ShutdownTimeout, a.logger)
		},
	}
	cmd.Flags().String("addr", ":8080", "Listen address")
	cmd.Flags().Bool("verify", true, "Re-check element conservation of the integer result")

	return cmd
}
