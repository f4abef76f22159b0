// The serve command: run the dashboard HTTP server.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/mortalidash/internal/server"
)

var flagListenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the mortality dashboard over HTTP",
	Long: `Serve loads the datasets once, builds the canonical record table, and
serves the dashboard page and its JSON API until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		addr := cfg.ListenAddr
		if flagListenAddr != "" {
			addr = flagListenAddr
		}

		ctx := buildContext(cfg)
		return server.New(ctx).ListenAndServe(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagListenAddr, "listen", "", "listen address (overrides config listen_addr)")
}
