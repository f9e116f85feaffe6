package main

import (
	"github.com/spf13/cobra"

	"github.com/guttosm/cookbook-service/internal/app"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long:  "Serve the cookbook over HTTP with the JSON API and the optional static web UI.",
		Run: func(cmd *cobra.Command, args []string) {
			if port != "" {
				cfg.Server.Port = port
			}

			router := app.InitializeApp(cfg)
			server := app.NewServer(router, cfg.Server.Port)
			if err := server.Run(); err != nil {
				exitOnError(err)
			}
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	return cmd
}
