package main

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/webtutorials/internal/routes"
	"github.com/idilsaglam/webtutorials/internal/web"
)

func (a *app) routesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "Routing demo: path, query and body parameters for every HTTP method",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the routing demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			srv := web.NewServer(a.cfg.Routes.Addr, routes.Handler(a.log))
			return web.Run(ctx, srv, a.log, a.cfg.ShutdownTimeout)
		},
	})

	var baseURL string
	call := &cobra.Command{
		Use:   "call",
		Short: "Call every route of a running routing demo and print the responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			if baseURL == "" {
				baseURL = a.cfg.Routes.BaseURL
			}
			return routes.NewCaller(baseURL, a.httpClient(0)).RunAll(ctx, cmd.OutOrStdout())
		},
	}
	call.Flags().StringVar(&baseURL, "url", "", "Base URL of the server (default from config)")
	cmd.AddCommand(call)

	return cmd
}
