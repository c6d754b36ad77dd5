package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/webtutorials/internal/hello"
	"github.com/idilsaglam/webtutorials/internal/web"
)

func (a *app) greetCmd() *cobra.Command {
	var name string
	cmd := &cobra.Command{
		Use:   "greet",
		Short: "Print a greeting",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), hello.Greeting(name))
			return err
		},
	}
	cmd.Flags().StringVar(&name, "name", hello.DefaultName, "Name to greet")
	return cmd
}

func (a *app) helloCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hello",
		Short: "Minimal hello-world web app",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the hello app",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			srv := web.NewServer(a.cfg.Hello.Addr, hello.Handler(a.log))
			return web.Run(ctx, srv, a.log, a.cfg.ShutdownTimeout)
		},
	})
	return cmd
}

func (a *app) quoteCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Fetch and print a random quote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if url == "" {
				url = a.cfg.Quote.URL
			}
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			q, err := hello.NewQuoteClient(url, a.httpClient(a.cfg.Quote.Timeout)).Random(ctx)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), q)
			return err
		},
	}
	cmd.Flags().StringVar(&url, "url", "", "Quote API URL (default from config)")
	return cmd
}
