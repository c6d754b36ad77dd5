package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/idilsaglam/webtutorials/internal/hello"
	"github.com/idilsaglam/webtutorials/internal/lambdafn"
	"github.com/idilsaglam/webtutorials/internal/routes"
	"github.com/idilsaglam/webtutorials/internal/web"
)

var serverNames = []string{"routes", "todo", "hello", "items"}

// signalContext is cancelled on SIGINT or SIGTERM.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func (a *app) serveCmd() *cobra.Command {
	var skip []string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the routes, todo, hello and items servers together",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, s := range skip {
				if !slices.Contains(serverNames, s) {
					return fmt.Errorf("unknown server %q (want one of %v)", s, serverNames)
				}
			}

			ctx, stop := signalContext(cmd.Context())
			defer stop()

			servers := map[string]*http.Server{}
			if !slices.Contains(skip, "routes") {
				servers["routes"] = web.NewServer(a.cfg.Routes.Addr, routes.Handler(a.log.Named("routes")))
			}
			if !slices.Contains(skip, "todo") {
				h, closeRepo, err := a.todoHandler(cmd)
				if err != nil {
					return err
				}
				defer closeRepo()
				servers["todo"] = web.NewServer(a.cfg.Todo.Addr, h)
			}
			if !slices.Contains(skip, "hello") {
				servers["hello"] = web.NewServer(a.cfg.Hello.Addr, hello.Handler(a.log.Named("hello")))
			}
			if !slices.Contains(skip, "items") {
				table, err := lambdafn.OpenDynamoTable(ctx, a.cfg.Items)
				if err != nil {
					return err
				}
				servers["items"] = web.NewServer(a.cfg.Items.Addr, lambdafn.ItemsHandler(table, a.log.Named("items")))
			}
			if len(servers) == 0 {
				return fmt.Errorf("nothing to serve")
			}

			g, gctx := errgroup.WithContext(ctx)
			for name, srv := range servers {
				srv := srv
				log := a.log.With(zap.String("server", name))
				g.Go(func() error {
					return web.Run(gctx, srv, log, a.cfg.ShutdownTimeout)
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringSliceVar(&skip, "skip", nil, "Servers to leave out: routes, todo, hello, items")
	return cmd
}
