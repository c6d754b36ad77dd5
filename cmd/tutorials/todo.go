package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/cli"
	"github.com/idilsaglam/webtutorials/internal/store"
	"github.com/idilsaglam/webtutorials/internal/todo"
	"github.com/idilsaglam/webtutorials/internal/todo/api"
	"github.com/idilsaglam/webtutorials/internal/todo/client"
	"github.com/idilsaglam/webtutorials/internal/tui"
	"github.com/idilsaglam/webtutorials/internal/web"
)

func (a *app) todoCmd() *cobra.Command {
	var baseURL string
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Todo CRUD API on an ORM, with its client, CLI and TUI",
	}
	cmd.PersistentFlags().StringVar(&baseURL, "url", "", "Base URL of the todo API (default from config)")

	newClient := func() *client.Client {
		u := baseURL
		if u == "" {
			u = a.cfg.Todo.BaseURL
		}
		return client.New(u, a.httpClient(0))
	}
	todos := func(cmd *cobra.Command) cli.Todos {
		return cli.Todos{Client: newClient(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	}

	var backend string
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Serve the todo API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if backend != "" {
				a.cfg.Todo.Backend = backend
			}
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			h, closeRepo, err := a.todoHandler(cmd)
			if err != nil {
				return err
			}
			defer closeRepo()
			return web.Run(ctx, web.NewServer(a.cfg.Todo.Addr, h), a.log, a.cfg.ShutdownTimeout)
		},
	}
	serve.Flags().StringVar(&backend, "backend", "", "Storage backend: gorm, sqlx or json (default from config)")

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Walk through every todo endpoint against a running server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			return client.RunDemo(ctx, newClient(), cmd.OutOrStdout())
		},
	}

	var group bool
	ls := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List todos",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			return todos(cmd).List(ctx, group)
		},
	}
	ls.Flags().BoolVar(&group, "group", false, "Group output by pending/done")

	add := &cobra.Command{
		Use:   "add <task>",
		Short: "Add a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			return todos(cmd).Add(ctx, strings.Join(args, " "))
		},
	}

	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a todo between pending and done",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tid, err := parseTID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			return todos(cmd).Toggle(ctx, tid)
		},
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a todo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tid, err := parseTID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			return todos(cmd).Remove(ctx, tid)
		},
	}

	edit := &cobra.Command{
		Use:   "edit <id> <task>",
		Short: "Replace the text of a todo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			tid, err := parseTID(args[0])
			if err != nil {
				return err
			}
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			return todos(cmd).Edit(ctx, tid, strings.Join(args[1:], " "))
		},
	}

	reset := &cobra.Command{
		Use:   "reset",
		Short: "Delete every todo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			return todos(cmd).Reset(ctx)
		},
	}

	interactive := &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit todos interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return tui.Run(cmd.Context(), newClient())
		},
	}

	cmd.AddCommand(serve, demo, ls, add, done, rm, edit, reset, interactive)
	return cmd
}

// todoHandler opens the configured repository and returns the API handler
// with a func that closes the repository.
func (a *app) todoHandler(cmd *cobra.Command) (h http.Handler, closeRepo func(), err error) {
	repo, err := store.Open(cmd.Context(), a.cfg.Todo, a.log, a.verbose)
	if err != nil {
		return nil, nil, err
	}
	closeRepo = func() {
		if err := repo.Close(); err != nil {
			a.log.Warn("close todo repository", zap.Error(err))
		}
	}
	return api.New(todo.NewService(repo, a.log), a.log).Handler(), closeRepo, nil
}

func parseTID(s string) (int64, error) {
	tid, err := strconv.ParseInt(s, 10, 64)
	if err != nil || tid <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return tid, nil
}
