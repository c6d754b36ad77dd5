package main

import (
	"context"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/docstore"
)

func (a *app) mongoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mongo",
		Short: "MongoDB CRUD walkthrough on the blog posts collection",
	}

	run := func(fn func(ctx context.Context, s *docstore.Store, w io.Writer) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			s, err := docstore.Connect(ctx, a.cfg.Mongo, a.log)
			if err != nil {
				return err
			}
			defer func() {
				if err := s.Close(context.Background()); err != nil {
					a.log.Warn("mongo disconnect", zap.Error(err))
				}
			}()
			return fn(ctx, s, cmd.OutOrStdout())
		}
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "check",
			Short: "Ping the server, check the database and collection, print the documents",
			Args:  cobra.NoArgs,
			RunE:  run(docstore.SanityCheck),
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Insert, query, update and delete the sample posts",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, s *docstore.Store, w io.Writer) error {
				return docstore.RunDemo(ctx, s, w, time.Now())
			}),
		},
		&cobra.Command{
			Use:   "reset",
			Short: "Clear and drop the collection, then drop the database",
			Args:  cobra.NoArgs,
			RunE:  run(docstore.ClearReset),
		},
	)
	return cmd
}
