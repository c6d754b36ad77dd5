package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/webtutorials/internal/lambdafn"
	"github.com/idilsaglam/webtutorials/internal/web"
)

func (a *app) lambdaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lambda",
		Short: "Run the Lambda handlers locally",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the handler names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(lambdafn.Names(), "\n"))
			return err
		},
	})

	var eventPath string
	invoke := &cobra.Command{
		Use:       "invoke <handler>",
		Short:     "Invoke a handler with a JSON event and print its response",
		Args:      cobra.ExactArgs(1),
		ValidArgs: lambdafn.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			event, err := readEvent(cmd.InOrStdin(), eventPath)
			if err != nil {
				return err
			}
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			h, err := lambdafn.Lookup(ctx, args[0], a.cfg.Items, a.log)
			if err != nil {
				return err
			}
			out, err := lambdafn.Invoke(ctx, h, event)
			if err != nil {
				return fmt.Errorf("invoke %s: %w", args[0], err)
			}
			var pretty bytes.Buffer
			if json.Indent(&pretty, out, "", "  ") != nil {
				pretty.Reset()
				pretty.Write(out)
			}
			pretty.WriteByte('\n')
			_, err = cmd.OutOrStdout().Write(pretty.Bytes())
			return err
		},
	}
	invoke.Flags().StringVarP(&eventPath, "event", "e", "", `Event JSON file, "-" for stdin (default: empty object)`)
	cmd.AddCommand(invoke)

	return cmd
}

func readEvent(stdin io.Reader, path string) ([]byte, error) {
	switch path {
	case "":
		return []byte("{}"), nil
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read event from stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read event: %w", err)
	}
	return b, nil
}

func (a *app) itemsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "items",
		Short: "Items API on DynamoDB",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the items API locally",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signalContext(cmd.Context())
			defer stop()
			table, err := lambdafn.OpenDynamoTable(ctx, a.cfg.Items)
			if err != nil {
				return err
			}
			srv := web.NewServer(a.cfg.Items.Addr, lambdafn.ItemsHandler(table, a.log))
			return web.Run(ctx, srv, a.log, a.cfg.ShutdownTimeout)
		},
	})
	return cmd
}
