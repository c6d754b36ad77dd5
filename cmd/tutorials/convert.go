package main

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/webtutorials/internal/exchange"
)

func (a *app) convertCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "convert",
		Short: "JSON and XML exchange demos",
	}
	cmd.PersistentFlags().StringVarP(&dir, "dir", "d", ".", "Directory for the generated files")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "json",
			Short: "Serialize the sample profile to JSON, write it, read it back and compare",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return exchange.RunJSON(cmd.OutOrStdout(), dir)
			},
		},
		&cobra.Command{
			Use:   "xml",
			Short: "Convert the sample profile to XML, write it, read it back and compare",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return exchange.RunXML(cmd.OutOrStdout(), dir)
			},
		},
		&cobra.Command{
			Use:   "flights",
			Short: "Convert the flight search XML to JSON",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return exchange.RunFlights(cmd.OutOrStdout(), dir)
			},
		},
	)
	return cmd
}
