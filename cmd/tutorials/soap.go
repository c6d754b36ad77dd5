package main

import (
	"github.com/spf13/cobra"

	"github.com/idilsaglam/webtutorials/internal/soap"
)

func (a *app) soapCmd() *cobra.Command {
	var opts soap.DemoOptions
	cmd := &cobra.Command{
		Use:   "soap",
		Short: "SOAP clients for the public calculator, temperature and country services",
	}
	cmd.PersistentFlags().BoolVar(&opts.Raw, "raw", false, "Send hand-built envelopes instead of the typed client")
	cmd.PersistentFlags().BoolVar(&opts.History, "history", false, "Print the last request and response envelopes")

	calc := &cobra.Command{
		Use:   "calc",
		Short: "Add, subtract, multiply and divide on the calculator service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			c := soap.NewCalculator(a.cfg.SOAP.CalculatorURL, a.httpClient(a.cfg.SOAP.Timeout), a.log)
			return soap.RunCalculator(ctx, cmd.OutOrStdout(), c, opts)
		},
	}

	temp := &cobra.Command{
		Use:   "temp",
		Short: "Convert temperatures between Celsius and Fahrenheit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			c := soap.NewTempConverter(a.cfg.SOAP.TempConvertURL, a.httpClient(a.cfg.SOAP.Timeout), a.log)
			return soap.RunTemperature(ctx, cmd.OutOrStdout(), c, opts)
		},
	}

	capital := &cobra.Command{
		Use:   "capital [ISO code...]",
		Short: "Look up capital cities (default IN and US)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"IN", "US"}
			}
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			c := soap.NewCountryInfo(a.cfg.SOAP.CountryInfoURL, a.httpClient(a.cfg.SOAP.Timeout), a.log)
			return soap.RunCapitals(ctx, cmd.OutOrStdout(), c, args, opts)
		},
	}

	countries := &cobra.Command{
		Use:   "countries",
		Short: "List every country name with its ISO code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			c := soap.NewCountryInfo(a.cfg.SOAP.CountryInfoURL, a.httpClient(a.cfg.SOAP.Timeout), a.log)
			return soap.RunCountries(ctx, cmd.OutOrStdout(), c)
		},
	}

	var wsdl string
	ops := &cobra.Command{
		Use:   "ops",
		Short: "List the operations a WSDL document declares",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if wsdl == "" {
				wsdl = a.cfg.SOAP.CalculatorURL + "?WSDL"
			}
			ctx, cancel := a.opContext(cmd)
			defer cancel()
			ports, err := soap.FetchWSDL(ctx, a.httpClient(a.cfg.SOAP.Timeout), wsdl)
			if err != nil {
				return err
			}
			soap.WritePorts(cmd.OutOrStdout(), ports)
			return nil
		},
	}
	ops.Flags().StringVar(&wsdl, "wsdl", "", "WSDL URL (default: the calculator service)")

	cmd.AddCommand(calc, temp, capital, countries, ops)
	return cmd
}
