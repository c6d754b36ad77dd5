// Command tutorials runs every web tutorial demo: the servers, their callers
// and the one-shot walkthroughs.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/idilsaglam/webtutorials/internal/config"
	"github.com/idilsaglam/webtutorials/internal/logging"
	"github.com/idilsaglam/webtutorials/internal/ui"
)

// app carries what PersistentPreRunE prepares for the subcommands.
type app struct {
	configPath string
	verbose    bool
	theme      string
	timeout    time.Duration

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: zap.NewNop()}

	root := &cobra.Command{
		Use:   "tutorials",
		Short: "Web development tutorials: routing, CRUD, data exchange, SOAP, MongoDB and Lambda",
		Long: `tutorials bundles small web demos behind one CLI.

Servers (routes, todo, hello, items) can run one at a time or together with
"tutorials serve". Every server has a matching client or walkthrough command.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.log.Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "config.yaml", "YAML config file (missing file means env and defaults)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	pf.StringVar(&a.theme, "theme", "", "Color theme: "+strings.Join(ui.Themes(), ", ")+" (default from config)")
	pf.DurationVar(&a.timeout, "timeout", 30*time.Second, "Timeout for one-shot operations")

	root.AddCommand(
		a.routesCmd(),
		a.todoCmd(),
		a.convertCmd(),
		a.soapCmd(),
		a.mongoCmd(),
		a.greetCmd(),
		a.helloCmd(),
		a.quoteCmd(),
		a.lambdaCmd(),
		a.itemsCmd(),
		a.serveCmd(),
		a.configCmd(),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.LogLevel, a.verbose)
	if err != nil {
		return err
	}
	a.log = logger.With(zap.String("cmd", cmd.Name()))

	theme := a.theme
	if theme == "" {
		theme = cfg.UI.Theme
	}
	return ui.SetTheme(theme)
}

// opContext bounds a one-shot command by --timeout.
func (a *app) opContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), a.timeout)
}

func (a *app) httpClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = a.timeout
	}
	return &http.Client{Timeout: timeout}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.C(ui.Current().Error, "error: "+err.Error()))
		os.Exit(1)
	}
}
