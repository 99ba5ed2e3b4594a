package commands

import (
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"ssoma/internal/app"
	"ssoma/internal/config"
	"ssoma/internal/dialog"
)

var (
	envFile   string
	apiURL    string
	logLevel  string
	locale    string
	timeout   time.Duration
	assumeYes bool

	appCtx *app.Wire

	// newDialog picks the dialog for a run; tests replace it.
	newDialog = defaultDialog
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ssoma",
		Short:        "Client for the SSOMA company management API",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("api") {
				cfg.APIURL = apiURL
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("locale") {
				cfg.Locale = locale
			}
			if flags.Changed("timeout") {
				cfg.Timeout = timeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			appCtx, err = app.NewWire(app.Config{
				APIURL:   cfg.APIURL,
				LogLevel: cfg.LogLevel,
				Locale:   cfg.Locale,
				Timeout:  cfg.Timeout,
				LogOut:   cmd.ErrOrStderr(),
				Dialog:   newDialog(cmd, assumeYes),
			})
			return err
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")
	pf.StringVar(&apiURL, "api", config.DefaultAPIURL, "API base URL (env "+config.EnvAPIURL+")")
	pf.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error (env "+config.EnvLogLevel+")")
	pf.StringVar(&locale, "locale", "es-ES", "date locale (env "+config.EnvLocale+")")
	pf.DurationVar(&timeout, "timeout", 0, "per-request timeout, 0 for none (env "+config.EnvTimeout+")")
	pf.BoolVarP(&assumeYes, "yes", "y", false, "answer yes to confirmations")

	root.AddCommand(requestCmd(), validateCmd(), dateCmd(), empresasCmd(), documentosCmd())
	return root
}

// defaultDialog prompts on a terminal and falls back to plain notices
// when stdin is redirected.
func defaultDialog(cmd *cobra.Command, yes bool) dialog.Dialog {
	if yes {
		return dialog.Notice{Out: cmd.OutOrStdout(), Answer: true}
	}
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		return dialog.NewConsole(cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return dialog.Notice{Out: cmd.OutOrStdout()}
}
