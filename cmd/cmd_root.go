package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/sidecoach/sidecoach/internal/buildinfo"
	"github.com/sidecoach/sidecoach/internal/config"
	"github.com/sidecoach/sidecoach/internal/logging"
	"github.com/sidecoach/sidecoach/pkg/promptsx"
)

// AppName - the name of the application.
const AppName = "sidecoach"

var flagVerbose bool

// Process-lifetime application state, constructed once in the root
// PersistentPreRun and passed to subcommands by reference.
var (
	appLogger   *slog.Logger
	appResolver *config.Resolver
	appStore    *config.Store
)

var rootCmd = &cobra.Command{
	Use:     AppName,
	Short:   "Manage the sidecoach assistant configuration",
	Long:    `Inspect and manage the persisted sidecoach configuration: AI provider, models, API key, language and overlay opacity.`,
	Version: buildinfo.String(),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt)
		cmd.SetContext(ctx)

		appLogger = logging.Default()
		if flagVerbose {
			appLogger = logging.Verbose()
		}

		// Startup reconciliation: prune stale or corrupt config files from
		// every location before the store touches the canonical one.
		appResolver = config.NewResolver(appLogger)
		config.Reconcile(appResolver.CandidatePaths(), appLogger)

		appStore = config.NewStore(appResolver.CanonicalPath(), appLogger)
		appStore.Subscribe(func(cfg config.Config) {
			appLogger.Debug("configuration updated", "provider", string(cfg.APIProvider))
		})
	},
	RunE:          runRootE,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Log reconciliation and degradation details")
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if cmd, err := rootCmd.ExecuteC(); err != nil {
		if strings.Contains(err.Error(), "arg(s)") || strings.Contains(err.Error(), "usage") {
			cmd.Usage() //nolint:errcheck
		}

		val, ok := cmd.Context().Value(ctxKeyClackPromptStarted{}).(bool)
		if ok && val {
			prompts.ExitOnError(err)
		} else {
			cobra.CheckErr(err)
		}
	}
}

func runRootE(cmd *cobra.Command, args []string) error {
	cfg, err := appStore.Load()
	if err != nil {
		promptsx.Warn(fmt.Sprintf("Configuration degraded to defaults: %v", err))
	}

	keyState := lo.Ternary(appStore.HasAPIKey(), "set", "not set")
	if appStore.HasAPIKey() && !config.ValidKeyFormat(cfg.APIKey, cfg.APIProvider) {
		keyState = "set (unexpected format)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Provider:         %s\n", cfg.APIProvider)
	fmt.Fprintf(&b, "API key:          %s\n", keyState)
	fmt.Fprintf(&b, "Extraction model: %s\n", cfg.ExtractionModel)
	fmt.Fprintf(&b, "Solution model:   %s\n", cfg.SolutionModel)
	fmt.Fprintf(&b, "Debugging model:  %s\n", cfg.DebuggingModel)
	fmt.Fprintf(&b, "Language:         %s\n", cfg.Language)
	fmt.Fprintf(&b, "Opacity:          %.2f\n", cfg.Opacity)
	fmt.Fprintf(&b, "File:             %s", appStore.Path())
	promptsx.Note(b.String())

	return nil
}
