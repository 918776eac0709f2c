package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sidecoach/sidecoach/internal/config"
	"github.com/sidecoach/sidecoach/pkg/promptsx"
)

var setCmd = &cobra.Command{
	Use:         "set",
	Short:       "Update stored configuration values",
	Long:        `Updates one or more configuration values. A provider change resets the model selection to the new provider's defaults; supplying an API key without a provider infers the provider from the key prefix.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runSetE,
}

var setFlags setOptions

type setOptions struct {
	Provider        ProviderType
	APIKey          string
	PromptKey       bool
	ExtractionModel string
	SolutionModel   string
	DebuggingModel  string
	Language        string
	Opacity         float64
}

func setAddFlags(cmd *cobra.Command) {
	addProviderFlag(cmd, &setFlags.Provider)
	cmd.Flags().StringVar(&setFlags.APIKey, "api-key", "", "API key to store")
	cmd.Flags().BoolVar(&setFlags.PromptKey, "prompt-key", false, "Prompt for the API key without echoing it")
	cmd.Flags().StringVar(&setFlags.ExtractionModel, "extraction-model", "", "Model used for problem extraction")
	cmd.Flags().StringVar(&setFlags.SolutionModel, "solution-model", "", "Model used for solution generation")
	cmd.Flags().StringVar(&setFlags.DebuggingModel, "debugging-model", "", "Model used for debugging help")
	cmd.Flags().StringVar(&setFlags.Language, "language", "", "Preferred programming language")
	cmd.Flags().Float64Var(&setFlags.Opacity, "opacity", 0, "Overlay opacity (clamped to 0.1-1.0)")
}

func init() {
	setAddFlags(setCmd)

	rootCmd.AddCommand(setCmd)
}

func runSetE(cmd *cobra.Command, args []string) error {
	var u config.Update

	if setFlags.PromptKey {
		key, err := readAPIKey(cmd)
		if err != nil {
			return err
		}
		u.APIKey = &key
	} else if cmd.Flags().Changed("api-key") {
		u.APIKey = &setFlags.APIKey
	}

	if p, ok := setFlags.Provider.Provider(); ok {
		u.APIProvider = &p
	}
	if cmd.Flags().Changed("extraction-model") {
		u.ExtractionModel = &setFlags.ExtractionModel
	}
	if cmd.Flags().Changed("solution-model") {
		u.SolutionModel = &setFlags.SolutionModel
	}
	if cmd.Flags().Changed("debugging-model") {
		u.DebuggingModel = &setFlags.DebuggingModel
	}
	if cmd.Flags().Changed("language") {
		u.Language = &setFlags.Language
	}
	if cmd.Flags().Changed("opacity") {
		v := config.ClampOpacity(setFlags.Opacity)
		u.Opacity = &v
	}

	if u == (config.Update{}) {
		return errors.New("nothing to update, see --help for available flags")
	}

	cfg, err := appStore.Update(u)
	if err != nil {
		promptsx.Warn(fmt.Sprintf("Configuration updated in memory only: %v", err))
		return nil
	}

	promptsx.Success(fmt.Sprintf("Configuration saved: provider %s, models %s / %s / %s",
		cfg.APIProvider, cfg.ExtractionModel, cfg.SolutionModel, cfg.DebuggingModel))

	return nil
}

// readAPIKey reads the key interactively when attached to a terminal, or
// from stdin when piped.
func readAPIKey(cmd *cobra.Command) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) && !isNotTerminal {
		// in order to show custom error
		injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)

		return prompts.Password(prompts.PasswordParams{
			Message: "API key",
		})
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading API key from stdin: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
