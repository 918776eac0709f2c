package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/orochaa/go-clack/prompts"
	"github.com/spf13/cobra"

	"github.com/sidecoach/sidecoach/internal/config"
	"github.com/sidecoach/sidecoach/pkg/keytest"
	"github.com/sidecoach/sidecoach/pkg/promptsx"
)

var testkeyCmd = &cobra.Command{
	Use:         "testkey [key]",
	Short:       "Check an API key against the provider's API",
	Long:        `Performs a lightweight authenticated call to verify an API key. Without an argument the stored key is tested. The provider is inferred from the key prefix unless --provider is given.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.MaximumNArgs(1),
	RunE:        runTestkeyE,
}

var testkeyFlags testkeyOptions

type testkeyOptions struct {
	Provider ProviderType
}

func init() {
	addProviderFlag(testkeyCmd, &testkeyFlags.Provider)

	rootCmd.AddCommand(testkeyCmd)
}

func runTestkeyE(cmd *cobra.Command, args []string) error {
	var key string
	if len(args) > 0 {
		key = args[0]
	} else {
		cfg, _ := appStore.Load()
		key = cfg.APIKey
	}
	if strings.TrimSpace(key) == "" {
		return errors.New("no API key given and none stored, run 'sidecoach set --prompt-key' first")
	}

	provider, ok := testkeyFlags.Provider.Provider()
	if !ok {
		provider = config.InferProvider(key)
	}

	if !config.ValidKeyFormat(key, provider) {
		promptsx.Warn(fmt.Sprintf("The key does not look like a %s key, checking anyway", provider))
	}

	var spinner *prompts.SpinnerController
	if !isNotTerminal {
		spinner = prompts.Spinner(prompts.SpinnerOptions{})
		spinner.Start(fmt.Sprintf("Checking %s API key", provider))
	}

	res := keytest.Test(cmd.Context(), key, provider)
	if !res.Valid {
		if spinner != nil {
			spinner.Stop("API key check failed", 1)
		}
		return errors.New(res.Message)
	}

	if spinner != nil {
		spinner.Stop("API key is valid", 0)
	} else {
		promptsx.Success("API key is valid")
	}

	return nil
}
