package cmd

import (
	"errors"
	"fmt"

	"github.com/orochaa/go-clack/prompts"
	"github.com/spf13/cobra"

	"github.com/sidecoach/sidecoach/internal/config"
	"github.com/sidecoach/sidecoach/pkg/promptsx"
)

var clearCmd = &cobra.Command{
	Use:         "clear",
	Short:       "Delete every discovered configuration file",
	Long:        `Deletes the configuration file at every candidate location, valid or not, including legacy install locations. The next run starts from defaults. Intended for manual resets and debugging.`,
	Annotations: map[string]string{"group": "main"},
	Args:        cobra.NoArgs,
	RunE:        runClearE,
}

var clearFlags clearOptions

type clearOptions struct {
	Yes bool
}

func init() {
	clearCmd.Flags().BoolVarP(&clearFlags.Yes, "yes", "y", false, "Do not ask for confirmation")

	rootCmd.AddCommand(clearCmd)
}

func runClearE(cmd *cobra.Command, args []string) error {
	paths := appResolver.CandidatePaths()

	if !clearFlags.Yes {
		if isNotTerminal {
			return errors.New("refusing to clear without --yes in a non-interactive session")
		}

		// in order to show custom error
		injectIntoCommandContextWithKey(cmd, ctxKeyClackPromptStarted{}, true)

		confirmed, err := prompts.Confirm(prompts.ConfirmParams{
			Message: fmt.Sprintf("Delete configuration files at %d locations?", len(paths)),
		})
		if err != nil {
			return err
		}
		if !confirmed {
			return nil
		}
	}

	removed := config.ForceClear(paths, appLogger)
	if len(removed) == 0 {
		promptsx.Info("No configuration files found")
		return nil
	}

	for _, path := range removed {
		promptsx.Info(fmt.Sprintf("Removed %s", path))
	}
	promptsx.Success(fmt.Sprintf("Removed %d configuration file(s)", len(removed)))

	return nil
}
