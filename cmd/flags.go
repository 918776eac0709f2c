package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thediveo/enumflag/v2"
)

// addProviderFlag adds the provider selection flag to a command.
func addProviderFlag(cmd *cobra.Command, provider *ProviderType) {
	cmd.Flags().VarP(enumflag.New(provider, "provider", ProviderIds, enumflag.EnumCaseInsensitive), "provider", "p", "AI provider (auto, openai, gemini, anthropic)")
}
