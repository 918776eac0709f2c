package cmd

import (
	"github.com/thediveo/enumflag/v2"

	"github.com/sidecoach/sidecoach/internal/config"
)

// ProviderType represents the provider selection on the command line.
type ProviderType enumflag.Flag

const (
	// AutoProvider infers the provider from the API key prefix.
	AutoProvider ProviderType = iota
	// OpenAIProvider represents the OpenAI provider.
	OpenAIProvider
	// GeminiProvider represents the Gemini provider.
	GeminiProvider
	// AnthropicProvider represents the Anthropic provider.
	AnthropicProvider
)

// ProviderIds maps ProviderType to their string representations.
var ProviderIds = map[ProviderType][]string{
	AutoProvider:      {"auto"},
	OpenAIProvider:    {"openai"},
	GeminiProvider:    {"gemini"},
	AnthropicProvider: {"anthropic"},
}

// Provider returns the configuration-level provider and whether one was
// explicitly selected (false for auto).
func (p ProviderType) Provider() (config.Provider, bool) {
	switch p {
	case OpenAIProvider:
		return config.ProviderOpenAI, true
	case GeminiProvider:
		return config.ProviderGemini, true
	case AnthropicProvider:
		return config.ProviderAnthropic, true
	default:
		return "", false
	}
}
