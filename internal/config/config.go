// Package config implements the persisted application configuration: the
// schema and per-provider model whitelists, resolution of every on-disk
// location a config file may live at, startup reconciliation of stale or
// corrupt copies, and the canonical store with change notification.
package config

import (
	"regexp"
	"strings"

	"github.com/duke-git/lancet/v2/slice"
)

// Provider identifies one of the supported AI providers.
type Provider string

const (
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// Config is the single persisted configuration entity. The JSON key set is
// the schema: a stored file with any key missing or extra is invalid.
type Config struct {
	APIKey          string   `json:"apiKey"`
	APIProvider     Provider `json:"apiProvider"`
	ExtractionModel string   `json:"extractionModel"`
	SolutionModel   string   `json:"solutionModel"`
	DebuggingModel  string   `json:"debuggingModel"`
	Language        string   `json:"language"`
	Opacity         float64  `json:"opacity"`
}

// configKeys is the canonical schema key set, kept in lockstep with the
// Config struct tags (asserted by a test).
var configKeys = []string{
	"apiKey",
	"apiProvider",
	"extractionModel",
	"solutionModel",
	"debuggingModel",
	"language",
	"opacity",
}

// modelWhitelists holds the ordered allowed model identifiers per provider.
// The first entry is the provider's default model. Update as providers evolve.
var modelWhitelists = map[Provider][]string{
	ProviderOpenAI: {
		"gpt-5",
		"gpt-5-mini",
		"gpt-5-nano",
	},
	ProviderGemini: {
		"gemini-2.5-pro",
		"gemini-2.5-flash",
	},
	ProviderAnthropic: {
		"claude-3-7-sonnet-20250219",
		"claude-3-5-sonnet-20241022",
		"claude-3-opus-20240229",
	},
}

// Providers returns all known providers in a stable order.
func Providers() []Provider {
	return []Provider{ProviderOpenAI, ProviderGemini, ProviderAnthropic}
}

// KnownProvider reports whether p is one of the supported providers.
func KnownProvider(p Provider) bool {
	_, ok := modelWhitelists[p]
	return ok
}

// Models returns the ordered whitelist of model identifiers for a provider.
// The returned slice is a copy.
func Models(p Provider) []string {
	return append([]string(nil), modelWhitelists[p]...)
}

// DefaultModel returns the first whitelisted model for a provider.
func DefaultModel(p Provider) string {
	models := modelWhitelists[p]
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// WhitelistedModel reports whether model is allowed for provider p.
func WhitelistedModel(p Provider, model string) bool {
	return slice.Contain(modelWhitelists[p], model)
}

// SanitizeModel maps any string to a member of the provider's whitelist:
// whitelisted values pass through, everything else becomes the provider
// default.
func SanitizeModel(p Provider, model string) string {
	if WhitelistedModel(p, model) {
		return model
	}
	return DefaultModel(p)
}

// NewDefault returns the canonical default configuration. It must always
// validate against the whitelists above.
func NewDefault() *Config {
	return &Config{
		APIKey:          "",
		APIProvider:     ProviderGemini,
		ExtractionModel: DefaultModel(ProviderGemini),
		SolutionModel:   DefaultModel(ProviderGemini),
		DebuggingModel:  DefaultModel(ProviderGemini),
		Language:        "python",
		Opacity:         1.0,
	}
}

// InferProvider derives the provider from an API key's literal prefix.
// Keys starting with "sk-ant-" belong to anthropic, other "sk-" keys to
// openai, anything else is assumed to be a gemini key.
func InferProvider(apiKey string) Provider {
	switch {
	case strings.HasPrefix(apiKey, "sk-ant-"):
		return ProviderAnthropic
	case strings.HasPrefix(apiKey, "sk-"):
		return ProviderOpenAI
	default:
		return ProviderGemini
	}
}

var (
	openaiKeyRe    = regexp.MustCompile(`^sk-[a-zA-Z0-9]{32,}$`)
	anthropicKeyRe = regexp.MustCompile(`^sk-ant-[a-zA-Z0-9]{32,}$`)
)

// ValidKeyFormat applies the provider-specific shape check to an API key.
// It never performs I/O; a passing key is well-formed, not known-good.
func ValidKeyFormat(apiKey string, p Provider) bool {
	switch p {
	case ProviderOpenAI:
		return openaiKeyRe.MatchString(apiKey)
	case ProviderAnthropic:
		return anthropicKeyRe.MatchString(apiKey)
	default:
		return len(strings.TrimSpace(apiKey)) >= 10
	}
}

// ValidKeyFormatAuto infers the provider from the key prefix, then applies
// the same shape check as ValidKeyFormat.
func ValidKeyFormatAuto(apiKey string) bool {
	return ValidKeyFormat(apiKey, InferProvider(apiKey))
}

// Opacity bounds for the overlay window.
const (
	MinOpacity = 0.1
	MaxOpacity = 1.0
)

// ClampOpacity clamps v into the [MinOpacity, MaxOpacity] range.
func ClampOpacity(v float64) float64 {
	if v < MinOpacity {
		return MinOpacity
	}
	if v > MaxOpacity {
		return MaxOpacity
	}
	return v
}
