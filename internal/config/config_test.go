package config

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func TestSchemaKeysMatchStruct(t *testing.T) {
	typ := reflect.TypeOf(Config{})

	var tags []string
	for i := 0; i < typ.NumField(); i++ {
		tag := typ.Field(i).Tag.Get("json")
		if tag == "" || tag == "-" {
			t.Fatalf("field %s has no json tag", typ.Field(i).Name)
		}
		tags = append(tags, strings.Split(tag, ",")[0])
	}

	if !reflect.DeepEqual(tags, configKeys) {
		t.Errorf("configKeys out of lockstep with Config struct tags:\n got %v\nwant %v", configKeys, tags)
	}
}

func TestDefaultConfigIsValid(t *testing.T) {
	raw, err := json.Marshal(NewDefault())
	if err != nil {
		t.Fatalf("marshaling defaults: %v", err)
	}

	if !ValidBytes(raw) {
		t.Errorf("default configuration does not validate against the current schema: %s", raw)
	}
}

func TestDefaultModelIsWhitelisted(t *testing.T) {
	for _, p := range Providers() {
		if len(Models(p)) == 0 {
			t.Errorf("provider %s has an empty whitelist", p)
			continue
		}
		if !WhitelistedModel(p, DefaultModel(p)) {
			t.Errorf("default model %q for provider %s is not whitelisted", DefaultModel(p), p)
		}
	}
}

func TestInferProvider(t *testing.T) {
	testCases := []struct {
		name     string
		apiKey   string
		expected Provider
	}{
		{
			name:     "anthropic prefix",
			apiKey:   "sk-ant-" + strings.Repeat("a", 40),
			expected: ProviderAnthropic,
		},
		{
			name:     "openai prefix",
			apiKey:   "sk-" + strings.Repeat("a", 40),
			expected: ProviderOpenAI,
		},
		{
			name:     "bare sk- prefix without body",
			apiKey:   "sk-",
			expected: ProviderOpenAI,
		},
		{
			name:     "anything else",
			apiKey:   "AIzaSyExampleExample",
			expected: ProviderGemini,
		},
		{
			name:     "empty key",
			apiKey:   "",
			expected: ProviderGemini,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InferProvider(tc.apiKey); got != tc.expected {
				t.Errorf("InferProvider(%q) = %s, want %s", tc.apiKey, got, tc.expected)
			}
		})
	}
}

func TestValidKeyFormat(t *testing.T) {
	testCases := []struct {
		name     string
		apiKey   string
		provider Provider
		expected bool
	}{
		{
			name:     "openai well formed",
			apiKey:   "sk-" + strings.Repeat("a", 32),
			provider: ProviderOpenAI,
			expected: true,
		},
		{
			name:     "openai too short",
			apiKey:   "sk-" + strings.Repeat("a", 31),
			provider: ProviderOpenAI,
			expected: false,
		},
		{
			name:     "openai missing prefix",
			apiKey:   strings.Repeat("a", 40),
			provider: ProviderOpenAI,
			expected: false,
		},
		{
			name:     "anthropic well formed",
			apiKey:   "sk-ant-" + strings.Repeat("b", 32),
			provider: ProviderAnthropic,
			expected: true,
		},
		{
			name:     "anthropic openai-shaped key",
			apiKey:   "sk-" + strings.Repeat("b", 32),
			provider: ProviderAnthropic,
			expected: false,
		},
		{
			name:     "gemini length threshold met",
			apiKey:   "0123456789",
			provider: ProviderGemini,
			expected: true,
		},
		{
			name:     "gemini surrounding whitespace trimmed",
			apiKey:   "  012345678  ",
			provider: ProviderGemini,
			expected: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidKeyFormat(tc.apiKey, tc.provider); got != tc.expected {
				t.Errorf("ValidKeyFormat(%q, %s) = %v, want %v", tc.apiKey, tc.provider, got, tc.expected)
			}
		})
	}
}

func TestValidKeyFormatAuto(t *testing.T) {
	testCases := []struct {
		name     string
		apiKey   string
		expected bool
	}{
		{
			name:     "openai-shaped key",
			apiKey:   "sk-" + strings.Repeat("a", 32),
			expected: true,
		},
		{
			name:     "anthropic-shaped key",
			apiKey:   "sk-ant-" + strings.Repeat("a", 32),
			expected: true,
		},
		{
			name:     "short openai-shaped key",
			apiKey:   "sk-abc",
			expected: false,
		},
		{
			name:     "gemini fallback",
			apiKey:   "AIzaSyExampleExample",
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ValidKeyFormatAuto(tc.apiKey); got != tc.expected {
				t.Errorf("ValidKeyFormatAuto(%q) = %v, want %v", tc.apiKey, got, tc.expected)
			}
		})
	}
}

func TestSanitizeModelIsTotal(t *testing.T) {
	inputs := []string{
		"",
		"gpt-4o",
		"gpt-5",
		"gemini-2.5-flash",
		"claude-3-opus-20240229",
		"definitely-not-a-model",
		"GPT-5",
	}

	for _, p := range Providers() {
		for _, input := range inputs {
			got := SanitizeModel(p, input)
			if !WhitelistedModel(p, got) {
				t.Errorf("SanitizeModel(%s, %q) = %q, not in whitelist", p, input, got)
			}
		}
	}
}

func TestSanitizeModelKeepsWhitelisted(t *testing.T) {
	for _, p := range Providers() {
		for _, model := range Models(p) {
			if got := SanitizeModel(p, model); got != model {
				t.Errorf("SanitizeModel(%s, %q) = %q, want unchanged", p, model, got)
			}
		}
	}
}

func TestClampOpacity(t *testing.T) {
	testCases := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"above max", 5.0, 1.0},
		{"below min", -1.0, 0.1},
		{"in range", 0.5, 0.5},
		{"at min", 0.1, 0.1},
		{"at max", 1.0, 1.0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampOpacity(tc.input); got != tc.expected {
				t.Errorf("ClampOpacity(%v) = %v, want %v", tc.input, got, tc.expected)
			}
		})
	}
}
