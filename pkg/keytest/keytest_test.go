package keytest

import (
	"errors"
	"strings"
	"testing"

	"github.com/sidecoach/sidecoach/internal/config"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		name     string
		provider config.Provider
		status   int
		contains string
	}{
		{
			name:     "unauthorized",
			provider: config.ProviderOpenAI,
			status:   401,
			contains: "Invalid OpenAI API key",
		},
		{
			name:     "forbidden counts as auth failure",
			provider: config.ProviderAnthropic,
			status:   403,
			contains: "Invalid Anthropic API key",
		},
		{
			name:     "rate limited",
			provider: config.ProviderGemini,
			status:   429,
			contains: "rate limit or quota",
		},
		{
			name:     "server error",
			provider: config.ProviderAnthropic,
			status:   500,
			contains: "currently unavailable",
		},
		{
			name:     "bad gateway",
			provider: config.ProviderOpenAI,
			status:   502,
			contains: "currently unavailable",
		},
		{
			name:     "anything else",
			provider: config.ProviderGemini,
			status:   404,
			contains: "Could not validate",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.provider, tc.status)
			if !strings.Contains(got, tc.contains) {
				t.Errorf("classify(%s, %d) = %q, want it to contain %q",
					tc.provider, tc.status, got, tc.contains)
			}
		})
	}
}

func TestClassifyMessagesAreDistinct(t *testing.T) {
	statuses := []int{401, 429, 500, 404}

	seen := map[string]int{}
	for _, status := range statuses {
		msg := classify(config.ProviderOpenAI, status)
		if prev, ok := seen[msg]; ok {
			t.Errorf("statuses %d and %d share the message %q", prev, status, msg)
		}
		seen[msg] = status
	}
}

func TestProviderLabel(t *testing.T) {
	testCases := []struct {
		provider config.Provider
		expected string
	}{
		{config.ProviderOpenAI, "OpenAI"},
		{config.ProviderAnthropic, "Anthropic"},
		{config.ProviderGemini, "Gemini"},
	}

	for _, tc := range testCases {
		if got := providerLabel(tc.provider); got != tc.expected {
			t.Errorf("providerLabel(%s) = %q, want %q", tc.provider, got, tc.expected)
		}
	}
}

func TestGenericFailureMessage(t *testing.T) {
	res := genericFailure(config.ProviderGemini, errors.New("context deadline exceeded"))
	if res.Valid {
		t.Error("generic failure reported the key as valid")
	}
	if !strings.Contains(res.Message, "Gemini") || !strings.Contains(res.Message, "deadline") {
		t.Errorf("message %q does not mention provider and cause", res.Message)
	}
}
