// Package keytest performs live connectivity checks of provider API keys.
//
// Each provider probe issues a lightweight authenticated metadata call and
// classifies failures into distinct user-facing messages: authentication
// failure, rate or quota exceeded, upstream server error, and a generic
// class for everything else (including network timeouts). Probes share no
// mutable state, so concurrent invocations are safe.
package keytest

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sidecoach/sidecoach/internal/config"
)

// Result reports the outcome of a key test. Message is a user-facing
// description of the failure; it is empty when the key is valid.
type Result struct {
	Valid   bool
	Message string
}

// probeTimeout bounds each provider probe. Expiry surfaces as the generic
// failure class. In-flight probes are not cancellable beyond this; callers
// abandoning interest simply ignore the result.
const probeTimeout = 10 * time.Second

// Test checks the key against the given provider's API.
func Test(ctx context.Context, apiKey string, p config.Provider) Result {
	ctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	switch p {
	case config.ProviderOpenAI:
		return testOpenAI(ctx, apiKey)
	case config.ProviderAnthropic:
		return testAnthropic(ctx, apiKey)
	default:
		return testGoogleAI(ctx, apiKey)
	}
}

// TestAuto infers the provider from the key prefix, then tests the key the
// same way Test does.
func TestAuto(ctx context.Context, apiKey string) Result {
	return Test(ctx, apiKey, config.InferProvider(apiKey))
}

func providerLabel(p config.Provider) string {
	switch p {
	case config.ProviderOpenAI:
		return "OpenAI"
	case config.ProviderAnthropic:
		return "Anthropic"
	default:
		return "Gemini"
	}
}

// classify maps an HTTP-equivalent status code to a user-facing message.
func classify(p config.Provider, status int) string {
	label := providerLabel(p)
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Sprintf("Invalid %s API key. Please check the key and try again.", label)
	case status == http.StatusTooManyRequests:
		return fmt.Sprintf("%s rate limit or quota exceeded. Please try again later.", label)
	case status >= http.StatusInternalServerError:
		return fmt.Sprintf("%s service is currently unavailable. Please try again later.", label)
	default:
		return fmt.Sprintf("Could not validate the %s API key (HTTP %d).", label, status)
	}
}

func genericFailure(p config.Provider, err error) Result {
	return Result{
		Message: fmt.Sprintf("Could not reach %s: %v", providerLabel(p), err),
	}
}
