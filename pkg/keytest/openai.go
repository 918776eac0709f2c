package keytest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/carlmjohnson/requests"
	"github.com/sashabaranov/go-openai"

	"github.com/sidecoach/sidecoach/internal/config"
)

const openaiModelsURL = "https://api.openai.com/v1/models"

// testOpenAI lists the account's models, the cheapest authenticated call the
// API offers.
func testOpenAI(ctx context.Context, apiKey string) Result {
	var (
		respContent openai.ModelsList
		respError   openai.ErrorResponse
	)

	err := requests.
		URL(openaiModelsURL).
		Headers(map[string][]string{
			"Authorization": {fmt.Sprintf("Bearer %s", apiKey)},
		}).
		ToJSON(&respContent).
		ErrorJSON(&respError).
		Fetch(ctx)
	if err != nil {
		switch {
		case requests.HasStatusErr(err, http.StatusUnauthorized):
			return Result{Message: classify(config.ProviderOpenAI, http.StatusUnauthorized)}
		case requests.HasStatusErr(err, http.StatusTooManyRequests):
			return Result{Message: classify(config.ProviderOpenAI, http.StatusTooManyRequests)}
		case requests.HasStatusErr(err,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout):
			return Result{Message: classify(config.ProviderOpenAI, http.StatusInternalServerError)}
		}
		if respError.Error != nil && respError.Error.Message != "" {
			return Result{
				Message: fmt.Sprintf("OpenAI rejected the request: %s", respError.Error.Message),
			}
		}
		return genericFailure(config.ProviderOpenAI, err)
	}

	return Result{Valid: true}
}
