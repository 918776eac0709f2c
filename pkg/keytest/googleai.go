package keytest

import (
	"context"
	"errors"

	"google.golang.org/genai"

	"github.com/sidecoach/sidecoach/internal/config"
)

// testGoogleAI lists available models through the genai library.
func testGoogleAI(ctx context.Context, apiKey string) Result {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return genericFailure(config.ProviderGemini, err)
	}

	_, err = client.Models.List(ctx, &genai.ListModelsConfig{
		PageSize: 1,
	})
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return Result{Message: classify(config.ProviderGemini, apiErr.Code)}
		}
		return genericFailure(config.ProviderGemini, err)
	}

	return Result{Valid: true}
}
