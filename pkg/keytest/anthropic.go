package keytest

import (
	"context"
	"errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/sidecoach/sidecoach/internal/config"
)

// testAnthropic lists available models through the official SDK.
func testAnthropic(ctx context.Context, apiKey string) Result {
	client := anthropic.NewClient(
		option.WithAPIKey(apiKey),
	)

	_, err := client.Models.List(ctx, anthropic.ModelListParams{
		Limit: anthropic.Int(1),
	})
	if err != nil {
		var apierr *anthropic.Error
		if errors.As(err, &apierr) {
			return Result{Message: classify(config.ProviderAnthropic, apierr.StatusCode)}
		}
		return genericFailure(config.ProviderAnthropic, err)
	}

	return Result{Valid: true}
}
