package infrastructure

import (
	"context"

	configdomain "prompt-forge/backend/internal/features/config/domain"
)

// AIClient defines a generic interface for the hosted language-model
// provider. Failures are undifferentiated: a validation failure is reported
// as invalid with a message, and a test-call failure surfaces the provider's
// error to the caller.
type AIClient interface {
	// ValidateKey checks a candidate API key: a local format check first,
	// then one lightweight call to the provider to confirm the key is live.
	ValidateKey(ctx context.Context, apiKey string) (bool, string)

	// TestPrompt sends one chat completion with a fixed system message and
	// the enhanced prompt as the user message, returning the reply text.
	TestPrompt(ctx context.Context, apiKey, prompt, systemMessage, model string, params configdomain.ModelParams) (string, error)
}
