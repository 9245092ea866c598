package infrastructure

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	configdomain "prompt-forge/backend/internal/features/config/domain"
)

const minKeyLength = 20

// openAIClient is the OpenAI implementation of AIClient.
type openAIClient struct{}

// NewOpenAIClient creates a new OpenAI-backed AIClient. The API key is
// supplied per call, not held by the client: keys come from the request or
// from the caller's environment fallback and are never stored.
func NewOpenAIClient() AIClient {
	return &openAIClient{}
}

// checkKeyFormat is the local heuristic applied before any network call.
func checkKeyFormat(apiKey string) (bool, string) {
	key := strings.TrimSpace(apiKey)
	if key == "" {
		return false, "API key is empty"
	}
	if !strings.HasPrefix(key, "sk-") {
		return false, "API key should start with sk-"
	}
	if len(key) < minKeyLength {
		return false, "API key is too short"
	}
	return true, ""
}

// ValidateKey runs the format check and, if it passes, lists models to
// confirm the key is live. Any provider error means invalid.
func (c *openAIClient) ValidateKey(ctx context.Context, apiKey string) (bool, string) {
	if ok, msg := checkKeyFormat(apiKey); !ok {
		return false, msg
	}

	client := openai.NewClient(strings.TrimSpace(apiKey))
	if _, err := client.ListModels(ctx); err != nil {
		return false, fmt.Sprintf("API key validation error: %s", err.Error())
	}
	return true, ""
}

// TestPrompt issues one chat completion with the given system message and
// the enhanced prompt as the user message.
func (c *openAIClient) TestPrompt(ctx context.Context, apiKey, prompt, systemMessage, model string, params configdomain.ModelParams) (string, error) {
	client := openai.NewClient(strings.TrimSpace(apiKey))

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       model,
		Temperature: float32(params.Temperature),
		MaxTokens:   params.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call OpenAI: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("OpenAI returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
