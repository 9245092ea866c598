package domain

// EnhanceRequest is the request structure for generating an enhanced prompt.
// All three fields are raw user text; the presentation layer rejects
// empty or whitespace-only fields before the enhancer runs.
type EnhanceRequest struct {
	Role    string `json:"role" binding:"required"`
	Context string `json:"context" binding:"required"`
	Task    string `json:"task" binding:"required"`
}

// Classification holds the keyword-derived labels for one request.
type Classification struct {
	Domain          string   `json:"domain"`
	ExperienceLevel string   `json:"experience_level"`
	ProjectType     string   `json:"project_type"`
	Technologies    []string `json:"technologies"`
	LearningMode    bool     `json:"learning_mode"`
}

// EnhancedPrompt is the result of one enhancement. It is produced fresh per
// call and never mutated afterwards.
type EnhancedPrompt struct {
	Title          string         `json:"title"`
	Prompt         string         `json:"prompt"`
	Classification Classification `json:"classification"`
}

// ValidateKeyRequest carries a candidate OpenAI API key.
type ValidateKeyRequest struct {
	APIKey string `json:"api_key"`
}

// ValidateKeyResponse reports whether the key passed the format check and
// the liveness call. Message is user-facing text explaining a rejection.
type ValidateKeyResponse struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// TestPromptRequest asks for one chat completion against the given prompt.
// APIKey may be empty, in which case the server falls back to the
// OPENAI_API_KEY environment variable.
type TestPromptRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	APIKey string `json:"api_key,omitempty"`
}

// TestPromptResponse carries the model's reply text.
type TestPromptResponse struct {
	Response string `json:"response"`
}
