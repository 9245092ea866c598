package domain

// AppConfig represents the application configuration.
type AppConfig struct {
	Model         string      `json:"model"`
	SystemMessage string      `json:"system_message"`
	ModelParams   ModelParams `json:"model_params"`
}

// ModelParams defines the parameters for the AI model.
type ModelParams struct {
	Temperature float64 `json:"temperature"`
	MaxTokens   int     `json:"max_tokens"`
}
