package http

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"

	"prompt-forge/backend/internal/config"
	"prompt-forge/backend/internal/features/enhancement/application"
	"prompt-forge/backend/internal/features/enhancement/domain"
	"prompt-forge/backend/internal/features/enhancement/infrastructure"
)

// EnhancementHandler holds the enhancer service, the AI client, and the app
// config service.
type EnhancementHandler struct {
	enhancerService  application.EnhancerService
	aiClient         infrastructure.AIClient
	appConfigService config.AppConfigService
}

// NewEnhancementHandler creates a new EnhancementHandler.
func NewEnhancementHandler(enhancerService application.EnhancerService, aiClient infrastructure.AIClient, appConfigService config.AppConfigService) *EnhancementHandler {
	return &EnhancementHandler{
		enhancerService:  enhancerService,
		aiClient:         aiClient,
		appConfigService: appConfigService,
	}
}

// EnhanceHandler handles the request to generate an enhanced prompt. The
// required-fields check lives here: the enhancer itself assumes non-empty
// inputs.
func (h *EnhancementHandler) EnhanceHandler(c *gin.Context) {
	var req domain.EnhanceRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Role) == "" || strings.TrimSpace(req.Context) == "" || strings.TrimSpace(req.Task) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role, context and task must all be filled in"})
		return
	}

	c.JSON(http.StatusOK, h.enhancerService.Enhance(&req))
}

// ValidateKeyHandler handles API key validation. A failed provider call is
// reported as an invalid key, never as a server error.
func (h *EnhancementHandler) ValidateKeyHandler(c *gin.Context) {
	var req domain.ValidateKeyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	valid, message := h.aiClient.ValidateKey(c.Request.Context(), req.APIKey)
	c.JSON(http.StatusOK, domain.ValidateKeyResponse{Valid: valid, Message: message})
}

// TestPromptHandler sends an enhanced prompt to the provider for a test
// response. When the request carries no key, OPENAI_API_KEY from the
// environment is used instead.
func (h *EnhancementHandler) TestPromptHandler(c *gin.Context) {
	var req domain.TestPromptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no API key provided and OPENAI_API_KEY is not set"})
		return
	}

	appConfig, err := h.appConfigService.LoadAppConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load app config: " + err.Error()})
		return
	}

	response, err := h.aiClient.TestPrompt(c.Request.Context(), apiKey, req.Prompt, appConfig.SystemMessage, appConfig.Model, appConfig.ModelParams)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Error when calling OpenAI: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, domain.TestPromptResponse{Response: response})
}
