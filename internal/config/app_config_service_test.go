package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-forge/backend/internal/features/config/domain"
)

func TestAppConfigRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "app_config.json")
	svc := NewAppConfigService(configPath)

	want := &domain.AppConfig{
		Model:         "gpt-3.5-turbo",
		SystemMessage: "You are a helpful assistant.",
		ModelParams:   domain.ModelParams{Temperature: 0.7, MaxTokens: 1024},
	}
	require.NoError(t, svc.SaveAppConfig(want))

	got, err := svc.LoadAppConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	svc := NewAppConfigService(filepath.Join(t.TempDir(), "missing.json"))

	_, err := svc.LoadAppConfig()
	assert.Error(t, err)
}
