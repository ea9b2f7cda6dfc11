package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

func TestSettingsCmd_Use(t *testing.T) {
	assert.Equal(t, "settings", settingsCmd.Use)
}

func TestSettingsCmd_ShowsDefaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Current Settings")
	assert.Contains(t, buf.String(), "Deterministic (extractive retrieval)")
	assert.Contains(t, buf.String(), "Relevance floor: 0.10")
	assert.Contains(t, buf.String(), "Seed: derived from content")
	assert.Contains(t, buf.String(), "Config file:")
}

func TestSettingsCmd_ShowsResponderFields(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	store := settingsStore.(*mockSettingsStore)
	store.settings.Provider = domain.ProviderOllama
	store.settings.ResponderModel = "llama3.2"

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "show"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Ollama (local model, extractive fallback)")
	assert.Contains(t, buf.String(), "Model: llama3.2")
	assert.Contains(t, buf.String(), "Base URL: (default)")
}

func TestSettingsProviderCmd_SavesProvider(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	store := settingsStore.(*mockSettingsStore)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"settings", "provider", "openai"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	require.NotNil(t, store.saved)
	assert.Equal(t, domain.ProviderOpenAI, store.saved.Provider)
	assert.Contains(t, buf.String(), "Provider set to")
}

func TestSettingsProviderCmd_RejectsUnknown(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	store := settingsStore.(*mockSettingsStore)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "provider", "skynet"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), `unknown provider "skynet"`)
	assert.Nil(t, store.saved)
}

func TestSettingsModelCmd_SavesModel(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	store := settingsStore.(*mockSettingsStore)

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"settings", "model", "mistral"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	require.NotNil(t, store.saved)
	assert.Equal(t, "mistral", store.saved.ResponderModel)
}

func TestSettingsSeedCmd_SavesSeed(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	store := settingsStore.(*mockSettingsStore)

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"settings", "seed", "42"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	require.NotNil(t, store.saved)
	assert.Equal(t, int64(42), store.saved.NarrationSeed)
}

func TestSettingsSeedCmd_RejectsNonNumeric(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"settings", "seed", "lots"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seed")
}
