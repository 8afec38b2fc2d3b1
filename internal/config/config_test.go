package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vibecheck/internal/types"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvDefaultModel, "")

	settings, err := Load(filepath.Join(t.TempDir(), FileName))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", settings.DefaultModel)
	assert.Empty(t, settings.OpenRouterAPIKey)
	assert.Empty(t, settings.CustomProxies)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvDefaultModel, "")

	path := filepath.Join(t.TempDir(), FileName)
	want := types.Settings{
		OpenRouterAPIKey: "sk-or-abc",
		DefaultModel:     "deepseek/deepseek-r1-0528:free",
		CustomProxies: []types.CustomProxy{
			{
				ID:           "local-1",
				ConfigName:   "Local Ollama",
				ModelName:    "llama3",
				Endpoint:     "http://localhost:11434/v1/chat/completions",
				CustomPrompt: "You are terse.",
				Provider:     "ollama",
			},
		},
	}
	require.NoError(t, Save(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("settings roundtrip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, types.Settings{
		OpenRouterAPIKey: "file-key",
		DefaultModel:     "file-model",
	}))

	t.Setenv(EnvAPIKey, "env-key")
	t.Setenv(EnvDefaultModel, "env-model")

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", settings.OpenRouterAPIKey)
	assert.Equal(t, "env-model", settings.DefaultModel)
}

func TestLoadEmptyModelFallsBack(t *testing.T) {
	t.Setenv(EnvAPIKey, "")
	t.Setenv(EnvDefaultModel, "")

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("openrouter_api_key: k\n"), 0o600))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", settings.DefaultModel)
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("{not yaml: ["), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveIsAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	// no temp file left behind
	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}
