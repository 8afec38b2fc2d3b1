// Package config loads and saves the vibecheck settings file. Settings carry
// the OpenRouter credential, the default model, and the user-defined custom
// proxies; they are handed explicitly to the router and pipeline rather than
// read through a global.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"vibecheck/internal/types"
)

const (
	// FileName is the settings file inside the config directory.
	FileName = "settings.yaml"

	// EnvAPIKey and EnvDefaultModel override their file counterparts.
	EnvAPIKey       = "VIBECHECK_OPENROUTER_API_KEY"
	EnvDefaultModel = "VIBECHECK_DEFAULT_MODEL"

	defaultModel = "gpt-4"
)

// Default returns settings used when no file exists.
func Default() types.Settings {
	return types.Settings{DefaultModel: defaultModel}
}

// Dir returns the config directory, creating it if needed.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	dir := filepath.Join(base, "vibecheck")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	return dir, nil
}

// Path returns the full settings file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads settings from path. A missing file yields defaults, not an
// error. Environment overrides are applied last so a deployment can pin the
// credential and model without touching the file.
func Load(path string) (types.Settings, error) {
	settings := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// first run, defaults apply
	case err != nil:
		return settings, fmt.Errorf("failed to read settings: %w", err)
	default:
		if err := yaml.Unmarshal(data, &settings); err != nil {
			return Default(), fmt.Errorf("failed to parse settings: %w", err)
		}
		if settings.DefaultModel == "" {
			settings.DefaultModel = defaultModel
		}
	}

	applyEnv(&settings)
	return settings, nil
}

// Save writes settings to path atomically (write temp, rename).
func Save(path string, settings types.Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to replace settings: %w", err)
	}
	return nil
}

func applyEnv(s *types.Settings) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		s.OpenRouterAPIKey = v
	}
	if v := os.Getenv(EnvDefaultModel); v != "" {
		s.DefaultModel = v
	}
}
