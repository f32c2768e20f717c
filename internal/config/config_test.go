package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")

	// We pass nil for cmd to skip flags
	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("Expected default log level %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.Models.Default != DefaultModelDefault {
		t.Errorf("Expected default model %s, got %s", DefaultModelDefault, cfg.Models.Default)
	}
	if len(cfg.Models.Registry) != 4 {
		t.Errorf("Expected 4 default registry entries, got %d", len(cfg.Models.Registry))
	}
	if cfg.Agent.MaxTurns != DefaultAgentMaxTurns {
		t.Errorf("Expected default max turns %d, got %d", DefaultAgentMaxTurns, cfg.Agent.MaxTurns)
	}
	if cfg.Agent.SystemPrompt != DefaultAgentSystemPrompt {
		t.Errorf("Expected default system prompt, got %s", cfg.Agent.SystemPrompt)
	}
	if cfg.Tools.Location.BaseURL != DefaultLocationToolBaseURL {
		t.Errorf("Expected default location base url %s, got %s", DefaultLocationToolBaseURL, cfg.Tools.Location.BaseURL)
	}
	if cfg.Tools.Location.Timeout != DefaultLocationToolTimeout {
		t.Errorf("Expected default location timeout %s, got %s", DefaultLocationToolTimeout, cfg.Tools.Location.Timeout)
	}
	if cfg.Tools.Weather.BaseURL != DefaultWeatherToolBaseURL {
		t.Errorf("Expected default weather base url %s, got %s", DefaultWeatherToolBaseURL, cfg.Tools.Weather.BaseURL)
	}
	if cfg.Tools.Weather.Timeout != DefaultWeatherToolTimeout {
		t.Errorf("Expected default weather timeout %s, got %s", DefaultWeatherToolTimeout, cfg.Tools.Weather.Timeout)
	}
}

func TestLoadWithConfigFlag(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := []byte(`
log_level: debug
models:
  default: custom-model
agent:
  max_turns: 3
`)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file path")
	if err := cmd.Flags().Set("config", configPath); err != nil {
		t.Fatalf("failed to set config flag: %v", err)
	}

	cfg, err := Load(cmd)
	if err != nil {
		t.Fatalf("failed to load config with --config: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Fatalf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.Models.Default != "custom-model" {
		t.Fatalf("expected default model custom-model, got %s", cfg.Models.Default)
	}
	if cfg.Agent.MaxTurns != 3 {
		t.Fatalf("expected max turns 3, got %d", cfg.Agent.MaxTurns)
	}
}

func TestLoadWithMissingConfigFlagReturnsError(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file path")
	if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("failed to set config flag: %v", err)
	}

	if _, err := Load(cmd); err == nil {
		t.Fatal("expected error when --config points to missing file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("TENKI_LOG_LEVEL", "warn")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Fatalf("expected env log level warn, got %s", cfg.LogLevel)
	}
}

func TestLoadInjectsAPIKeysFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPENAI_API_KEY", "sk-openai-test")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	var sawOpenAI, sawAnthropic bool
	for _, m := range cfg.Models.Registry {
		switch m.Provider {
		case "openai":
			sawOpenAI = true
			if m.APIKey != "sk-openai-test" {
				t.Errorf("expected openai key injected, got %q", m.APIKey)
			}
		case "anthropic":
			sawAnthropic = true
			if m.APIKey != "sk-ant-test" {
				t.Errorf("expected anthropic key injected, got %q", m.APIKey)
			}
		case "gemini":
			if m.APIKey != "" {
				t.Errorf("expected gemini key untouched, got %q", m.APIKey)
			}
		}
	}
	if !sawOpenAI || !sawAnthropic {
		t.Fatal("expected openai and anthropic registry entries")
	}
}

func TestLoadFileKeyNotOverwrittenByEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	content := []byte(`
models:
  registry:
    - name: gpt-4o-mini
      provider: openai
      api_key: sk-from-file
`)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		t.Fatalf("write config file: %v", err)
	}

	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file path")
	if err := cmd.Flags().Set("config", configPath); err != nil {
		t.Fatalf("set config flag: %v", err)
	}

	cfg, err := Load(cmd)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if len(cfg.Models.Registry) != 1 {
		t.Fatalf("expected 1 registry entry, got %d", len(cfg.Models.Registry))
	}
	if cfg.Models.Registry[0].APIKey != "sk-from-file" {
		t.Fatalf("expected file key kept, got %q", cfg.Models.Registry[0].APIKey)
	}
}

func TestDurationOrDefault(t *testing.T) {
	d, err := DurationOrDefault("", "10s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Seconds() != 10 {
		t.Fatalf("expected 10s, got %s", d)
	}

	d, err = DurationOrDefault("250ms", "10s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Milliseconds() != 250 {
		t.Fatalf("expected 250ms, got %s", d)
	}

	if _, err := DurationOrDefault("not-a-duration", "10s"); err == nil {
		t.Fatal("expected parse error")
	}

	if _, err := DurationOrDefault("", ""); err == nil {
		t.Fatal("expected empty duration error")
	}
}
