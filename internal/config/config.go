package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
)

type Config struct {
	LogLevel string       `koanf:"log_level" yaml:"log_level"`
	Models   ModelsConfig `koanf:"models" yaml:"models"`
	Agent    AgentConfig  `koanf:"agent" yaml:"agent"`
	Tools    ToolsConfig  `koanf:"tools" yaml:"tools"`
}

type ModelsConfig struct {
	Default  string          `koanf:"default" yaml:"default"`
	Registry []ModelRegistry `koanf:"registry" yaml:"registry"`
}

type ModelRegistry struct {
	Name     string `koanf:"name" yaml:"name"`
	Provider string `koanf:"provider" yaml:"provider"`
	BaseURL  string `koanf:"base_url" yaml:"base_url,omitempty"`
	APIKey   string `koanf:"api_key" yaml:"api_key,omitempty"`
}

type AgentConfig struct {
	MaxTurns     int    `koanf:"max_turns" yaml:"max_turns"`
	SystemPrompt string `koanf:"system_prompt" yaml:"system_prompt"`
}

type ToolsConfig struct {
	Location LocationToolConfig `koanf:"location" yaml:"location"`
	Weather  WeatherToolConfig  `koanf:"weather" yaml:"weather"`
}

type LocationToolConfig struct {
	BaseURL string `koanf:"base_url" yaml:"base_url"`
	Timeout string `koanf:"timeout" yaml:"timeout"`
}

type WeatherToolConfig struct {
	BaseURL string `koanf:"base_url" yaml:"base_url"`
	Timeout string `koanf:"timeout" yaml:"timeout"`
}

const (
	DefaultLogLevel            = "info"
	DefaultModelDefault        = "gpt-4o-mini"
	DefaultOpenAIBaseURL       = "https://api.openai.com/v1"
	DefaultOllamaBaseURL       = "http://localhost:11434/v1"
	DefaultOllamaAPIKey        = "ollama"
	DefaultAgentMaxTurns       = 5
	DefaultAgentSystemPrompt   = "You are a helpful assistant. Prefer gathering facts with the tools available to you over giving generic answers, and keep the final answer specific."
	DefaultLocationToolBaseURL = "https://ipapi.co"
	DefaultLocationToolTimeout = "10s"
	DefaultWeatherToolBaseURL  = "https://api.open-meteo.com"
	DefaultWeatherToolTimeout  = "10s"
)

func Load(cmd *cobra.Command) (*Config, error) {
	k := koanf.New(".")

	// Hardcoded Defaults
	defaults := map[string]interface{}{
		"log_level":      DefaultLogLevel,
		"models.default": DefaultModelDefault,
		"models.registry": []ModelRegistry{
			{Name: DefaultModelDefault, Provider: "openai"},
			{Name: "claude-3-5-haiku-latest", Provider: "anthropic"},
			{Name: "gemini-2.0-flash", Provider: "gemini"},
			{Name: "local-llama", Provider: "ollama", BaseURL: DefaultOllamaBaseURL},
		},
		"agent.max_turns":         DefaultAgentMaxTurns,
		"agent.system_prompt":     DefaultAgentSystemPrompt,
		"tools.location.base_url": DefaultLocationToolBaseURL,
		"tools.location.timeout":  DefaultLocationToolTimeout,
		"tools.weather.base_url":  DefaultWeatherToolBaseURL,
		"tools.weather.timeout":   DefaultWeatherToolTimeout,
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	// Config file loading
	configPath := ""
	if cmd != nil {
		if flag := cmd.Flags().Lookup("config"); flag != nil {
			configPath = strings.TrimSpace(flag.Value.String())
		}
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, err
		}
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			globalPath := filepath.Join(home, ".tenki", "config.yaml")
			if err := k.Load(file.Provider(globalPath), yaml.Parser()); err != nil {
				slog.Debug("Global config not found or invalid", "path", globalPath, "error", err)
			}
		}
	}

	// Environment Variables
	k.Load(env.Provider("TENKI_", ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, "TENKI_")), "_", ".", -1)
	}), nil)

	// CLI Flags
	if cmd != nil {
		k.Load(posflag.Provider(cmd.Flags(), ".", k), nil)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	for i, m := range cfg.Models.Registry {
		if m.Provider == "" {
			cfg.Models.Registry[i].Provider = "openai"
		}
	}

	// Post-Process: Inject standard Env Vars if missing
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		for i, m := range cfg.Models.Registry {
			if m.Provider == "openai" && m.APIKey == "" {
				cfg.Models.Registry[i].APIKey = key
			}
		}
	}
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		for i, m := range cfg.Models.Registry {
			if m.Provider == "anthropic" && m.APIKey == "" {
				cfg.Models.Registry[i].APIKey = key
			}
		}
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		for i, m := range cfg.Models.Registry {
			if m.Provider == "gemini" && m.APIKey == "" {
				cfg.Models.Registry[i].APIKey = key
			}
		}
	}

	return &cfg, nil
}
