package model

import (
	"context"
	"fmt"

	"github.com/harunnryd/tenki/internal/config"
	tenkiErrors "github.com/harunnryd/tenki/internal/errors"
	"github.com/harunnryd/tenki/internal/model/contract"
	anthropicProvider "github.com/harunnryd/tenki/internal/model/providers/anthropic"
	geminiProvider "github.com/harunnryd/tenki/internal/model/providers/gemini"
	openaiProvider "github.com/harunnryd/tenki/internal/model/providers/openai"
)

// Gateway is one configured model endpoint. One request in, one completion
// out; no fallback routing and no retries.
type Gateway interface {
	Complete(ctx context.Context, req contract.CompletionRequest) (*contract.Completion, error)
	Name() string
	Type() string
}

type completer interface {
	Complete(ctx context.Context, req contract.CompletionRequest) (*contract.Completion, error)
}

type gateway struct {
	completer
	name         string
	providerType string
}

func (g *gateway) Name() string { return g.name }
func (g *gateway) Type() string { return g.providerType }

// New resolves the default model entry from config and constructs its
// provider. The default falls back to the first registry entry when unset.
func New(cfg config.ModelsConfig) (Gateway, error) {
	entry, ok := resolveEntry(cfg)
	if !ok {
		return nil, tenkiErrors.NotFound(fmt.Sprintf("model %s not found in registry", cfg.Default))
	}
	return NewForEntry(entry)
}

func resolveEntry(cfg config.ModelsConfig) (config.ModelRegistry, bool) {
	if cfg.Default == "" && len(cfg.Registry) > 0 {
		return cfg.Registry[0], true
	}
	for _, entry := range cfg.Registry {
		if entry.Name == cfg.Default {
			return entry, true
		}
	}
	return config.ModelRegistry{}, false
}

// NewForEntry constructs a gateway for a single registry entry.
func NewForEntry(entry config.ModelRegistry) (Gateway, error) {
	switch entry.Provider {
	case "openai":
		baseURL := entry.BaseURL
		if baseURL == "" {
			baseURL = config.DefaultOpenAIBaseURL
		}

		if entry.APIKey == "" {
			return nil, tenkiErrors.InvalidInput("API key required for OpenAI provider")
		}

		return &gateway{
			completer:    openaiProvider.New(entry.APIKey, baseURL, entry.Name),
			name:         entry.Name,
			providerType: "openai",
		}, nil

	case "ollama":
		baseURL := entry.BaseURL
		if baseURL == "" {
			baseURL = config.DefaultOllamaBaseURL
		}

		apiKey := entry.APIKey
		if apiKey == "" {
			apiKey = config.DefaultOllamaAPIKey
		}

		return &gateway{
			completer:    openaiProvider.New(apiKey, baseURL, entry.Name),
			name:         entry.Name,
			providerType: "ollama",
		}, nil

	case "anthropic":
		if entry.APIKey == "" {
			return nil, tenkiErrors.InvalidInput("API key required for Anthropic provider")
		}

		return &gateway{
			completer:    anthropicProvider.New(entry.APIKey),
			name:         entry.Name,
			providerType: "anthropic",
		}, nil

	case "gemini":
		if entry.APIKey == "" {
			return nil, tenkiErrors.InvalidInput("API key required for Gemini provider")
		}

		provider, err := geminiProvider.New(entry.APIKey)
		if err != nil {
			return nil, tenkiErrors.Wrap(err, "failed to create Gemini provider")
		}

		return &gateway{
			completer:    provider,
			name:         entry.Name,
			providerType: "gemini",
		}, nil

	default:
		return nil, tenkiErrors.InvalidInput(fmt.Sprintf("unknown provider type: %s", entry.Provider))
	}
}
