package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harunnryd/tenki/internal/config"
	tenkiErrors "github.com/harunnryd/tenki/internal/errors"
)

func TestNew_ResolvesDefaultEntry(t *testing.T) {
	cfg := config.ModelsConfig{
		Default: "claude-3-5-haiku-latest",
		Registry: []config.ModelRegistry{
			{Name: "gpt-4o-mini", Provider: "openai", APIKey: "sk-test"},
			{Name: "claude-3-5-haiku-latest", Provider: "anthropic", APIKey: "sk-ant-test"},
		},
	}

	gw, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "claude-3-5-haiku-latest", gw.Name())
	assert.Equal(t, "anthropic", gw.Type())
}

func TestNew_EmptyDefaultFallsBackToFirstEntry(t *testing.T) {
	cfg := config.ModelsConfig{
		Registry: []config.ModelRegistry{
			{Name: "local-llama", Provider: "ollama"},
			{Name: "gpt-4o-mini", Provider: "openai", APIKey: "sk-test"},
		},
	}

	gw, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "local-llama", gw.Name())
	assert.Equal(t, "ollama", gw.Type())
}

func TestNew_UnknownDefaultReturnsNotFound(t *testing.T) {
	cfg := config.ModelsConfig{
		Default: "missing-model",
		Registry: []config.ModelRegistry{
			{Name: "gpt-4o-mini", Provider: "openai", APIKey: "sk-test"},
		},
	}

	_, err := New(cfg)
	require.Error(t, err)
	assert.True(t, tenkiErrors.IsCategory(err, tenkiErrors.ErrNotFound))
	assert.Contains(t, err.Error(), "missing-model")
}

func TestNewForEntry_OpenAIRequiresAPIKey(t *testing.T) {
	_, err := NewForEntry(config.ModelRegistry{Name: "gpt-4o-mini", Provider: "openai"})
	require.Error(t, err)
	assert.True(t, tenkiErrors.IsCategory(err, tenkiErrors.ErrInvalidInput))
}

func TestNewForEntry_AnthropicRequiresAPIKey(t *testing.T) {
	_, err := NewForEntry(config.ModelRegistry{Name: "claude-3-5-haiku-latest", Provider: "anthropic"})
	require.Error(t, err)
	assert.True(t, tenkiErrors.IsCategory(err, tenkiErrors.ErrInvalidInput))
}

func TestNewForEntry_GeminiRequiresAPIKey(t *testing.T) {
	_, err := NewForEntry(config.ModelRegistry{Name: "gemini-2.0-flash", Provider: "gemini"})
	require.Error(t, err)
	assert.True(t, tenkiErrors.IsCategory(err, tenkiErrors.ErrInvalidInput))
}

func TestNewForEntry_OllamaNeedsNoCredential(t *testing.T) {
	gw, err := NewForEntry(config.ModelRegistry{Name: "local-llama", Provider: "ollama"})
	require.NoError(t, err)
	assert.Equal(t, "local-llama", gw.Name())
	assert.Equal(t, "ollama", gw.Type())
}

func TestNewForEntry_UnknownProvider(t *testing.T) {
	_, err := NewForEntry(config.ModelRegistry{Name: "x", Provider: "bedrock"})
	require.Error(t, err)
	assert.True(t, tenkiErrors.IsCategory(err, tenkiErrors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "bedrock")
}

func TestResolveEntry(t *testing.T) {
	registry := []config.ModelRegistry{
		{Name: "a", Provider: "openai"},
		{Name: "b", Provider: "ollama"},
	}

	entry, ok := resolveEntry(config.ModelsConfig{Default: "b", Registry: registry})
	require.True(t, ok)
	assert.Equal(t, "b", entry.Name)

	entry, ok = resolveEntry(config.ModelsConfig{Registry: registry})
	require.True(t, ok)
	assert.Equal(t, "a", entry.Name)

	_, ok = resolveEntry(config.ModelsConfig{Default: "zzz", Registry: registry})
	assert.False(t, ok)

	_, ok = resolveEntry(config.ModelsConfig{})
	assert.False(t, ok)
}
