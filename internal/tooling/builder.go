package tooling

import (
	"fmt"
	"log/slog"

	"github.com/harunnryd/tenki/internal/config"
	"github.com/harunnryd/tenki/internal/tool"
	_ "github.com/harunnryd/tenki/internal/tool/builtin"
)

// Components bundles the tool surface handed to the agent loop.
type Components struct {
	Registry *tool.Registry
}

// Build instantiates every built-in tool with its configured base URL and
// timeout and registers them into a fresh registry.
func Build(cfg *config.Config) (*Components, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	builtinOptions, err := resolveBuiltinOptions(cfg)
	if err != nil {
		return nil, err
	}

	toolRegistry := tool.NewRegistry()

	builtins, err := tool.InstantiateBuiltins(builtinOptions)
	if err != nil {
		return nil, fmt.Errorf("instantiate built-in tools: %w", err)
	}
	for _, builtin := range builtins {
		if err := toolRegistry.Register(builtin); err != nil {
			return nil, fmt.Errorf("register built-in tool: %w", err)
		}
	}
	slog.Info("Built-in tools registered", "count", len(builtins))

	return &Components{Registry: toolRegistry}, nil
}
