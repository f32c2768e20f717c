package main

import (
	"fmt"

	"github.com/harunnryd/tenki/internal/agent"
	"github.com/harunnryd/tenki/internal/model"
	"github.com/harunnryd/tenki/internal/tooling"
)

// assistant is the assembled runtime for one command invocation: the tool
// registry, the configured model gateway, and the loop that drives them.
type assistant struct {
	components *tooling.Components
	gateway    model.Gateway
	loop       *agent.Loop
}

func executeWithAssistant(fn func(*assistant) error) error {
	if cfg == nil {
		return fmt.Errorf("config not loaded")
	}

	components, err := tooling.Build(cfg)
	if err != nil {
		return fmt.Errorf("failed to build tool registry: %w", err)
	}

	gateway, err := model.New(cfg.Models)
	if err != nil {
		return fmt.Errorf("failed to initialize model gateway: %w", err)
	}

	loop := agent.NewLoop(gateway, components.Registry, gateway.Name(), cfg.Agent.MaxTurns)

	return fn(&assistant{
		components: components,
		gateway:    gateway,
		loop:       loop,
	})
}
