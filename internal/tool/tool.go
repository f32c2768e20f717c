package tool

import (
	"context"
	"fmt"
	"strings"

	tenkiErrors "github.com/harunnryd/tenki/internal/errors"
	"github.com/harunnryd/tenki/internal/model/contract"
)

// Tool represents an executable capability with a fixed positional call
// signature. The model addresses it by name with named arguments; the
// registry turns those into positional values per the tool's Schema.
type Tool interface {
	Name() string
	Description() string
	Schema() Schema
	Call(ctx context.Context, args []string) (interface{}, error)
}

// Registry holds all available tools in registration order. The order is
// part of the contract: Describe returns descriptors exactly as registered,
// and every gateway request carries them verbatim.
type Registry struct {
	order []string
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Register validates a tool and adds it to the registry. Schema problems are
// caught here, at registration time, not when the model first calls the tool.
func (r *Registry) Register(t Tool) error {
	name := NormalizeToolName(t.Name())
	if name == "" {
		return tenkiErrors.InvalidInput("tool name cannot be empty")
	}
	if _, exists := r.tools[name]; exists {
		return tenkiErrors.InvalidInput(fmt.Sprintf("tool already registered: %s", name))
	}
	if err := t.Schema().validate(); err != nil {
		return fmt.Errorf("tool %s: %w", name, err)
	}

	r.order = append(r.order, name)
	r.tools[name] = t
	return nil
}

func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[NormalizeToolName(name)]
	return t, ok
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Describe returns the tool definitions in registration order, stable across
// calls. The agent loop sends this list untouched with every model request.
func (r *Registry) Describe() []contract.ToolDef {
	defs := make([]contract.ToolDef, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, t.Schema().Definition(name, t.Description()))
	}
	return defs
}

// Invoke dispatches a model-chosen call to the named tool. An unregistered
// name fails with ErrUnknownTool before any implementation runs; errors from
// the implementation itself propagate unchanged.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, tenkiErrors.UnknownTool(fmt.Sprintf("%q is not registered", NormalizeToolName(name)))
	}

	bound, err := t.Schema().bind(args)
	if err != nil {
		return nil, fmt.Errorf("tool %s: %w", t.Name(), err)
	}

	return t.Call(ctx, bound)
}

func NormalizeToolName(name string) string {
	return strings.TrimSpace(name)
}
