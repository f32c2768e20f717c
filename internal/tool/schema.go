package tool

import (
	"encoding/json"
	"fmt"
	"strconv"

	tenkiErrors "github.com/harunnryd/tenki/internal/errors"
	"github.com/harunnryd/tenki/internal/model/contract"
)

// Param is one declared tool parameter. Declaration order matters: it is the
// order argument values are extracted and passed positionally to Call.
type Param struct {
	Name        string
	Type        string
	Description string
}

// Schema is a tool's parameter schema. Params carries the declaration order
// that drives positional binding. Required lists the mandatory parameter
// names and travels to the model exactly as written here, even when its
// order differs from the declaration order; binding never consults it for
// ordering.
type Schema struct {
	Params   []Param
	Required []string
}

const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeInteger = "integer"
	TypeBoolean = "boolean"
)

func (s Schema) validate() error {
	seen := make(map[string]struct{}, len(s.Params))
	for _, p := range s.Params {
		if NormalizeToolName(p.Name) == "" {
			return tenkiErrors.InvalidInput("parameter name cannot be empty")
		}
		if _, dup := seen[p.Name]; dup {
			return tenkiErrors.InvalidInput(fmt.Sprintf("duplicate parameter: %s", p.Name))
		}
		seen[p.Name] = struct{}{}

		switch p.Type {
		case TypeString, TypeNumber, TypeInteger, TypeBoolean:
		default:
			return tenkiErrors.InvalidInput(fmt.Sprintf("parameter %s: unsupported type %q", p.Name, p.Type))
		}
	}

	for _, name := range s.Required {
		if _, ok := seen[name]; !ok {
			return tenkiErrors.InvalidInput(fmt.Sprintf("required parameter not declared: %s", name))
		}
	}
	return nil
}

// Definition renders the schema as the JSON-schema object sent to the model.
func (s Schema) Definition(name, description string) contract.ToolDef {
	properties := make(map[string]interface{}, len(s.Params))
	for _, p := range s.Params {
		prop := map[string]interface{}{
			"type": p.Type,
		}
		if p.Description != "" {
			prop["description"] = p.Description
		}
		properties[p.Name] = prop
	}

	parameters := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(s.Required) > 0 {
		parameters["required"] = append([]string(nil), s.Required...)
	}

	return contract.ToolDef{
		Name:        name,
		Description: description,
		Parameters:  parameters,
	}
}

// bind extracts required argument values in parameter DECLARATION order and
// returns them as the positional argument list for Call.
func (s Schema) bind(args map[string]interface{}) ([]string, error) {
	required := make(map[string]struct{}, len(s.Required))
	for _, name := range s.Required {
		required[name] = struct{}{}
	}

	bound := make([]string, 0, len(s.Required))
	for _, p := range s.Params {
		if _, ok := required[p.Name]; !ok {
			continue
		}
		value, ok := args[p.Name]
		if !ok {
			return nil, tenkiErrors.InvalidInput(fmt.Sprintf("missing required argument: %s", p.Name))
		}
		str, err := coerceArgument(value)
		if err != nil {
			return nil, tenkiErrors.InvalidInput(fmt.Sprintf("argument %s: %v", p.Name, err))
		}
		bound = append(bound, str)
	}
	return bound, nil
}

// coerceArgument flattens a JSON-decoded primitive to its string form. The
// model is free to send "52.5" or 52.5; the tool sees "52.5" either way.
func coerceArgument(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", value)
	}
}

// ParseArguments decodes a tool call's raw JSON argument payload. An empty
// payload means no arguments.
func ParseArguments(raw string) (map[string]interface{}, error) {
	if raw == "" {
		return map[string]interface{}{}, nil
	}
	var args map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &args); err != nil {
		return nil, tenkiErrors.InvalidInput(fmt.Sprintf("malformed tool arguments: %v", err))
	}
	if args == nil {
		args = map[string]interface{}{}
	}
	return args, nil
}
