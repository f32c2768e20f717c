package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harunnryd/tenki/internal/model/contract"
)

type OutputFormat string

const (
	OutputFormatTable OutputFormat = "table"
	OutputFormatJSON  OutputFormat = "json"
	OutputFormatYAML  OutputFormat = "yaml"
)

type ToolFormatter interface {
	FormatTools([]contract.ToolDef) (string, error)
	FormatTool(*contract.ToolDef) (string, error)
}

type FormatterFactory struct{}

func NewFormatterFactory() *FormatterFactory {
	return &FormatterFactory{}
}

func (f *FormatterFactory) Create(format OutputFormat) (ToolFormatter, error) {
	switch format {
	case OutputFormatTable:
		return NewTableFormatter(), nil
	case OutputFormatJSON:
		return NewJSONFormatter(), nil
	case OutputFormatYAML:
		return NewYAMLFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: table, json, yaml)", format)
	}
}

func ParseOutputFormat(s string) (OutputFormat, error) {
	format := OutputFormat(strings.ToLower(s))
	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (supported: table, json, yaml)", s)
	}
}

// paramSummary flattens a descriptor's JSON-schema properties into
// "name:type" pairs, sorted by name for display.
func paramSummary(def contract.ToolDef) []string {
	properties, ok := def.Parameters["properties"].(map[string]interface{})
	if !ok || len(properties) == 0 {
		return nil
	}

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	pairs := make([]string, 0, len(names))
	for _, name := range names {
		typ := ""
		if prop, ok := properties[name].(map[string]interface{}); ok {
			typ, _ = prop["type"].(string)
		}
		if typ == "" {
			pairs = append(pairs, name)
			continue
		}
		pairs = append(pairs, fmt.Sprintf("%s:%s", name, typ))
	}
	return pairs
}

// requiredSummary returns the descriptor's required names as written, order
// untouched.
func requiredSummary(def contract.ToolDef) []string {
	switch required := def.Parameters["required"].(type) {
	case []string:
		return required
	case []interface{}:
		names := make([]string, 0, len(required))
		for _, r := range required {
			if name, ok := r.(string); ok {
				names = append(names, name)
			}
		}
		return names
	default:
		return nil
	}
}
