package formatter

import (
	"encoding/json"

	"github.com/harunnryd/tenki/internal/model/contract"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

func (f *JSONFormatter) FormatTools(defs []contract.ToolDef) (string, error) {
	data, err := json.MarshalIndent(defs, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *JSONFormatter) FormatTool(def *contract.ToolDef) (string, error) {
	if def == nil {
		return "null", nil
	}
	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
