package formatter

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/harunnryd/tenki/internal/model/contract"
)

type YAMLFormatter struct{}

func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

func (f *YAMLFormatter) FormatTools(defs []contract.ToolDef) (string, error) {
	data, err := yaml.Marshal(defs)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func (f *YAMLFormatter) FormatTool(def *contract.ToolDef) (string, error) {
	if def == nil {
		return "null", nil
	}
	data, err := yaml.Marshal(def)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
