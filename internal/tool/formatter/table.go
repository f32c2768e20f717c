package formatter

import (
	"strings"

	"github.com/harunnryd/tenki/internal/model/contract"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
)

type TableFormatter struct {
	headerStyle  lipgloss.Style
	cellStyle    lipgloss.Style
	oddRowStyle  lipgloss.Style
	evenRowStyle lipgloss.Style
	borderStyle  lipgloss.Style
}

func NewTableFormatter() *TableFormatter {
	blue := lipgloss.Color("39")
	gray := lipgloss.Color("245")
	lightGray := lipgloss.Color("241")

	return &TableFormatter{
		headerStyle: lipgloss.NewStyle().
			Foreground(blue).
			Bold(true).
			Align(lipgloss.Center).
			Padding(0, 1),
		cellStyle: lipgloss.NewStyle().
			Padding(0, 1).
			Width(24),
		oddRowStyle: lipgloss.NewStyle().
			Foreground(gray).
			Padding(0, 1).
			Width(24),
		evenRowStyle: lipgloss.NewStyle().
			Foreground(lightGray).
			Padding(0, 1).
			Width(24),
		borderStyle: lipgloss.NewStyle().
			Foreground(blue),
	}
}

func (f *TableFormatter) FormatTools(defs []contract.ToolDef) (string, error) {
	if len(defs) == 0 {
		return "No tools registered", nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(f.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return f.headerStyle
			case row%2 == 0:
				return f.evenRowStyle
			default:
				return f.oddRowStyle
			}
		}).
		Headers("Name", "Description", "Parameters", "Required")

	for _, def := range defs {
		t.Row(
			def.Name,
			truncateString(def.Description, 40),
			truncateString(strings.Join(paramSummary(def), ", "), 30),
			truncateString(strings.Join(requiredSummary(def), ", "), 25),
		)
	}

	return t.String(), nil
}

func (f *TableFormatter) FormatTool(def *contract.ToolDef) (string, error) {
	if def == nil {
		return "No tool found", nil
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(f.borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return f.headerStyle
			}
			return f.cellStyle
		})

	t.Row("Name", def.Name)
	t.Row("Description", truncateString(def.Description, 60))
	t.Row("Parameters", strings.Join(paramSummary(*def), ", "))
	t.Row("Required", strings.Join(requiredSummary(*def), ", "))

	return t.String(), nil
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
