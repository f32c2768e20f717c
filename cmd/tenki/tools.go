package main

import (
	"fmt"

	"github.com/harunnryd/tenki/internal/tool"
	"github.com/harunnryd/tenki/internal/tool/formatter"

	"github.com/spf13/cobra"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "Inspect the tool registry",
	Long:  `List the registered tools and the JSON-schema descriptors sent to the model.`,
}

var toolsLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List registered tools",
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFormat, _ := cmd.Flags().GetString("output")

		return executeWithAssistant(func(a *assistant) error {
			toolFormatter, err := createFormatter(outputFormat)
			if err != nil {
				return err
			}

			output, err := toolFormatter.FormatTools(a.components.Registry.Describe())
			if err != nil {
				return fmt.Errorf("failed to format output: %w", err)
			}

			fmt.Println(output)
			return nil
		})
	},
}

var toolsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Show one tool's descriptor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		outputFormat, _ := cmd.Flags().GetString("output")
		name := tool.NormalizeToolName(args[0])

		return executeWithAssistant(func(a *assistant) error {
			toolFormatter, err := createFormatter(outputFormat)
			if err != nil {
				return err
			}

			for _, def := range a.components.Registry.Describe() {
				if def.Name != name {
					continue
				}

				output, err := toolFormatter.FormatTool(&def)
				if err != nil {
					return fmt.Errorf("failed to format output: %w", err)
				}

				fmt.Println(output)
				return nil
			}

			return fmt.Errorf("tool not found: %s", args[0])
		})
	},
}

func createFormatter(outputFormat string) (formatter.ToolFormatter, error) {
	format, err := formatter.ParseOutputFormat(outputFormat)
	if err != nil {
		return nil, err
	}

	toolFormatter, err := formatter.NewFormatterFactory().Create(format)
	if err != nil {
		return nil, fmt.Errorf("invalid output format: %w", err)
	}
	return toolFormatter, nil
}

func init() {
	toolsLsCmd.Flags().StringP("output", "o", "table", "Output format (table|json|yaml)")
	toolsShowCmd.Flags().StringP("output", "o", "table", "Output format (table|json|yaml)")

	toolsCmd.AddCommand(toolsLsCmd)
	toolsCmd.AddCommand(toolsShowCmd)
	rootCmd.AddCommand(toolsCmd)
}
