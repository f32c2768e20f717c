package main

import (
	"fmt"
	"strings"

	"github.com/harunnryd/tenki/internal/agent"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask one question and print the answer",
	Long:  `Run a single question through the tool-call loop and print the final answer.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := strings.Join(args, " ")

		return executeWithAssistant(func(a *assistant) error {
			transcript := agent.NewTranscriptWithSystem(cfg.Agent.SystemPrompt)

			result, err := a.loop.Run(cmd.Context(), transcript, question)
			if err != nil {
				return fmt.Errorf("ask failed: %w", err)
			}

			fmt.Println(result.Content)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
