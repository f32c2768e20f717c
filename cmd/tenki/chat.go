package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/harunnryd/tenki/internal/agent"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"
)

var chatBannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("39"))

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat interactively",
	Long:  `Start an interactive session. One transcript carries the whole conversation; type '/exit' to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return executeWithAssistant(func(a *assistant) error {
			return runChat(cmd, a)
		})
	},
}

func runChat(cmd *cobra.Command, a *assistant) error {
	sessionID := fmt.Sprintf("cli-%d", time.Now().Unix())

	// One transcript for the whole session: every turn appends to it, so the
	// model sees the full conversation each time.
	transcript := agent.NewTranscriptWithSystem(cfg.Agent.SystemPrompt)
	reader := bufio.NewReader(cmd.InOrStdin())

	fmt.Println(chatBannerStyle.Render("Tenki Interactive Session: " + sessionID))
	fmt.Println("Type '/exit' to quit.")

	for {
		fmt.Print("> ")

		text, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		if text == "/exit" {
			return nil
		}

		result, err := a.loop.Run(cmd.Context(), transcript, text)
		if err != nil {
			slog.Error("Turn failed", "error", err)
			continue
		}

		fmt.Println(result.Content)
	}
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
