package main

import (
	"fmt"
	"os"

	"github.com/harunnryd/tenki/internal/config"
	"github.com/harunnryd/tenki/internal/logger"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tenki",
	Short: "Tenki weather assistant",
	Long:  `Tenki answers weather questions by letting a language model drive location and forecast tools.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cmd)
		if err != nil {
			return err
		}

		logger.Setup(cfg.LogLevel)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tenki/config.yaml)")
	rootCmd.PersistentFlags().String("log_level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("models.default", config.DefaultModelDefault, "model to answer with (from models.registry)")
	rootCmd.PersistentFlags().Int("agent.max_turns", config.DefaultAgentMaxTurns, "maximum loop iterations per question")
}
