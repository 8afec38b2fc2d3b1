package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vibecheck/internal/logging"
	"vibecheck/internal/mood"
)

var (
	// Global flags
	verbose      bool
	modelID      string
	settingsPath string

	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "vibecheck",
	Short: "VibeCheck - mood-aware conversational companion",
	Long: `VibeCheck is a mood-aware conversational assistant.

It classifies the emotional tone of what you write, routes the conversation
to a configured completion backend (built-in OpenRouter or a custom proxy),
extracts structured suggestions from each reply, and tracks timed micro-reset
sessions started from those suggestions.

Run without arguments to start the interactive chat.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		if settingsPath == "" {
			settingsPath, err = defaultSettingsPath()
			if err != nil {
				return err
			}
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd.Context())
	},
}

// chatCmd starts the interactive chat explicitly.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the interactive chat",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd.Context())
	},
}

// moodCmd probes the mood classifier without sending anything.
var moodCmd = &cobra.Command{
	Use:   "mood [text]",
	Short: "Classify the mood of a piece of text",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text := ""
		for i, a := range args {
			if i > 0 {
				text += " "
			}
			text += a
		}
		fmt.Println(mood.Classify(text))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "settings file path (default: user config dir)")
	rootCmd.PersistentFlags().StringVarP(&modelID, "model", "m", "", "model ID or custom proxy ID (default: settings default_model)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(moodCmd)
	rootCmd.AddCommand(proxiesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
