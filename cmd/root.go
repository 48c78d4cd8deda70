package cmd

import (
	"github.com/mkrishnan/storyfox/internal/settings"
	"github.com/mkrishnan/storyfox/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "storyfox",
	Short: "AI reading tutor for kids",
	Long:  "StoryFox — AI-native terminal app that grows early readers with short stories and comprehension questions.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides STORYFOX_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides STORYFOX_CONFIG env var)")

	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then STORYFOX_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveSettings loads reader preferences from --config, the
// STORYFOX_CONFIG env var, or the default XDG config path.
func resolveSettings(cmd *cobra.Command) (settings.Settings, error) {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return settings.Load(p)
	}
	return settings.Load(settings.DefaultPath())
}
