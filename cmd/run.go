package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/mkrishnan/storyfox/internal/app"
	"github.com/mkrishnan/storyfox/internal/llm"
	"github.com/mkrishnan/storyfox/internal/screens/read"
	"github.com/mkrishnan/storyfox/internal/selfupdate"
	"github.com/mkrishnan/storyfox/internal/settings"
	"github.com/mkrishnan/storyfox/internal/store"
	"github.com/mkrishnan/storyfox/internal/story"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// startReading skips the home menu and begins a session immediately.
func runApp(cmd *cobra.Command, startReading bool) error {
	ctx := cmd.Context()

	cfg, err := resolveSettings(cmd)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	var generator story.Generator
	llmConfigured := false
	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Serving stories from the local library only.")
	} else {
		generator = story.NewLLMGenerator(provider, story.DefaultConfig())
		llmConfigured = true
	}

	opts := app.Options{
		Stories:       story.NewService(generator, st.StoryRepo()),
		Profiles:      st.ProfileRepo(),
		Events:        st.EventRepo(),
		ReadOptions:   readOptions(cfg),
		LLMConfigured: llmConfigured,
		ShowWelcome:   !startReading,
		StartReading:  startReading,
		LatestVersion: checkLatestVersion(ctx),
	}

	return app.Run(opts)
}

// checkLatestVersion does a quick, best-effort release check so the home
// screen can show an update note. Any failure is ignored.
func checkLatestVersion(ctx context.Context) string {
	checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Second))
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
	if err != nil || !result.UpdateAvailable {
		return ""
	}
	return result.LatestVersion
}

// readOptions maps reader preferences from the config file onto session
// options.
func readOptions(cfg settings.Settings) read.Options {
	return read.Options{
		WPM:       cfg.WPM(),
		Themes:    cfg.Themes(),
		Interests: cfg.Interests(),
		Language:  cfg.Language(),
	}
}
