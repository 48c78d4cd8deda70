package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show reading statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		state, err := s.ProfileRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}

		fmt.Printf("Level:      %s (%d/100)\n", state.Level.Name(), state.LevelScore)
		fmt.Printf("Difficulty: x%.2f\n", state.DifficultyMultiplier)
		fmt.Printf("Streak:     %d day(s), best %d\n", state.CurrentStreak, state.LongestStreak)
		fmt.Printf("Stories:    %d read\n", state.TotalStoriesRead)
		fmt.Printf("Questions:  %d answered, %.0f%% correct\n",
			state.TotalQuestions, state.OverallAccuracy()*100)

		breakdown, err := s.EventRepo().SkillBreakdown(ctx)
		if err != nil {
			return fmt.Errorf("query skill breakdown: %w", err)
		}

		fmt.Println()
		fmt.Println("Skills")
		fmt.Println(strings.Repeat("─", 52))
		for _, tag := range profile.AllSkillTags() {
			line := fmt.Sprintf("%-16s  %3d/100", tag, state.Skills.Get(tag))
			if stats, ok := breakdown[string(tag)]; ok && stats.Attempted > 0 {
				line += fmt.Sprintf("  (%d/%d answered, %.0f%%)",
					stats.Correct, stats.Attempted, stats.Accuracy()*100)
			}
			fmt.Println(line)
		}

		summaries, err := s.EventRepo().SessionSummaries(ctx, store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query sessions: %w", err)
		}
		if len(summaries) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Recent Sessions")
		fmt.Println(strings.Repeat("─", 72))
		for _, sum := range summaries {
			title := sum.StoryTitle
			if len(title) > 30 {
				title = title[:30]
			}
			status := ""
			if sum.Action == "abandon" {
				status = "  (stopped early)"
			}
			fmt.Printf("%s  %-30s  %2d/%-2d  %3ds%s\n",
				sum.Timestamp.Local().Format("2006-01-02 15:04"),
				title,
				sum.QuestionsCorrect, sum.QuestionsAttempted,
				sum.ReadingSecs,
				status)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().IntP("limit", "n", 10, "Number of recent sessions to show")
}
