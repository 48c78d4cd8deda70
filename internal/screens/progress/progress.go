// Package progress shows the reader's level, streaks, and skill scores.
package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/router"
	"github.com/mkrishnan/storyfox/internal/screen"
	"github.com/mkrishnan/storyfox/internal/store"
	"github.com/mkrishnan/storyfox/internal/ui/components"
	"github.com/mkrishnan/storyfox/internal/ui/layout"
	"github.com/mkrishnan/storyfox/internal/ui/theme"
)

type progressLoadedMsg struct {
	State     profile.ProgressionState
	Breakdown map[string]store.SkillStats
	Err       error
}

// ProgressScreen displays the reader's progression state.
type ProgressScreen struct {
	profiles  store.ProfileRepo
	events    store.EventRepo
	state     profile.ProgressionState
	breakdown map[string]store.SkillStats
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen.
func New(profiles store.ProfileRepo, events store.EventRepo) *ProgressScreen {
	return &ProgressScreen{profiles: profiles, events: events}
}

func (s *ProgressScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		state, err := s.profiles.Load(ctx)
		if err != nil {
			return progressLoadedMsg{Err: err}
		}
		var breakdown map[string]store.SkillStats
		if s.events != nil {
			breakdown, _ = s.events.SkillBreakdown(ctx)
		}
		return progressLoadedMsg{State: state, Breakdown: breakdown}
	}
}

func (s *ProgressScreen) Title() string {
	return "My Progress"
}

func (s *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.state = msg.State
			s.breakdown = msg.Breakdown
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *ProgressScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading progress...")
	}

	var b strings.Builder
	b.WriteString("\n")

	levelLine := fmt.Sprintf("%s reader", s.state.Level.Name())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render(levelLine))
	b.WriteString("\n\n")

	barWidth := min(width-20, 40)
	scoreBar := components.NewProgressBar(
		"Level", float64(s.state.LevelScore)/100, true, barWidth+14)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, scoreBar.View()))
	b.WriteString("\n\n")

	info := fmt.Sprintf("Difficulty ×%.2f    Streak %d (best %d)    Stories %d    Accuracy %.0f%%",
		s.state.DifficultyMultiplier,
		s.state.CurrentStreak, s.state.LongestStreak,
		s.state.TotalStoriesRead,
		s.state.OverallAccuracy()*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(info))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skills")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, tag := range profile.AllSkillTags() {
		score := s.state.Skills.Get(tag)
		bar := components.NewProgressBar(
			fmt.Sprintf("%-14s", tag), float64(score)/100, false, barWidth+14)

		line := bar.View()
		if stats, ok := s.breakdown[string(tag)]; ok && stats.Attempted > 0 {
			line += lipgloss.NewStyle().
				Foreground(theme.TextDim).
				Render(fmt.Sprintf("  %d/%d answered", stats.Correct, stats.Attempted))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}
