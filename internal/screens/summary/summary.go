package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/progression"
	"github.com/mkrishnan/storyfox/internal/reading"
	"github.com/mkrishnan/storyfox/internal/router"
	"github.com/mkrishnan/storyfox/internal/screen"
	"github.com/mkrishnan/storyfox/internal/ui/components"
	"github.com/mkrishnan/storyfox/internal/ui/layout"
	"github.com/mkrishnan/storyfox/internal/ui/theme"
)

// Input carries everything the summary displays: the session outcome,
// the progression result, and the states it moved between.
type Input struct {
	StoryTitle string
	Outcome    *reading.Outcome
	Result     progression.Result
	Before     profile.ProgressionState
	After      profile.ProgressionState
	Mood       reading.Mood
}

// SummaryScreen displays the end-of-session summary.
type SummaryScreen struct {
	input Input
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(input Input) *SummaryScreen {
	return &SummaryScreen{input: input}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Story Summary"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// Pop both the summary and the finished read screen.
			pop := func() tea.Msg { return router.PopScreenMsg{} }
			return s, tea.Sequence(pop, pop)
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	outcome := s.input.Outcome
	if outcome == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Story complete!"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Fox(s.input.Mood)))
	b.WriteString("\n\n")

	mins := int(outcome.ReadingTime.Minutes())
	secs := int(outcome.ReadingTime.Seconds()) % 60
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s — %d:%02d of reading", s.input.StoryTitle, mins, secs)))
	b.WriteString("\n\n")

	accuracy := fmt.Sprintf("%.0f%%", outcome.Accuracy()*100)
	statsLine := fmt.Sprintf("Questions: %d        Correct: %d        Accuracy: %s",
		outcome.QuestionsAttempted, outcome.QuestionsCorrect, accuracy)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(s.renderProgression(width))
	b.WriteString(s.renderSkills(width))

	return b.String()
}

// renderProgression shows the level score movement, streak, and any
// level transition.
func (s *SummaryScreen) renderProgression(width int) string {
	var b strings.Builder

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Progress")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	res := s.input.Result

	switch res.Transition.Kind {
	case progression.TransitionUp:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Level up! %s → %s",
				res.Transition.From.Name(), res.Transition.To.Name())))
		b.WriteString("\n")
	case progression.TransitionDown:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(fmt.Sprintf("Back to %s for a little more practice",
				res.Transition.To.Name())))
		b.WriteString("\n")
	}

	deltaStr := fmt.Sprintf("%+d", res.LevelScoreDelta)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("%s level:  %d points (%s)",
			s.input.After.Level.Name(), res.NewLevelScore, deltaStr)))
	b.WriteString("\n")

	streakStr := fmt.Sprintf("Streak: %d day", s.input.After.CurrentStreak)
	if s.input.After.CurrentStreak != 1 {
		streakStr += "s"
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render("★ " + streakStr))
	b.WriteString("\n\n")

	return b.String()
}

// renderSkills lists the per-skill score movement for skills touched
// this session.
func (s *SummaryScreen) renderSkills(width int) string {
	deltas := s.input.Result.SkillDeltas
	if len(deltas) == 0 {
		return ""
	}

	var b strings.Builder
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Skills")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, tag := range profile.AllSkillTags() {
		delta, ok := deltas[tag]
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %-14s %3d (%+d)", tag, s.input.After.Skills.Get(tag), delta)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if delta > 0 {
			style = style.Foreground(theme.Success)
		} else if delta < 0 {
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
