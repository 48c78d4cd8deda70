package read

import (
	"fmt"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/mkrishnan/storyfox/internal/reading"
	"github.com/mkrishnan/storyfox/internal/story"
	"github.com/mkrishnan/storyfox/internal/ui/components"
	"github.com/mkrishnan/storyfox/internal/ui/theme"
)

func (s *ReadScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.engine == nil {
		return s.renderLoading(width)
	}
	if s.showQuitConfirm {
		return renderQuitConfirm(width)
	}

	switch s.engine.Phase() {
	case reading.PhaseQuestion:
		return s.renderQuestion(width)
	case reading.PhaseFeedback:
		return s.renderFeedback(width)
	}
	return s.renderReading(width)
}

// renderReading shows the current text segment with the word highlight
// and segment progress bar.
func (s *ReadScreen) renderReading(width int) string {
	now := time.Now()

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Fox(s.engine.Mood())))
	b.WriteString("\n\n")

	seg, ok := s.engine.CurrentItem().(story.TextSegment)
	if !ok {
		return b.String()
	}

	text := renderSegment(seg.Text, s.engine.WordIndex(now), width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, text))
	b.WriteString("\n\n")

	if s.engine.Phase() == reading.PhasePaused {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render("Paused — press Space to continue"))
	} else {
		bar := components.NewProgressBar("", s.engine.Progress(now), false, min(width-8, 50))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	}

	return b.String()
}

// renderSegment wraps the segment text and highlights the word the pacer
// has reached. Words behind the cursor render bright, words ahead dim.
func renderSegment(text string, wordIndex, width int) string {
	words := strings.Fields(text)
	readStyle := lipgloss.NewStyle().Foreground(theme.Text)
	currentStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	aheadStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	parts := make([]string, len(words))
	for i, w := range words {
		switch {
		case i < wordIndex:
			parts[i] = readStyle.Render(w)
		case i == wordIndex:
			parts[i] = currentStyle.Render(w)
		default:
			parts[i] = aheadStyle.Render(w)
		}
	}

	return lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Render(strings.Join(parts, " "))
}

func (s *ReadScreen) renderQuestion(width int) string {
	q, ok := s.engine.CurrentItem().(story.QuestionItem)
	if !ok {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Fox(s.engine.Mood())))
	b.WriteString("\n\n")

	if s.answered(q.ID) {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Already answered — press → to continue"))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Render(q.Prompt))
		return b.String()
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n\n")

	var options strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.mcSelected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d) %s", prefix, i+1, opt)
		if i == s.mcSelected {
			options.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			options.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		options.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, options.String()))

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Select (1-4) or use arrows + Enter"))

	return b.String()
}

func (s *ReadScreen) renderFeedback(width int) string {
	feedback := s.engine.LastFeedback()
	if feedback == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, components.Fox(s.engine.Mood())))
	b.WriteString("\n\n")

	if feedback.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		if q, ok := s.engine.CurrentItem().(story.QuestionItem); ok {
			if feedback.CorrectOption >= 0 && feedback.CorrectOption < len(q.Options) {
				b.WriteString("\n")
				b.WriteString(lipgloss.NewStyle().
					Width(width).
					Align(lipgloss.Center).
					Foreground(theme.TextDim).
					Render(fmt.Sprintf("Correct answer: %s", q.Options[feedback.CorrectOption])))
			}
		}
	}

	b.WriteString("\n\n")

	if feedback.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(feedback.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

// renderInfoLine shows the story title, cache marker, and running score.
func (s *ReadScreen) renderInfoLine(width int) string {
	title := s.title
	if s.cached {
		title += " (from your library)"
	}
	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + title)

	correct, attempted := s.engine.Score()
	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s %d/%d",
			lipgloss.NewStyle().Foreground(theme.Success).Render("*"),
			correct, attempted,
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Stop reading?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your progress will be saved."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, stop here"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep reading"))
	return b.String()
}

func (s *ReadScreen) renderLoading(width int) string {
	line := s.loadSpinner.View() + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(" The fox is fetching your story...")
	return "\n\n\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}
