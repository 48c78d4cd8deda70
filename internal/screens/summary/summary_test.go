package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/progression"
	"github.com/mkrishnan/storyfox/internal/reading"
)

func testInput() Input {
	before := profile.DefaultState()
	after := before
	after.LevelScore = 75
	after.CurrentStreak = 3
	after.Skills.Comprehension = 52
	after.Skills.Inference = 49

	return Input{
		StoryTitle: "The Brave Fox",
		Outcome: &reading.Outcome{
			StoryID:            "st1",
			SessionID:          "s1",
			QuestionsAttempted: 4,
			QuestionsCorrect:   3,
			ReadingTime:        5 * time.Minute,
		},
		Result: progression.Result{
			LevelScoreDelta: 25,
			NewLevelScore:   75,
			NewMultiplier:   1.0,
			SkillDeltas: profile.SkillDeltas{
				profile.SkillComprehension: 2,
				profile.SkillInference:     -1,
			},
		},
		Before: before,
		After:  after,
		Mood:   reading.MoodSuccess,
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testInput())
	if s.Title() != "Story Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Story Summary")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testInput())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "The Brave Fox") {
		t.Error("expected the story title in the view")
	}
	if !strings.Contains(view, "75") {
		t.Error("expected the new level score in the view")
	}
}

func TestSummaryScreen_LevelUpShown(t *testing.T) {
	input := testInput()
	input.Result.Transition = progression.LevelTransition{
		Kind: progression.TransitionUp,
		From: profile.LevelSprout,
		To:   profile.LevelExplorer,
	}
	input.After.Level = profile.LevelExplorer

	view := New(input).View(80, 24)
	if !strings.Contains(view, "Level up!") {
		t.Error("expected level-up banner in the view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testInput())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testInput())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testInput())
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints length = %d, want 2", len(hints))
	}
}
