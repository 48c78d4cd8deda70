package read

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/reading"
	"github.com/mkrishnan/storyfox/internal/router"
	"github.com/mkrishnan/storyfox/internal/story"
	"github.com/mkrishnan/storyfox/internal/store"
)

// fakeProfiles is an in-memory store.ProfileRepo.
type fakeProfiles struct {
	state   profile.ProgressionState
	saveErr error
	saves   int
}

func (f *fakeProfiles) Load(context.Context) (profile.ProgressionState, error) {
	return f.state, nil
}

func (f *fakeProfiles) Save(_ context.Context, state profile.ProgressionState) error {
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.state = state
	return nil
}

func (f *fakeProfiles) Reset(context.Context) error {
	f.state = profile.DefaultState()
	return nil
}

// fakeEvents records appended events and stubs the query side.
type fakeEvents struct {
	sessions []store.SessionEventData
	answers  []store.AnswerEventData
}

func (f *fakeEvents) AppendAnswerEvent(_ context.Context, d store.AnswerEventData) error {
	f.answers = append(f.answers, d)
	return nil
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, d store.SessionEventData) error {
	f.sessions = append(f.sessions, d)
	return nil
}

func (f *fakeEvents) AppendLLMRequest(context.Context, store.LLMRequestEventData) error {
	return nil
}

func (f *fakeEvents) SessionSummaries(context.Context, store.QueryOpts) ([]store.SessionSummary, error) {
	return nil, nil
}

func (f *fakeEvents) SkillBreakdown(context.Context) (map[string]store.SkillStats, error) {
	return nil, nil
}

func (f *fakeEvents) ReadStoryIDs(context.Context, int) ([]string, error) {
	return nil, nil
}

func (f *fakeEvents) QueryLLMEvents(context.Context, store.QueryOpts) ([]store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEvents) GetLLMEvent(context.Context, int) (*store.LLMEvent, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByPurpose(context.Context) ([]store.LLMPurposeUsage, error) {
	return nil, nil
}

func (f *fakeEvents) LLMUsageByModel(context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

func (f *fakeEvents) sessionActions() []string {
	actions := make([]string, 0, len(f.sessions))
	for _, ev := range f.sessions {
		actions = append(actions, ev.Action)
	}
	return actions
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func singleSegmentStory() *story.Story {
	s := &story.Story{
		ID:    "st1",
		Title: "The Lantern",
		Content: []story.ContentItem{
			story.TextSegment{Text: "Pip carried the lantern across the dark meadow."},
		},
	}
	s.WordCount = story.CountWords(s.Content)
	return s
}

// startedScreen builds a ReadScreen with a loaded story in the reading
// phase, bypassing the story service.
func startedScreen(t *testing.T, profiles *fakeProfiles, events *fakeEvents) *ReadScreen {
	t.Helper()
	s := New(nil, profiles, events, Options{WPM: 130})
	_, cmd := s.Update(storyReadyMsg{
		State:  profiles.state,
		Result: &story.GenerateResult{Story: singleSegmentStory()},
	})
	if cmd == nil {
		t.Fatal("expected the pacer tick chain to start")
	}
	if s.engine == nil || s.engine.Phase() != reading.PhaseReading {
		t.Fatal("expected the session to be in the reading phase")
	}
	return s
}

func TestSessionEndRunsOnce(t *testing.T) {
	profiles := &fakeProfiles{state: profile.DefaultState()}
	events := &fakeEvents{}
	s := startedScreen(t, profiles, events)
	staleGen := s.engine.PacerGen()

	// Manual skip off the final segment completes the session and leaves
	// the scheduled 100ms tick in flight.
	_, endCmd := s.Update(specialKey(tea.KeyRight))
	if endCmd == nil {
		t.Fatal("expected completion to hand over to the end flow")
	}
	_, pushCmd := s.Update(endCmd())
	if pushCmd == nil {
		t.Fatal("expected the summary push")
	}
	if _, ok := pushCmd().(router.PushScreenMsg); !ok {
		t.Fatal("end flow should push the summary screen")
	}

	// The in-flight tick arrives after completion: it must be inert.
	_, cmd := s.Update(pacerTickMsg{Gen: staleGen, Time: time.Now()})
	if cmd != nil {
		t.Error("stale tick after completion should not produce a command")
	}

	// A raced duplicate end message is likewise dropped.
	_, cmd = s.Update(sessionEndMsg{})
	if cmd != nil {
		t.Error("duplicate end message should not produce a command")
	}

	got := events.sessionActions()
	want := []string{"start", "end"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("session events = %v, want %v", got, want)
	}
	if profiles.saves != 1 {
		t.Errorf("profile saves = %d, want 1", profiles.saves)
	}
}

func TestSaveFailureStillReachesSummary(t *testing.T) {
	profiles := &fakeProfiles{state: profile.DefaultState(), saveErr: errors.New("disk full")}
	events := &fakeEvents{}
	s := startedScreen(t, profiles, events)

	_, endCmd := s.Update(specialKey(tea.KeyRight))
	if endCmd == nil {
		t.Fatal("expected completion to hand over to the end flow")
	}
	_, pushCmd := s.Update(endCmd())
	if pushCmd == nil {
		t.Fatal("a failed snapshot write must not abort the end flow")
	}
	if _, ok := pushCmd().(router.PushScreenMsg); !ok {
		t.Fatal("expected the summary to be pushed despite the save failure")
	}
	if s.errMsg != "" {
		t.Errorf("save failure surfaced to the reader: %q", s.errMsg)
	}

	got := events.sessionActions()
	if len(got) != 2 || got[1] != "end" {
		t.Errorf("session events = %v, want [start end]", got)
	}
}

func TestQuitConfirmPausesAndResumeRestartsTicks(t *testing.T) {
	profiles := &fakeProfiles{state: profile.DefaultState()}
	events := &fakeEvents{}
	s := startedScreen(t, profiles, events)

	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd != nil {
		t.Error("opening the quit confirm should not schedule anything")
	}
	if !s.showQuitConfirm {
		t.Fatal("expected the quit confirm to be showing")
	}
	if s.engine.Phase() != reading.PhasePaused {
		t.Errorf("phase behind the dialog = %v, want paused", s.engine.Phase())
	}

	// Declining resumes reading and restarts exactly one tick chain.
	_, cmd = s.Update(keyPress('n'))
	if s.showQuitConfirm {
		t.Fatal("expected the quit confirm to be dismissed")
	}
	if s.engine.Phase() != reading.PhaseReading {
		t.Errorf("phase after declining = %v, want reading", s.engine.Phase())
	}
	if cmd == nil {
		t.Error("expected the tick chain to be rescheduled on resume")
	}
}

func TestQuitConfirmKeepsManualPause(t *testing.T) {
	profiles := &fakeProfiles{state: profile.DefaultState()}
	events := &fakeEvents{}
	s := startedScreen(t, profiles, events)

	// Reader paused deliberately before opening the dialog.
	s.Update(keyPress('p'))
	if s.engine.Phase() != reading.PhasePaused {
		t.Fatal("expected manual pause")
	}

	s.Update(specialKey(tea.KeyEscape))
	_, cmd := s.Update(keyPress('n'))
	if s.engine.Phase() != reading.PhasePaused {
		t.Errorf("phase after declining = %v, want the manual pause kept", s.engine.Phase())
	}
	if cmd != nil {
		t.Error("declining must not restart ticks over a manual pause")
	}
}
