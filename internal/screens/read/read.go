package read

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/mkrishnan/storyfox/internal/profile"
	"github.com/mkrishnan/storyfox/internal/progression"
	"github.com/mkrishnan/storyfox/internal/reading"
	"github.com/mkrishnan/storyfox/internal/router"
	"github.com/mkrishnan/storyfox/internal/screen"
	"github.com/mkrishnan/storyfox/internal/screens/summary"
	"github.com/mkrishnan/storyfox/internal/store"
	"github.com/mkrishnan/storyfox/internal/story"
	"github.com/mkrishnan/storyfox/internal/ui/layout"
	"github.com/mkrishnan/storyfox/internal/ui/theme"

	"github.com/google/uuid"
)

// excludeWindow is how many recent story IDs are sent to the generator
// so the reader does not get the same story twice in a row.
const excludeWindow = 20

// ReadScreen runs one reading session: story display with auto-advance,
// inline questions, feedback, and the progression update at the end.
type ReadScreen struct {
	stories  *story.Service
	profiles store.ProfileRepo
	events   store.EventRepo

	wpm       int
	themes    []string
	interests []string
	language  string

	state  profile.ProgressionState
	engine *reading.Engine
	title  string
	cached bool

	mcSelected       int
	showQuitConfirm  bool
	pausedForConfirm bool
	done             bool
	errMsg           string
	loadSpinner      spinner.Model
}

var _ screen.Screen = (*ReadScreen)(nil)
var _ screen.KeyHintProvider = (*ReadScreen)(nil)

// Options carries reader preferences into a session.
type Options struct {
	WPM       int
	Themes    []string
	Interests []string
	Language  string
}

// New creates a ReadScreen with injected dependencies.
func New(stories *story.Service, profiles store.ProfileRepo, events store.EventRepo, opts Options) *ReadScreen {
	wpm := opts.WPM
	if wpm <= 0 {
		wpm = reading.DefaultReadingSpeedWPM
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &ReadScreen{
		stories:     stories,
		profiles:    profiles,
		events:      events,
		wpm:         wpm,
		themes:      opts.Themes,
		interests:   opts.Interests,
		language:    opts.Language,
		loadSpinner: sp,
	}
}

func (s *ReadScreen) Init() tea.Cmd {
	return tea.Batch(s.loadSpinner.Tick, s.loadStory())
}

func (s *ReadScreen) Title() string {
	return "Reading"
}

func (s *ReadScreen) KeyHints() []layout.KeyHint {
	if s.showQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Stop reading"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.engine == nil {
		return nil
	}
	switch s.engine.Phase() {
	case reading.PhaseQuestion:
		return []layout.KeyHint{
			{Key: "↑/↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	case reading.PhaseFeedback:
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "Space", Description: "Pause"},
		{Key: "→", Description: "Skip"},
		{Key: "←", Description: "Back"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *ReadScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case storyReadyMsg:
		return s.handleStoryReady(msg)

	case pacerTickMsg:
		return s.handlePacerTick(msg)

	case sessionEndMsg:
		return s.handleSessionEnd(msg)

	case spinner.TickMsg:
		if s.engine == nil && s.errMsg == "" {
			var cmd tea.Cmd
			s.loadSpinner, cmd = s.loadSpinner.Update(msg)
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// loadStory loads the profile and asks the story service for the next
// story, excluding recently read ones.
func (s *ReadScreen) loadStory() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		state, err := s.profiles.Load(ctx)
		if err != nil {
			return storyReadyMsg{Err: err}
		}

		var excludeIDs []string
		if s.events != nil {
			excludeIDs, _ = s.events.ReadStoryIDs(ctx, excludeWindow)
		}

		result, err := s.stories.NextStory(ctx, story.GenerateInput{
			DifficultyMultiplier: state.DifficultyMultiplier,
			Themes:               s.themes,
			Interests:            s.interests,
			Language:             s.language,
			ExcludeIDs:           excludeIDs,
		})
		if err != nil {
			return storyReadyMsg{Err: err}
		}
		return storyReadyMsg{State: state, Result: result}
	}
}

func (s *ReadScreen) handleStoryReady(msg storyReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.state = msg.State
	s.title = msg.Result.Story.Title
	s.cached = msg.Result.Cached

	now := time.Now()
	s.engine = reading.NewEngine(uuid.New().String(), s.wpm, s.state.DifficultyMultiplier)
	s.engine.Start(msg.Result.Story, now)

	if s.events != nil {
		_ = s.events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:  s.engine.SessionID(),
			StoryID:    msg.Result.Story.ID,
			StoryTitle: msg.Result.Story.Title,
			Action:     "start",
			Cached:     msg.Result.Cached,
		})
	}

	return s, s.tickCmd()
}

func (s *ReadScreen) handlePacerTick(msg pacerTickMsg) (screen.Screen, tea.Cmd) {
	if s.engine == nil || s.done {
		return s, nil
	}
	// An in-flight tick from before completion must not restart the end
	// flow; only a tick that causes the completion triggers it.
	if s.engine.Phase() == reading.PhaseCompleted {
		return s, nil
	}

	s.engine.Tick(msg.Gen, msg.Time)

	if s.engine.Phase() == reading.PhaseCompleted {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	if s.engine.PacerRunning() {
		return s, s.tickCmd()
	}
	return s, nil
}

func (s *ReadScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.engine == nil {
		return s, nil
	}

	// Back on this screen after the summary popped: any key goes home.
	if s.engine.Phase() == reading.PhaseCompleted {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	now := time.Now()

	if s.showQuitConfirm {
		switch key {
		case "y", "Y":
			s.showQuitConfirm = false
			return s, func() tea.Msg { return sessionEndMsg{Abandoned: true} }
		case "n", "N", "esc":
			s.showQuitConfirm = false
			if s.pausedForConfirm {
				s.pausedForConfirm = false
				s.engine.TogglePause(now)
				if s.engine.PacerRunning() {
					return s, s.tickCmd()
				}
			}
			return s, nil
		}
		return s, nil
	}

	// Feedback overlay: any key dismisses.
	if s.engine.Phase() == reading.PhaseFeedback {
		s.engine.DismissFeedback(now)
		return s.afterMove()
	}

	switch key {
	case "esc":
		s.showQuitConfirm = true
		// Freeze the pacer behind the dialog; the old tick chain dies on
		// the phase change.
		if s.engine.Phase() == reading.PhaseReading {
			s.engine.TogglePause(now)
			s.pausedForConfirm = true
		}
		return s, nil

	case " ", "space", "p":
		s.engine.TogglePause(now)
		if s.engine.PacerRunning() {
			return s, s.tickCmd()
		}
		return s, nil

	case "left", "h":
		s.engine.Retreat(now)
		return s, nil
	}

	if s.engine.Phase() == reading.PhaseQuestion {
		return s.handleQuestionKey(key, now)
	}

	switch key {
	case "right", "l", "enter":
		s.engine.Advance(now)
		return s.afterMove()
	}

	return s, nil
}

func (s *ReadScreen) handleQuestionKey(key string, now time.Time) (screen.Screen, tea.Cmd) {
	q, ok := s.engine.CurrentItem().(story.QuestionItem)
	if !ok {
		return s, nil
	}

	// A question reached by retreating is already answered; it is passed
	// through like a text segment.
	if s.answered(q.ID) {
		switch key {
		case "right", "l", "enter":
			s.engine.Advance(now)
			return s.afterMove()
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.mcSelected > 0 {
			s.mcSelected--
		}
	case "down", "j":
		if s.mcSelected < len(q.Options)-1 {
			s.mcSelected++
		}
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(q.Options) {
			s.mcSelected = idx
			return s.submitAnswer(q, now)
		}
	case "enter":
		return s.submitAnswer(q, now)
	}
	return s, nil
}

func (s *ReadScreen) submitAnswer(q story.QuestionItem, now time.Time) (screen.Screen, tea.Cmd) {
	feedback, accepted := s.engine.SubmitAnswer(s.mcSelected, now)
	if !accepted {
		return s, nil
	}

	if s.events != nil {
		records := s.engine.Answers()
		last := records[len(records)-1]
		_ = s.events.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID:    s.engine.SessionID(),
			StoryID:      s.engine.Story().ID,
			QuestionID:   q.ID,
			Skill:        string(q.Skill),
			Difficulty:   q.Difficulty,
			ChosenIndex:  last.ChosenOption,
			CorrectIndex: feedback.CorrectOption,
			Correct:      feedback.Correct,
			TimeMs:       int(last.TimeSpent.Milliseconds()),
		})
	}

	s.mcSelected = 0
	return s, nil
}

// afterMove schedules the next tick or the end flow after the engine
// moved to a new item.
func (s *ReadScreen) afterMove() (screen.Screen, tea.Cmd) {
	if s.engine.Phase() == reading.PhaseCompleted {
		return s, func() tea.Msg { return sessionEndMsg{} }
	}
	s.mcSelected = 0
	if s.engine.PacerRunning() {
		return s, s.tickCmd()
	}
	return s, nil
}

func (s *ReadScreen) handleSessionEnd(msg sessionEndMsg) (screen.Screen, tea.Cmd) {
	// The end flow runs exactly once per session, whatever mix of ticks
	// and key events raced it there.
	if s.done {
		return s, nil
	}
	if s.engine == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	now := time.Now()
	outcome := s.engine.Complete(now)
	if outcome == nil {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	s.done = true

	sessionOutcome := progression.SessionOutcome{
		QuestionsAttempted: outcome.QuestionsAttempted,
		QuestionsCorrect:   outcome.QuestionsCorrect,
		SkillCorrect:       outcome.SkillCorrect(),
	}
	result := progression.Evaluate(s.state, sessionOutcome)
	before := s.state
	after := progression.Apply(s.state, result, sessionOutcome, now)

	ctx := context.Background()
	// The local apply is authoritative; the snapshot write is best-effort
	// and never blocks the summary.
	_ = s.profiles.Save(ctx, after)

	action := "end"
	if msg.Abandoned {
		action = "abandon"
	}
	if s.events != nil {
		_ = s.events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:          outcome.SessionID,
			StoryID:            outcome.StoryID,
			StoryTitle:         s.title,
			Action:             action,
			Cached:             s.cached,
			QuestionsAttempted: outcome.QuestionsAttempted,
			QuestionsCorrect:   outcome.QuestionsCorrect,
			ReadingSecs:        int(outcome.ReadingTime.Seconds()),
		})
	}

	mood := s.engine.Mood()
	return s, func() tea.Msg {
		return router.PushScreenMsg{
			Screen: summary.New(summary.Input{
				StoryTitle: s.title,
				Outcome:    outcome,
				Result:     result,
				Before:     before,
				After:      after,
				Mood:       mood,
			}),
		}
	}
}

func (s *ReadScreen) answered(questionID string) bool {
	for _, a := range s.engine.Answers() {
		if a.QuestionID == questionID {
			return true
		}
	}
	return false
}

// tickCmd schedules the next pacer tick pinned to the current generation.
func (s *ReadScreen) tickCmd() tea.Cmd {
	gen := s.engine.PacerGen()
	return tea.Tick(reading.TickInterval, func(t time.Time) tea.Msg {
		return pacerTickMsg{Gen: gen, Time: t}
	})
}
